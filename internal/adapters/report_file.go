package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"variant-match/internal/ports"
	"variant-match/internal/types"
)

const (
	reportTextName = "match.report"
	reportYAMLName = "match.yaml"
)

// ReportFileAdapter writes a match report into an output directory as
// a deterministic text summary plus a YAML document the inspect path
// reads back.
type ReportFileAdapter struct {
	Dir string
}

func NewReportFileAdapter(dir string) ReportFileAdapter {
	return ReportFileAdapter{Dir: dir}
}

func (a ReportFileAdapter) WriteReport(report types.MatchReport) error {
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory: " + a.Dir).
			WithCause(err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode match report").
			WithCause(err)
	}
	if err := os.WriteFile(filepath.Join(a.Dir, reportYAMLName), data, 0644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(a.Dir, reportTextName), []byte(renderReportText(report)), 0644)
}

func renderReportText(report types.MatchReport) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "outcome=%s\n", report.Outcome)

	for _, line := range sortedPairs(report.Requested) {
		fmt.Fprintf(&builder, "requested %s\n", line)
	}

	selected := append([]types.SelectedVariant(nil), report.Selected...)
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Name < selected[j].Name
	})
	for _, variant := range selected {
		fmt.Fprintf(&builder, "selected %s\n", variant.Name)
		for _, line := range sortedPairs(variant.Attributes) {
			fmt.Fprintf(&builder, "  %s\n", line)
		}
	}

	for _, record := range report.Trace {
		fmt.Fprintf(&builder, "eliminated %s by %s (%s) requested=%s declared=%s\n",
			record.Candidate, record.Attribute, record.Phase, record.Requested, record.Declared)
	}
	return builder.String()
}

func sortedPairs(values map[string]string) []string {
	out := make([]string, 0, len(values))
	for name, value := range values {
		out = append(out, fmt.Sprintf("%s=%s", name, value))
	}
	sort.Strings(out)
	return out
}

var _ ports.ReportWriterPort = ReportFileAdapter{}

// ReadReport loads the YAML report back for inspection.
func (a ReportFileAdapter) ReadReport() (types.MatchReport, error) {
	path := filepath.Join(a.Dir, reportYAMLName)
	data, err := os.ReadFile(path)
	if err != nil {
		return types.MatchReport{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read match report: " + path).
			WithCause(err)
	}
	var report types.MatchReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return types.MatchReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse match report: " + path).
			WithCause(err)
	}
	return report, nil
}

var _ ports.ReportReaderPort = ReportFileAdapter{}
