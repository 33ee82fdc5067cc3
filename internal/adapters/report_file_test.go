package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variant-match/internal/types"
)

func sampleReport() types.MatchReport {
	return types.MatchReport{
		Outcome: types.MatchOutcomeSelected,
		Requested: map[string]string{
			"platform": "linux",
			"usage":    "runtime",
		},
		Selected: []types.SelectedVariant{
			{
				Name: "release-linux",
				Attributes: map[string]string{
					"platform": "linux",
					"usage":    "runtime",
				},
			},
		},
		Trace: []types.EliminationRecord{
			{
				Candidate: "release-windows",
				Attribute: "platform",
				Phase:     types.PhaseCompatibility,
				Requested: "linux",
				Declared:  "windows",
			},
		},
	}
}

func TestReportFileAdapterRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	adapter := NewReportFileAdapter(dir)

	want := sampleReport()
	require.NoError(t, adapter.WriteReport(want))

	got, err := adapter.ReadReport()
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReportFileAdapterTextSummary(t *testing.T) {
	dir := t.TempDir()
	adapter := NewReportFileAdapter(dir)
	require.NoError(t, adapter.WriteReport(sampleReport()))

	data, err := os.ReadFile(filepath.Join(dir, "match.report"))
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "outcome=selected\n")
	assert.Contains(t, text, "requested platform=linux\n")
	assert.Contains(t, text, "selected release-linux\n")
	assert.Contains(t, text, "eliminated release-windows by platform (compatibility) requested=linux declared=windows\n")
}

func TestReportFileAdapterTextIsDeterministic(t *testing.T) {
	first := renderReportText(sampleReport())
	for range 10 {
		assert.Equal(t, first, renderReportText(sampleReport()))
	}
}

func TestReportFileAdapterReadMissing(t *testing.T) {
	adapter := NewReportFileAdapter(filepath.Join(t.TempDir(), "never-written"))
	_, err := adapter.ReadReport()
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
