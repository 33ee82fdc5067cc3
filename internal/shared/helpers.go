// Package shared provides common utility functions used across
// multiple packages in the variant-match codebase.
package shared

import (
	"sort"
	"strings"

	"variant-match/internal/types"
)

// NormalizeAttributeName trims whitespace and lowercases an attribute
// name so schema documents and variant documents agree on spelling.
func NormalizeAttributeName(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// RenderContainer flattens a container into a name-to-text map for
// reports and diagnostics.
func RenderContainer(container types.Container) map[string]string {
	if container.Len() == 0 {
		return nil
	}
	out := make(map[string]string, container.Len())
	for _, attr := range container.Attributes() {
		value, _ := container.Get(attr)
		out[attr.Name] = value.Render()
	}
	return out
}

// CandidateIDs lists candidate identities in sorted order for stable
// error messages.
func CandidateIDs(candidates []types.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		out = append(out, candidate.ID)
	}
	sort.Strings(out)
	return out
}
