package rules

import (
	"fmt"
	"sync"

	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"variant-match/internal/ports"
	"variant-match/internal/types"
)

// VersionScheme selects the comparison semantics for version-typed
// attribute values.
type VersionScheme string

const (
	SchemeDeb    VersionScheme = "deb"
	SchemePEP440 VersionScheme = "pep440"
)

// ParseVersionScheme maps a config token to a scheme. An empty token
// defaults to the Debian scheme.
func ParseVersionScheme(token string) (VersionScheme, bool) {
	switch VersionScheme(token) {
	case "":
		return SchemeDeb, true
	case SchemeDeb, SchemePEP440:
		return VersionScheme(token), true
	default:
		return "", false
	}
}

// versionCache memoizes parsed versions so repeated comparisons over
// the same values do not re-parse. Guarded by a mutex because rule
// instances are shared across concurrent match calls.
type versionCache struct {
	scheme VersionScheme
	mu     sync.Mutex
	deb    map[string]debversion.Version
	pep    map[string]pep440.Version
}

func newVersionCache(scheme VersionScheme) *versionCache {
	return &versionCache{
		scheme: scheme,
		deb:    map[string]debversion.Version{},
		pep:    map[string]pep440.Version{},
	}
}

// compare returns -1, 0, or 1 for a versus b under the cache's scheme.
func (c *versionCache) compare(a string, b string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.scheme {
	case SchemePEP440:
		v1, err := c.pepVersion(a)
		if err != nil {
			return 0, err
		}
		v2, err := c.pepVersion(b)
		if err != nil {
			return 0, err
		}
		return v1.Compare(v2), nil
	default:
		v1, err := c.debVersion(a)
		if err != nil {
			return 0, err
		}
		v2, err := c.debVersion(b)
		if err != nil {
			return 0, err
		}
		return v1.Compare(v2), nil
	}
}

func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, fmt.Errorf("invalid %s version %q: %w", c.scheme, value, err)
	}
	c.deb[value] = parsed
	return parsed, nil
}

func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, fmt.Errorf("invalid %s version %q: %w", c.scheme, value, err)
	}
	c.pep[value] = parsed
	return parsed, nil
}

// MinVersion accepts candidates whose version is at least the
// requested one. Absent values leave the rule undecided; a value that
// does not parse under the scheme is a rule failure.
type MinVersion struct {
	cache *versionCache
}

func NewMinVersion(scheme VersionScheme) MinVersion {
	return MinVersion{cache: newVersionCache(scheme)}
}

func (r MinVersion) Describe() string {
	return fmt.Sprintf("min-version(%s)", r.cache.scheme)
}

func (r MinVersion) Eval(requested types.Value, hasRequested bool, candidate types.Value, hasCandidate bool) (types.Decision, error) {
	if !hasRequested || !hasCandidate {
		return types.DecisionUndecided, nil
	}
	cmp, err := r.cache.compare(candidate.Render(), requested.Render())
	if err != nil {
		return types.DecisionUndecided, err
	}
	if cmp >= 0 {
		return types.DecisionCompatible, nil
	}
	return types.DecisionIncompatible, nil
}

var _ ports.CompatibilityRule = MinVersion{}

// HighestVersion narrows a set of version values to the single highest
// one under the scheme.
type HighestVersion struct {
	cache *versionCache
}

func NewHighestVersion(scheme VersionScheme) HighestVersion {
	return HighestVersion{cache: newVersionCache(scheme)}
}

func (r HighestVersion) Describe() string {
	return fmt.Sprintf("highest-version(%s)", r.cache.scheme)
}

func (r HighestVersion) Select(_ types.Value, _ bool, candidates []types.Value) ([]types.Value, bool, error) {
	if len(candidates) == 0 {
		return nil, false, nil
	}
	best := candidates[0]
	for _, value := range candidates[1:] {
		cmp, err := r.cache.compare(value.Render(), best.Render())
		if err != nil {
			return nil, false, err
		}
		if cmp > 0 {
			best = value
		}
	}
	return []types.Value{best}, true, nil
}

var _ ports.DisambiguationRule = HighestVersion{}
