package align

import (
	"github.com/Masterminds/semver/v3"
)

// Checker compares package-reported library versions against the system
// ground truth.
//
//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=checker.go -destination=mock_checker.gen.go -package=align
type Checker interface {
	// Check evaluates one library. Observations with absent or mediated
	// versions are ignored; if none remain the result is a no-data pass.
	Check(library Library, systemVersion string, observations []Observation) Result
}

// checker is the default implementation of Checker.
type checker struct {
	strict bool
}

// NewChecker creates a new Checker. With strict enabled, versions that parse
// as semantic versions are compared structurally instead of textually;
// unparsable values fall back to textual comparison.
func NewChecker(strict bool) Checker {
	return &checker{strict: strict}
}

// Check implements the Checker interface.
func (c *checker) Check(library Library, systemVersion string, observations []Observation) Result {
	result := Result{
		Library:    library,
		System:     systemVersion,
		SystemNorm: Normalize(systemVersion),
	}

	sawLiteral := false
	for _, obs := range observations {
		if !obs.Version.Literal() {
			continue
		}
		sawLiteral = true

		raw := obs.Version.Value
		normalized := Normalize(raw)
		if c.equal(raw, normalized, systemVersion, result.SystemNorm) {
			continue
		}
		result.Mismatches = append(result.Mismatches, Mismatch{
			Package:    obs.Package,
			Actual:     raw,
			Normalized: normalized,
		})
	}

	result.NoData = !sawLiteral
	return result
}

// equal decides whether a package version matches the ground truth.
func (c *checker) equal(raw, normalized, systemRaw, systemNorm string) bool {
	if c.strict {
		pkgVer, err1 := semver.NewVersion(raw)
		sysVer, err2 := semver.NewVersion(systemRaw)
		if err1 == nil && err2 == nil {
			return pkgVer.Equal(sysVer)
		}
		// Fall through to textual comparison when either side is not
		// semver-shaped.
	}
	return normalized == systemNorm
}
