package align

import "regexp"

var (
	// devSuffixRE matches an optional separator followed by a pre-release
	// "dev" marker and everything after it, e.g. "-dev3", ".dev0", "dev".
	devSuffixRE = regexp.MustCompile(`(?i)[-.]?dev.*$`)
	// buildSuffixRE matches any remaining hyphen-delimited trailing
	// metadata. This strips at the first hyphen, so a version like
	// "3.8.0-1-abc" collapses to "3.8.0". Kept for compatibility with the
	// environments this tool has historically audited.
	buildSuffixRE = regexp.MustCompile(`-.*$`)
)

// Normalize strips pre-release and build metadata from a version string so
// that versions from differently-built packages can be compared for
// equality. It is a textual canonicalization, not a semver parser, and it is
// idempotent. The empty string (no version) normalizes to itself.
func Normalize(v string) string {
	v = devSuffixRE.ReplaceAllString(v, "")
	return buildSuffixRE.ReplaceAllString(v, "")
}
