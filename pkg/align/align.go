package align

// Library identifies one of the native geospatial libraries whose versions
// are audited.
type Library string

const (
	GDAL Library = "GDAL"
	PROJ Library = "PROJ"
	GEOS Library = "GEOS"
)

// Libraries lists the audited libraries in report order.
var Libraries = []Library{GDAL, PROJ, GEOS}

// Version is a version value reported by a package for one library. The zero
// value means the package does not report a version for that library.
type Version struct {
	// Value is the literal version string as reported.
	Value string
	// Via names the upstream package this package delegates its linkage to.
	// A mediated version is never compared against ground truth.
	Via string
}

// Literal reports whether v carries a directly-reported version string.
func (v Version) Literal() bool {
	return v.Value != "" && v.Via == ""
}

// Mediated returns a Version delegating to the named upstream package.
func Mediated(upstream string) Version {
	return Version{Via: upstream}
}

// Observation is one package's reported version for a single library.
type Observation struct {
	Package string
	Version Version
}

// Mismatch records a package whose normalized version differs from the
// normalized system ground truth.
type Mismatch struct {
	Package    string
	Actual     string
	Normalized string
}

// Result is the alignment verdict for one library.
type Result struct {
	Library    Library
	System     string // raw ground-truth version, empty when unknown
	SystemNorm string
	// NoData is set when no package reports a literal version; the library
	// is then trivially aligned.
	NoData     bool
	Mismatches []Mismatch
}

// Aligned reports whether the library passed the alignment check.
func (r Result) Aligned() bool {
	return len(r.Mismatches) == 0
}
