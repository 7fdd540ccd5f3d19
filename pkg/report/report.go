package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/lerenn/geoaudit/pkg/align"
	"github.com/lerenn/geoaudit/pkg/pyprobe"
	"github.com/lerenn/geoaudit/pkg/sysprobe"
)

// Report is the full audit outcome, built first and rendered once. Tests
// assert on the structure instead of parsing stdout.
type Report struct {
	System   sysprobe.Versions
	Warnings []string
	Packages []pyprobe.PackageReport
	Results  []align.Result
}

// Aligned reports whether every audited library passed.
func (r *Report) Aligned() bool {
	for _, result := range r.Results {
		if !result.Aligned() {
			return false
		}
	}
	return true
}

// Render writes the human-readable report.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "=== Python Package Library Version Alignment Check ===\n\n")

	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "WARNING: %s\n", warning)
	}
	if len(r.Warnings) > 0 {
		fmt.Fprintln(w)
	}

	r.renderSystem(w)
	r.renderPackages(w)
	r.renderResults(w)
	r.renderSummary(w)
}

func (r *Report) renderSystem(w io.Writer) {
	fmt.Fprintf(w, "System libraries (ground truth):\n")
	for _, library := range align.Libraries {
		fmt.Fprintf(w, "  %s: %s\n", library, orUnknown(r.System.Get(library)))
	}
	fmt.Fprintln(w)
}

func (r *Report) renderPackages(w io.Writer) {
	fmt.Fprintf(w, "Package-reported versions:\n")
	fmt.Fprintf(w, "%-15s %-20s %-12s %-12s\n", "Package", "GDAL", "PROJ", "GEOS")
	fmt.Fprintf(w, "%-15s %-20s %-12s %-12s\n", dashes(15), dashes(20), dashes(12), dashes(12))
	for _, pkg := range r.Packages {
		fmt.Fprintf(w, "%-15s %-20s %-12s %-12s\n",
			pkg.Package,
			cell(pkg.Get(align.GDAL)),
			cell(pkg.Get(align.PROJ)),
			cell(pkg.Get(align.GEOS)),
		)
	}
}

func (r *Report) renderResults(w io.Writer) {
	fmt.Fprintf(w, "\n=== Alignment Check ===\n")
	for _, result := range r.Results {
		switch {
		case result.NoData:
			fmt.Fprintf(w, "%s: No packages report version directly\n", result.Library)
		case result.Aligned():
			fmt.Fprintf(w, "%s: OK (all packages match system %s)\n",
				result.Library, orUnknown(result.System))
		default:
			fmt.Fprintf(w, "%s: MISMATCH!\n", result.Library)
			fmt.Fprintf(w, "  System: %s (normalized: %s)\n",
				orUnknown(result.System), result.SystemNorm)
			for _, mismatch := range result.Mismatches {
				fmt.Fprintf(w, "  %s: %s (normalized: %s) DIFFERS\n",
					mismatch.Package, mismatch.Actual, mismatch.Normalized)
			}
		}
	}
}

func (r *Report) renderSummary(w io.Writer) {
	fmt.Fprintln(w)
	if r.Aligned() {
		fmt.Fprintln(w, "✓ All versions aligned")
		return
	}
	fmt.Fprintln(w, "✗ Version misalignment detected!")
	fmt.Fprintln(w, "This indicates packages were built against different library versions.")
	fmt.Fprintln(w, "The environment may behave unpredictably.")
}

// cell formats one table cell: literal value, mediation sentinel, or a dash
// placeholder.
func cell(v align.Version) string {
	if v.Via != "" {
		return "via " + v.Via
	}
	if v.Value == "" {
		return "-"
	}
	return v.Value
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

func dashes(n int) string {
	return strings.Repeat("-", n)
}
