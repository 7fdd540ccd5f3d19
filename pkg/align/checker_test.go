//go:build unit
// +build unit

package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_Check_NoData(t *testing.T) {
	checker := NewChecker(false)

	result := checker.Check(GEOS, "3.12.1", []Observation{
		{Package: "rasterio", Version: Version{}},
		{Package: "rioxarray", Version: Mediated("rasterio")},
	})

	assert.True(t, result.NoData)
	assert.True(t, result.Aligned())
	assert.Empty(t, result.Mismatches)
}

func TestChecker_Check_AllMatch(t *testing.T) {
	checker := NewChecker(false)

	result := checker.Check(GDAL, "3.8.0", []Observation{
		{Package: "osgeo.gdal", Version: Version{Value: "3.8.0"}},
		{Package: "rasterio", Version: Version{Value: "3.8.0dev"}},
		{Package: "fiona", Version: Version{Value: "3.8.0-1"}},
	})

	assert.False(t, result.NoData)
	assert.True(t, result.Aligned())
	assert.Empty(t, result.Mismatches)
	assert.Equal(t, "3.8.0", result.SystemNorm)
}

func TestChecker_Check_Mismatch(t *testing.T) {
	checker := NewChecker(false)

	result := checker.Check(PROJ, "9.3.0", []Observation{
		{Package: "pyproj", Version: Version{Value: "9.2.1"}},
		{Package: "rasterio", Version: Version{Value: "9.3.0"}},
	})

	assert.False(t, result.Aligned())
	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, Mismatch{
		Package:    "pyproj",
		Actual:     "9.2.1",
		Normalized: "9.2.1",
	}, result.Mismatches[0])
}

func TestChecker_Check_UnknownSystemVersion(t *testing.T) {
	checker := NewChecker(false)

	// Ground truth could not be probed: every literal report differs from it.
	result := checker.Check(GDAL, "", []Observation{
		{Package: "rasterio", Version: Version{Value: "3.8.0"}},
	})

	assert.False(t, result.Aligned())
	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, "rasterio", result.Mismatches[0].Package)
}

func TestChecker_Check_MediatedExcluded(t *testing.T) {
	checker := NewChecker(false)

	result := checker.Check(GDAL, "3.8.0", []Observation{
		{Package: "rasterio", Version: Version{Value: "3.9.0"}},
		{Package: "rioxarray", Version: Mediated("rasterio")},
	})

	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, "rasterio", result.Mismatches[0].Package)
}

func TestChecker_Check_Strict(t *testing.T) {
	checker := NewChecker(true)

	// Structural comparison treats a pre-release as distinct from the
	// release, unlike textual normalization.
	result := checker.Check(GDAL, "3.8.0", []Observation{
		{Package: "rasterio", Version: Version{Value: "3.8.0-dev3"}},
	})

	assert.False(t, result.Aligned())
	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, "3.8.0-dev3", result.Mismatches[0].Actual)
	assert.Equal(t, "3.8.0", result.Mismatches[0].Normalized)
}

func TestChecker_Check_StrictFallsBackTextually(t *testing.T) {
	checker := NewChecker(true)

	// "3.8.0dev" is not semver-shaped, so strict mode falls back to the
	// textual rule and still matches.
	result := checker.Check(GDAL, "3.8.0", []Observation{
		{Package: "rasterio", Version: Version{Value: "3.8.0dev"}},
	})

	assert.True(t, result.Aligned())
}
