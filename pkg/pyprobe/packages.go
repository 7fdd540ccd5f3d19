package pyprobe

import "github.com/lerenn/geoaudit/pkg/align"

// accessorChain lists candidate Python expressions for one library's version,
// tried in order until one evaluates. Older package releases drop or rename
// accessors, so most chains carry a fallback.
type accessorChain struct {
	library align.Library
	exprs   []string
}

// packageSpec describes how one Python package is introspected.
type packageSpec struct {
	// name is the label used in reports.
	name string
	// imports are the modules imported to test availability.
	imports []string
	// warnIfMissing marks packages whose absence is operationally
	// significant and reported prominently instead of silently skipped.
	warnIfMissing bool
	// accessors are evaluated per library after a successful import.
	accessors []accessorChain
	// mediated maps a library to the upstream package the version is
	// delegated through, recorded as a sentinel instead of a literal value.
	mediated map[align.Library]string
	// showVersions selects the printed-report scraping path instead of
	// accessor evaluation.
	showVersions bool
}

// knownPackages lists every probed package in report order. The osgeo
// bindings come first: they are built with GDAL itself and are the canonical
// Python-side ground truth.
var knownPackages = []packageSpec{
	{
		name:          "osgeo.gdal",
		imports:       []string{"osgeo.gdal", "osgeo.ogr", "osgeo.osr"},
		warnIfMissing: true,
		accessors: []accessorChain{
			{library: align.GDAL, exprs: []string{"osgeo.gdal.VersionInfo('RELEASE_NAME')"}},
			// The bindings do not expose PROJ or GEOS versions directly.
		},
	},
	{
		name:    "rasterio",
		imports: []string{"rasterio"},
		accessors: []accessorChain{
			{library: align.GDAL, exprs: []string{"rasterio.gdal_version()"}},
			{library: align.PROJ, exprs: []string{"rasterio.proj_version()"}},
		},
	},
	{
		name:    "fiona",
		imports: []string{"fiona"},
		accessors: []accessorChain{
			{library: align.GDAL, exprs: []string{"fiona.gdal_version()"}},
			{library: align.PROJ, exprs: []string{"fiona.proj_version()"}},
		},
	},
	{
		name:    "pyogrio",
		imports: []string{"pyogrio"},
		accessors: []accessorChain{
			{library: align.GDAL, exprs: []string{
				"pyogrio.get_gdal_version_string()",
				"pyogrio.__gdal_version__",
			}},
		},
	},
	{
		name:    "pyproj",
		imports: []string{"pyproj"},
		accessors: []accessorChain{
			{library: align.PROJ, exprs: []string{"pyproj.proj_version_str"}},
		},
	},
	{
		name:    "shapely",
		imports: []string{"shapely"},
		accessors: []accessorChain{
			{library: align.GEOS, exprs: []string{"shapely.geos_version_string"}},
		},
	},
	{
		name:         "geopandas",
		imports:      []string{"geopandas"},
		showVersions: true,
	},
	{
		name:    "rioxarray",
		imports: []string{"rioxarray"},
		mediated: map[align.Library]string{
			align.GDAL: "rasterio",
			align.PROJ: "rasterio",
		},
	},
	{
		name:    "odc-geo",
		imports: []string{"odc.geo"},
		mediated: map[align.Library]string{
			align.GDAL: "rasterio",
			align.PROJ: "pyproj",
		},
	},
}
