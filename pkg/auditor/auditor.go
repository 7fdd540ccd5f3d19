package auditor

import (
	"context"
	"io"

	"github.com/lerenn/geoaudit/pkg/adapters/command"
	"github.com/lerenn/geoaudit/pkg/align"
	"github.com/lerenn/geoaudit/pkg/config"
	"github.com/lerenn/geoaudit/pkg/logging"
	"github.com/lerenn/geoaudit/pkg/pyprobe"
	"github.com/lerenn/geoaudit/pkg/report"
	"github.com/lerenn/geoaudit/pkg/sysprobe"
	"go.uber.org/zap"
)

// Auditor orchestrates the version alignment audit: system ground truth,
// package introspection, alignment checking, and the final report.
type Auditor struct {
	config    *config.Config
	sysProber sysprobe.Prober
	pyProber  pyprobe.Prober
	checker   align.Checker
}

// New creates a new Auditor from the given configuration.
func New(cfg *config.Config) *Auditor {
	runner := command.NewRunner(cfg.ProbeTimeout)
	return &Auditor{
		config:    cfg,
		sysProber: sysprobe.NewProber(runner, cfg.SystemProbes),
		pyProber:  pyprobe.NewProber(runner, cfg.Interpreter, cfg.Packages),
		checker:   align.NewChecker(cfg.StrictSemver),
	}
}

// Run executes the audit and returns the built report. Probe failures are
// absorbed into the report; Run itself does not fail.
func (a *Auditor) Run(ctx context.Context) *report.Report {
	system := a.sysProber.Probe(ctx)
	logging.C(ctx).Info("Probed system libraries",
		zap.String("gdal", system.GDAL),
		zap.String("proj", system.PROJ),
		zap.String("geos", system.GEOS),
		zap.Bool("strict_semver", a.config.StrictSemver),
	)

	packages, warnings := a.pyProber.Probe(ctx)
	logging.C(ctx).Info("Probed Python packages",
		zap.Int("package_count", len(packages)),
		zap.Int("warning_count", len(warnings)),
	)

	results := make([]align.Result, 0, len(align.Libraries))
	for _, library := range align.Libraries {
		result := a.checker.Check(library, system.Get(library), observations(library, packages))
		if !result.Aligned() {
			for _, mismatch := range result.Mismatches {
				logging.C(ctx).Warn("Library version mismatch",
					zap.String("library", string(library)),
					zap.String("package", mismatch.Package),
					zap.String("actual", mismatch.Actual),
					zap.String("normalized", mismatch.Normalized),
					zap.String("system", result.System),
				)
			}
		}
		results = append(results, result)
	}

	return &report.Report{
		System:   system,
		Warnings: warnings,
		Packages: packages,
		Results:  results,
	}
}

// RunAndRender executes the audit, renders the report, and reports whether
// the environment is aligned.
func (a *Auditor) RunAndRender(ctx context.Context, w io.Writer) bool {
	rep := a.Run(ctx)
	rep.Render(w)
	return rep.Aligned()
}

// observations flattens the package reports into per-library observations,
// keeping package order.
func observations(library align.Library, packages []pyprobe.PackageReport) []align.Observation {
	obs := make([]align.Observation, 0, len(packages))
	for _, pkg := range packages {
		obs = append(obs, align.Observation{
			Package: pkg.Package,
			Version: pkg.Get(library),
		})
	}
	return obs
}
