package pyprobe

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/geoaudit/pkg/adapters/command"
	"github.com/lerenn/geoaudit/pkg/align"
	"github.com/lerenn/geoaudit/pkg/logging"
	"go.uber.org/zap"
)

// PackageReport holds the versions one installed package reports for the
// audited libraries. Absent entries mean the package does not report that
// library at all.
type PackageReport struct {
	Package  string
	Versions map[align.Library]align.Version
}

// Get returns the reported version for the given library, or the zero
// Version when the package does not report it.
func (r PackageReport) Get(library align.Library) align.Version {
	return r.Versions[library]
}

// Prober introspects the installed Python packages for the library versions
// they were built against.
//
//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prober.go -destination=mock_prober.gen.go -package=pyprobe
type Prober interface {
	// Probe checks every known package in order. Uninstalled packages are
	// omitted from the results; warnings carry operationally significant
	// findings (currently only missing osgeo bindings). Probe never fails.
	Probe(ctx context.Context) (reports []PackageReport, warnings []string)
}

// prober is the default implementation of Prober.
type prober struct {
	runner      command.Runner
	interpreter string
	only        map[string]bool
}

// NewProber creates a new Prober running introspection through the given
// interpreter. A non-empty packages list restricts which known packages are
// probed.
func NewProber(runner command.Runner, interpreter string, packages []string) Prober {
	var only map[string]bool
	if len(packages) > 0 {
		only = make(map[string]bool, len(packages))
		for _, p := range packages {
			only[p] = true
		}
	}
	return &prober{
		runner:      runner,
		interpreter: interpreter,
		only:        only,
	}
}

// Probe implements the Prober interface.
func (p *prober) Probe(ctx context.Context) ([]PackageReport, []string) {
	var reports []PackageReport
	var warnings []string

	for _, spec := range knownPackages {
		if p.only != nil && !p.only[spec.name] {
			continue
		}

		if err := p.checkImport(ctx, spec); err != nil {
			if spec.warnIfMissing {
				warning := fmt.Sprintf("%s not available: %v", spec.name, err)
				warnings = append(warnings, warning)
				logging.C(ctx).Warn("Canonical bindings are missing",
					zap.String("package", spec.name),
					zap.Error(err),
				)
			} else {
				logging.C(ctx).Debug("Package not installed, skipping",
					zap.String("package", spec.name),
				)
			}
			continue
		}

		reports = append(reports, PackageReport{
			Package:  spec.name,
			Versions: p.collectVersions(ctx, spec),
		})
	}

	return reports, warnings
}

// checkImport verifies the package's modules can be imported at all.
func (p *prober) checkImport(ctx context.Context, spec packageSpec) error {
	_, err := p.runner.Run(ctx, command.RunParams{
		Name: p.interpreter,
		Args: []string{"-c", importStatement(spec)},
	})
	return err
}

// collectVersions gathers the per-library versions for one installed package.
func (p *prober) collectVersions(ctx context.Context, spec packageSpec) map[align.Library]align.Version {
	versions := make(map[align.Library]align.Version)

	for library, upstream := range spec.mediated {
		versions[library] = align.Mediated(upstream)
	}

	if spec.showVersions {
		for library, value := range p.scrapeShowVersions(ctx, spec) {
			versions[library] = align.Version{Value: value}
		}
		return versions
	}

	for _, chain := range spec.accessors {
		if value, ok := p.evalChain(ctx, spec, chain); ok {
			versions[chain.library] = align.Version{Value: value}
		}
	}

	return versions
}

// evalChain tries each candidate accessor in order. Accessor drift across
// releases means a failing candidate is expected; only the chain exhausting
// without a value marks the field absent.
func (p *prober) evalChain(ctx context.Context, spec packageSpec, chain accessorChain) (string, bool) {
	for _, expr := range chain.exprs {
		out, err := p.runner.Run(ctx, command.RunParams{
			Name: p.interpreter,
			Args: []string{"-c", fmt.Sprintf("%s; print(%s)", importStatement(spec), expr)},
		})
		if err != nil {
			logging.C(ctx).Debug("Version accessor failed, trying next",
				zap.String("package", spec.name),
				zap.String("library", string(chain.library)),
				zap.String("accessor", expr),
				zap.Error(err),
			)
			continue
		}
		if out != "" {
			return out, true
		}
	}
	return "", false
}

// scrapeShowVersions captures the package's printed diagnostic report and
// scrapes library versions out of it.
func (p *prober) scrapeShowVersions(ctx context.Context, spec packageSpec) map[align.Library]string {
	out, err := p.runner.Run(ctx, command.RunParams{
		Name: p.interpreter,
		Args: []string{"-c", fmt.Sprintf("%s; %s.show_versions()", importStatement(spec), spec.imports[0])},
	})
	if err != nil {
		logging.C(ctx).Debug("show_versions failed",
			zap.String("package", spec.name),
			zap.Error(err),
		)
		return nil
	}
	return ParseShowVersions(out)
}

func importStatement(spec packageSpec) string {
	return "import " + strings.Join(spec.imports, ", ")
}
