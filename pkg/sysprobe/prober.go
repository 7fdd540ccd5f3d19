package sysprobe

import (
	"context"

	"github.com/lerenn/geoaudit/pkg/adapters/command"
	"github.com/lerenn/geoaudit/pkg/align"
	"github.com/lerenn/geoaudit/pkg/config"
	"github.com/lerenn/geoaudit/pkg/logging"
	"go.uber.org/zap"
)

// Versions holds the system-level ground-truth versions. An empty string
// means the probe command was unavailable or failed.
type Versions struct {
	GDAL string
	PROJ string
	GEOS string
}

// Get returns the ground-truth version for the given library.
func (v Versions) Get(library align.Library) string {
	switch library {
	case align.GDAL:
		return v.GDAL
	case align.PROJ:
		return v.PROJ
	case align.GEOS:
		return v.GEOS
	}
	return ""
}

// Prober collects the system-level library versions that serve as ground
// truth for the alignment check.
//
//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prober.go -destination=mock_prober.gen.go -package=sysprobe
type Prober interface {
	// Probe runs each configured version-query command. Failures are mapped
	// to absent versions, never returned as errors.
	Probe(ctx context.Context) Versions
}

// prober is the default implementation of Prober.
type prober struct {
	runner command.Runner
	probes config.SystemProbes
}

// NewProber creates a new Prober using the given runner and probe commands.
func NewProber(runner command.Runner, probes config.SystemProbes) Prober {
	return &prober{
		runner: runner,
		probes: probes,
	}
}

// Probe implements the Prober interface.
func (p *prober) Probe(ctx context.Context) Versions {
	return Versions{
		GDAL: p.query(ctx, align.GDAL, p.probes.GDAL),
		PROJ: p.query(ctx, align.PROJ, p.probes.PROJ),
		GEOS: p.query(ctx, align.GEOS, p.probes.GEOS),
	}
}

// query runs one version-query command and swallows any failure.
func (p *prober) query(ctx context.Context, library align.Library, probe config.ProbeCommand) string {
	out, err := p.runner.Run(ctx, command.RunParams{
		Name: probe.Command,
		Args: probe.Args,
	})
	if err != nil {
		logging.C(ctx).Debug("System version probe failed",
			zap.String("library", string(library)),
			zap.String("command", probe.Command),
			zap.Error(err),
		)
		return ""
	}
	return out
}
