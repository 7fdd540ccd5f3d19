//go:build unit
// +build unit

package config

import (
	"os"
	"testing"
	"time"
)

const testYAML = `
interpreter: /opt/conda/bin/python
probe_timeout: 30s
strict_semver: true
system_probes:
  proj:
    command: projinfo
    args: ["--version"]
packages:
  - rasterio
  - pyproj
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := dir + "/geoaudit.yaml"
	if err := os.WriteFile(file, []byte(testYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Interpreter != "/opt/conda/bin/python" {
		t.Errorf("unexpected interpreter: %q", cfg.Interpreter)
	}
	if cfg.ProbeTimeout != 30*time.Second {
		t.Errorf("unexpected probe timeout: %v", cfg.ProbeTimeout)
	}
	if !cfg.StrictSemver {
		t.Error("expected strict_semver to be true")
	}
	if cfg.SystemProbes.PROJ.Command != "projinfo" {
		t.Errorf("unexpected PROJ command: %q", cfg.SystemProbes.PROJ.Command)
	}
	// Untouched probes keep their defaults.
	if cfg.SystemProbes.GDAL.Command != "gdal-config" {
		t.Errorf("unexpected GDAL command: %q", cfg.SystemProbes.GDAL.Command)
	}
	if len(cfg.Packages) != 2 {
		t.Errorf("expected 2 packages, got %d", len(cfg.Packages))
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Interpreter != "python3" {
		t.Errorf("unexpected default interpreter: %q", cfg.Interpreter)
	}
	if cfg.ProbeTimeout != 10*time.Second {
		t.Errorf("unexpected default probe timeout: %v", cfg.ProbeTimeout)
	}
	if cfg.StrictSemver {
		t.Error("strict_semver should default to false")
	}
	if cfg.SystemProbes.PROJ.Command != "pkg-config" {
		t.Errorf("unexpected default PROJ command: %q", cfg.SystemProbes.PROJ.Command)
	}
	if len(cfg.SystemProbes.PROJ.Args) != 2 || cfg.SystemProbes.PROJ.Args[1] != "proj" {
		t.Errorf("unexpected default PROJ args: %v", cfg.SystemProbes.PROJ.Args)
	}
	if len(cfg.Packages) != 0 {
		t.Errorf("expected no package restriction by default, got %v", cfg.Packages)
	}
}
