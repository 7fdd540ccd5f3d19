package config

import (
	"time"

	"github.com/spf13/viper"
)

// ProbeCommand describes an external version-query command for one native library.
type ProbeCommand struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// SystemProbes holds the ground-truth version-query commands, one per native library.
type SystemProbes struct {
	GDAL ProbeCommand `mapstructure:"gdal"`
	PROJ ProbeCommand `mapstructure:"proj"`
	GEOS ProbeCommand `mapstructure:"geos"`
}

// Config is the full auditor configuration.
type Config struct {
	// Interpreter is the Python executable used to introspect packages.
	Interpreter string `mapstructure:"interpreter"`
	// ProbeTimeout bounds every external command invocation.
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`
	// StrictSemver switches the alignment comparison from textual
	// normalization to structural semver comparison.
	StrictSemver bool         `mapstructure:"strict_semver"`
	SystemProbes SystemProbes `mapstructure:"system_probes"`
	// Packages restricts which Python packages are probed. Empty means all
	// known packages.
	Packages []string `mapstructure:"packages"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("interpreter", "python3")
	v.SetDefault("probe_timeout", "10s")
	v.SetDefault("strict_semver", false)
	v.SetDefault("system_probes.gdal.command", "gdal-config")
	v.SetDefault("system_probes.gdal.args", []string{"--version"})
	v.SetDefault("system_probes.proj.command", "pkg-config")
	v.SetDefault("system_probes.proj.args", []string{"--modversion", "proj"})
	v.SetDefault("system_probes.geos.command", "geos-config")
	v.SetDefault("system_probes.geos.args", []string{"--version"})
}

// Load reads the configuration from the given path. An empty path yields the
// compiled-in defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
