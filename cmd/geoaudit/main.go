package main

import (
	"context"
	"os"

	"github.com/lerenn/geoaudit/pkg/auditor"
	"github.com/lerenn/geoaudit/pkg/config"
	"github.com/lerenn/geoaudit/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath   string
	strictSemver bool
)

func main() {
	logging.Init()

	var rootCmd = &cobra.Command{
		Use:   "geoaudit",
		Short: "Geoaudit checks that Python geospatial packages link against the same native library versions",
		Run: func(_ *cobra.Command, _ []string) {
			cfg, err := config.Load(configPath)
			if err != nil {
				logging.L().Fatal("Failed to load config", zap.Error(err))
			}
			if strictSemver {
				cfg.StrictSemver = true
			}

			a := auditor.New(cfg)
			if !a.RunAndRender(context.Background(), os.Stdout) {
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file (defaults compiled in)")
	rootCmd.PersistentFlags().BoolVar(&strictSemver, "strict-semver", false, "Compare versions structurally instead of textually")

	if err := rootCmd.Execute(); err != nil {
		logging.L().Error("Command execution failed", zap.Error(err))
		os.Exit(1)
	}
}
