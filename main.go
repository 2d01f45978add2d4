package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"portfoliohud/config"
	"portfoliohud/content"
	"portfoliohud/logger"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfoliohud",
		Short:         "Animated HUD portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (HUD_* env vars override it)")

	root.AddCommand(newRunCmd(), newSnapshotCmd(), newContentCmd())
	return root
}

// setup loads config, opens the logger and parses the catalog.
func setup() (config.Config, *logger.Logger, *content.Catalog, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	lvl, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	log, err := logger.Open(lvl, cfg.Log.File)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	cat, err := content.Load()
	if err != nil {
		log.Close()
		return config.Config{}, nil, nil, fmt.Errorf("load content: %w", err)
	}
	return cfg, log, cat, nil
}
