// Package cmd wires the batch commands: monitor runs the time-budget model,
// returns runs the distance-band model. All fatal errors propagate through
// RunE so a failed run exits non-zero without a partial report.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamburgroadsurfer-create/LRP/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "lrp",
	Short:        "Fleet return feasibility reports",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
