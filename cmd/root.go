package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/YashRawat0947/SIH-2025/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "inductplan",
	Short: "Train induction planning engine",
	Long:  "Recommends which metro trains to induct into service using an ML propensity model and a constrained optimizer.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configured file, falling back to defaults when the
// default path does not exist.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) && !rootCmd.PersistentFlags().Changed("config") {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}
