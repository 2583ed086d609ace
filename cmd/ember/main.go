package main

import (
	"os"

	"github.com/spf13/cobra"

	"ember/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ember",
	Short: "Ember language import toolchain",
	Long:  `Ember resolves and inspects the import declarations of ember source files`,
}

func main() {
	rootCmd.Version = version.Colored()

	rootCmd.AddCommand(importsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
