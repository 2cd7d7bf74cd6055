// Package cmd provides the command-line interface of torusnet.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "torusnet",
	Short: "Build and inspect unidirectional k-ary n-cube networks.",
	Long: `torusnet builds unidirectional torus networks with credit ` +
		`channels and lists the routing functions they support. Networks ` +
		`can be recorded into SQLite and served for monitoring.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
