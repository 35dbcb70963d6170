package cli

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the legible version and its counting strategies",
	Long: `Prints the legible build version and the Go runtime it was built with,
followed by the counting strategies available to analyse, compare and bench.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("legible version %s (%s)\n", version, runtime.Version())
		if analysisService != nil {
			cmd.Printf("strategies: %s\n", strings.Join(analysisService.Strategies(), ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
