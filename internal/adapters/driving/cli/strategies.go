package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List counting strategies",
	RunE:  runStrategies,
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}

func runStrategies(cmd *cobra.Command, _ []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}

	current := ""
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			current = settings.Analysis.Strategy
		}
	}

	for _, name := range analysisService.Strategies() {
		if name == current {
			cmd.Printf("* %s (default)\n", name)
			continue
		}
		cmd.Printf("  %s\n", name)
	}
	return nil
}
