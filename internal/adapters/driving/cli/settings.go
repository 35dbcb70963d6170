package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/legible/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure analysis, benchmark and output defaults.

Settings are stored in config.toml under the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one setting",
	Long: `Set one setting by key. Lists take comma-separated values.

Run 'legible settings keys' for the available keys.`,
	Example: `  legible settings set analysis.strategy basic
  legible settings set benchmark.strategies basic,efficient
  legible settings set output.format json`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settable keys",
	RunE:  runSettingsKeys,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to choose the default strategy, output format and worker count.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, validationErr := settingsService.Get()
	if settings == nil {
		return fmt.Errorf("failed to get settings: %w", validationErr)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Analysis]")
	cmd.Printf("  Strategy: %s\n", settings.Analysis.Strategy)
	cmd.Printf("  Workers: %d\n", settings.Analysis.Workers)
	if settings.Analysis.MaxChars > 0 {
		cmd.Printf("  Max chars: %d\n", settings.Analysis.MaxChars)
	} else {
		cmd.Printf("  Max chars: (whole file)\n")
	}
	cmd.Println()

	cmd.Println("[Benchmark]")
	cmd.Printf("  Trials: %d\n", settings.Benchmark.Trials)
	cmd.Printf("  Start: %d\n", settings.Benchmark.Start)
	cmd.Printf("  Increment: %d\n", settings.Benchmark.Increment)
	cmd.Printf("  Steps: %d\n", settings.Benchmark.Steps)
	cmd.Printf("  Strategies: %s\n", strings.Join(settings.Benchmark.Strategies, ", "))
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format.Description())
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	if validationErr != nil {
		cmd.Printf("Warning: %v\n", validationErr)
		cmd.Println("Run 'legible settings wizard' or 'legible settings set' to fix it.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("%s set to: %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if settings == nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err != nil {
		// Start from defaults when the stored settings are broken
		defaults := settingsService.GetDefaults()
		settings = &defaults
	}

	cmd.Println("Legible Settings Wizard")
	cmd.Println("=======================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Strategy
	cmd.Println("Step 1: Select Counting Strategy")
	cmd.Println("--------------------------------")
	strategies := []string{domain.StrategyBasic, domain.StrategyEfficient}
	if analysisService != nil {
		strategies = analysisService.Strategies()
	}
	current := 1
	for i, name := range strategies {
		if name == settings.Analysis.Strategy {
			current = i + 1
		}
		cmd.Printf("  %d. %s\n", i+1, name)
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	settings.Analysis.Strategy = strategies[parseChoice(readLine(reader), len(strategies), current)-1]
	cmd.Println()

	// Step 2: Output format
	cmd.Println("Step 2: Select Output Format")
	cmd.Println("----------------------------")
	formats := domain.AllOutputFormats()
	current = 1
	for i, f := range formats {
		if f == settings.Output.Format {
			current = i + 1
		}
		cmd.Printf("  %d. %s\n", i+1, f.Description())
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	settings.Output.Format = formats[parseChoice(readLine(reader), len(formats), current)-1]
	cmd.Println()

	// Step 3: Workers
	cmd.Println("Step 3: Concurrent Files")
	cmd.Println("------------------------")
	cmd.Printf("Enter worker count [%d]: ", settings.Analysis.Workers)
	if n, err := strconv.Atoi(readLine(reader)); err == nil && n > 0 {
		settings.Analysis.Workers = n
	}
	cmd.Println()

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Settings saved.")
	cmd.Printf("  Strategy: %s\n", settings.Analysis.Strategy)
	cmd.Printf("  Format: %s\n", settings.Output.Format)
	cmd.Printf("  Workers: %d\n", settings.Analysis.Workers)
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
