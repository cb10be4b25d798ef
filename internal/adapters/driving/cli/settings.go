package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure normalization settings: the date field-order
policy, output casing and the collaborator passes.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsDatePolicyCmd = &cobra.Command{
	Use:   "date-policy [uk|us]",
	Short: "Set the date field-order policy",
	Long: `Set how ambiguous date literals are read:
  uk - day/month/year (10/12/2010 is the tenth of December)
  us - month/day/year (10/12/2010 is the twelfth of October)`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsDatePolicy,
}

var settingsPassCmd = &cobra.Command{
	Use:   "pass [name] [on|off]",
	Short: "Toggle a collaborator pass",
	Long: `Enable or disable one of the collaborator passes:
  contractions - expand contractions before the engine (default on)
  punctuation  - strip punctuation after the engine (default off)
  spelling     - correct common misspellings (default off)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsPass,
}

var settingsLowercaseCmd = &cobra.Command{
	Use:   "lowercase [on|off]",
	Short: "Toggle lower-casing of the output",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsLowercase,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsDatePolicyCmd)
	settingsCmd.AddCommand(settingsPassCmd)
	settingsCmd.AddCommand(settingsLowercaseCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Normalize]")
	cmd.Printf("  Date policy: %s\n", settings.Normalize.DatePolicy.Description())
	cmd.Printf("  Lowercase output: %s\n", onOff(settings.Normalize.Lowercase))
	cmd.Println()

	cmd.Println("[Passes]")
	cmd.Printf("  Contractions: %s\n", onOff(settings.Passes.Contractions))
	cmd.Printf("  Punctuation: %s\n", onOff(settings.Passes.Punctuation))
	cmd.Printf("  Spelling: %s\n", onOff(settings.Passes.Spelling))
	cmd.Println()

	cmd.Println("[Lexicon]")
	cmd.Printf("  Enabled: %s\n", onOff(settings.Lexicon.Enabled))
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsDatePolicy(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	policy := domain.DatePolicy(strings.ToLower(args[0]))
	if err := settingsService.SetDatePolicy(policy); err != nil {
		return fmt.Errorf("failed to set date policy: %w", err)
	}

	cmd.Printf("Date policy set to: %s\n", policy.Description())
	return nil
}

func runSettingsPass(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	enabled, err := parseOnOff(args[1])
	if err != nil {
		return err
	}

	if err := settingsService.SetPass(args[0], enabled); err != nil {
		return fmt.Errorf("failed to set pass: %w", err)
	}

	cmd.Printf("Pass %s: %s\n", args[0], onOff(enabled))
	return nil
}

func runSettingsLowercase(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	enabled, err := parseOnOff(args[0])
	if err != nil {
		return err
	}

	if err := settingsService.SetLowercase(enabled); err != nil {
		return fmt.Errorf("failed to set lowercase: %w", err)
	}

	cmd.Printf("Lowercase output: %s\n", onOff(enabled))
	return nil
}

// Helper functions.

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func parseOnOff(input string) (bool, error) {
	switch strings.ToLower(input) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value %q (want on or off)", input)
	}
}
