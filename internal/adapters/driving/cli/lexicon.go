package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Manage the replacement lexicon",
	Long: `Manage user-defined replacements applied before the engine runs.
Each entry maps a written form to the words it should be spoken as.`,
	RunE: runLexiconList,
}

var lexiconAddCmd = &cobra.Command{
	Use:   "add [written] [spoken]",
	Short: "Add or update a replacement",
	Long: `Add a replacement entry. The written form matches whole tokens
case-insensitively.

Example:
  vocalise lexicon add "km/h" "kilometres per hour"`,
	Args: cobra.ExactArgs(2),
	RunE: runLexiconAdd,
}

var lexiconRemoveCmd = &cobra.Command{
	Use:   "remove [written]",
	Short: "Remove a replacement",
	Args:  cobra.ExactArgs(1),
	RunE:  runLexiconRemove,
}

var lexiconListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all replacements",
	RunE:  runLexiconList,
}

func init() {
	lexiconCmd.AddCommand(lexiconAddCmd)
	lexiconCmd.AddCommand(lexiconRemoveCmd)
	lexiconCmd.AddCommand(lexiconListCmd)
	rootCmd.AddCommand(lexiconCmd)
}

func runLexiconAdd(cmd *cobra.Command, args []string) error {
	if lexiconService == nil {
		return errors.New("lexicon service not configured")
	}

	if err := lexiconService.Add(context.Background(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to add entry: %w", err)
	}

	cmd.Printf("Added: %q -> %q\n", args[0], args[1])
	return nil
}

func runLexiconRemove(cmd *cobra.Command, args []string) error {
	if lexiconService == nil {
		return errors.New("lexicon service not configured")
	}

	if err := lexiconService.Remove(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to remove entry: %w", err)
	}

	cmd.Printf("Removed: %q\n", args[0])
	return nil
}

func runLexiconList(cmd *cobra.Command, _ []string) error {
	if lexiconService == nil {
		return errors.New("lexicon service not configured")
	}

	entries, err := lexiconService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("Lexicon is empty.")
		return nil
	}

	cmd.Printf("Lexicon (%d entries):\n\n", len(entries))
	for _, entry := range entries {
		cmd.Printf("  %s -> %s\n", entry.Written, entry.Spoken)
	}
	return nil
}
