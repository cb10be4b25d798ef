package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vocalise-labs/vocalise-cli/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and normalize new files",
	Long: `Watch a directory for created or modified .txt files and write
the spoken form of each alongside it with a ".spoken.txt" suffix.
Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if batchService == nil {
		return errors.New("batch service not configured")
	}

	w := watcher.New(batchService)
	cmd.Printf("Watching %s (Ctrl-C to stop)\n", args[0])
	return w.Watch(cmd.Context(), args[0])
}
