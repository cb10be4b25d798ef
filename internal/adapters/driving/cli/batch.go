package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vocalise-labs/vocalise-cli/internal/watcher"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Normalize files in place",
	Long: `Normalize one or more text files. Each input file produces a
sibling output file with a ".spoken.txt" suffix.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchService == nil {
		return errors.New("batch service not configured")
	}

	ctx := context.Background()
	failed := 0
	for _, path := range args {
		doc, err := batchService.ProcessFile(ctx, path)
		if err != nil {
			cmd.PrintErrf("Error: %s: %v\n", path, err)
			failed++
			continue
		}

		out := watcher.OutputPath(path)
		if err := os.WriteFile(out, []byte(doc.Output), 0600); err != nil {
			cmd.PrintErrf("Error: writing %s: %v\n", out, err)
			failed++
			continue
		}
		cmd.Printf("%s -> %s\n", path, out)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
