package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
)

// normalizeDatePolicy is the --date-policy flag value.
var normalizeDatePolicy string

var normalizeCmd = &cobra.Command{
	Use:   "normalize [text]",
	Short: "Normalize text to its spoken form",
	Long: `Rewrite numerals, clock times, calendar dates and arithmetic
expressions in the given text as spoken words. With no argument, text is
read from stdin (piped input or interactive until EOF).

Examples:
  vocalise normalize "I have 13 apples"
  echo "born 10/12/2010" | vocalise normalize
  vocalise normalize --date-policy us "10/12/2010"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeDatePolicy, "date-policy", "",
		"field order for ambiguous dates: uk (day/month/year) or us (month/day/year)")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	svc := textService
	if svc == nil {
		return errors.New("text service not configured")
	}

	// A policy flag overrides the persisted setting for this run only.
	if normalizeDatePolicy != "" {
		policy := domain.DatePolicy(strings.ToLower(normalizeDatePolicy))
		if !policy.IsValid() {
			return fmt.Errorf("invalid date policy %q (want uk or us)", normalizeDatePolicy)
		}
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		settings.Normalize.DatePolicy = policy
		svc = newTextService(settings)
	}

	text, err := inputText(args)
	if err != nil {
		return err
	}

	out, err := svc.Process(context.Background(), text)
	if err != nil {
		return fmt.Errorf("normalizing: %w", err)
	}

	cmd.Println(out)
	return nil
}

// inputText returns the argument text, or reads stdin when no argument
// was given.
func inputText(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Reading from stdin, end with Ctrl-D...")
	}

	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
