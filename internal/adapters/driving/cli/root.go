// Package cli implements the cobra command tree for the vocalise CLI.
// Commands talk to the core through the driving ports; the concrete
// adapters are wired once in Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vocalise-labs/vocalise-cli/internal/adapters/driven/config/file"
	"github.com/vocalise-labs/vocalise-cli/internal/adapters/driven/storage/sqlite"
	"github.com/vocalise-labs/vocalise-cli/internal/core/domain"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driven"
	"github.com/vocalise-labs/vocalise-cli/internal/core/ports/driving"
	"github.com/vocalise-labs/vocalise-cli/internal/core/services"
	"github.com/vocalise-labs/vocalise-cli/internal/logger"
	"github.com/vocalise-labs/vocalise-cli/internal/passes/contractions"
	"github.com/vocalise-labs/vocalise-cli/internal/passes/lexicon"
	"github.com/vocalise-labs/vocalise-cli/internal/passes/punctuation"
	"github.com/vocalise-labs/vocalise-cli/internal/passes/spelling"
	"github.com/vocalise-labs/vocalise-cli/internal/rewriters/arithmetic"
	"github.com/vocalise-labs/vocalise-cli/internal/rewriters/clock"
	"github.com/vocalise-labs/vocalise-cli/internal/rewriters/date"
	"github.com/vocalise-labs/vocalise-cli/internal/rewriters/number"
	"github.com/vocalise-labs/vocalise-cli/internal/scanner"
)

// version is set at build time via -ldflags.
var version = "dev"

// verbose enables debug logging on stderr.
var verbose bool

// Services used by the commands. Wired in Execute; left nil in tests so
// commands fail with a clear error instead of touching the filesystem.
var (
	textService     driving.TextService
	batchService    driving.BatchService
	settingsService driving.SettingsService
	lexiconService  driving.LexiconService
	lexiconStore    driven.LexiconStore
)

var rootCmd = &cobra.Command{
	Use:   "vocalise",
	Short: "Rewrite numerals, times and dates as spoken words",
	Long: `Vocalise prepares text for speech synthesis by rewriting lexical
constructs that are written one way and spoken another: cardinal and
ordinal numerals, decimal fractions, clock times, calendar dates and
arithmetic expressions.

Anything the engine cannot rewrite with confidence passes through
unchanged, so the output is always usable.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the default adapters and runs the root command.
func Execute() {
	if err := initServices(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeStores()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initServices builds the service graph from the persisted settings.
func initServices() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsService = services.NewSettingsService(configStore)

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening lexicon store: %w", err)
	}
	lexiconStore = store
	lexiconService = services.NewLexiconService(store)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	textService = newTextService(settings)
	batchService = services.NewBatchService(textService)
	return nil
}

// newTextService assembles the pass chain for the given settings.
func newTextService(settings domain.Settings) driving.TextService {
	engine := services.NewNormalizeService(
		scanner.New(),
		arithmetic.New(),
		number.New(),
		clock.New(),
		date.New(date.WithPolicy(settings.Normalize.DatePolicy)),
	)

	var opts []services.TextOption
	if settings.Passes.Contractions {
		opts = append(opts, services.WithPrePass(contractions.New()))
	}
	if settings.Lexicon.Enabled && lexiconStore != nil {
		opts = append(opts, services.WithPrePass(lexicon.New(lexiconStore)))
	}
	if settings.Passes.Spelling {
		opts = append(opts, services.WithPostPass(spelling.New()))
	}
	if settings.Passes.Punctuation {
		opts = append(opts, services.WithPostPass(punctuation.New()))
	}
	opts = append(opts, services.WithLowercase(settings.Normalize.Lowercase))

	return services.NewTextService(engine, opts...)
}

func closeStores() {
	if lexiconStore != nil {
		if err := lexiconStore.Close(); err != nil {
			logger.Warn("Closing lexicon store: %v", err)
		}
	}
}
