// Package cli implements the talknetcfg command line tool: writing the
// canonical configuration, validating and inspecting documents, and
// converting them for consumers that do not read YAML.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "talknetcfg",
	Short: "Manage TalkNet training configuration documents",
	Long: `talknetcfg manages the TalkNet mel-spectrogram predictor's training
configuration: the data layers, the audio-to-mel preprocessor, the
convolutional encoder topology, and the loss settings.

The tool ships the canonical hyperparameter set and checks edited documents
against the schema, including the cross-section invariants (shared sample
rate, shared label vocabulary, matching mel dimensions).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion overrides the version string injected at build time.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	cobra.OnInitialize(func() {
		initLogger(verbose)
	})
}

// initLogger configures the process-wide structured logger. Diagnostics go
// to stderr so command output on stdout stays machine-readable.
func initLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: verbose,
	})
	slog.SetDefault(slog.New(handler))
}
