package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"structcall/internal/config"
)

var (
	// Global flags
	configPath string
	provider   string
	timeout    time.Duration
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "structcall",
	Short: "structcall - schema-conformant JSON from subscription LLM CLIs",
	Long: `structcall drives externally installed LLM command-line tools
(claude, gemini, codex) to produce JSON conforming to a caller-supplied
schema, and reliably recovers the structured value from their raw output.

It uses the tools' subscription auth: no API keys, no network code of its own.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		// Flags win over file and environment.
		if provider != "" {
			cfg.Provider = provider
		}
		if timeout > 0 {
			cfg.TimeoutSeconds = int(timeout.Seconds())
		}

		zcfg := zap.NewProductionConfig()
		if verbose || cfg.Logging.Verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to structcall.yaml")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "provider identifier (anthropic, google, openai, or a model name)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-invocation timeout (default 300s)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(doctorCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
