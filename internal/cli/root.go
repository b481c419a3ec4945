package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour-go/internal/console"
	"github.com/mcoot/connectfour-go/internal/factory"
)

// EnvFile is read at startup when present
const EnvFile = ".env"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	if err := loadEnvFile(EnvFile); err != nil {
		// Fall back to the process environment
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
	}
	return newRootCmd(DefaultConfig())
}

func newRootCmd(cfg *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "connectfour",
		Short: "Play Connect Four in the terminal",
		Long: `connectfour is a console Connect Four game.

Two players take turns dropping X and O into a 6x7 grid; the first to line up
four in a row, column or diagonal wins. Player 2 may be a computer that picks
a random legal column.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			factoryCfg, err := cfg.FactoryConfig()
			if err != nil {
				return err
			}
			factoryCfg.Logger = logger

			app, err := factory.New(factoryCfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := app.Close(); err != nil {
					logger.Warn("failed to close storage", slog.String("error", err.Error()))
				}
			}()

			term := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
			return NewSession(app, term, cfg, logger).Run(cmd.Context())
		},
		SilenceUsage: true,
	}

	// Setup flags
	rootCmd.Flags().StringVar(&cfg.Player1, "player1", cfg.Player1, "Player 1 name (skips the prompt)")
	rootCmd.Flags().StringVar(&cfg.Player2, "player2", cfg.Player2, "Player 2 name in two-player mode (skips the prompt)")
	rootCmd.Flags().StringVar(&cfg.Mode, "mode", cfg.Mode, "Game mode: 1 (two players) or 2 (player vs. computer)")

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.BotStrategy, "bot-strategy", cfg.BotStrategy, "Computer strategy: random, rejection (env: CONNECTFOUR_BOT_STRATEGY)")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Game state storage: memory, redis (env: CONNECTFOUR_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL when storage is redis (env: CONNECTFOUR_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.Seed, "seed", cfg.Seed, "Seed for reproducible computer moves (env: CONNECTFOUR_SEED)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: CONNECTFOUR_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output (debug logs)")

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
