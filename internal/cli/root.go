package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/jewelmatch/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "jewelmatch",
		Short: "Match-3 board simulator",
		Long: `jewelmatch generates match-3 boards without starting matches, ranks every
possible swap by the score it would produce including cascades, and plays
the best moves step by step.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			palette, err := cfg.ParsePalette()
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			app, err = factory.New(factory.Config{
				Seed:    cfg.Seed,
				Workers: cfg.Workers,
				Palette: palette,
				Logger:  logger,
			})
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().IntVar(&cfg.Width, "width", cfg.Width, "Board width")
	rootCmd.PersistentFlags().IntVar(&cfg.Height, "height", cfg.Height, "Board height")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for unseeded (env: JEWELMATCH_SEED)")
	rootCmd.PersistentFlags().IntVar(&cfg.Workers, "workers", cfg.Workers, "Moves evaluated in parallel (env: JEWELMATCH_WORKERS)")
	rootCmd.PersistentFlags().StringVar(&cfg.Palette, "palette", cfg.Palette, "Jewel codes to generate from, e.g. ROYGB (env: JEWELMATCH_PALETTE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: JEWELMATCH_OUTPUT)")
	rootCmd.PersistentFlags().BoolVar(&cfg.Color, "color", cfg.Color, "Color jewels when writing to a terminal")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newRankCmd())
	rootCmd.AddCommand(newBestCmd())
	rootCmd.AddCommand(newPlayCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
