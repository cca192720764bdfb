package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/jewelmatch/internal/model"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a board with no starting matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := app.Generator.Generate(cfg.Width, cfg.Height)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cfg.Color)
			out.PrintBoard(board)
			return nil
		},
	}
}

func newRankCmd() *cobra.Command {
	var boardFlag string

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank every move on a board by score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(boardFlag)
			if err != nil {
				return err
			}

			ranked, err := app.Ranker.RankMoves(cmd.Context(), board)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cfg.Color)
			out.PrintRanked(board, ranked)
			return nil
		},
	}

	cmd.Flags().StringVar(&boardFlag, "board", "", "Board rows top first, comma-separated, e.g. RGB,GBR (default: generated)")
	return cmd
}

func newBestCmd() *cobra.Command {
	var boardFlag string

	cmd := &cobra.Command{
		Use:   "best",
		Short: "Show the best-scoring moves on a board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(boardFlag)
			if err != nil {
				return err
			}

			ranked, err := app.Ranker.RankMoves(cmd.Context(), board)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cfg.Color)
			out.PrintBest(board, ranked)
			return nil
		},
	}

	cmd.Flags().StringVar(&boardFlag, "board", "", "Board rows top first, comma-separated, e.g. RGB,GBR (default: generated)")
	return cmd
}

// loadBoard parses the --board flag, or generates a board when it is empty
func loadBoard(value string) (*model.Board, error) {
	if value == "" {
		return app.Generator.Generate(cfg.Width, cfg.Height)
	}
	return parseBoardFlag(value)
}
