package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/jewelmatch/internal/model"
)

func newPlayCmd() *cobra.Command {
	var (
		boardFlag string
		turns     int
		strategy  string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Let a bot play moves and show every cascade",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if turns < 1 {
				return fmt.Errorf("turns must be at least 1, got %d", turns)
			}
			name, err := model.ParseBotStrategy(strategy)
			if err != nil {
				return err
			}
			player := app.Strategies[name]
			ctx := cmd.Context()
			controller := app.GameController

			var game *model.Game
			if boardFlag == "" {
				game, err = controller.NewGame(ctx, cfg.Width, cfg.Height)
			} else {
				var board *model.Board
				board, err = parseBoardFlag(boardFlag)
				if err != nil {
					return err
				}
				game, err = controller.StartGame(ctx, board)
			}
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cfg.Color)
			for i := 0; i < turns; i++ {
				turn, err := controller.PlayBot(ctx, game.ID, player)
				if errors.Is(err, model.ErrNoValidMoves) {
					out.PrintMessage("No valid moves could be found")
					break
				}
				if err != nil {
					return err
				}
				out.PrintTurn(turn)
			}

			game, err = controller.GetGame(ctx, game.ID)
			if err != nil {
				return err
			}
			out.PrintGame(game)
			return nil
		},
	}

	cmd.Flags().StringVar(&boardFlag, "board", "", "Board rows top first, comma-separated, e.g. RGB,GBR (default: generated)")
	cmd.Flags().IntVar(&turns, "turns", 1, "Maximum number of moves to play")
	cmd.Flags().StringVar(&strategy, "strategy", string(model.BotStrategyGreedy), "Bot strategy: greedy or random")
	return cmd
}
