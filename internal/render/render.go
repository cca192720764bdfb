// Package render writes read-only text views of boards, moves and match groups.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/jewelmatch/internal/model"
)

var jewelColors = map[model.JewelKind]lipgloss.Color{
	model.Red:    lipgloss.Color("#E53935"),
	model.Orange: lipgloss.Color("#FB8C00"),
	model.Yellow: lipgloss.Color("#FDD835"),
	model.Green:  lipgloss.Color("#43A047"),
	model.Blue:   lipgloss.Color("#1E88E5"),
	model.Indigo: lipgloss.Color("#3949AB"),
	model.Violet: lipgloss.Color("#8E24AA"),
}

// Renderer writes boards to an io.Writer
type Renderer struct {
	out    io.Writer
	color  bool
	styles map[model.JewelKind]lipgloss.Style
}

// New creates a Renderer. With color off the output is plain ASCII.
func New(out io.Writer, color bool) *Renderer {
	r := &Renderer{
		out:    out,
		color:  color,
		styles: make(map[model.JewelKind]lipgloss.Style),
	}
	if color {
		lr := lipgloss.NewRenderer(out)
		for kind, c := range jewelColors {
			r.styles[kind] = lr.NewStyle().Foreground(c).Bold(true)
		}
	}
	return r
}

// Board prints the board top row first. Cells in a match group are
// bracketed, and cells touched by a move carry an arrow toward their partner.
func (r *Renderer) Board(board *model.Board, moves []model.Move, groups []model.MatchGroup) {
	matched := model.NewCellSet()
	for _, g := range groups {
		matched.Union(g.Cells)
	}
	arrows := moveArrows(moves)

	for y := board.Height() - 1; y >= 0; y-- {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%2d |", y)
		for x := 0; x < board.Width(); x++ {
			cell := model.Cell{X: x, Y: y}
			lhs, rhs := " ", " "
			if matched.Contains(cell) {
				lhs, rhs = "[", "]"
			}
			if a, ok := arrows[cell]; ok {
				lhs, rhs = a.lhs, a.rhs
			}
			sb.WriteString(lhs)
			sb.WriteString(r.jewel(board.At(cell), matched.Contains(cell)))
			sb.WriteString(rhs)
		}
		fmt.Fprintln(r.out, strings.TrimRight(sb.String(), " "))
	}

	var axis strings.Builder
	axis.WriteString("    ")
	for x := 0; x < board.Width(); x++ {
		fmt.Fprintf(&axis, "%3d", x%100)
	}
	fmt.Fprintln(r.out, strings.Repeat("-", len(axis.String())))
	fmt.Fprintln(r.out, axis.String())
}

func (r *Renderer) jewel(kind model.JewelKind, highlighted bool) string {
	code := string(kind.Code())
	style, ok := r.styles[kind]
	if !r.color || !ok {
		return code
	}
	if highlighted {
		style = style.Reverse(true)
	}
	return style.Render(code)
}

type arrow struct {
	lhs, rhs string
}

// moveArrows marks both cells of each move, pointing at the swap partner
func moveArrows(moves []model.Move) map[model.Cell]arrow {
	arrows := make(map[model.Cell]arrow)
	for _, m := range moves {
		arrows[m.Origin] = arrowToward(m.Direction)
		arrows[m.Target()] = arrowToward(m.Direction.Opposite())
	}
	return arrows
}

func arrowToward(dir model.Direction) arrow {
	switch dir {
	case model.Up:
		return arrow{"^", "^"}
	case model.Down:
		return arrow{"v", "v"}
	case model.Left:
		return arrow{"<", " "}
	default:
		return arrow{" ", ">"}
	}
}

// RankedMoves prints every bucket best-first
func (r *Renderer) RankedMoves(ranked model.RankedMoves) {
	if len(ranked) == 0 {
		fmt.Fprintln(r.out, "No valid moves could be found")
		return
	}
	for _, score := range ranked.Scores() {
		fmt.Fprintf(r.out, "Moves with a score of %d:\n", score)
		for _, m := range ranked[score] {
			fmt.Fprintf(r.out, "    Switching %s with %s\n", m.Origin, m.Direction)
		}
	}
}

// BestMoves prints the top bucket and highlights its moves on the board
func (r *Renderer) BestMoves(board *model.Board, ranked model.RankedMoves) {
	score, moves, ok := ranked.Best()
	if !ok {
		fmt.Fprintln(r.out, "No valid moves could be found")
		fmt.Fprintln(r.out)
		r.Board(board, nil, nil)
		return
	}
	fmt.Fprintf(r.out, "Best moves with a score of %d:\n", score)
	for _, m := range moves {
		fmt.Fprintf(r.out, "    Switching %s with %s\n", m.Origin, m.Direction)
	}
	r.Board(board, moves, nil)
}

// Turn replays each step of a played move
func (r *Renderer) Turn(turn *model.Turn) {
	fmt.Fprintf(r.out, "Move: switching %s with %s\n", turn.Move.Origin, turn.Move.Direction)
	for _, step := range turn.Steps {
		switch step.Kind {
		case model.StepSwap:
			fmt.Fprintf(r.out, "\nResults (%d):\n", step.Score)
		case model.StepCascade:
			fmt.Fprintf(r.out, "\nCascade chain: %d (%d)\n", step.Chain, step.Score)
		case model.StepFinal:
			fmt.Fprintln(r.out, "\nFinal state:")
		}
		r.Board(step.Board, nil, step.Groups)
	}
	fmt.Fprintf(r.out, "\nTurn score: %d\n", turn.Score)
}

// Game prints a game summary line
func (r *Renderer) Game(game *model.Game) {
	fmt.Fprintf(r.out, "Game %s: %s, score %d after %d moves\n", game.ID, game.State, game.Score, game.MoveCount)
}
