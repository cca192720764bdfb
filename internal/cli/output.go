package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/jewelmatch/internal/model"
	"github.com/mcoot/jewelmatch/internal/render"
)

// Output handles formatting output based on the configured format
type Output struct {
	format   string
	out      io.Writer
	renderer *render.Renderer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out io.Writer, color bool) *Output {
	return &Output{
		format:   format,
		out:      out,
		renderer: render.New(out, color),
	}
}

func (o *Output) isJSON() bool {
	return o.format == "json"
}

// PrintBoard outputs a board
func (o *Output) PrintBoard(board *model.Board) {
	if o.isJSON() {
		o.printJSON(newBoardView(board))
		return
	}
	o.renderer.Board(board, nil, nil)
}

// PrintRanked outputs every ranked move for a board
func (o *Output) PrintRanked(board *model.Board, ranked model.RankedMoves) {
	if o.isJSON() {
		o.printJSON(newRankedView(board, ranked))
		return
	}
	o.renderer.RankedMoves(ranked)
	fmt.Fprintln(o.out)
	if _, moves, ok := ranked.Best(); ok {
		o.renderer.Board(board, moves, nil)
	} else {
		o.renderer.Board(board, nil, nil)
	}
}

// PrintBest outputs the best bucket highlighted on the board
func (o *Output) PrintBest(board *model.Board, ranked model.RankedMoves) {
	if o.isJSON() {
		score, moves, _ := ranked.Best()
		o.printJSON(BestView{
			Board: newBoardView(board),
			Score: score,
			Moves: newMoveViews(moves),
		})
		return
	}
	o.renderer.BestMoves(board, ranked)
}

// PrintTurn outputs every step of a played move
func (o *Output) PrintTurn(turn *model.Turn) {
	if o.isJSON() {
		o.printJSON(newTurnView(turn))
		return
	}
	o.renderer.Turn(turn)
}

// PrintGame outputs a game summary
func (o *Output) PrintGame(game *model.Game) {
	if o.isJSON() {
		o.printJSON(GameView{
			ID:    string(game.ID),
			State: string(game.State),
			Score: game.Score,
			Moves: game.MoveCount,
			Board: newBoardView(game.Board),
		})
		return
	}
	fmt.Fprintln(o.out)
	o.renderer.Game(game)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.isJSON() {
		o.printJSON(map[string]string{"message": msg})
		return
	}
	fmt.Fprintln(o.out, msg)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

// BoardView is the JSON form of a board, top row first
type BoardView struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

func newBoardView(board *model.Board) BoardView {
	view := BoardView{Width: board.Width(), Height: board.Height()}
	for _, row := range board.Rows() {
		codes := make([]rune, len(row))
		for i, kind := range row {
			codes[i] = kind.Code()
		}
		view.Rows = append(view.Rows, string(codes))
	}
	return view
}

// MoveView is the JSON form of a move
type MoveView struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction"`
}

func newMoveViews(moves []model.Move) []MoveView {
	views := make([]MoveView, 0, len(moves))
	for _, m := range moves {
		views = append(views, MoveView{X: m.Origin.X, Y: m.Origin.Y, Direction: m.Direction.String()})
	}
	return views
}

// BucketView lists the moves sharing a score
type BucketView struct {
	Score int        `json:"score"`
	Moves []MoveView `json:"moves"`
}

// RankedView is the JSON form of ranked moves, best bucket first
type RankedView struct {
	Board   BoardView    `json:"board"`
	Buckets []BucketView `json:"buckets"`
}

func newRankedView(board *model.Board, ranked model.RankedMoves) RankedView {
	view := RankedView{Board: newBoardView(board), Buckets: []BucketView{}}
	for _, score := range ranked.Scores() {
		view.Buckets = append(view.Buckets, BucketView{Score: score, Moves: newMoveViews(ranked[score])})
	}
	return view
}

// BestView is the JSON form of the best bucket
type BestView struct {
	Board BoardView  `json:"board"`
	Score int        `json:"score"`
	Moves []MoveView `json:"moves"`
}

// GroupView is the JSON form of a match group
type GroupView struct {
	Kind  string   `json:"kind"`
	Cells [][2]int `json:"cells"`
}

// StepView is the JSON form of one step of a turn
type StepView struct {
	Kind   string      `json:"kind"`
	Chain  int         `json:"chain"`
	Score  int         `json:"score"`
	Board  BoardView   `json:"board"`
	Groups []GroupView `json:"groups,omitempty"`
}

// TurnView is the JSON form of a played move
type TurnView struct {
	Move  MoveView   `json:"move"`
	Score int        `json:"score"`
	Steps []StepView `json:"steps"`
}

func newTurnView(turn *model.Turn) TurnView {
	view := TurnView{
		Move:  newMoveViews([]model.Move{turn.Move})[0],
		Score: turn.Score,
	}
	for _, step := range turn.Steps {
		sv := StepView{
			Kind:  string(step.Kind),
			Chain: step.Chain,
			Score: step.Score,
			Board: newBoardView(step.Board),
		}
		for _, g := range step.Groups {
			gv := GroupView{Kind: g.Kind.String()}
			for _, c := range g.Cells.Sorted() {
				gv.Cells = append(gv.Cells, [2]int{c.X, c.Y})
			}
			sv.Groups = append(sv.Groups, gv)
		}
		view.Steps = append(view.Steps, sv)
	}
	return view
}

// GameView is the JSON form of a game summary
type GameView struct {
	ID    string    `json:"id"`
	State string    `json:"state"`
	Score int       `json:"score"`
	Moves int       `json:"moves"`
	Board BoardView `json:"board"`
}
