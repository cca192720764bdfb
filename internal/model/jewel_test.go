package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type JewelSuite struct {
	suite.Suite
}

func TestJewelSuite(t *testing.T) {
	suite.Run(t, new(JewelSuite))
}

func (s *JewelSuite) TestCodesRoundTrip() {
	for _, kind := range append(DefaultPalette(), Empty) {
		parsed, ok := JewelKindFromCode(kind.Code())
		s.True(ok, kind.String())
		s.Equal(kind, parsed)
	}

	kind, ok := JewelKindFromCode('v')
	s.True(ok)
	s.Equal(Violet, kind)

	_, ok = JewelKindFromCode('X')
	s.False(ok)
}

func (s *JewelSuite) TestPaletteValidate() {
	s.NoError(DefaultPalette().Validate())
	s.NoError(Palette{Red, Green, Blue}.Validate())
	s.ErrorIs(Palette{Red, Empty}.Validate(), ErrInvalidPalette)
	s.ErrorIs(Palette{Red, Red}.Validate(), ErrInvalidPalette)
	s.ErrorIs(Palette{JewelKind(42)}.Validate(), ErrInvalidPalette)
}

func (s *JewelSuite) TestGameCloneCopiesBoard() {
	board, _ := ParseBoard([]string{"RGB"})
	game := &Game{ID: "g", Board: board, State: GameStatePlaying}
	clone := game.Clone()

	clone.Board.Set(0, 0, Empty)
	clone.State = GameStateFinished
	s.Equal(Red, game.Board.Get(0, 0))
	s.False(game.IsFinished())
	s.True(clone.IsFinished())
}

func (s *JewelSuite) TestTurnChains() {
	turn := &Turn{Steps: []Step{{Kind: StepSwap}, {Kind: StepCascade}, {Kind: StepCascade}, {Kind: StepFinal}}}
	s.Equal(2, turn.Chains())
}

func (s *JewelSuite) TestBotStrategyNames() {
	s.Equal([]BotStrategy{BotStrategyGreedy, BotStrategyRandom}, ValidBotStrategies())

	strategy, err := ParseBotStrategy("Random")
	s.Require().NoError(err)
	s.Equal(BotStrategyRandom, strategy)

	_, err = ParseBotStrategy("minimax")
	s.ErrorIs(err, ErrUnknownStrategy)
}
