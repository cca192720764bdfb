package model

import (
	"fmt"
	"strings"
)

// BotStrategy names how an automated player picks its moves
type BotStrategy string

const (
	BotStrategyGreedy BotStrategy = "greedy" // Best move each turn
	BotStrategyRandom BotStrategy = "random" // Any scoring move
)

// ValidBotStrategies returns every known strategy, default first
func ValidBotStrategies() []BotStrategy {
	return []BotStrategy{BotStrategyGreedy, BotStrategyRandom}
}

// ParseBotStrategy accepts a strategy name in any case
func ParseBotStrategy(s string) (BotStrategy, error) {
	for _, strategy := range ValidBotStrategies() {
		if strings.EqualFold(string(strategy), s) {
			return strategy, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}
