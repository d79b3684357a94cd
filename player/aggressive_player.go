package player

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
)

type aggressivePlayer struct {
	basicPlayer
}

func NewAggressivePlayer(name string) game.Player {
	return aggressivePlayer{basicPlayer: basicPlayer{name: name}}
}

func (p aggressivePlayer) ChooseMove(gameState game.State) game.Move {
	// Stack if pending.
	if gameState.PendingDraw > 0 {
		stackCard, ok := firstStackCard(gameState.Hand)
		if !ok {
			return game.DrawMove()
		}
		chosenColor := gameState.ActiveColor
		if stackCard.Rank.IsWild() {
			chosenColor = game.MostHeldColor(gameState.Hand)
		}
		return game.PlayMove(stackCard, chosenColor, true)
	}

	// Action cards first. The first plain match is remembered as a
	// fallback; an illegal wild draw four can become that fallback and is
	// then played without the challenge-intent flag.
	var fallbackCard card.Card
	var hasFallback bool
	for _, held := range gameState.Hand {
		if !game.Matches(held, gameState.TopCard, gameState.ActiveColor) {
			continue
		}
		if held.Rank == card.WildDrawFour {
			if !hasColorCard(gameState.Hand, gameState.ActiveColor) {
				return game.PlayMove(held, game.MostHeldColor(gameState.Hand), true)
			}
			if !hasFallback {
				fallbackCard, hasFallback = held, true
			}
			continue
		}
		if held.Rank.IsAction() {
			return game.PlayMove(held, gameState.ActiveColor, false)
		}
		if !hasFallback {
			fallbackCard, hasFallback = held, true
		}
	}

	if hasFallback {
		chosenColor := gameState.ActiveColor
		if fallbackCard.Rank.IsWild() {
			chosenColor = game.MostHeldColor(gameState.Hand)
		}
		return game.PlayMove(fallbackCard, chosenColor, false)
	}

	return game.DrawMove()
}

func firstStackCard(hand []card.Card) (card.Card, bool) {
	for _, held := range hand {
		if game.CanStack(held) {
			return held, true
		}
	}
	return card.Card{}, false
}

func hasColorCard(hand []card.Card, activeColor color.Color) bool {
	for _, held := range hand {
		if !held.Rank.IsWild() && held.Color == activeColor {
			return true
		}
	}
	return false
}
