package player

import (
	"math/rand"

	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
)

type naivePlayer struct {
	basicPlayer
	rng *rand.Rand
}

func NewNaivePlayer(name string, rng *rand.Rand) game.Player {
	return naivePlayer{basicPlayer: basicPlayer{name: name}, rng: rng}
}

func (p naivePlayer) ChooseMove(gameState game.State) game.Move {
	for _, held := range gameState.Hand {
		if gameState.PendingDraw > 0 && !game.CanStack(held) {
			continue
		}
		if !game.Matches(held, gameState.TopCard, gameState.ActiveColor) {
			continue
		}
		chosenColor := gameState.ActiveColor
		if held.Rank.IsWild() {
			chosenColor = allColors[p.rng.Intn(len(allColors))]
		}
		return game.PlayMove(held, chosenColor, false)
	}
	return game.DrawMove()
}

var allColors = []color.Color{
	color.Red,
	color.Yellow,
	color.Blue,
	color.Green,
}
