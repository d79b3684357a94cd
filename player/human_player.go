package player

import (
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/ui"
)

type humanPlayer struct {
	basicPlayer
}

func NewHumanPlayer(name string) game.Player {
	return humanPlayer{basicPlayer: basicPlayer{name: name}}
}

// A human challenges only through the move's challenge-intent flag, which
// the prompt flow never sets.
func (p humanPlayer) AlwaysChallenges() bool {
	return false
}

func (p humanPlayer) ChooseMove(gameState game.State) game.Move {
	ui.Message.HumanPlayerTurnStarted(p.name)
	ui.Println(gameState)
	if gameState.PendingDraw > 0 {
		ui.Message.PendingDrawNotice(gameState.PendingDraw)
	}

	choice := ui.PromptCardNumber(gameState.Hand)
	if choice == 0 {
		return game.DrawMove()
	}

	chosenCard := gameState.Hand[choice-1]
	if !game.Matches(chosenCard, gameState.TopCard, gameState.ActiveColor) {
		ui.Message.IllegalPlay()
		return game.InvalidMove()
	}
	chosenColor := gameState.ActiveColor
	if chosenCard.Rank.IsWild() {
		chosenColor = ui.PromptColor()
	}
	if gameState.PendingDraw > 0 && !game.CanStack(chosenCard) {
		ui.Message.MustStackOrDraw()
		return game.InvalidMove()
	}
	return game.PlayMove(chosenCard, chosenColor, false)
}
