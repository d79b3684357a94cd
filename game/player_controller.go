package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

type playerController struct {
	player Player
	hand   *Hand
}

func newPlayerController(player Player) *playerController {
	return &playerController{
		player: player,
		hand:   NewHand(),
	}
}

func (c *playerController) AddCards(cards []card.Card) {
	c.hand.AddCards(cards)
}

func (c *playerController) AlwaysChallenges() bool {
	return c.player.AlwaysChallenges()
}

func (c *playerController) ChooseMove(gameState State) Move {
	return c.player.ChooseMove(gameState)
}

// Draw moves up to amount cards from the deck into the hand and returns them.
func (c *playerController) Draw(deck *Deck, amount int) []card.Card {
	cards := deck.Draw(amount)
	c.hand.AddCards(cards)
	return cards
}

func (c *playerController) Hand() []card.Card {
	return c.hand.Cards()
}

func (c *playerController) HandSize() int {
	return c.hand.Size()
}

func (c *playerController) HasCard(searched card.Card) bool {
	return c.hand.Contains(searched)
}

func (c *playerController) HasColorCard(cardColor color.Color) bool {
	return c.hand.HasColorCard(cardColor)
}

func (c *playerController) HasPlayable(topCard card.Card, activeColor color.Color) bool {
	return c.hand.HasPlayable(topCard, activeColor)
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) NoCards() bool {
	return c.hand.Empty()
}

func (c *playerController) RemoveCard(removed card.Card) {
	c.hand.RemoveCard(removed)
}
