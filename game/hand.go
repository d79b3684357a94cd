package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Contains(searched card.Card) bool {
	for _, cardInHand := range h.cards {
		if cardInHand == searched {
			return true
		}
	}
	return false
}

func (h *Hand) CountColor(cardColor color.Color) int {
	count := 0
	for _, cardInHand := range h.cards {
		if cardInHand.Color == cardColor {
			count++
		}
	}
	return count
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// HasColorCard reports whether the hand holds a non-wild card of the given
// color. Wilds never count, they carry no color of their own.
func (h *Hand) HasColorCard(cardColor color.Color) bool {
	return cardColor != color.Wild && h.CountColor(cardColor) > 0
}

func (h *Hand) HasPlayable(topCard card.Card, activeColor color.Color) bool {
	for _, candidateCard := range h.cards {
		if Matches(candidateCard, topCard, activeColor) {
			return true
		}
	}
	return false
}

func (h *Hand) PlayableCards(topCard card.Card, activeColor color.Color) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Matches(candidateCard, topCard, activeColor) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

func (h *Hand) RemoveCard(removed card.Card) {
	for index, cardInHand := range h.cards {
		if cardInHand == removed {
			h.cards[index] = h.cards[len(h.cards)-1]
			h.cards = h.cards[:len(h.cards)-1]
			return
		}
	}
}

func (h *Hand) Size() int {
	return len(h.cards)
}
