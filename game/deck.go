package game

import (
	"math/rand"
	"sync"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

type Deck struct {
	sync.Mutex
	rng      *rand.Rand
	cards    []card.Card
	discards []card.Card
}

func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]card.Card, 0, 108)

	cards = append(cards, createBlackCards()...)
	cards = append(cards, createColorCards(color.Red)...)
	cards = append(cards, createColorCards(color.Yellow)...)
	cards = append(cards, createColorCards(color.Green)...)
	cards = append(cards, createColorCards(color.Blue)...)

	shuffleCards(rng, cards)

	return &Deck{
		rng:      rng,
		cards:    cards,
		discards: make([]card.Card, 0, 108),
	}
}

// NewStackedDeck returns a deck with fixed pile contents, used to script exact deals.
func NewStackedDeck(drawPile, discardPile []card.Card) *Deck {
	deck := &Deck{rng: rand.New(rand.NewSource(1))}
	deck.cards = append(deck.cards, drawPile...)
	deck.discards = append(deck.discards, discardPile...)
	return deck
}

func (d *Deck) DrawOne() (card.Card, bool) {
	cards := d.Draw(1)
	if len(cards) == 0 {
		return card.Card{}, false
	}
	return cards[0], true
}

// Draw removes up to amount cards from the draw pile, recycling the discard
// pile beneath its top card whenever the draw pile runs dry. It returns fewer
// cards than requested only when both piles are exhausted.
func (d *Deck) Draw(amount int) []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	cards := make([]card.Card, 0, amount)
	for len(cards) < amount {
		if len(d.cards) == 0 {
			d.recycle()
		}
		if len(d.cards) == 0 {
			break
		}
		cards = append(cards, d.cards[0])
		d.cards = d.cards[1:]
	}
	return cards
}

func (d *Deck) Discard(discarded card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.discards = append(d.discards, discarded)
}

// StartDiscard flips cards onto the discard pile until a non-wild lands on
// top. Any wilds flipped on the way stay buried underneath it.
func (d *Deck) StartDiscard() card.Card {
	for {
		drawn, ok := d.DrawOne()
		if !ok {
			panic("uno: deck exhausted before a starting card was found")
		}
		d.Discard(drawn)
		if !drawn.Rank.IsWild() {
			return drawn
		}
	}
}

func (d *Deck) Top() card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if len(d.discards) == 0 {
		panic("uno: discard pile is empty")
	}
	return d.discards[len(d.discards)-1]
}

func (d *Deck) DrawPile() []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) DiscardPile() []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	cards := make([]card.Card, len(d.discards))
	copy(cards, d.discards)
	return cards
}

func (d *Deck) recycle() {
	if len(d.discards) <= 1 {
		return
	}
	top := d.discards[len(d.discards)-1]
	rest := d.discards[:len(d.discards)-1]
	shuffleCards(d.rng, rest)
	d.cards = append(d.cards, rest...)
	d.discards = []card.Card{top}
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{
		card.NewNumber(cardColor, 0),
		card.NewSkip(cardColor), card.NewSkip(cardColor),
		card.NewReverse(cardColor), card.NewReverse(cardColor),
		card.NewDrawTwo(cardColor), card.NewDrawTwo(cardColor),
	}

	for number := 1; number <= 9; number++ {
		cards = append(cards, card.NewNumber(cardColor, number), card.NewNumber(cardColor, number))
	}

	return cards
}

func createBlackCards() []card.Card {
	return []card.Card{
		card.NewWild(), card.NewWild(), card.NewWild(), card.NewWild(),
		card.NewWildDrawFour(), card.NewWildDrawFour(), card.NewWildDrawFour(), card.NewWildDrawFour(),
	}
}

func shuffleCards(rng *rand.Rand, cards []card.Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
