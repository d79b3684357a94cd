package card

import (
	"fmt"
	"strconv"

	"github.com/ratel-online/uno/card/color"
)

// Rank identifies a card face. Its family (number, action or wild) is
// derivable from the rank value alone.
type Rank int

const (
	Zero Rank = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

func (r Rank) IsNumber() bool { return r >= Zero && r <= Nine }

func (r Rank) IsAction() bool { return r == Skip || r == Reverse || r == DrawTwo }

func (r Rank) IsWild() bool { return r == Wild || r == WildDrawFour }

// Number returns the numeric value of a number rank.
func (r Rank) Number() int { return int(r) }

func (r Rank) String() string {
	if r.IsNumber() {
		return strconv.Itoa(r.Number())
	}
	switch r {
	case Skip:
		return "SKIP"
	case Reverse:
		return "REVERSE"
	case DrawTwo:
		return "DRAW TWO"
	case Wild:
		return "WILD"
	case WildDrawFour:
		return "WILD DRAW FOUR"
	}
	return fmt.Sprintf("RANK(%d)", int(r))
}

// Card is an immutable color/rank pair compared by value. Wild-rank cards
// carry color.Wild; the color chosen when one is played is recorded on the
// game state, never on the card.
type Card struct {
	Color color.Color
	Rank  Rank
}

func NewNumber(cardColor color.Color, number int) Card {
	if number < 0 || number > 9 {
		panic(fmt.Sprintf("uno: number card out of range: %d", number))
	}
	return Card{Color: cardColor, Rank: Rank(number)}
}

func NewSkip(cardColor color.Color) Card {
	return Card{Color: cardColor, Rank: Skip}
}

func NewReverse(cardColor color.Color) Card {
	return Card{Color: cardColor, Rank: Reverse}
}

func NewDrawTwo(cardColor color.Color) Card {
	return Card{Color: cardColor, Rank: DrawTwo}
}

func NewWild() Card {
	return Card{Color: color.Wild, Rank: Wild}
}

func NewWildDrawFour() Card {
	return Card{Color: color.Wild, Rank: WildDrawFour}
}

// String renders the card face. Wild cards display independent of their
// stored color.
func (c Card) String() string {
	switch c.Rank {
	case Wild:
		return "(*)"
	case WildDrawFour:
		return "+4!"
	case Skip:
		return c.Color.Paint("(/)")
	case Reverse:
		return c.Color.Paint("<=>")
	case DrawTwo:
		return c.Color.Paint("+2!")
	default:
		return c.Color.Paintf("[%d]", c.Rank.Number())
	}
}
