package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// MoveType tags the variant of a proposed move.
type MoveType int

const (
	_ MoveType = iota
	MovePlay
	MoveDraw
	MoveInvalid
)

// Move is a decision capability's answer to ChooseMove. ChosenColor is
// meaningful only when the played card is wild. Challenge is the
// stacking/challenge-intent flag: it never changes legality, but it feeds
// the Wild Draw Four challenge trigger.
type Move struct {
	Type        MoveType
	Card        card.Card
	ChosenColor color.Color
	Challenge   bool
}

func PlayMove(playedCard card.Card, chosenColor color.Color, challenge bool) Move {
	return Move{Type: MovePlay, Card: playedCard, ChosenColor: chosenColor, Challenge: challenge}
}

func DrawMove() Move {
	return Move{Type: MoveDraw}
}

// InvalidMove signals that the proposer could not produce a legal move, for
// example a stacking requirement it refuses to satisfy. The engine answers
// with a one-card penalty.
func InvalidMove() Move {
	return Move{Type: MoveInvalid}
}
