package game

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// Matches reports whether candidate may legally follow top. activeColor is
// consulted only when the top card is wild; it is the color chosen when
// that wild was played. Wild candidates always match; whether a Wild Draw
// Four was honest is judged by challenge, not here.
func Matches(candidate, top card.Card, activeColor color.Color) bool {
	if candidate.Rank.IsWild() {
		return true
	}
	if top.Rank.IsWild() {
		return candidate.Color == activeColor || candidate.Rank == top.Rank
	}
	return candidate.Color == top.Color || candidate.Rank == top.Rank
}

// CanStack reports whether candidate answers a pending forced draw by
// raising it instead of absorbing it.
func CanStack(candidate card.Card) bool {
	return candidate.Rank == card.DrawTwo || candidate.Rank == card.WildDrawFour
}
