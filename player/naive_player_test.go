package player_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/player"
	"github.com/stretchr/testify/require"
)

func TestNaivePlayerChooseMove(t *testing.T) {
	t.Run("plays_the_first_playable_card", func(t *testing.T) {
		naivePlayer := player.NewNaivePlayer("Bruno", rand.New(rand.NewSource(1)))

		move := naivePlayer.ChooseMove(game.State{
			TopCard:     card.NewNumber(color.Red, 5),
			ActiveColor: color.Red,
			Hand: []card.Card{
				card.NewNumber(color.Green, 1),
				card.NewNumber(color.Red, 7),
				card.NewNumber(color.Red, 9),
			},
		})

		require.Equal(t, game.PlayMove(card.NewNumber(color.Red, 7), color.Red, false), move)
	})

	t.Run("only_stackable_cards_answer_a_pending_draw", func(t *testing.T) {
		naivePlayer := player.NewNaivePlayer("Bruno", rand.New(rand.NewSource(1)))

		move := naivePlayer.ChooseMove(game.State{
			TopCard:     card.NewDrawTwo(color.Red),
			ActiveColor: color.Red,
			PendingDraw: 2,
			Hand: []card.Card{
				card.NewNumber(color.Red, 1),
				card.NewDrawTwo(color.Red),
			},
		})

		require.Equal(t, game.PlayMove(card.NewDrawTwo(color.Red), color.Red, false), move)
	})

	t.Run("a_wild_play_picks_a_standard_color", func(t *testing.T) {
		naivePlayer := player.NewNaivePlayer("Bruno", rand.New(rand.NewSource(1)))

		move := naivePlayer.ChooseMove(game.State{
			TopCard:     card.NewNumber(color.Red, 5),
			ActiveColor: color.Red,
			Hand:        []card.Card{card.NewWild()},
		})

		require.Equal(t, game.MovePlay, move.Type)
		require.Equal(t, card.NewWild(), move.Card)
		require.Contains(t, color.Standard, move.ChosenColor)
		require.False(t, move.Challenge)
	})

	t.Run("draws_without_a_playable_card", func(t *testing.T) {
		naivePlayer := player.NewNaivePlayer("Bruno", rand.New(rand.NewSource(1)))

		move := naivePlayer.ChooseMove(game.State{
			TopCard:     card.NewNumber(color.Red, 5),
			ActiveColor: color.Red,
			Hand: []card.Card{
				card.NewNumber(color.Green, 1),
				card.NewNumber(color.Blue, 2),
			},
		})

		require.Equal(t, game.DrawMove(), move)
	})
}
