package game

import (
	"math/rand"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/event"
)

// Rules holds the house rule toggles a table plays with. Under NoMercy a
// voluntarily drawn card that matches the discard is played on the spot.
type Rules struct {
	NoMercy bool
}

// Game is the turn engine. It owns the deck, the seating order and the table
// state, solicits one move per turn and resolves it. A game is driven from a
// single goroutine; run several games on separate Game values, not one.
type Game struct {
	players     *PlayerIterator
	deck        *Deck
	events      *event.Emitters
	rules       Rules
	activeColor color.Color
	pendingDraw int
	winner      string
	over        bool
}

func New(players []Player, seed int64, rules Rules) (*Game, error) {
	if len(players) < consts.MinPlayers || len(players) > consts.MaxPlayers {
		return nil, consts.ErrorsPlayerCountInvalid
	}
	return &Game{
		players: newPlayerIterator(players),
		deck:    NewDeck(rand.New(rand.NewSource(seed))),
		events:  event.NewEmitters(),
		rules:   rules,
	}, nil
}

// NewWithDeck builds a game over a prepared deck, used to script exact scenarios.
func NewWithDeck(deck *Deck, players []Player, rules Rules) (*Game, error) {
	if len(players) < consts.MinPlayers || len(players) > consts.MaxPlayers {
		return nil, consts.ErrorsPlayerCountInvalid
	}
	return &Game{
		players: newPlayerIterator(players),
		deck:    deck,
		events:  event.NewEmitters(),
		rules:   rules,
	}, nil
}

func (g *Game) ActiveColor() color.Color {
	return g.activeColor
}

func (g *Game) CurrentPlayerName() string {
	return g.players.Current().Name()
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Direction() int {
	return g.players.Direction()
}

func (g *Game) Events() *event.Emitters {
	return g.events
}

func (g *Game) GetPlayerCards(name string) []card.Card {
	return g.players.GetPlayerController(name).Hand()
}

func (g *Game) PendingDraw() int {
	return g.pendingDraw
}

func (g *Game) PlayerNames() []string {
	names := make([]string, 0, g.players.Size())
	g.players.ForEach(func(player *playerController) {
		names = append(names, player.Name())
	})
	return names
}

func (g *Game) Winner() string {
	return g.winner
}

func (g *Game) DealStartingCards() {
	g.players.ForEach(func(player *playerController) {
		player.AddCards(g.deck.Draw(consts.StartingHandSize))
	})
}

// PlayFirstCard seeds the discard pile with a non-wild card, records its
// color as active and applies its start-of-game effect.
func (g *Game) PlayFirstCard() {
	firstCard := g.deck.StartDiscard()
	g.activeColor = firstCard.Color
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: firstCard,
	})
	g.applyInitialEffect(firstCard)
}

// PlayTurn solicits one move from the current player and resolves it. It
// reports the winner's name once the game has ended.
func (g *Game) PlayTurn() (string, bool) {
	if g.over {
		return g.winner, true
	}

	current := g.players.Current()
	move := current.ChooseMove(g.extractState(current))

	switch move.Type {
	case MoveDraw:
		g.resolveDraw(current)
	case MovePlay:
		g.resolvePlay(current, move)
	default:
		g.resolveInvalid(current)
	}

	return g.winner, g.over
}

// Run plays turns until a winner is found and returns the winner's name.
func (g *Game) Run() string {
	for {
		if winner, over := g.PlayTurn(); over {
			return winner
		}
	}
}

func (g *Game) applyInitialEffect(firstCard card.Card) {
	switch firstCard.Rank {
	case card.Skip:
		skipped := g.players.Current()
		g.players.Next()
		g.events.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: skipped.Name()})
	case card.Reverse:
		g.players.Reverse()
		g.events.TurnReversed.Emit(event.TurnReversedPayload{})
	case card.DrawTwo:
		g.pendingDraw = consts.DrawTwoAmount
		g.events.DrawStacked.Emit(event.DrawStackedPayload{
			Amount:  consts.DrawTwoAmount,
			Pending: g.pendingDraw,
		})
	}
}

func (g *Game) resolveInvalid(current *playerController) {
	g.events.MoveRejected.Emit(event.MoveRejectedPayload{
		PlayerName: current.Name(),
		Reason:     event.RejectReasonInvalidMove,
	})
	g.drawCards(current, consts.InvalidMovePenalty, event.DrawReasonInvalidMove)
	g.players.Next()
}

func (g *Game) resolveDraw(current *playerController) {
	if g.pendingDraw > 0 {
		g.drawCards(current, g.pendingDraw, event.DrawReasonAbsorbedPending)
		g.pendingDraw = 0
		g.players.Next()
		g.checkWin(current)
		return
	}

	drawn := g.drawCards(current, 1, event.DrawReasonVoluntary)
	if len(drawn) == 1 && g.rules.NoMercy && Matches(drawn[0], g.deck.Top(), g.activeColor) {
		chosenColor := g.activeColor
		if drawn[0].Rank.IsWild() {
			chosenColor = MostHeldColor(current.Hand())
		}
		g.playCard(current, drawn[0], chosenColor, false, true)
		g.checkWin(current)
		return
	}

	g.events.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: current.Name()})
	g.players.Next()
}

func (g *Game) resolvePlay(current *playerController, move Move) {
	if !current.HasCard(move.Card) {
		g.events.MoveRejected.Emit(event.MoveRejectedPayload{
			PlayerName: current.Name(),
			Reason:     event.RejectReasonNotInHand,
		})
		g.players.Next()
		return
	}
	if !Matches(move.Card, g.deck.Top(), g.activeColor) {
		g.events.MoveRejected.Emit(event.MoveRejectedPayload{
			PlayerName: current.Name(),
			Reason:     event.RejectReasonNoMatch,
		})
		g.players.Next()
		return
	}

	chosenColor := g.activeColor
	if move.Card.Rank.IsWild() {
		chosenColor = move.ChosenColor
	}
	g.playCard(current, move.Card, chosenColor, move.Challenge, false)
	g.checkWin(current)
}

// playCard applies a validated play: the card leaves the hand, lands on the
// discard pile, and its rank effect runs. The turn cursor always ends up on
// the player to act next.
func (g *Game) playCard(current *playerController, played card.Card, chosenColor color.Color, challengeFlag, autoPlayed bool) {
	previousColor := g.activeColor
	current.RemoveCard(played)
	g.deck.Discard(played)

	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: current.Name(),
		Card:       played,
		AutoPlayed: autoPlayed,
	})
	if played.Rank.IsWild() {
		g.activeColor = chosenColor
		g.events.ColorPicked.Emit(event.ColorPickedPayload{
			PlayerName: current.Name(),
			Color:      chosenColor,
		})
	}
	if current.HandSize() == 1 {
		g.events.UnoCalled.Emit(event.UnoCalledPayload{PlayerName: current.Name()})
	}

	switch played.Rank {
	case card.Skip:
		skipped := g.players.Next()
		g.events.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: skipped.Name()})
		g.players.Next()
	case card.Reverse:
		g.players.Reverse()
		g.events.TurnReversed.Emit(event.TurnReversedPayload{})
		if g.players.Size() == 2 {
			skipped := g.players.Next()
			g.events.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: skipped.Name()})
		}
		g.players.Next()
	case card.DrawTwo:
		g.pendingDraw += consts.DrawTwoAmount
		g.events.DrawStacked.Emit(event.DrawStackedPayload{
			Amount:  consts.DrawTwoAmount,
			Pending: g.pendingDraw,
		})
		g.players.Next()
	case card.WildDrawFour:
		g.resolveWildDrawFour(current, previousColor, challengeFlag)
		g.players.Next()
	default:
		g.players.Next()
	}
}

// resolveWildDrawFour adjudicates the challenge sub-protocol. Legality is
// judged against the color that was active before the wild was played: the
// play was illegal if its player still held a non-wild card of that color.
func (g *Game) resolveWildDrawFour(current *playerController, previousColor color.Color, challengeFlag bool) {
	opponent := g.players.Peek()
	if !opponent.AlwaysChallenges() && !challengeFlag {
		g.pendingDraw += consts.WildDrawFourAmount
		g.events.DrawStacked.Emit(event.DrawStackedPayload{
			Amount:  consts.WildDrawFourAmount,
			Pending: g.pendingDraw,
		})
		return
	}

	if current.HasColorCard(previousColor) {
		g.events.ChallengeResolved.Emit(event.ChallengeResolvedPayload{
			PlayerName:     current.Name(),
			ChallengerName: opponent.Name(),
			Succeeded:      true,
		})
		g.drawCards(current, consts.IllegalWildDrawPenalty, event.DrawReasonIllegalWildDraw)
		return
	}

	g.events.ChallengeResolved.Emit(event.ChallengeResolvedPayload{
		PlayerName:     current.Name(),
		ChallengerName: opponent.Name(),
		Succeeded:      false,
	})
	g.drawCards(opponent, consts.FailedChallengePenalty, event.DrawReasonFailedChallenge)
}

func (g *Game) drawCards(player *playerController, amount int, reason event.DrawReason) []card.Card {
	cards := player.Draw(g.deck, amount)
	if len(cards) > 0 {
		g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
			PlayerName: player.Name(),
			Cards:      cards,
			Reason:     reason,
		})
	}
	return cards
}

func (g *Game) checkWin(current *playerController) {
	if g.over || !current.NoCards() {
		return
	}
	g.winner = current.Name()
	g.over = true
	g.events.WinnerFound.Emit(event.WinnerFoundPayload{PlayerName: g.winner})
}

func (g *Game) extractState(current *playerController) State {
	playerSequence := make([]string, 0, g.players.Size())
	playerHandCounts := make(map[string]int, g.players.Size())

	g.players.ForEach(func(player *playerController) {
		playerSequence = append(playerSequence, player.Name())
		playerHandCounts[player.Name()] = player.HandSize()
	})

	return State{
		TopCard:          g.deck.Top(),
		ActiveColor:      g.activeColor,
		PendingDraw:      g.pendingDraw,
		Direction:        g.players.Direction(),
		NoMercy:          g.rules.NoMercy,
		Hand:             current.Hand(),
		PlayedCards:      g.deck.DiscardPile(),
		PlayerSequence:   playerSequence,
		PlayerHandCounts: playerHandCounts,
	}
}

// MostHeldColor picks the color the hand holds most of, ties broken by
// Standard enumeration order. Wilds count toward no color.
func MostHeldColor(cards []card.Card) color.Color {
	counts := make(map[color.Color]int, len(color.Standard))
	for _, held := range cards {
		counts[held.Color]++
	}
	best := color.Standard[0]
	for _, candidate := range color.Standard[1:] {
		if counts[candidate] > counts[best] {
			best = candidate
		}
	}
	return best
}
