package ui

import "github.com/ratel-online/uno/event"

// ConsoleListener renders every engine event on the terminal. Draws by the
// named human player show card faces; everyone else's show counts only.
type ConsoleListener struct {
	humanName string
}

func NewConsoleListener(humanName string) ConsoleListener {
	return ConsoleListener{humanName: humanName}
}

func (l ConsoleListener) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	Message.FirstCardPlayed(payload.Card)
}

func (l ConsoleListener) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.AutoPlayed {
		Message.PlayerDrewAndPlayedCard(payload.PlayerName, payload.Card)
		return
	}
	Message.PlayerPlayedCard(payload.PlayerName, payload.Card)
}

func (l ConsoleListener) OnColorPicked(payload event.ColorPickedPayload) {
	Message.PlayerPickedColor(payload.PlayerName, payload.Color)
}

func (l ConsoleListener) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.PlayerName == l.humanName {
		Message.HumanPlayerDrewCards(payload.Cards)
		return
	}
	Message.PlayerDrewCards(payload.PlayerName, len(payload.Cards))
}

func (l ConsoleListener) OnDrawStacked(payload event.DrawStackedPayload) {
	Message.DrawStacked(payload.Amount, payload.Pending)
}

func (l ConsoleListener) OnTurnSkipped(payload event.TurnSkippedPayload) {
	Message.PlayerTurnSkipped(payload.PlayerName)
}

func (l ConsoleListener) OnTurnReversed(event.TurnReversedPayload) {
	Message.TurnOrderReversed()
}

func (l ConsoleListener) OnPlayerPassed(payload event.PlayerPassedPayload) {
	Message.PlayerPassed(payload.PlayerName)
}

func (l ConsoleListener) OnMoveRejected(payload event.MoveRejectedPayload) {
	switch payload.Reason {
	case event.RejectReasonNotInHand:
		Message.PlayerHadNoSuchCard(payload.PlayerName)
	case event.RejectReasonNoMatch:
		Message.PlayerCardDidNotMatch(payload.PlayerName)
	default:
		Message.PlayerMadeInvalidMove(payload.PlayerName)
	}
}

func (l ConsoleListener) OnChallengeResolved(payload event.ChallengeResolvedPayload) {
	if payload.Succeeded {
		Message.ChallengeSucceeded(payload.PlayerName, payload.ChallengerName)
		return
	}
	Message.ChallengeFailed(payload.PlayerName, payload.ChallengerName)
}

func (l ConsoleListener) OnUnoCalled(payload event.UnoCalledPayload) {
	Message.UnoCalled(payload.PlayerName)
}

func (l ConsoleListener) OnWinnerFound(payload event.WinnerFoundPayload) {
	Message.WinnerFound(payload.PlayerName)
}
