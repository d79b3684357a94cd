package event

import "github.com/ratel-online/uno/card"

type DrawReason string

const (
	DrawReasonVoluntary       DrawReason = "voluntary draw"
	DrawReasonAbsorbedPending DrawReason = "absorbed pending draws"
	DrawReasonInvalidMove     DrawReason = "invalid move penalty"
	DrawReasonIllegalWildDraw DrawReason = "illegal wild draw four"
	DrawReasonFailedChallenge DrawReason = "failed challenge"
)

type CardsDrawnPayload struct {
	PlayerName string
	Cards      []card.Card
	Reason     DrawReason
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}
