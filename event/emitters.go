package event

// Emitters bundles one emitter per event type. Every game owns its own set,
// so games running side by side never hear each other's events.
type Emitters struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	CardsDrawn        *cardsDrawnEmitter
	DrawStacked       *drawStackedEmitter
	TurnSkipped       *turnSkippedEmitter
	TurnReversed      *turnReversedEmitter
	PlayerPassed      *playerPassedEmitter
	MoveRejected      *moveRejectedEmitter
	ChallengeResolved *challengeResolvedEmitter
	UnoCalled         *unoCalledEmitter
	WinnerFound       *winnerFoundEmitter
}

func NewEmitters() *Emitters {
	return &Emitters{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		DrawStacked:       &drawStackedEmitter{},
		TurnSkipped:       &turnSkippedEmitter{},
		TurnReversed:      &turnReversedEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
		MoveRejected:      &moveRejectedEmitter{},
		ChallengeResolved: &challengeResolvedEmitter{},
		UnoCalled:         &unoCalledEmitter{},
		WinnerFound:       &winnerFoundEmitter{},
	}
}

// Listener receives every event a game emits.
type Listener interface {
	FirstCardPlayedListener
	CardPlayedListener
	ColorPickedListener
	CardsDrawnListener
	DrawStackedListener
	TurnSkippedListener
	TurnReversedListener
	PlayerPassedListener
	MoveRejectedListener
	ChallengeResolvedListener
	UnoCalledListener
	WinnerFoundListener
}

// AddListener subscribes the listener to every event at once.
func (e *Emitters) AddListener(listener Listener) {
	e.FirstCardPlayed.AddListener(listener)
	e.CardPlayed.AddListener(listener)
	e.ColorPicked.AddListener(listener)
	e.CardsDrawn.AddListener(listener)
	e.DrawStacked.AddListener(listener)
	e.TurnSkipped.AddListener(listener)
	e.TurnReversed.AddListener(listener)
	e.PlayerPassed.AddListener(listener)
	e.MoveRejected.AddListener(listener)
	e.ChallengeResolved.AddListener(listener)
	e.UnoCalled.AddListener(listener)
	e.WinnerFound.AddListener(listener)
}
