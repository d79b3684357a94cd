package event

type TurnReversedPayload struct{}

type TurnReversedListener interface {
	OnTurnReversed(TurnReversedPayload)
}

type turnReversedEmitter struct {
	listeners []TurnReversedListener
}

func (e *turnReversedEmitter) AddListener(listener TurnReversedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnReversedEmitter) Emit(payload TurnReversedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnReversed(payload)
	}
}
