package event

type DrawStackedPayload struct {
	Amount  int
	Pending int
}

type DrawStackedListener interface {
	OnDrawStacked(DrawStackedPayload)
}

type drawStackedEmitter struct {
	listeners []DrawStackedListener
}

func (e *drawStackedEmitter) AddListener(listener DrawStackedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *drawStackedEmitter) Emit(payload DrawStackedPayload) {
	for _, listener := range e.listeners {
		listener.OnDrawStacked(payload)
	}
}
