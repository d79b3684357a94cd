package event

type RejectReason string

const (
	RejectReasonInvalidMove RejectReason = "invalid move"
	RejectReasonNotInHand   RejectReason = "card not in hand"
	RejectReasonNoMatch     RejectReason = "card does not match"
)

type MoveRejectedPayload struct {
	PlayerName string
	Reason     RejectReason
}

type MoveRejectedListener interface {
	OnMoveRejected(MoveRejectedPayload)
}

type moveRejectedEmitter struct {
	listeners []MoveRejectedListener
}

func (e *moveRejectedEmitter) AddListener(listener MoveRejectedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *moveRejectedEmitter) Emit(payload MoveRejectedPayload) {
	for _, listener := range e.listeners {
		listener.OnMoveRejected(payload)
	}
}
