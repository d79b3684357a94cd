package game

// Player decides what to do when its turn comes around. Implementations
// receive a snapshot of the table and answer with a single move.
type Player interface {
	Name() string
	ChooseMove(gameState State) Move
	AlwaysChallenges() bool
}
