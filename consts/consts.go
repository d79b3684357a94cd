package consts

const (
	MinPlayers       = 2
	MaxPlayers       = 10
	StartingHandSize = 7

	DrawTwoAmount      = 2
	WildDrawFourAmount = 4

	InvalidMovePenalty     = 1
	IllegalWildDrawPenalty = 4
	FailedChallengePenalty = 6

	DefaultSimulationGames = 100
	SimulationTurnLimit    = 10000
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsPlayerCountInvalid = NewErr(1, true, "Player count invalid. ")
	ErrorsGamesCountInvalid  = NewErr(1, true, "Games count invalid. ")
	ErrorsConfigInvalid      = NewErr(1, true, "Config invalid. ")
)
