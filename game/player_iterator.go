package game

type PlayerIterator struct {
	players map[string]*playerController
	cycler  *Cycler
}

func newPlayerIterator(players []Player) *PlayerIterator {
	var playerNames []string
	playerMap := make(map[string]*playerController, len(players))
	for _, player := range players {
		playerName := player.Name()
		playerNames = append(playerNames, playerName)
		playerMap[playerName] = newPlayerController(player)
	}
	return &PlayerIterator{
		players: playerMap,
		cycler:  NewCycler(playerNames),
	}
}

func (i *PlayerIterator) Current() *playerController {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) Direction() int {
	return i.cycler.Direction()
}

// ForEach visits every player in seating order without moving the turn cursor.
func (i *PlayerIterator) ForEach(function func(player *playerController)) {
	i.cycler.ForEach(func(playerName string) {
		function(i.players[playerName])
	})
}

func (i *PlayerIterator) GetPlayerController(name string) *playerController {
	return i.players[name]
}

func (i *PlayerIterator) Next() *playerController {
	return i.players[i.cycler.Next()]
}

// Peek returns the player whose turn comes next, leaving the cursor in place.
func (i *PlayerIterator) Peek() *playerController {
	return i.players[i.cycler.Peek()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}

func (i *PlayerIterator) Size() int {
	return len(i.players)
}
