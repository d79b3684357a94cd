package player

import (
	"math/rand"

	"github.com/ratel-online/uno/game"
)

var botNames = []string{
	"Amelia", "Bruno", "Clara", "Diego",
	"Elena", "Felix", "Greta", "Hugo",
	"Iris", "Jonas", "Kira", "Leo",
	"Mona", "Nils", "Olga", "Pablo",
	"Quinn", "Rosa", "Sven", "Tara",
	"Uma", "Viktor", "Wanda", "Ximena",
	"Yara", "Zeno",
}

func CreatePlayers(numberOfBots int, humanPlayerName string, rng *rand.Rand) []game.Player {
	players := make([]game.Player, 0, numberOfBots+1)
	players = append(players, NewHumanPlayer(humanPlayerName))
	players = append(players, CreateBots(numberOfBots, rng)...)
	return players
}

// CreateBots seats alternating aggressive and naive policies under names
// drawn from the pool. The caller's rng also feeds the naive color picks,
// so one seed fixes a whole table.
func CreateBots(amount int, rng *rand.Rand) []game.Player {
	names := append([]string{}, botNames...)
	rng.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })

	bots := make([]game.Player, 0, amount)
	for botIndex, botName := range names[:amount] {
		if botIndex%2 == 0 {
			bots = append(bots, NewAggressivePlayer(botName))
		} else {
			bots = append(bots, NewNaivePlayer(botName, rng))
		}
	}
	return bots
}
