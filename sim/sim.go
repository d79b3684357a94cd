package sim

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/player"
)

// Options configures a self-play batch.
type Options struct {
	Games    int
	Bots     int
	Seed     int64
	Rules    game.Rules
	MaxTurns int
}

// Result is the outcome of one simulated game. A game that reaches the
// turn cutoff without a winner counts as stalled.
type Result struct {
	Winner  string `json:"winner"`
	Turns   int    `json:"turns"`
	Stalled bool   `json:"stalled"`
}

// Report aggregates a batch. Wins is keyed by seat name, which is stable
// across the batch, so totals are comparable between games.
type Report struct {
	Games    int            `json:"games"`
	Stalled  int            `json:"stalled"`
	Wins     map[string]int `json:"wins"`
	AvgTurns float64        `json:"avg_turns"`
}

func (r Report) String() string {
	return string(json.Marshal(r))
}

// Run plays the configured number of AI-only games concurrently and folds
// their outcomes into a Report. Every game owns its deck, players and
// emitters; the goroutines share nothing but the results registry. Seeds
// derive per game from the base seed, so a report is reproducible.
func Run(options Options) (Report, error) {
	if options.Games <= 0 {
		return Report{}, consts.ErrorsGamesCountInvalid
	}
	if options.Bots < consts.MinPlayers || options.Bots > consts.MaxPlayers {
		return Report{}, consts.ErrorsPlayerCountInvalid
	}
	if options.MaxTurns <= 0 {
		options.MaxTurns = consts.SimulationTurnLimit
	}

	results := hashmap.New()
	waitGroup := sync.WaitGroup{}
	for gameIndex := 0; gameIndex < options.Games; gameIndex++ {
		gameIndex := gameIndex
		waitGroup.Add(1)
		async.Async(func() {
			defer waitGroup.Done()
			results.Set(int64(gameIndex), playOne(options, options.Seed+int64(gameIndex)))
		})
	}
	waitGroup.Wait()

	report := Report{Games: options.Games, Wins: map[string]int{}}
	totalTurns := 0
	for gameIndex := 0; gameIndex < options.Games; gameIndex++ {
		value, ok := results.Get(int64(gameIndex))
		if !ok {
			report.Stalled++
			continue
		}
		result := value.(Result)
		totalTurns += result.Turns
		if result.Stalled {
			report.Stalled++
			continue
		}
		report.Wins[result.Winner]++
	}
	report.AvgTurns = float64(totalTurns) / float64(options.Games)
	return report, nil
}

// playOne seats alternating aggressive and naive bots under stable seat
// names and plays a single game to a winner or the turn cutoff.
func playOne(options Options, seed int64) Result {
	rng := rand.New(rand.NewSource(seed))
	bots := make([]game.Player, 0, options.Bots)
	for botIndex := 0; botIndex < options.Bots; botIndex++ {
		botName := fmt.Sprintf("Bot-%d", botIndex+1)
		if botIndex%2 == 0 {
			bots = append(bots, player.NewAggressivePlayer(botName))
		} else {
			bots = append(bots, player.NewNaivePlayer(botName, rng))
		}
	}

	g, err := game.New(bots, seed, options.Rules)
	if err != nil {
		log.Error(err)
		return Result{Stalled: true}
	}
	g.DealStartingCards()
	g.PlayFirstCard()

	for turn := 1; turn <= options.MaxTurns; turn++ {
		if winner, over := g.PlayTurn(); over {
			return Result{Winner: winner, Turns: turn}
		}
	}
	return Result{Turns: options.MaxTurns, Stalled: true}
}
