package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/game"
	"github.com/ratel-online/uno/player"
	"github.com/ratel-online/uno/sim"
	"github.com/ratel-online/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
	}

	name := flag.String("name", cfg.Name, "your player name")
	bots := flag.Int("bots", cfg.Bots, "number of bots at the table")
	seed := flag.Int64("seed", cfg.Seed, "deck seed, 0 means time-seeded")
	mercy := flag.Bool("mercy", !cfg.NoMercy, "play with mercy: keep drawn cards even when they match")
	games := flag.Int("games", 0, "run a bot self-play batch of this many games")
	saveConfig := flag.Bool("save-config", false, "save these settings as defaults")
	flag.Parse()

	cfg.Name = *name
	cfg.Bots = *bots
	cfg.Seed = *seed
	cfg.NoMercy = !*mercy
	if err := cfg.Validate(); err != nil {
		log.Error(err)
		return
	}
	if *saveConfig {
		if err := cfg.Save(); err != nil {
			log.Error(err)
			return
		}
		log.Info("config saved")
	}

	deckSeed := cfg.Seed
	if deckSeed == 0 {
		deckSeed = time.Now().UnixNano()
	}

	rules := game.Rules{NoMercy: cfg.NoMercy}
	if *games > 0 {
		runSimulation(*games, cfg.Bots, deckSeed, rules)
		return
	}
	runInteractive(cfg, deckSeed, rules)
}

func runSimulation(games int, bots int, seed int64, rules game.Rules) {
	log.Infof("simulating %d games with %d bots\n", games, bots)
	report, err := sim.Run(sim.Options{Games: games, Bots: bots, Seed: seed, Rules: rules})
	if err != nil {
		log.Error(err)
		return
	}
	log.Info(report.String())
}

func runInteractive(cfg config.Config, seed int64, rules game.Rules) {
	rng := rand.New(rand.NewSource(seed))
	players := player.CreatePlayers(cfg.Bots, cfg.Name, rng)

	g, err := game.New(players, seed, rules)
	if err != nil {
		log.Error(err)
		return
	}
	g.Events().AddListener(ui.NewConsoleListener(cfg.Name))

	ui.Message.Welcome()
	if rules.NoMercy {
		ui.Message.NoMercyEnabled()
	}
	ui.Message.PlayersSeated(g.PlayerNames())

	g.DealStartingCards()
	g.PlayFirstCard()
	g.Run()
}
