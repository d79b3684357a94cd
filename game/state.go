package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

// State is the snapshot handed to a player when it must choose a move.
type State struct {
	TopCard          card.Card
	ActiveColor      color.Color
	PendingDraw      int
	Direction        int
	NoMercy          bool
	Hand             []card.Card
	PlayedCards      []card.Card
	PlayerSequence   []string
	PlayerHandCounts map[string]int
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Top card: %s", s.TopCard))
	lines = append(lines, fmt.Sprintf("Active color: %s", s.ActiveColor))
	if s.PendingDraw > 0 {
		lines = append(lines, fmt.Sprintf("Pending draw: %d", s.PendingDraw))
	}

	var playerStatuses []string
	for _, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	turnOrder := strings.Join(playerStatuses, ", ")
	if s.Direction == left {
		turnOrder += " (reversed)"
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", turnOrder))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.Hand))

	return strings.Join(lines, "\n")
}
