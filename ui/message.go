package ui

import (
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() {
	Printfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) NoMercyEnabled() {
	Println("No Mercy is on: a drawn card that matches is played on the spot!")
}

func (m MessageWriter) PlayersSeated(playerNames []string) {
	Printfln("Players: %s", playerNames)
}

func (m MessageWriter) FirstCardPlayed(firstCard card.Card) {
	Printfln("First card is %s", firstCard)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) {
	Printfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) {
	Printfln("You drew %s!", cards)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) {
	if amount == 1 {
		Printfln("%s drew a card!", playerName)
	} else {
		Printfln("%s drew %d cards!", playerName, amount)
	}
}

func (m MessageWriter) PlayerPlayedCard(playerName string, playedCard card.Card) {
	Printfln("%s played %s!", playerName, playedCard)
}

func (m MessageWriter) PlayerDrewAndPlayedCard(playerName string, playedCard card.Card) {
	Printfln("%s drew and played %s!", playerName, playedCard)
}

func (m MessageWriter) PlayerPickedColor(playerName string, pickedColor color.Color) {
	Printfln("%s picked color %s!", playerName, pickedColor)
}

func (m MessageWriter) PlayerPassed(playerName string) {
	Printfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) {
	Printfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed() {
	Println("Turn order has been reversed!")
}

func (m MessageWriter) DrawStacked(amount int, pending int) {
	Printfln("Pending draw raised by %d to %d!", amount, pending)
}

func (m MessageWriter) PendingDrawNotice(pending int) {
	Printfln("Pending draw to you: %d (stack with a DRAW TWO or WILD DRAW FOUR, or draw)", pending)
}

func (m MessageWriter) PlayerMadeInvalidMove(playerName string) {
	Printfln("%s made an invalid move and draws a penalty card!", playerName)
}

func (m MessageWriter) PlayerHadNoSuchCard(playerName string) {
	Printfln("%s tried a card not in hand, turn forfeited!", playerName)
}

func (m MessageWriter) PlayerCardDidNotMatch(playerName string) {
	Printfln("%s's card does not match, turn forfeited!", playerName)
}

func (m MessageWriter) ChallengeSucceeded(playerName string, challengerName string) {
	Printfln("%s challenges the wild draw four and wins, %s takes the penalty!", challengerName, playerName)
}

func (m MessageWriter) ChallengeFailed(playerName string, challengerName string) {
	Printfln("%s challenges the wild draw four against %s and loses!", challengerName, playerName)
}

func (m MessageWriter) UnoCalled(playerName string) {
	Printfln("%s says UNO!", playerName)
}

func (m MessageWriter) IllegalPlay() {
	Println("Illegal play. You must match color or rank, or play a wild.")
}

func (m MessageWriter) MustStackOrDraw() {
	Println("You must stack with a DRAW TWO or WILD DRAW FOUR, or draw.")
}

func (m MessageWriter) WinnerFound(playerName string) {
	Printfln("%s wins!", playerName)
}
