package ui

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
)

func PromptString(message string) string {
	for {
		Println(message)
		var input string
		_, err := fmt.Scanln(&input)
		if err != nil {
			Println("Invalid text input")
			continue
		}
		return input
	}
}

func promptInteger(message string) int {
	for {
		Println(message)
		var input int
		_, err := fmt.Scanln(&input)
		if err != nil {
			Println("Invalid number input")
			continue
		}
		return input
	}
}

func promptLowercaseString(message string) string {
	input := PromptString(message)
	return strings.ToLower(input)
}

// PromptCardNumber lists the hand one-indexed and reads a selection;
// zero stands for drawing instead.
func PromptCardNumber(hand []card.Card) int {
	handLines := []string{"Your cards:"}
	for cardIndex, handCard := range hand {
		handLines = append(handLines, fmt.Sprintf("%2d) %s", cardIndex+1, handCard))
	}
	Printlns(handLines)

	return PromptIntegerInRange(0, len(hand), "Choose a card number to play, or 0 to draw:")
}

func PromptColor() color.Color {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
	for {
		colorName := promptLowercaseString(colorMessage)
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			Printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor
	}
}

func PromptIntegerInRange(minimum int, maximum int, message string) int {
	for {
		input := promptInteger(message)
		if input < minimum || input > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input
	}
}
