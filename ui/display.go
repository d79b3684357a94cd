package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/uno/card/color"
)

// pacing keeps the announcement stream readable at table speed.
const pacing = 300 * time.Millisecond

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	fmt.Fprintln(color.Stdout, args...)
	time.Sleep(pacing)
}
