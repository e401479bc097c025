package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Holdfast.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Amber-to-rust gradient
	s1 := termenv.String(" _           _     _  __           _   ").Foreground(p.Color("#fbbf24"))
	s2 := termenv.String("| |__   ___ | | __| |/ _| __ _ ___| |_ ").Foreground(p.Color("#f59e0b"))
	s3 := termenv.String("| '_ \\ / _ \\| |/ _` | |_ / _` / __| __|").Foreground(p.Color("#f97316"))
	s4 := termenv.String("| | | | (_) | | (_| |  _| (_| \\__ \\ |_ ").Foreground(p.Color("#ea580c"))
	s5 := termenv.String("|_| |_|\\___/|_|\\__,_|_|  \\__,_|___/\\__|").Foreground(p.Color("#dc2626"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
