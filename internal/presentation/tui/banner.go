package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the title banner.
func PrintBanner(w io.Writer, p termenv.Profile) {
	lines := []struct {
		text  string
		color string
	}{
		{"   ___  _               _     __  __   ___", "#1cab9c"},
		{"  / __|| |_   ___  ___ | |_   \\ \\/ /  / _ \\", "#2bbfae"},
		{" | (_ || ' \\ / _ \\(_-< |  _|   >  <  | (_) |", "#5fd3c4"},
		{"  \\___||_||_|\\___//__/  \\__|  /_/\\_\\  \\___/", "#aef0ea"},
	}

	fmt.Fprintln(w)
	for _, line := range lines {
		fmt.Fprintln(w, p.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w)
}
