package main

import (
	"flag"
	"fmt"
	"os"

	"points-ledger/cmd/console/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	baseURL := flag.String("base-url", "http://127.0.0.1:9400", "Points ledger server base URL")
	flag.Parse()

	p := tea.NewProgram(ui.NewRootModel(*baseURL), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "console error:", err)
		os.Exit(1)
	}
}
