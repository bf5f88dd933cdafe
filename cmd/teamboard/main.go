package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/teamboard/internal/api"
	"github.com/tgienger/teamboard/internal/config"
	"github.com/tgienger/teamboard/internal/session"
	"github.com/tgienger/teamboard/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("teamboard %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg := config.Load()

	// Open the local settings store and restore any saved session
	store, err := session.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening settings store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sess, err := session.Load(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading session: %v\n", err)
		os.Exit(1)
	}

	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout, sess.Token)

	// Create and run the application
	app := ui.NewApp(client, sess)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}
