// Phonebook - a terminal contact book.
// Add, filter and remove contacts; they persist across runs.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/lazyvibe/phonebook/internal/app"
	"github.com/lazyvibe/phonebook/internal/contacts"
	"github.com/lazyvibe/phonebook/internal/logging"
	"github.com/lazyvibe/phonebook/internal/notify"
	"github.com/lazyvibe/phonebook/internal/store"
	"github.com/lazyvibe/phonebook/internal/ui"
)

const (
	appName    = "Phonebook"
	appVersion = "0.1.0"
)

func main() {
	ctx := context.Background()

	// Get config directory
	configDir, err := app.ConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config directory: %v\n", err)
		os.Exit(1)
	}

	// Load application configuration
	config, err := app.LoadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Write defaults on first run so there is a file to edit
	if _, err := os.Stat(app.ConfigPath(configDir)); os.IsNotExist(err) {
		if err := app.SaveConfig(configDir, config); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing default config: %v\n", err)
			os.Exit(1)
		}
	}

	log, logCloser, err := logging.New(config.Log.Level, config.LogPath(configDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()
	log.WithFields(logrus.Fields{
		"version": appVersion,
		"backend": config.Storage.Backend,
	}).Info(appName + " starting")

	if err := run(ctx, configDir, config, log); err != nil {
		log.WithError(err).Error("exiting")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logCloser.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, configDir string, config *app.Config, log *logrus.Logger) error {
	// Initialize store
	kv, err := store.Open(ctx, config.Storage, configDir)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}
	defer kv.Close()

	alerts := ui.NewAlertQueue()
	book := contacts.New(kv,
		contacts.WithNotifier(alerts),
		contacts.WithLogger(log),
	)
	if err := book.Initialize(ctx); err != nil {
		return fmt.Errorf("loading contacts: %w", err)
	}

	application := ui.New(book, alerts, config,
		ui.WithDispatcher(notify.NewDispatcher()),
		ui.WithLogger(log),
	)

	// Run the TUI
	p := tea.NewProgram(
		application,
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}
