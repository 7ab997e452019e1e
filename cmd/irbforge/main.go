package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/irbforge/internal/cli"
	"github.com/alexanderramin/irbforge/internal/directory"
	"github.com/alexanderramin/irbforge/internal/storage"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.irbforge/irbforge.db
	dbPath := os.Getenv("IRBFORGE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".irbforge", "irbforge.db")
	}
	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	app := &cli.App{
		Store:     store,
		Directory: directory.NewClient(directory.LoadConfig()),
	}

	// Detect interactive terminal; the TUI commands refuse to run without one.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
