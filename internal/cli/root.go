package cli

import (
	"github.com/alexanderramin/irbforge/internal/directory"
	"github.com/alexanderramin/irbforge/internal/storage"
	"github.com/spf13/cobra"
)

// App holds the shared dependencies used by CLI commands.
type App struct {
	Store     storage.Store
	Directory directory.Client

	// IsInteractive reports whether stdin is a terminal; non-interactive
	// invocations skip the TUI and print plain output.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "irbforge" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "irbforge",
		Short: "IRB application builder for AI/ML clinical research",
	}

	root.AddCommand(
		newNewCmd(app),
		newResumeCmd(app),
		newStatusCmd(app),
		newReviewCmd(app),
		newResetCmd(app),
	)

	return root
}
