package cli

import (
	"fmt"

	"github.com/alexanderramin/irbforge/internal/cli/formatter"
	"github.com/alexanderramin/irbforge/internal/storage"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the in-progress application",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("pass --force to reset non-interactively")
				}
				var confirmed bool
				confirm := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Discard the application and all entered answers?").
						Affirmative("Discard").
						Negative("Cancel").
						Value(&confirmed),
				)).WithTheme(irbforgeHuhTheme()).WithShowHelp(false)
				if err := confirm.Run(); err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			if err := app.Store.Remove(storage.ApplicationKey); err != nil {
				return err
			}
			fmt.Println(formatter.Dim("Application discarded."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}
