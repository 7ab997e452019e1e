package cli

import (
	"fmt"

	"github.com/alexanderramin/irbforge/internal/cli/formatter"
	"github.com/alexanderramin/irbforge/internal/session"
	"github.com/alexanderramin/irbforge/internal/storage"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newNewCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new IRB application",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("new requires an interactive terminal")
			}

			existing, err := session.Load(app.Store)
			if err != nil {
				return err
			}
			if existing != nil && !force {
				var overwrite bool
				confirm := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("An application is already in progress. Discard it and start over?").
						Affirmative("Discard").
						Negative("Keep").
						Value(&overwrite),
				)).WithTheme(irbforgeHuhTheme()).WithShowHelp(false)
				if err := confirm.Run(); err != nil {
					return err
				}
				if !overwrite {
					fmt.Println(formatter.Dim("Keeping the existing application. Use `irbforge resume` to continue it."))
					return nil
				}
			}
			if existing != nil {
				if err := app.Store.Remove(storage.ApplicationKey); err != nil {
					return err
				}
			}

			ws, err := RunWizard()
			if err != nil {
				return err
			}

			sess := session.New(ws)
			if err := sess.Save(app.Store); err != nil {
				return err
			}

			fmt.Print(formatter.FormatClassification(ws))
			return runForm(app, sess)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Discard any in-progress application without asking")

	return cmd
}

// runForm launches the section-filling TUI and persists the session when
// the program exits, whatever state it is in. A change-classification
// request re-runs the wizard and regenerates the form, keeping every
// entered answer.
func runForm(app *App, sess *session.Session) error {
	for {
		p := tea.NewProgram(newFormModel(sess, app.Directory))
		final, runErr := p.Run()

		if err := sess.Save(app.Store); err != nil {
			return err
		}
		if runErr != nil {
			return runErr
		}

		fm, ok := final.(formModel)
		if !ok || !fm.reclassify {
			return nil
		}

		ws, err := RunWizard()
		if err != nil {
			return err
		}
		sess.ApplyWizardState(ws)
		if err := sess.Save(app.Store); err != nil {
			return err
		}
	}
}
