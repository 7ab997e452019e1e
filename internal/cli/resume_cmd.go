package cli

import (
	"fmt"

	"github.com/alexanderramin/irbforge/internal/cli/formatter"
	"github.com/alexanderramin/irbforge/internal/session"
	"github.com/spf13/cobra"
)

func newResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Continue an in-progress application",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("resume requires an interactive terminal")
			}

			sess, err := session.Load(app.Store)
			if err != nil {
				return err
			}
			if sess == nil {
				fmt.Println(formatter.Dim("No application in progress. Run `irbforge new` to start one."))
				return nil
			}

			return runForm(app, sess)
		},
	}
}
