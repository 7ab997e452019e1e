package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/irbforge/internal/cli/formatter"
	"github.com/alexanderramin/irbforge/internal/session"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	var submit bool

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review entered answers and optionally submit",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.Load(app.Store)
			if err != nil {
				return err
			}
			if sess == nil {
				fmt.Println(formatter.Dim("No application in progress."))
				return nil
			}

			fmt.Print(formatter.FormatReview(sess))

			if !submit {
				return nil
			}

			if err := sess.Submit(); err != nil {
				if errors.Is(err, session.ErrIncomplete) {
					fmt.Println("\n" + formatter.StyleYellow.Render(err.Error()))
					return nil
				}
				return err
			}
			if err := sess.Save(app.Store); err != nil {
				return err
			}

			fmt.Printf("\n%s %s\n",
				formatter.StyleGreen.Render("✔ Submitted"),
				formatter.Dim(sess.SubmissionID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&submit, "submit", false, "Submit the application if every section validates")

	return cmd
}
