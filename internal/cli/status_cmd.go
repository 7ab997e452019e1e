package cli

import (
	"fmt"

	"github.com/alexanderramin/irbforge/internal/cli/formatter"
	"github.com/alexanderramin/irbforge/internal/session"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show application progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.Load(app.Store)
			if err != nil {
				return err
			}
			if sess == nil {
				fmt.Println(formatter.Dim("No application in progress."))
				return nil
			}

			fmt.Print(formatter.FormatStatus(sess))
			return nil
		},
	}
}
