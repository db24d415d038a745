package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	usecase "github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/cli/formatter"
)

func newPersonsCmd(app *App) *cobra.Command {
	var rf rangeFlags

	cmd := &cobra.Command{
		Use:   "persons",
		Short: "List everyone with assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, from, to, err := rf.resolve()
			if err != nil {
				return err
			}

			resp, err := app.Workload.TeamOverview(context.Background(), usecase.TeamRequest{From: from, To: to})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatPersons(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&rf.from, "from", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rf.to, "to", "", "range end (YYYY-MM-DD)")
	return cmd
}
