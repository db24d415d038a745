package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/cli/formatter"
)

func newTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show the project hierarchy with rolled-up schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Tree.Tree(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTree(resp))
			return nil
		},
	}
}
