package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	usecase "github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/cli/formatter"
)

func newWorkloadCmd(app *App) *cobra.Command {
	var rf rangeFlags

	cmd := &cobra.Command{
		Use:   "workload [person]",
		Short: "Show a person's timeline or the team overview",
		Long: `Without a person, prints the team overview: one row per person with
average load, peak load and overloaded days. With a person, prints their
bucketed timeline plus the projects behind it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gran, from, to, err := rf.resolve()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if len(args) == 0 {
				resp, err := app.Workload.TeamOverview(ctx, usecase.TeamRequest{From: from, To: to})
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatTeam(resp))
				return nil
			}

			resp, err := app.Workload.PersonTimeline(ctx, usecase.TimelineRequest{
				Person:      args[0],
				Granularity: gran,
				From:        from,
				To:          to,
			})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTimeline(resp))
			return nil
		},
	}

	rf.register(cmd.Flags())
	return cmd
}
