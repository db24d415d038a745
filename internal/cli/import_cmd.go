package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/cli/formatter"
)

func newImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a project list from a CSV or JSON file",
		Long: `Appends the file's projects to the stored list. With --replace the
stored list is swapped for the file's contents in one transaction; a
failed import leaves the store untouched either way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Import.ImportFile(context.Background(), args[0], replace)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d projects (%d people)\n", res.ProjectCount, res.PersonCount)
			if res.Replaced {
				fmt.Println(formatter.Dim("Existing list replaced"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "replace the stored list instead of appending")
	return cmd
}
