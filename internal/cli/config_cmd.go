package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/cli/formatter"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/config"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the calendar configuration",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigInitCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Config(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatConfig(cfg, app.ConfigPath))
			return nil
		},
	}
}

func newConfigInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the defaults to edit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(app.ConfigPath); err == nil {
				return fmt.Errorf("config already exists at %s", app.ConfigPath)
			}
			if err := config.Save(app.ConfigPath, domain.DefaultConfig()); err != nil {
				return err
			}

			fmt.Printf("Wrote %s\n", app.ConfigPath)
			return nil
		},
	}
}
