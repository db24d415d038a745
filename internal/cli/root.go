package cli

import (
	"github.com/spf13/cobra"

	"github.com/arqdariogomez/dashboard-carga-sub001/internal/config"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/service"
)

// App holds references to the service interfaces used by CLI commands and
// TUI views.
type App struct {
	Projects service.ProjectService
	Workload service.WorkloadService
	Tree     service.TreeService
	Import   service.ImportService
	Config   service.ConfigProvider

	// ConfigPath is where "config init" writes and "config show" points.
	ConfigPath string

	// IsInteractive reports whether stdin is a terminal. When it is, running
	// carga with no arguments opens the TUI dashboard instead of help.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "carga" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "carga",
		Short: "Calendar-aware team workload dashboard",
		Long: `carga keeps a shared project list and answers who is working on what,
when, and how loaded each person is, counting working days only.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// --config outranks CARGA_CONFIG and the default path.
			if configPath != "" {
				app.ConfigPath = configPath
				app.Config = config.File{Path: configPath}
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return RunTUI(app)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "calendar config file (overrides CARGA_CONFIG)")

	root.AddCommand(
		newWorkloadCmd(app),
		newPersonsCmd(app),
		newTreeCmd(app),
		newProjectCmd(app),
		newImportCmd(app),
		newConfigCmd(app),
		newServeCmd(app),
	)

	return root
}
