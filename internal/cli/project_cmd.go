package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	usecase "github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/cli/formatter"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// resolveProjectID resolves a user-supplied identifier: full UUID first, then
// a case-insensitive name match, then a unique UUID prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage the project list",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectAddCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
		newProjectInspectCmd(app),
	)

	return cmd
}

// projectFlags is the shared flag set of add and update.
type projectFlags struct {
	name      string
	branch    string
	start     string
	end       string
	assignees string
	days      float64
	priority  string
	typ       string
	parent    string
	reported  float64
}

func (pf *projectFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&pf.name, "name", "", "Project name")
	fs.StringVar(&pf.branch, "branch", "", "Branch or department label")
	fs.StringVar(&pf.start, "start", "", "Start date (YYYY-MM-DD)")
	fs.StringVar(&pf.end, "end", "", "End date (YYYY-MM-DD)")
	fs.StringVar(&pf.assignees, "assignees", "", "People on the project, comma separated")
	fs.Float64Var(&pf.days, "days", 0, "Required effort in working days")
	fs.StringVar(&pf.priority, "priority", "", "Priority: low, medium or high")
	fs.StringVar(&pf.typ, "type", "", "Free-form project type")
	fs.StringVar(&pf.parent, "parent", "", "Parent project (ID, prefix or name)")
	fs.Float64Var(&pf.reported, "reported", 0, "Reported load fraction (0-2)")
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects with their computed load",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := app.Workload.ComputedProjects(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatProjectList(views))
			return nil
		},
	}
}

func newProjectAddCmd(app *App) *cobra.Command {
	var pf projectFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if pf.name == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--name is required (run interactively for a guided form)")
				}
				if err := runProjectForm(&pf); err != nil {
					return err
				}
			}

			p := &domain.Project{
				Name:         strings.TrimSpace(pf.name),
				Branch:       strings.TrimSpace(pf.branch),
				DaysRequired: pf.days,
				Priority:     domain.Priority(pf.priority),
				Type:         pf.typ,
			}

			start, err := parseDateFlag("start", pf.start)
			if err != nil {
				return err
			}
			end, err := parseDateFlag("end", pf.end)
			if err != nil {
				return err
			}
			p.StartDate = start
			p.EndDate = end

			if pf.assignees != "" {
				p.Assignees = splitPeople(pf.assignees)
			}
			if cmd.Flags().Changed("reported") {
				r := pf.reported
				p.ReportedLoad = &r
			}
			if pf.parent != "" {
				parentID, err := resolveProjectID(ctx, app, pf.parent)
				if err != nil {
					return err
				}
				p.ParentID = &parentID
			}

			if err := app.Projects.Create(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Name, p.ID[:8])
			return nil
		},
	}

	pf.register(cmd.Flags())
	return cmd
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var pf projectFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update fields on a project",
		Long: `Only flags you pass change; everything else keeps its stored value.
Passing --start "" or --end "" clears that date.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				p.Name = strings.TrimSpace(pf.name)
			}
			if flags.Changed("branch") {
				p.Branch = strings.TrimSpace(pf.branch)
			}
			if flags.Changed("start") {
				d, err := parseDateFlag("start", pf.start)
				if err != nil {
					return err
				}
				p.StartDate = d
			}
			if flags.Changed("end") {
				d, err := parseDateFlag("end", pf.end)
				if err != nil {
					return err
				}
				p.EndDate = d
			}
			if flags.Changed("assignees") {
				p.Assignees = splitPeople(pf.assignees)
			}
			if flags.Changed("days") {
				p.DaysRequired = pf.days
			}
			if flags.Changed("priority") {
				p.Priority = domain.Priority(pf.priority)
			}
			if flags.Changed("type") {
				p.Type = pf.typ
			}
			if flags.Changed("reported") {
				r := pf.reported
				p.ReportedLoad = &r
			}
			if flags.Changed("parent") {
				if pf.parent == "" {
					p.ParentID = nil
				} else {
					parentID, err := resolveProjectID(ctx, app, pf.parent)
					if err != nil {
						return err
					}
					p.ParentID = &parentID
				}
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Updated project %s\n", p.Name)
			return nil
		},
	}

	pf.register(cmd.Flags())
	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a project (children become roots)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Printf("Removed project %s\n", p.Name)
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show one project in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}

			views, err := app.Workload.ComputedProjects(ctx)
			if err != nil {
				return err
			}
			view := usecase.NewProjectView(*p)
			for _, v := range views {
				if v.ID == id {
					view = v
					break
				}
			}

			fmt.Println(formatter.FormatProjectInspect(p, view))
			return nil
		},
	}
}

// splitPeople splits a comma- or semicolon-separated people list, dropping
// empty entries.
func splitPeople(s string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' }) {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}
