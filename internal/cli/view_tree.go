package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	usecase "github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/cli/formatter"
)

// treeLoadedMsg signals that the hierarchy has been loaded.
type treeLoadedMsg struct {
	resp *usecase.TreeResponse
	err  error
}

// treeRow pairs a rendered tree item with the state needed to toggle it.
type treeRow struct {
	id       string
	expanded bool
	hasKids  bool
	item     formatter.TreeItem
}

// treeView shows the project hierarchy with per-row expand/collapse. The
// collapse flag persists through the project service, so the CLI and the
// next TUI session see the same state.
type treeView struct {
	state   *SharedState
	rows    []treeRow
	cursor  int
	loading bool
	err     error
}

func newTreeView(state *SharedState) *treeView {
	return &treeView{
		state:   state,
		loading: true,
	}
}

func (v *treeView) ID() ViewID    { return ViewTree }
func (v *treeView) Title() string { return "Hierarchy" }

func (v *treeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "fold/unfold")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *treeView) Init() tea.Cmd {
	return v.loadData()
}

func (v *treeView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		resp, err := app.Tree.Tree(context.Background())
		return treeLoadedMsg{resp: resp, err: err}
	}
}

// toggleCursor flips the expansion flag of the selected row and reloads.
func (v *treeView) toggleCursor() tea.Cmd {
	if v.cursor >= len(v.rows) {
		return nil
	}
	row := v.rows[v.cursor]
	if !row.hasKids {
		return nil
	}

	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		if err := app.Projects.SetExpanded(ctx, row.id, !row.expanded); err != nil {
			return treeLoadedMsg{err: err}
		}
		resp, err := app.Tree.Tree(ctx)
		return treeLoadedMsg{resp: resp, err: err}
	}
}

func (v *treeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case treeLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.rows = buildTreeRows(msg.resp)
		if v.cursor >= len(v.rows) {
			v.cursor = max(0, len(v.rows)-1)
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.rows)-1 {
				v.cursor++
			}
		case "enter", " ":
			return v, v.toggleCursor()
		case "r":
			v.loading = true
			return v, v.loadData()
		}
	}

	return v, nil
}

// buildTreeRows flattens the forest into display rows, descending only into
// expanded parents.
func buildTreeRows(resp *usecase.TreeResponse) []treeRow {
	var rows []treeRow

	var walk func(nodes []*usecase.TreeNode, level int)
	walk = func(nodes []*usecase.TreeNode, level int) {
		for i, n := range nodes {
			hasKids := len(n.Children) > 0
			expanded := n.Project.IsExpanded
			rows = append(rows, treeRow{
				id:       n.Project.ID,
				expanded: expanded,
				hasKids:  hasKids,
				item: formatter.TreeItem{
					Title:     n.Project.Name,
					Level:     level,
					IsLast:    i == len(nodes)-1,
					Rollup:    n.Rollup,
					Collapsed: hasKids && !expanded,
					Badge:     formatter.ScheduleBadge(n),
				},
			})
			if hasKids && expanded {
				walk(n.Children, level+1)
			}
		}
	}
	walk(resp.Roots, 0)

	return rows
}

func (v *treeView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.rows) == 0 {
		return "\n  " + formatter.Dim("No projects yet.") + "\n"
	}

	items := make([]formatter.TreeItem, len(v.rows))
	for i, r := range v.rows {
		items[i] = r.item
	}
	rendered := strings.Split(strings.TrimRight(formatter.RenderTree(items), "\n"), "\n")

	// Prefix the cursor column after rendering so badge alignment holds.
	var b strings.Builder
	b.WriteString("\n")
	for i, line := range rendered {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString("  " + cursor + line + "\n")
	}

	return b.String()
}
