package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	usecase "github.com/arqdariogomez/dashboard-carga-sub001/internal/app"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/cli/formatter"
	"github.com/arqdariogomez/dashboard-carga-sub001/internal/domain"
)

// timelineLoadedMsg signals that a person's timeline has been loaded.
type timelineLoadedMsg struct {
	resp *usecase.TimelineResponse
	err  error
}

// timelineView shows one person's bucketed workload. Granularity switches
// with d/w/m; arrow keys shift the visible range by its own length.
type timelineView struct {
	state   *SharedState
	person  string
	gran    domain.Granularity
	from    *time.Time
	to      *time.Time
	resp    *usecase.TimelineResponse
	vp      viewport.Model
	loading bool
	err     error
}

func newTimelineView(state *SharedState, person string) *timelineView {
	vp := viewport.New(state.Width, state.ContentHeight())
	return &timelineView{
		state:   state,
		person:  person,
		vp:      vp,
		loading: true,
	}
}

func (v *timelineView) ID() ViewID    { return ViewTimeline }
func (v *timelineView) Title() string { return v.person }

func (v *timelineView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("d", "w", "m"), key.WithHelp("d/w/m", "granularity")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "shift range")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *timelineView) Init() tea.Cmd {
	return v.loadData()
}

func (v *timelineView) loadData() tea.Cmd {
	app := v.state.App
	req := usecase.TimelineRequest{
		Person:      v.person,
		Granularity: v.gran,
		From:        v.from,
		To:          v.to,
	}
	return func() tea.Msg {
		resp, err := app.Workload.PersonTimeline(context.Background(), req)
		return timelineLoadedMsg{resp: resp, err: err}
	}
}

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timelineLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.resp = msg.resp
		v.vp.SetContent(formatter.FormatTimeline(v.resp))
		v.vp.GotoTop()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "d", "w", "m":
			g, err := domain.ParseGranularity(msg.String())
			if err == nil && g != v.gran {
				v.gran = g
				v.loading = true
				return v, v.loadData()
			}
		case "left":
			return v, v.shiftRange(-1)
		case "right":
			return v, v.shiftRange(1)
		case "r":
			v.loading = true
			return v, v.loadData()
		default:
			var cmd tea.Cmd
			v.vp, cmd = v.vp.Update(msg)
			return v, cmd
		}
	}

	return v, nil
}

// shiftRange moves the visible range by its own length in the given
// direction and reloads. Before the first explicit shift the range comes
// from the last response.
func (v *timelineView) shiftRange(dir int) tea.Cmd {
	if v.resp == nil || !v.resp.Range.Valid() {
		return nil
	}

	days := int(v.resp.Range.End.Sub(v.resp.Range.Start).Hours()/24) + 1
	from := v.resp.Range.Start.AddDate(0, 0, dir*days)
	to := v.resp.Range.End.AddDate(0, 0, dir*days)
	v.from = &from
	v.to = &to

	v.loading = true
	return v.loadData()
}

func (v *timelineView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	return v.vp.View()
}
