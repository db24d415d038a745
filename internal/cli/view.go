package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewTimeline
	ViewTree
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// SharedState carries the services and terminal geometry every view needs.
type SharedState struct {
	App    *App
	Width  int
	Height int
}

// ContentHeight is the rows left for a view after the header and status bar.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		h = 1
	}
	return h
}
