package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type splashDoneMsg struct{}

type splashScreen struct {
	env  *env
	done bool
}

func newSplash(e *env) *splashScreen { return &splashScreen{env: e} }

func (s *splashScreen) Init() tea.Cmd {
	return tea.Tick(s.env.opts.SplashDelay, func(time.Time) tea.Msg { return splashDoneMsg{} })
}

func (s *splashScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case splashDoneMsg:
		return s, s.leave()
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			return s, s.leave()
		}
	}
	return s, nil
}

// leave goes straight to the list when a session was restored.
func (s *splashScreen) leave() tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true

	if s.env.store.Snapshot().Auth.IsAuthenticated {
		return navigate(newLoadList(s.env), true)
	}
	return navigate(newLogin(s.env), true)
}

func (s *splashScreen) View() string {
	st := s.env.styles
	body := lipgloss.JoinVertical(lipgloss.Center,
		st.Brand.Render("K A M I O N"),
		st.Subtitle.Render("Yük yönetimi"),
	)
	if s.env.width > 0 && s.env.height > 0 {
		return lipgloss.Place(s.env.width, s.env.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}
