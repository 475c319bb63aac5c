package ui

import (
	"context"
	"kamion-client/internal/store"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const msgEmptyFields = "Lütfen tüm alanları doldurun"

type loginScreen struct {
	env      *env
	email    textinput.Model
	password textinput.Model
	focus    int
	spinner  spinner.Model
	state    store.AuthState
	alert    *alert
	done     bool
}

func newLogin(e *env) *loginScreen {
	email := textinput.New()
	email.Placeholder = "Email Adresiniz"
	email.Prompt = "✉ "
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Şifreniz"
	password.Prompt = "🔒 "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &loginScreen{
		env:      e,
		email:    email,
		password: password,
		spinner:  sp,
		state:    e.store.Snapshot().Auth,
	}
}

func (s *loginScreen) Init() tea.Cmd { return textinput.Blink }

func (s *loginScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg, opDoneMsg:
		return s, s.sync()

	case spinner.TickMsg:
		if !s.state.IsLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if s.alert != nil {
			if s.alert.Update(msg) {
				s.alert = nil
			}
			return s, nil
		}
		switch msg.Type {
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			s.toggleFocus()
			return s, nil
		case tea.KeyEnter:
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	if s.focus == 0 {
		s.email, cmd = s.email.Update(msg)
	} else {
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

func (s *loginScreen) toggleFocus() {
	s.focus = 1 - s.focus
	if s.focus == 0 {
		s.password.Blur()
		s.email.Focus()
	} else {
		s.email.Blur()
		s.password.Focus()
	}
}

// submit validates locally; empty fields never reach the store.
func (s *loginScreen) submit() tea.Cmd {
	if s.state.IsLoading {
		return nil
	}

	email := strings.TrimSpace(s.email.Value())
	password := s.password.Value()
	if email == "" || password == "" {
		s.alert = newAlert(msgEmptyFields, nil)
		return nil
	}

	s.state.IsLoading = true
	auth := s.env.store.Auth
	return tea.Batch(s.spinner.Tick, s.env.run("login", func(ctx context.Context) error {
		return auth.Login(ctx, email, password)
	}))
}

func (s *loginScreen) sync() tea.Cmd {
	s.state = s.env.store.Snapshot().Auth

	if s.state.IsAuthenticated {
		if s.done {
			return nil
		}
		s.done = true
		return navigate(newLoadList(s.env), true)
	}
	if s.state.Error != "" && s.alert == nil {
		s.alert = newAlert(s.state.Error, s.env.store.Auth.ClearError)
	}
	return nil
}

func (s *loginScreen) View() string {
	st := s.env.styles
	if s.alert != nil {
		return s.alert.View(st)
	}

	button := st.Button.Render("Giriş Yapın")
	if s.state.IsLoading {
		button = s.spinner.View() + " Giriş yapılıyor..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		st.Header.Render("Kamion'a Hoşgeldiniz"),
		st.Subtitle.Render("Lütfen email ve şifrenizi girerek giriş yapınız."),
		"",
		s.email.View(),
		s.password.View(),
		"",
		button,
		st.Help.Render("tab: alan değiştir • enter: giriş • ctrl+c: çıkış"),
	)
}
