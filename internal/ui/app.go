package ui

import (
	"context"
	"kamion-client/internal/store"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the front end.
type Options struct {
	SplashDelay   time.Duration
	DebounceDelay time.Duration
	Styles        *Styles
}

// screen is one entry of the navigation stack.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (screen, tea.Cmd)
	View() string
}

// closer is implemented by screens owning background work. Stop must not
// block; it runs on the event loop. Close may wait.
type closer interface {
	Stop()
	Close()
}

type (
	// stateChangedMsg is delivered after the store reported a change.
	stateChangedMsg struct{}

	// opDoneMsg is delivered when a store operation started by a screen returns.
	opDoneMsg struct {
		op  string
		err error
	}

	navigateMsg struct {
		to      screen
		replace bool
	}

	backMsg   struct{}
	logoutMsg struct{}
)

func navigate(to screen, replace bool) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to, replace: replace} }
}

func back() tea.Msg { return backMsg{} }

// env is what every screen shares: the store, the request context and
// the rendering setup.
type env struct {
	ctx    context.Context
	store  *store.Store
	opts   Options
	styles Styles
	width  int
	height int
}

// run wraps a blocking store operation into a command.
func (e *env) run(op string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(e.ctx)}
	}
}

// App is the root model. It owns the navigation stack and forwards
// store change notifications to the visible screen.
type App struct {
	env   *env
	stack []screen
}

// New builds the front end. ctx bounds every request the screens issue.
func New(ctx context.Context, st *store.Store, opts Options) *App {
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	e := &env{ctx: ctx, store: st, opts: opts, styles: styles}
	return &App{env: e, stack: []screen{newSplash(e)}}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(waitForChange(a.env.store.Changes()), a.top().Init())
}

// waitForChange turns one store notification into a message. It is
// re-armed after every delivery.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.env.width, a.env.height = msg.Width, msg.Height

	case stateChangedMsg:
		cmd := a.forward(msg)
		return a, tea.Batch(waitForChange(a.env.store.Changes()), cmd)

	case navigateMsg:
		if msg.replace {
			stopScreen(a.top())
			a.stack[len(a.stack)-1] = msg.to
		} else {
			a.stack = append(a.stack, msg.to)
		}
		return a, msg.to.Init()

	case backMsg:
		if len(a.stack) < 2 {
			return a, nil
		}
		stopScreen(a.top())
		a.stack = a.stack[:len(a.stack)-1]
		return a, a.forward(stateChangedMsg{})

	case logoutMsg:
		// Requests still in flight are discarded by the store after Logout.
		for _, s := range a.stack {
			stopScreen(s)
		}
		a.env.store.Logout()
		login := newLogin(a.env)
		a.stack = []screen{login}
		return a, login.Init()
	}

	return a, a.forward(msg)
}

func (a *App) View() string {
	return a.top().View()
}

func (a *App) top() screen { return a.stack[len(a.stack)-1] }

// Depth reports how many screens are stacked.
func (a *App) Depth() int { return len(a.stack) }

func (a *App) forward(msg tea.Msg) tea.Cmd {
	next, cmd := a.top().Update(msg)
	a.stack[len(a.stack)-1] = next
	return cmd
}

// Close stops background work owned by the stacked screens and waits for
// it. Call it after the program exits.
func (a *App) Close() {
	for _, s := range a.stack {
		closeScreen(s)
	}
}

func closeScreen(s screen) {
	if c, ok := s.(closer); ok {
		c.Close()
	}
}

func stopScreen(s screen) {
	if c, ok := s.(closer); ok {
		c.Stop()
	}
}
