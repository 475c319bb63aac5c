package ui

import (
	"context"
	"fmt"
	"kamion-client/internal/domain"
	"kamion-client/internal/present"
	"kamion-client/internal/search"
	"kamion-client/internal/store"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// cardHeight is the rendered height of one load card, border and margin included.
const cardHeight = 6

type loadListScreen struct {
	env        *env
	search     textinput.Model
	searching  bool
	controller *search.Controller
	spinner    spinner.Model
	state      store.ShipmentState
	cursor     int
	alert      *alert
}

func newLoadList(e *env) *loadListScreen {
	in := textinput.New()
	in.Placeholder = "Arayın..."
	in.Prompt = "🔍 "
	in.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &loadListScreen{
		env:        e,
		search:     in,
		controller: search.NewController(e.ctx, e.store.Shipments, e.opts.DebounceDelay),
		spinner:    sp,
		state:      e.store.Snapshot().Shipments,
	}
}

func (s *loadListScreen) Init() tea.Cmd {
	shipments := s.env.store.Shipments
	return tea.Batch(s.spinner.Tick, s.env.run("fetch", func(ctx context.Context) error {
		return shipments.FetchShipments(ctx, domain.ShipmentQuery{})
	}))
}

func (s *loadListScreen) Stop()  { s.controller.Stop() }
func (s *loadListScreen) Close() { s.controller.Close() }

func (s *loadListScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg, opDoneMsg:
		s.sync()
		return s, nil

	case spinner.TickMsg:
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
		if s.searching {
			return s, s.updateSearch(msg)
		}
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *loadListScreen) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyTab, tea.KeyDown:
		s.searching = false
		s.search.Blur()
		return nil
	}

	before := s.search.Value()
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	if after := s.search.Value(); after != before {
		s.controller.Type(after)
		s.cursor = 0
	}
	return cmd
}

func (s *loadListScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	visible := s.visible()

	switch msg.String() {
	case "/", "tab":
		s.searching = true
		return s.search.Focus()
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(visible)-1 {
			s.cursor++
			return nil
		}
		return s.nextPage()
	case "n":
		return s.nextPage()
	case "r":
		s.cursor = 0
		s.search.SetValue("")
		s.controller.Type("")
	case "enter":
		if s.cursor < len(visible) {
			return navigate(newLoadDetail(s.env, visible[s.cursor].ID), false)
		}
	case "L":
		return func() tea.Msg { return logoutMsg{} }
	case "q":
		return tea.Quit
	}
	return nil
}

func (s *loadListScreen) nextPage() tea.Cmd {
	if !s.state.HasNextPage || s.state.IsLoading {
		return nil
	}
	shipments := s.env.store.Shipments
	return s.env.run("next_page", shipments.LoadNextPage)
}

func (s *loadListScreen) sync() {
	s.state = s.env.store.Snapshot().Shipments

	if n := len(s.visible()); s.cursor >= n {
		s.cursor = max(n-1, 0)
	}
	if s.state.Error != "" && s.alert == nil {
		s.alert = newAlert(s.state.Error, s.env.store.Shipments.ClearError)
	}
}

// visible is the list as shown. An id term was already searched on the
// backend; any other term narrows the loaded page locally.
func (s *loadListScreen) visible() []domain.Shipment {
	term := strings.TrimSpace(s.state.SearchTerm)
	if _, ok := search.ParseID(term); ok || term == "" {
		return s.state.Shipments
	}
	return present.Filter(s.state.Shipments, term)
}

func (s *loadListScreen) View() string {
	st := s.env.styles
	if s.alert != nil {
		return s.alert.View(st)
	}

	var b strings.Builder
	b.WriteString(st.Header.Render("Yükler"))
	b.WriteString("\n")
	b.WriteString(s.search.View())
	b.WriteString("\n\n")

	visible := s.visible()
	switch {
	case s.state.IsLoading && len(visible) == 0:
		b.WriteString(s.spinner.View() + " Yükler yükleniyor...")
	case len(visible) == 0:
		b.WriteString(st.Muted.Render(present.EmptyMessage(s.state.SearchTerm)))
	default:
		from, to := s.window(len(visible))
		for i := from; i < to; i++ {
			b.WriteString(s.card(visible[i], i == s.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(s.footer())
	return b.String()
}

// window returns the card range that fits the terminal and contains the cursor.
func (s *loadListScreen) window(n int) (int, int) {
	fit := n
	if s.env.height > 0 {
		fit = max((s.env.height-8)/cardHeight, 1)
	}
	if fit >= n {
		return 0, n
	}
	from := max(s.cursor-fit+1, 0)
	return from, min(from+fit, n)
}

func (s *loadListScreen) card(sh domain.Shipment, active bool) string {
	st := s.env.styles
	style := st.Card
	if active {
		style = st.CardActive
	}

	head := lipgloss.JoinHorizontal(lipgloss.Top,
		st.Title.Render(fmt.Sprintf("#%d", sh.ID)),
		"  ",
		st.Price.Render(present.Earnings(sh)),
	)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		head,
		st.Value.Render(present.Route(sh)),
		st.Muted.Render(present.Date(sh.PickUpDate)+" • "+present.Weight(sh.ShipmentDetail.Tonnage)),
		st.Status.Render(present.Status(sh)),
	))
}

func (s *loadListScreen) footer() string {
	st := s.env.styles
	page := fmt.Sprintf("Sayfa %d/%d", s.state.CurrentPage, s.state.TotalPages)
	if s.state.IsLoading && len(s.state.Shipments) > 0 {
		page += "  " + s.spinner.View()
	}
	help := "/: ara • ↑↓: seç • enter: detay • n: sonraki sayfa • r: yenile • L: çıkış yap • q: kapat"
	return st.Muted.Render(page) + "\n" + st.Help.Render(help)
}
