package ui

import (
	"context"
	"kamion-client/internal/domain"
	"kamion-client/internal/present"
	"kamion-client/internal/store"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loadDetailScreen struct {
	env      *env
	id       int
	viewport viewport.Model
	spinner  spinner.Model
	state    store.ShipmentState
	pending  bool
	alert    *alert
}

func newLoadDetail(e *env, id int) *loadDetailScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	s := &loadDetailScreen{
		env:      e,
		id:       id,
		viewport: viewport.New(80, 20),
		spinner:  sp,
		state:    e.store.Snapshot().Shipments,
	}
	s.resize()
	return s
}

func (s *loadDetailScreen) Init() tea.Cmd {
	// Until the request returns, a previous shipment must not show.
	s.pending = true
	shipments, id := s.env.store.Shipments, s.id
	return tea.Batch(s.spinner.Tick, s.env.run("detail", func(ctx context.Context) error {
		return shipments.FetchShipmentDetail(ctx, id)
	}))
}

func (s *loadDetailScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case opDoneMsg:
		if msg.op == "detail" {
			s.pending = false
		}
		s.sync()
		return s, nil

	case stateChangedMsg:
		s.sync()
		return s, nil

	case tea.WindowSizeMsg:
		s.resize()
		s.refresh()
		return s, nil

	case spinner.TickMsg:
		if !s.loading() {
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
		switch msg.String() {
		case "esc", "backspace", "left", "h":
			return s, back
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *loadDetailScreen) loading() bool {
	return s.pending || s.state.IsDetailLoading
}

func (s *loadDetailScreen) resize() {
	if s.env.width > 0 {
		s.viewport.Width = s.env.width
	}
	if s.env.height > 0 {
		s.viewport.Height = max(s.env.height-4, 1) // header and help
	}
}

func (s *loadDetailScreen) sync() {
	s.state = s.env.store.Snapshot().Shipments
	s.refresh()

	if s.state.Error != "" && s.alert == nil {
		s.alert = newAlert(s.state.Error, s.env.store.Shipments.ClearError)
	}
}

// shipment is the loaded shipment for this screen, or nil. A current
// shipment left over from another id does not count.
func (s *loadDetailScreen) shipment() *domain.Shipment {
	if s.loading() {
		return nil
	}
	if cur := s.state.CurrentShipment; cur != nil && cur.ID == s.id {
		return cur
	}
	return nil
}

func (s *loadDetailScreen) refresh() {
	if sh := s.shipment(); sh != nil {
		s.viewport.SetContent(s.render(*sh))
	}
}

func (s *loadDetailScreen) View() string {
	st := s.env.styles
	if s.alert != nil {
		return s.alert.View(st)
	}

	help := st.Help.Render("esc: geri • ↑↓: kaydır")
	if s.loading() {
		return st.Header.Render("Yük Detayı") + "\n" + s.spinner.View() + " Yük detayı yükleniyor...\n" + help
	}

	sh := s.shipment()
	if sh == nil {
		return st.Header.Render("Yük Detayı") + "\n" + st.Title.Render("Yük Bulunamadı") + "\n" + help
	}
	return st.Header.Render(present.Title(*sh)) + "\n" + s.viewport.View() + "\n" + help
}

func (s *loadDetailScreen) render(sh domain.Shipment) string {
	st := s.env.styles
	d := sh.ShipmentDetail

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, st.Label.Render(label), st.Value.Render(present.OrDash(value)))
	}

	var b strings.Builder
	section := func(title string, lines ...string) {
		b.WriteString(st.Title.Render(title))
		b.WriteString("\n")
		for _, l := range lines {
			b.WriteString(l)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	section("Güzergah",
		row("YÜKLEME", sh.DepartureAddress.Place()),
		row("TARİH", present.PickUp(sh)),
		row("ADRES", sh.DepartureAddress.Address),
		row("TESLİMAT", sh.DeliveryAddress.Place()),
		row("ADRES", sh.DeliveryAddress.Address),
	)
	section("Sürücü",
		row("AD SOYAD", sh.Driver.FullName()),
		row("TELEFON", sh.Driver.Phone),
		lipgloss.JoinHorizontal(lipgloss.Top, st.Label.Render("KAZANCINIZ"), st.Price.Render(present.Earnings(sh))),
	)
	section("Yük Sahibi", st.Value.Render(present.OrDash(sh.Shipper.Name)))
	section("Taşıma Gereksinimleri",
		row("ARAÇ", d.VehicleTypeValue),
		row("DORSE", present.FirstOrDash(d.TrailerTypeValue)),
		row("TONAJ", present.Tonnage(d.Tonnage)),
		row("ÜRÜN TİPİ", d.TypeOfGoods),
		row("YÜKLEME TİPİ", d.WayOfLoadingValue),
	)
	b.WriteString(st.Status.Render("Taşıma Durumu : " + present.Status(sh)))
	return b.String()
}
