package main

import (
	"context"
	"fmt"
	"io"
	"kamion-client/internal/domain"
	"kamion-client/internal/present"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	filterID int
	page     int
	perPage  int
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "List loads",
	Long: `Prints one page of loads, or the load with --id.

Examples:
  kamion loads --page 2 --per-page 20
  kamion loads --id 22993`,
	RunE: runLoads,
}

var loadCmd = &cobra.Command{
	Use:   "load [id]",
	Short: "Show the details of one load",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func init() {
	loadsCmd.Flags().IntVar(&filterID, "id", 0, "Search by load id")
	loadsCmd.Flags().IntVar(&page, "page", 0, "Page number (default: first)")
	loadsCmd.Flags().IntVar(&perPage, "per-page", 0, "Page size (default: backend)")
}

func runLoads(cmd *cobra.Command, args []string) error {
	st, err := newStore()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*cfg.API.Timeout)
	defer cancel()

	if err := ensureSession(ctx, st); err != nil {
		return err
	}

	if filterID > 0 {
		err = st.Shipments.SearchShipments(ctx, filterID)
	} else {
		if perPage == 0 {
			perPage = cfg.Search.PerPage
		}
		err = st.Shipments.FetchShipments(ctx, domain.ShipmentQuery{Page: page, PerPage: perPage})
	}

	state := st.Snapshot().Shipments
	if err != nil {
		return fmt.Errorf("loads: %s", state.Error)
	}

	out := cmd.OutOrStdout()
	if len(state.Shipments) == 0 {
		term := ""
		if filterID > 0 {
			term = strconv.Itoa(filterID)
		}
		fmt.Fprintln(out, present.EmptyMessage(term))
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SEFER", "GÜZERGAH", "YÜKLEME", "TONAJ", "FİYAT", "DURUM")
	for _, s := range state.Shipments {
		t.Row(
			strconv.Itoa(s.ID),
			present.Route(s),
			present.Date(s.PickUpDate),
			present.Weight(s.ShipmentDetail.Tonnage),
			present.Earnings(s),
			present.Status(s),
		)
	}
	fmt.Fprintln(out, t.String())
	fmt.Fprintf(out, "Sayfa %d/%d\n", state.CurrentPage, state.TotalPages)
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("load: invalid id %q", args[0])
	}

	st, err := newStore()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*cfg.API.Timeout)
	defer cancel()

	if err := ensureSession(ctx, st); err != nil {
		return err
	}

	if err := st.Shipments.FetchShipmentDetail(ctx, id); err != nil {
		return fmt.Errorf("load: %s", st.Snapshot().Shipments.Error)
	}

	printDetail(cmd.OutOrStdout(), *st.Snapshot().Shipments.CurrentShipment)
	return nil
}

func printDetail(w io.Writer, s domain.Shipment) {
	d := s.ShipmentDetail
	rows := [][2]string{
		{"Güzergah", present.Route(s)},
		{"Yükleme", present.PickUp(s)},
		{"Sürücü", present.OrDash(s.Driver.FullName())},
		{"Telefon", present.OrDash(s.Driver.Phone)},
		{"Kazancınız", present.Earnings(s)},
		{"Yük sahibi", present.OrDash(s.Shipper.Name)},
		{"Araç", present.OrDash(d.VehicleTypeValue)},
		{"Dorse", present.FirstOrDash(d.TrailerTypeValue)},
		{"Tonaj", present.Tonnage(d.Tonnage)},
		{"Ürün tipi", present.OrDash(d.TypeOfGoods)},
		{"Yükleme tipi", present.OrDash(d.WayOfLoadingValue)},
		{"Taşıma durumu", present.Status(s)},
	}

	fmt.Fprintln(w, present.Title(s))
	for _, r := range rows {
		fmt.Fprintf(w, "  %-14s %s\n", r[0], r[1])
	}
}
