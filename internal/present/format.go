// Package present turns shipment snapshots into display strings.
// Money and coordinates are parsed here and nowhere else.
package present

import (
	"fmt"
	"kamion-client/internal/domain"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dash = "-"

// Location is the zone dates are rendered in (Türkiye, UTC+3 all year).
var Location = time.FixedZone("TRT", 3*60*60)

func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return dash
	}
	return s
}

func FirstOrDash(values []string) string {
	if len(values) == 0 {
		return dash
	}
	return OrDash(values[0])
}

// Date renders a Unix-seconds timestamp as dd.mm.yyyy.
func Date(u domain.UnixTime) string {
	if u.IsZero() {
		return dash
	}
	return u.Time().In(Location).Format("02.01.2006")
}

// PickUp renders "dd.mm.yyyy / start-end".
func PickUp(s domain.Shipment) string {
	window := TimeWindow(s.TimeInterval)
	if window == "" {
		return Date(s.PickUpDate)
	}
	return Date(s.PickUpDate) + " / " + window
}

func TimeWindow(ti domain.TimeInterval) string {
	if ti.Start == "" && ti.End == "" {
		return ""
	}
	return ti.Start + "-" + ti.End
}

// Price renders the whole-lira part of an amount with dot thousands
// separators, e.g. "27500.75" -> "27.500₺ + KDV".
func Price(a domain.Amount) string {
	raw := strings.TrimSpace(a.String())
	if raw == "" {
		raw = "0"
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return dash
	}
	return groupThousands(d.Truncate(0).String()) + "₺ + KDV"
}

// Earnings is the carrier-facing price shown on cards and the detail screen.
func Earnings(s domain.Shipment) string {
	return Price(s.Price.Shipper.FreightPrice)
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Tonnage renders "min-max Ton Max." or "-" when either bound is missing.
func Tonnage(t domain.Tonnage) string {
	if t.Min == 0 || t.Max == 0 {
		return dash
	}
	return fmt.Sprintf("%s-%s Ton Max.", trimFloat(t.Min), trimFloat(t.Max))
}

func Weight(t domain.Tonnage) string {
	if t.Max == 0 {
		return dash
	}
	return trimFloat(t.Max) + " ton"
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func Route(s domain.Shipment) string {
	return OrDash(s.DepartureAddress.Place()) + " → " + OrDash(s.DeliveryAddress.Place())
}

func Status(s domain.Shipment) string {
	return OrDash(s.LatestStatus.TypeValue)
}

// Title is the detail screen header.
func Title(s domain.Shipment) string {
	return fmt.Sprintf("SEFER NO : %d", s.ID)
}

// EmptyMessage is shown for an empty list; it differs while a search is active.
func EmptyMessage(searchTerm string) string {
	if t := strings.TrimSpace(searchTerm); t != "" {
		return fmt.Sprintf("%q için sonuç bulunamadı", t)
	}
	return "Henüz yük bulunmuyor"
}
