package present

import (
	"kamion-client/internal/domain"
	"strconv"
	"strings"
)

// Filter keeps the shipments whose id, route places or status label
// contain text, case-insensitively. Empty text keeps everything.
func Filter(shipments []domain.Shipment, text string) []domain.Shipment {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return shipments
	}

	out := make([]domain.Shipment, 0, len(shipments))
	for _, s := range shipments {
		haystack := []string{
			strconv.Itoa(s.ID),
			s.DepartureAddress.Place(),
			s.DeliveryAddress.Place(),
			s.LatestStatus.TypeValue,
		}
		for _, h := range haystack {
			if strings.Contains(strings.ToLower(h), needle) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
