package kamion

import (
	"context"
	"fmt"
	"kamion-client/internal/domain"
	"kamion-client/internal/platform/obs"
	"net/http"
	"net/url"
	"strconv"
)

const shipmentPath = "/admin/shipment"

// shipmentQuery encodes the non-zero fields of q.
func shipmentQuery(q domain.ShipmentQuery) url.Values {
	v := url.Values{}
	if q.FilterID != 0 {
		v.Set("filter[id]", strconv.Itoa(q.FilterID))
	}
	if q.Page != 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage != 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	return v
}

// ListShipments fetches one page of shipments. Identical requests that are
// already in flight (same query and credential) share a single round trip.
func (c *Client) ListShipments(ctx context.Context, q domain.ShipmentQuery) (_ domain.ShipmentPage, err error) {
	ctx = obs.WithRequestID(ctx)
	defer obs.Time(ctx, "kamion.ListShipments")(&err)

	path := shipmentPath
	if enc := shipmentQuery(q).Encode(); enc != "" {
		path += "?" + enc
	}

	key := path + "|" + c.Token()
	v, err, _ := c.inflight.Do(key, func() (any, error) {
		return c.fetchShipmentPage(ctx, path)
	})
	if err != nil {
		return domain.ShipmentPage{}, fmt.Errorf("list shipments: %w", err)
	}

	return v.(domain.ShipmentPage), nil
}

func (c *Client) fetchShipmentPage(ctx context.Context, path string) (domain.ShipmentPage, error) {
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, path, nil)
	})
	if err != nil {
		return domain.ShipmentPage{}, err
	}
	defer resp.Body.Close()

	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		return domain.ShipmentPage{}, err
	}

	shipments, err := decodeData[[]domain.Shipment](env, "shipments")
	if err != nil {
		return domain.ShipmentPage{}, err
	}
	if shipments == nil {
		shipments = []domain.Shipment{}
	}

	return domain.ShipmentPage{Shipments: shipments, Meta: env.Meta}, nil
}
