package kamion

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"kamion-client/internal/domain"
	"kamion-client/internal/ports"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, attempts int) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{BaseURL: srv.URL + "/api/", Timeout: 2 * time.Second, RetryAttempts: attempts})
	require.NoError(t, err)
	return c
}

func writeEnvelope(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewClientRejectsNonHTTPURL(t *testing.T) {
	_, err := NewClient(Options{BaseURL: "ftp://example.com"})
	assert.Error(t, err)
}

func TestLoginDecodesSession(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"email": "test@kamion.co", "password": "kamion123"}, body)

		writeEnvelope(w, http.StatusOK, `{"success":true,"status":200,"message":null,"data":{
			"id":7,"name":"Deneme","surname":"Kullanıcı","email":"test@kamion.co",
			"created_at":"1684713600","token":"tok-1"}}`)
	}, 1)

	session, err := c.Login(context.Background(), "test@kamion.co", "kamion123")
	require.NoError(t, err)

	assert.Equal(t, "tok-1", session.Token)
	assert.Equal(t, 7, session.User.ID)
	assert.Equal(t, "Deneme Kullanıcı", session.User.FullName())
	assert.Equal(t, domain.UnixTime(1684713600), session.User.CreatedAt)

	// Login leaves the credential to the caller.
	assert.Empty(t, c.Token())
}

func TestLoginRejectedEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, `{"success":false,"status":422,"error_code":1002,
			"message":"E-posta adresi veya şifre hatalı","data":{"token":"ignored"}}`)
	}, 1)

	_, err := c.Login(context.Background(), "test@kamion.co", "wrong")
	require.Error(t, err)

	var rejected *ports.RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, 1002, rejected.ErrorCode)
	assert.Equal(t, "E-posta adresi veya şifre hatalı", ports.ErrorMessage(err, "fallback"))
}

func TestLoginWithoutTokenFails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, `{"success":true,"status":200,"data":{"id":1}}`)
	}, 1)

	_, err := c.Login(context.Background(), "a@b.c", "x")
	require.Error(t, err)
	assert.Equal(t, "fallback", ports.ErrorMessage(err, "fallback"))
}

func TestStatusErrorCarriesEnvelopeMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnprocessableEntity, `{"success":false,"message":"E-posta ve şifre zorunludur"}`)
	}, 1)

	_, err := c.Login(context.Background(), "", "")

	var se *ports.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnprocessableEntity, se.Code)
	assert.Equal(t, "E-posta ve şifre zorunludur", ports.ErrorMessage(err, "fallback"))
}

func TestStatusErrorWithoutEnvelopeUsesFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	}, 1)

	_, err := c.ListShipments(context.Background(), domain.ShipmentQuery{})

	var se *ports.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "<html>bad gateway</html>", se.Body)
	assert.Equal(t, "Yük listesi alınamadı", ports.ErrorMessage(err, "Yük listesi alınamadı"))
}

func TestSetTokenControlsBearerHeader(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mu.Unlock()
		writeEnvelope(w, http.StatusOK, `{"success":true,"status":200,"data":[]}`)
	}, 1)

	ctx := context.Background()

	c.SetToken("tok-1")
	assert.Equal(t, "tok-1", c.Token())
	_, err := c.ListShipments(ctx, domain.ShipmentQuery{})
	require.NoError(t, err)

	c.SetToken("")
	assert.Empty(t, c.Token())
	_, err = c.ListShipments(ctx, domain.ShipmentQuery{})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Bearer tok-1", ""}, seen)
}

func TestListShipmentsEncodesOnlySetFields(t *testing.T) {
	tests := []struct {
		name  string
		query domain.ShipmentQuery
		want  map[string]string
	}{
		{"empty", domain.ShipmentQuery{}, map[string]string{}},
		{"filter", domain.ShipmentQuery{FilterID: 22993}, map[string]string{"filter[id]": "22993"}},
		{"page", domain.ShipmentQuery{Page: 2, PerPage: 20}, map[string]string{"page": "2", "per_page": "20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make(chan map[string]string, 1)
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/admin/shipment", r.URL.Path)
				m := map[string]string{}
				for k, v := range r.URL.Query() {
					m[k] = v[0]
				}
				got <- m
				writeEnvelope(w, http.StatusOK, `{"success":true,"status":200,"data":[]}`)
			}, 1)

			_, err := c.ListShipments(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, <-got)
		})
	}
}

func TestListShipmentsDecodesPage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		writeEnvelope(w, http.StatusOK, `{"success":true,"status":200,"data":[
			{"id":22993,"pick_up_date":1684713600,
			 "price":{"shipper":{"freight_price":27500.5}},
			 "shipment_detail":{"tonnage":{"min":10,"max":20},"trailer_type_value":["Tenteli"]},
			 "latest_status":{"type":2,"type_value":"Yolda"}}],
			"meta":{"current_page":1,"last_page":3,"per_page":15,"total":40,"from":1,"to":15}}`)
	}, 1)

	page, err := c.ListShipments(context.Background(), domain.ShipmentQuery{})
	require.NoError(t, err)

	require.Len(t, page.Shipments, 1)
	s := page.Shipments[0]
	assert.Equal(t, 22993, s.ID)
	assert.Equal(t, domain.Amount("27500.5"), s.Price.Shipper.FreightPrice)
	assert.Equal(t, "Yolda", s.LatestStatus.TypeValue)

	require.NotNil(t, page.Meta)
	assert.True(t, page.Meta.HasNext())
	assert.Equal(t, 40, page.Meta.Total)
}

func TestListShipmentsNullDataIsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, `{"success":true,"status":200,"data":null}`)
	}, 1)

	page, err := c.ListShipments(context.Background(), domain.ShipmentQuery{FilterID: 1})
	require.NoError(t, err)
	assert.NotNil(t, page.Shipments)
	assert.Empty(t, page.Shipments)
	assert.Nil(t, page.Meta)
}

func TestUnauthorizedIsReturnedAsStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, `{"success":false,"status":401,"message":"Unauthenticated."}`)
	}, 3)
	c.SetToken("expired")

	_, err := c.ListShipments(context.Background(), domain.ShipmentQuery{})

	var se *ports.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.Equal(t, "Unauthenticated.", ports.ErrorMessage(err, "fallback"))
	// The credential is not dropped by the client.
	assert.Equal(t, "expired", c.Token())
}

func TestListShipmentsRetriesTransientFailures(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeEnvelope(w, http.StatusOK, `{"success":true,"status":200,"data":[{"id":1}]}`)
	}, 3)

	page, err := c.ListShipments(context.Background(), domain.ShipmentQuery{})
	require.NoError(t, err)
	assert.Len(t, page.Shipments, 1)
	assert.Equal(t, int32(2), hits.Load())
}

func TestListShipmentsDoesNotRetryClientErrors(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeEnvelope(w, http.StatusUnprocessableEntity, `{"success":false,"message":"page must be a positive integer"}`)
	}, 3)

	_, err := c.ListShipments(context.Background(), domain.ShipmentQuery{Page: -1})
	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestListShipmentsSharesIdenticalInflightRequests(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		writeEnvelope(w, http.StatusOK, `{"success":true,"status":200,"data":[{"id":1}]}`)
	}, 1)

	var wg sync.WaitGroup
	results := make([]domain.ShipmentPage, 2)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			page, err := c.ListShipments(context.Background(), domain.ShipmentQuery{Page: 1})
			assert.NoError(t, err)
			results[i] = page
		}()
		if i == 0 {
			require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)
		}
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, results[0], results[1])
}
