package memory

import (
	"context"
	"errors"
	"kamion-client/internal/domain"
	"kamion-client/internal/ports"
	"kamion-client/internal/services"
	"net/http"
	"sync"
)

// Gateway answers the client ports from a Repository, with the same
// messages and status codes as the HTTP stub backend. It backs offline
// mode and tests.
type Gateway struct {
	repo *Repository

	mu    sync.Mutex
	token string
	calls []domain.ShipmentQuery
	fail  error
}

var (
	_ ports.AuthGateway     = (*Gateway)(nil)
	_ ports.ShipmentGateway = (*Gateway)(nil)
)

func NewGateway(repo *Repository) *Gateway {
	return &Gateway{repo: repo}
}

func (g *Gateway) Login(ctx context.Context, email string, password string) (domain.Session, error) {
	if err := g.takeFailure(); err != nil {
		return domain.Session{}, err
	}

	session, err := services.Login(ctx, email, password, g.repo, g.repo)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return domain.Session{}, &ports.RejectedError{
			Status:    http.StatusUnprocessableEntity,
			ErrorCode: 1002,
			Message:   "E-posta adresi veya şifre hatalı",
		}
	}
	return session, err
}

func (g *Gateway) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.token = token
}

func (g *Gateway) ListShipments(ctx context.Context, q domain.ShipmentQuery) (domain.ShipmentPage, error) {
	g.mu.Lock()
	token := g.token
	g.calls = append(g.calls, q)
	g.mu.Unlock()

	if err := g.takeFailure(); err != nil {
		return domain.ShipmentPage{}, err
	}

	if _, ok, _ := g.repo.Lookup(ctx, token); !ok {
		return domain.ShipmentPage{}, &ports.StatusError{Code: http.StatusUnauthorized, Message: "Unauthenticated."}
	}

	res, err := services.ListShipments(ctx, services.ListShipmentsRequest{
		FilterID: q.FilterID,
		Page:     q.Page,
		PerPage:  q.PerPage,
	}, g.repo)
	if err != nil {
		return domain.ShipmentPage{}, &ports.StatusError{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	}

	meta := res.Meta
	return domain.ShipmentPage{Shipments: res.Shipments, Meta: &meta}, nil
}

// Calls returns every list query received so far.
func (g *Gateway) Calls() []domain.ShipmentQuery {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]domain.ShipmentQuery(nil), g.calls...)
}

// FailNext makes the next call return err.
func (g *Gateway) FailNext(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.fail = err
}

func (g *Gateway) takeFailure() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	err := g.fail
	g.fail = nil
	return err
}

// Token is the bearer credential currently registered.
func (g *Gateway) Token() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.token
}
