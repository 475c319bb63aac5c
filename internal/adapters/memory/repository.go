package memory

import (
	"context"
	"crypto/subtle"
	"kamion-client/internal/adapters/repositories"
	"kamion-client/internal/domain"
	"kamion-client/internal/ports"
	"sort"
	"strings"
	"sync"
)

// Account is a login the in-memory backend accepts.
type Account struct {
	Password string
	User     domain.AuthUser
}

// Repository keeps users, shipments and sessions in maps. It satisfies
// the same repository ports as the SQL adapters.
type Repository struct {
	mu        sync.RWMutex
	accounts  map[string]Account
	shipments []domain.Shipment
	sessions  map[string]int
}

var (
	_ ports.ShipmentRepository = (*Repository)(nil)
	_ ports.UserRepository     = (*Repository)(nil)
	_ ports.SessionStore       = (*Repository)(nil)
)

func NewRepository(accounts []Account, shipments []domain.Shipment) *Repository {
	r := &Repository{
		accounts: make(map[string]Account, len(accounts)),
		sessions: make(map[string]int),
	}
	for _, a := range accounts {
		r.accounts[strings.ToLower(strings.TrimSpace(a.User.Email))] = a
	}

	r.shipments = append([]domain.Shipment(nil), shipments...)
	sort.Slice(r.shipments, func(i, j int) bool { return r.shipments[i].ID < r.shipments[j].ID })
	return r
}

func (r *Repository) ListShipments(ctx context.Context, filterID int, offset int, limit int) ([]domain.Shipment, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.shipments
	if filterID > 0 {
		matched = nil
		for _, s := range r.shipments {
			if s.ID == filterID {
				matched = append(matched, s)
			}
		}
	}

	total := len(matched)
	if offset >= total {
		return []domain.Shipment{}, total, nil
	}
	end := min(offset+limit, total)
	return append([]domain.Shipment(nil), matched[offset:end]...), total, nil
}

func (r *Repository) Authenticate(ctx context.Context, email string, password string) (domain.AuthUser, bool, error) {
	r.mu.RLock()
	a, ok := r.accounts[strings.ToLower(strings.TrimSpace(email))]
	r.mu.RUnlock()

	if !ok || subtle.ConstantTimeCompare([]byte(a.Password), []byte(password)) != 1 {
		return domain.AuthUser{}, false, nil
	}
	return a.User, true, nil
}

func (r *Repository) Put(ctx context.Context, token string, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token] = userID
	return nil
}

func (r *Repository) Lookup(ctx context.Context, token string) (int, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.sessions[token]
	return id, ok, nil
}

// FromSeed builds a repository from a stub backend fixture.
func FromSeed(seed *repositories.Seed) *Repository {
	accounts := make([]Account, 0, len(seed.Users))
	for _, u := range seed.Users {
		accounts = append(accounts, Account{Password: u.Password, User: u.User})
	}
	return NewRepository(accounts, seed.Shipments)
}
