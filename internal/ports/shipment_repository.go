package ports

import (
	"context"
	"kamion-client/internal/domain"
)

// Port: storage behind the development stub backend.
type ShipmentRepository interface {
	// Return one page of shipments ordered by id, and the total count.
	// filterID == 0 means no filter.
	ListShipments(ctx context.Context, filterID, offset, limit int) ([]domain.Shipment, int, error)
}

// Port: account lookup for the stub login endpoint.
type UserRepository interface {
	// Return the user for the given credentials, or ok=false.
	Authenticate(ctx context.Context, email, password string) (domain.AuthUser, bool, error)
}

// Port: opaque bearer tokens issued by the stub backend.
type SessionStore interface {
	Put(ctx context.Context, token string, userID int) error
	Lookup(ctx context.Context, token string) (int, bool, error)
}
