package ports

import (
	"context"
	"kamion-client/internal/domain"
)

// Contract for the backend operations the client state depends on.
type AuthGateway interface {
	// Exchange credentials for a session.
	Login(ctx context.Context, email string, password string) (domain.Session, error)
	// Register or (with "") remove the bearer credential used by later calls.
	SetToken(token string)
}

// Read access to the shipment list endpoint.
type ShipmentGateway interface {
	ListShipments(ctx context.Context, q domain.ShipmentQuery) (domain.ShipmentPage, error)
}
