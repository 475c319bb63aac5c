package store

import "kamion-client/internal/ports"

// The slices only need the gateway ports.
type (
	AuthGateway     = ports.AuthGateway
	ShipmentGateway = ports.ShipmentGateway
)
