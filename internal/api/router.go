package api

import (
	"kamion-client/internal/api/handlers"
	"kamion-client/internal/ports"
	"net/http"
)

// NewRouter wires the stub backend's handlers and returns an http.Handler.
// Paths match the real backend so the client can point at either.
func NewRouter(
	users ports.UserRepository,
	sessions ports.SessionStore,
	shipments ports.ShipmentRepository,
) http.Handler {
	mux := http.NewServeMux()

	authHandler := &handlers.AuthHandler{Users: users, Sessions: sessions}
	shipmentHandler := &handlers.ShipmentHandler{Repo: shipments}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/admin/login", authHandler.Login)
	mux.HandleFunc("/api/admin/shipment", authHandler.RequireBearer(shipmentHandler.List))

	return loggingMiddleware(mux)
}
