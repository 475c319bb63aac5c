// Package store holds the client's application state: an auth slice and a
// shipment slice, each mutated only by its own operations.
//
// Operations block on the network and are meant to be run off the render
// loop. Readers take value snapshots; a coalescing channel signals that
// some slice changed.
package store

import "errors"

// ErrSuperseded is returned by an operation whose result was discarded
// because a newer request of the same kind was issued after it.
var ErrSuperseded = errors.New("superseded by a newer request")

// User-facing fallbacks when the backend supplies no message.
const (
	msgLoginFailed  = "Giriş işlemi başarısız"
	msgListFailed   = "Yük listesi alınamadı"
	msgSearchFailed = "Arama başarısız"
	msgDetailFailed = "Yük detayı alınamadı"
	msgNotFound     = "Yük bulunamadı"
)

// State is a point-in-time copy of every slice.
type State struct {
	Auth      AuthState
	Shipments ShipmentState
}

// Store is the application state container. It is created once by the
// composition root and handed to the screens.
type Store struct {
	Auth      *AuthSlice
	Shipments *ShipmentSlice

	changes chan struct{}
}

// New wires both slices to their gateways. perPage is the page size used
// by LoadNextPage when the backend did not report one (0 = backend default).
func New(auth AuthGateway, shipments ShipmentGateway, perPage int) *Store {
	s := &Store{changes: make(chan struct{}, 1)}
	s.Auth = NewAuthSlice(auth, s.notify)
	s.Shipments = NewShipmentSlice(shipments, perPage, s.notify)
	return s
}

// Changes delivers a value after one or more state changes. Bursts are
// coalesced, so receivers should re-read Snapshot rather than count events.
func (s *Store) Changes() <-chan struct{} { return s.changes }

func (s *Store) Snapshot() State {
	return State{
		Auth:      s.Auth.State(),
		Shipments: s.Shipments.State(),
	}
}

// Logout ends the session and drops every fetched entity.
func (s *Store) Logout() {
	s.Auth.Logout()
	s.Shipments.Reset()
}

func (s *Store) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

func notifyOrNop(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return fn
}
