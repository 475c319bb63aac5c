package store

import (
	"context"
	"errors"
	"kamion-client/internal/domain"
	"kamion-client/internal/ports"
	"sync"
)

type ShipmentState struct {
	Shipments       []domain.Shipment
	CurrentShipment *domain.Shipment
	IsLoading       bool
	IsDetailLoading bool
	Error           string
	SearchTerm      string
	CurrentPage     int
	TotalPages      int
	HasNextPage     bool
}

func initialShipmentState() ShipmentState {
	return ShipmentState{
		Shipments:   []domain.Shipment{},
		CurrentPage: 1,
		TotalPages:  1,
	}
}

// ShipmentSlice owns the shipment list and the shipment being viewed.
//
// Every list-writing operation (fetch, search, next page) draws a token
// from one sequence and the detail fetch from another. A response is
// applied only if its token is still the latest of its sequence, so the
// last request issued wins regardless of the order responses arrive in.
type ShipmentSlice struct {
	mu        sync.Mutex
	state     ShipmentState
	listSeq   uint64
	detailSeq uint64
	perPage   int

	gateway ShipmentGateway
	notify  func()
}

func NewShipmentSlice(gateway ShipmentGateway, perPage int, notify func()) *ShipmentSlice {
	return &ShipmentSlice{
		state:   initialShipmentState(),
		perPage: perPage,
		gateway: gateway,
		notify:  notifyOrNop(notify),
	}
}

// State returns a snapshot. The shipment list is shared, not copied:
// lists are only ever replaced, never modified in place.
func (s *ShipmentSlice) State() ShipmentState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	if st.CurrentShipment != nil {
		cs := *st.CurrentShipment
		st.CurrentShipment = &cs
	}
	return st
}

func (s *ShipmentSlice) beginList() uint64 {
	s.mu.Lock()
	seq := s.beginListLocked()
	s.mu.Unlock()
	s.notify()
	return seq
}

// beginListLocked must be called with s.mu held.
func (s *ShipmentSlice) beginListLocked() uint64 {
	s.listSeq++
	s.state.IsLoading = true
	s.state.Error = ""
	return s.listSeq
}

// finishList applies fn under the lock if seq is still current.
func (s *ShipmentSlice) finishList(seq uint64, fn func(st *ShipmentState)) bool {
	s.mu.Lock()
	if seq != s.listSeq {
		s.mu.Unlock()
		return false
	}
	s.state.IsLoading = false
	fn(&s.state)
	s.mu.Unlock()
	s.notify()
	return true
}

// FetchShipments replaces the list with the page selected by q and takes
// pagination from the response meta when present.
func (s *ShipmentSlice) FetchShipments(ctx context.Context, q domain.ShipmentQuery) error {
	seq := s.beginList()

	page, err := s.gateway.ListShipments(ctx, q)

	applied := s.finishList(seq, func(st *ShipmentState) {
		if err != nil {
			st.Error = ports.ErrorMessage(err, msgListFailed)
			return
		}
		st.Shipments = page.Shipments
		st.Error = ""
		if page.Meta != nil {
			s.applyMeta(st, *page.Meta)
		}
	})
	if !applied {
		return ErrSuperseded
	}
	return err
}

// SearchShipments filters the list by id. Results are a flat set:
// pagination always resets to page 1 of 1.
func (s *ShipmentSlice) SearchShipments(ctx context.Context, id int) error {
	seq := s.beginList()

	page, err := s.gateway.ListShipments(ctx, domain.ShipmentQuery{FilterID: id})

	applied := s.finishList(seq, func(st *ShipmentState) {
		if err != nil {
			st.Error = ports.ErrorMessage(err, msgSearchFailed)
			return
		}
		st.Shipments = page.Shipments
		st.Error = ""
		st.CurrentPage = 1
		st.TotalPages = 1
		st.HasNextPage = false
	})
	if !applied {
		return ErrSuperseded
	}
	return err
}

// LoadNextPage appends the page after CurrentPage. It is a no-op when
// HasNextPage is false or a list request is already loading.
func (s *ShipmentSlice) LoadNextPage(ctx context.Context) error {
	s.mu.Lock()
	if !s.state.HasNextPage || s.state.IsLoading {
		s.mu.Unlock()
		return nil
	}
	q := domain.ShipmentQuery{Page: s.state.CurrentPage + 1, PerPage: s.perPage}
	seq := s.beginListLocked()
	s.mu.Unlock()
	s.notify()

	page, err := s.gateway.ListShipments(ctx, q)

	applied := s.finishList(seq, func(st *ShipmentState) {
		if err != nil {
			st.Error = ports.ErrorMessage(err, msgListFailed)
			return
		}
		merged := make([]domain.Shipment, 0, len(st.Shipments)+len(page.Shipments))
		merged = append(merged, st.Shipments...)
		merged = append(merged, page.Shipments...)
		st.Shipments = merged
		st.Error = ""
		if page.Meta != nil {
			s.applyMeta(st, *page.Meta)
		}
	})
	if !applied {
		return ErrSuperseded
	}
	return err
}

// applyMeta must be called with s.mu held.
func (s *ShipmentSlice) applyMeta(st *ShipmentState, m domain.Pagination) {
	st.CurrentPage = m.CurrentPage
	st.TotalPages = m.LastPage
	st.HasNextPage = m.HasNext()
	if m.PerPage > 0 {
		s.perPage = m.PerPage
	}
}

// FetchShipmentDetail loads one shipment into CurrentShipment. An empty
// result is a failure; CurrentShipment is left as it was on any failure.
func (s *ShipmentSlice) FetchShipmentDetail(ctx context.Context, id int) error {
	s.mu.Lock()
	s.detailSeq++
	seq := s.detailSeq
	s.state.IsDetailLoading = true
	s.state.Error = ""
	s.mu.Unlock()
	s.notify()

	page, err := s.gateway.ListShipments(ctx, domain.ShipmentQuery{FilterID: id})
	if err == nil && len(page.Shipments) == 0 {
		err = ports.ErrShipmentNotFound
	}

	s.mu.Lock()
	if seq != s.detailSeq {
		s.mu.Unlock()
		return ErrSuperseded
	}
	s.state.IsDetailLoading = false
	switch {
	case errors.Is(err, ports.ErrShipmentNotFound):
		s.state.Error = msgNotFound
	case err != nil:
		s.state.Error = ports.ErrorMessage(err, msgDetailFailed)
	default:
		shipment := page.Shipments[0]
		s.state.CurrentShipment = &shipment
		s.state.Error = ""
	}
	s.mu.Unlock()
	s.notify()

	return err
}

func (s *ShipmentSlice) ClearError() {
	s.mu.Lock()
	changed := s.state.Error != ""
	s.state.Error = ""
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *ShipmentSlice) SetSearchTerm(text string) {
	s.mu.Lock()
	s.state.SearchTerm = text
	s.mu.Unlock()
	s.notify()
}

// ClearShipments empties the list and resets pagination only.
func (s *ShipmentSlice) ClearShipments() {
	s.mu.Lock()
	s.state.Shipments = []domain.Shipment{}
	s.state.CurrentPage = 1
	s.state.TotalPages = 1
	s.state.HasNextPage = false
	s.mu.Unlock()
	s.notify()
}

// Reset returns the slice to its initial state and invalidates every
// request in flight.
func (s *ShipmentSlice) Reset() {
	s.mu.Lock()
	s.listSeq++
	s.detailSeq++
	s.state = initialShipmentState()
	s.mu.Unlock()
	s.notify()
}
