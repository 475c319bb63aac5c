package services

import (
	"context"
	"errors"
	"fmt"
	"kamion-client/internal/domain"
	"kamion-client/internal/ports"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// ListShipmentsRequest is a validated list query; zero Page/PerPage take defaults.
type ListShipmentsRequest struct {
	FilterID int
	Page     int
	PerPage  int
}

type ListShipmentsResult struct {
	Shipments []domain.Shipment
	Meta      domain.Pagination
}

// ListShipments pages through the repository and builds the meta block
// the client uses for pagination.
func ListShipments(
	ctx context.Context,
	req ListShipmentsRequest,
	repo ports.ShipmentRepository,
) (ListShipmentsResult, error) {
	if repo == nil {
		return ListShipmentsResult{}, errors.New("list shipments: repository is nil")
	}

	page := req.Page
	if page == 0 {
		page = 1
	}
	perPage := req.PerPage
	if perPage == 0 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		return ListShipmentsResult{}, fmt.Errorf("list shipments: page must be positive, got %d", page)
	}
	if perPage < 1 || perPage > MaxPerPage {
		return ListShipmentsResult{}, fmt.Errorf("list shipments: per_page must be between 1 and %d, got %d", MaxPerPage, perPage)
	}

	offset := (page - 1) * perPage
	shipments, total, err := repo.ListShipments(ctx, req.FilterID, offset, perPage)
	if err != nil {
		return ListShipmentsResult{}, fmt.Errorf("list shipments: %w", err)
	}

	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	meta := domain.Pagination{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
	if len(shipments) > 0 {
		meta.From = offset + 1
		meta.To = offset + len(shipments)
	}

	return ListShipmentsResult{Shipments: shipments, Meta: meta}, nil
}
