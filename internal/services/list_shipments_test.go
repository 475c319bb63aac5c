package services

import (
	"context"
	"errors"
	"kamion-client/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceRepository struct {
	shipments []domain.Shipment
	err       error

	gotFilter, gotOffset, gotLimit int
}

func (r *sliceRepository) ListShipments(ctx context.Context, filterID int, offset int, limit int) ([]domain.Shipment, int, error) {
	r.gotFilter, r.gotOffset, r.gotLimit = filterID, offset, limit
	if r.err != nil {
		return nil, 0, r.err
	}
	if offset >= len(r.shipments) {
		return []domain.Shipment{}, len(r.shipments), nil
	}
	end := min(offset+limit, len(r.shipments))
	return r.shipments[offset:end], len(r.shipments), nil
}

func makeShipments(n int) []domain.Shipment {
	out := make([]domain.Shipment, n)
	for i := range out {
		out[i] = domain.Shipment{ID: i + 1}
	}
	return out
}

func TestListShipmentsDefaults(t *testing.T) {
	repo := &sliceRepository{shipments: makeShipments(40)}

	res, err := ListShipments(context.Background(), ListShipmentsRequest{}, repo)
	require.NoError(t, err)

	assert.Equal(t, 0, repo.gotOffset)
	assert.Equal(t, DefaultPerPage, repo.gotLimit)
	assert.Len(t, res.Shipments, DefaultPerPage)
	assert.Equal(t, domain.Pagination{CurrentPage: 1, LastPage: 3, PerPage: 15, Total: 40, From: 1, To: 15}, res.Meta)
	assert.True(t, res.Meta.HasNext())
}

func TestListShipmentsLastPage(t *testing.T) {
	repo := &sliceRepository{shipments: makeShipments(40)}

	res, err := ListShipments(context.Background(), ListShipmentsRequest{Page: 3}, repo)
	require.NoError(t, err)

	assert.Equal(t, 30, repo.gotOffset)
	assert.Len(t, res.Shipments, 10)
	assert.Equal(t, 31, res.Meta.From)
	assert.Equal(t, 40, res.Meta.To)
	assert.False(t, res.Meta.HasNext())
}

func TestListShipmentsEmpty(t *testing.T) {
	repo := &sliceRepository{}

	res, err := ListShipments(context.Background(), ListShipmentsRequest{FilterID: 99}, repo)
	require.NoError(t, err)

	assert.Equal(t, 99, repo.gotFilter)
	assert.Empty(t, res.Shipments)
	assert.Equal(t, domain.Pagination{CurrentPage: 1, LastPage: 1, PerPage: 15}, res.Meta)
}

func TestListShipmentsValidation(t *testing.T) {
	repo := &sliceRepository{}
	ctx := context.Background()

	for _, req := range []ListShipmentsRequest{
		{Page: -1},
		{PerPage: -3},
		{PerPage: MaxPerPage + 1},
	} {
		_, err := ListShipments(ctx, req, repo)
		assert.Error(t, err, "%+v", req)
	}

	_, err := ListShipments(ctx, ListShipmentsRequest{}, nil)
	assert.Error(t, err)
}

func TestListShipmentsWrapsRepositoryError(t *testing.T) {
	boom := errors.New("db down")
	_, err := ListShipments(context.Background(), ListShipmentsRequest{}, &sliceRepository{err: boom})
	assert.ErrorIs(t, err, boom)
}
