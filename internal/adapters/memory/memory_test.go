package memory

import (
	"context"
	"errors"
	"kamion-client/internal/adapters/repositories"
	"kamion-client/internal/domain"
	"kamion-client/internal/ports"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeded(t *testing.T) *Repository {
	t.Helper()

	seed, err := repositories.ReadSeed("../../../data/seeds/kamion.json")
	require.NoError(t, err)
	return FromSeed(seed)
}

func TestRepositoryListShipments(t *testing.T) {
	repo := newSeeded(t)
	ctx := context.Background()

	got, total, err := repo.ListShipments(ctx, 0, 15, 15)
	require.NoError(t, err)
	assert.Equal(t, 18, total)
	require.Len(t, got, 3)
	assert.Equal(t, 23008, got[0].ID)

	got, total, err = repo.ListShipments(ctx, 0, 40, 15)
	require.NoError(t, err)
	assert.Equal(t, 18, total)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, total, err = repo.ListShipments(ctx, 23001, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, 23001, got[0].ID)

	_, total, err = repo.ListShipments(ctx, 1, 0, 15)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestRepositoryListIsSortedCopy(t *testing.T) {
	repo := NewRepository(nil, []domain.Shipment{{ID: 3}, {ID: 1}, {ID: 2}})

	got, _, err := repo.ListShipments(context.Background(), 0, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].ID, got[1].ID, got[2].ID})

	got[0].ID = 99
	again, _, _ := repo.ListShipments(context.Background(), 0, 0, 1)
	assert.Equal(t, 1, again[0].ID)
}

func TestRepositoryAuthenticate(t *testing.T) {
	repo := newSeeded(t)
	ctx := context.Background()

	u, ok, err := repo.Authenticate(ctx, " TEST@kamion.co ", "kamion123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, u.ID)

	_, ok, err = repo.Authenticate(ctx, "test@kamion.co", "kamion12")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = repo.Authenticate(ctx, "nobody@kamion.co", "kamion123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGatewayRequiresToken(t *testing.T) {
	gw := NewGateway(newSeeded(t))

	_, err := gw.ListShipments(context.Background(), domain.ShipmentQuery{})

	var se *ports.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.Equal(t, "Unauthenticated.", ports.ErrorMessage(err, ""))
}

func TestGatewayLoginAndList(t *testing.T) {
	gw := NewGateway(newSeeded(t))
	ctx := context.Background()

	_, err := gw.Login(ctx, "test@kamion.co", "wrong")
	var rejected *ports.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, 1002, rejected.ErrorCode)

	session, err := gw.Login(ctx, "test@kamion.co", "kamion123")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	gw.SetToken(session.Token)
	assert.Equal(t, session.Token, gw.Token())

	page, err := gw.ListShipments(ctx, domain.ShipmentQuery{Page: 2})
	require.NoError(t, err)
	assert.Len(t, page.Shipments, 3)
	require.NotNil(t, page.Meta)
	assert.Equal(t, 2, page.Meta.CurrentPage)
	assert.False(t, page.Meta.HasNext())

	_, err = gw.ListShipments(ctx, domain.ShipmentQuery{PerPage: 500})
	var se *ports.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Code)

	assert.Equal(t, []domain.ShipmentQuery{{Page: 2}, {PerPage: 500}}, gw.Calls())
}

func TestGatewayFailNext(t *testing.T) {
	gw := NewGateway(newSeeded(t))
	boom := errors.New("boom")

	gw.FailNext(boom)
	_, err := gw.Login(context.Background(), "test@kamion.co", "kamion123")
	assert.ErrorIs(t, err, boom)

	_, err = gw.Login(context.Background(), "test@kamion.co", "kamion123")
	assert.NoError(t, err)
}
