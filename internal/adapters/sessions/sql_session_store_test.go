package sessions

import (
	"context"
	"kamion-client/internal/adapters/repositories"
	"kamion-client/internal/platform/db"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *SQLSessionStore {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, repositories.InitSchema(context.Background(), conn))

	s := NewSQLSessionStore(conn)
	s.Now = func() time.Time { return time.Unix(1684713600, 0) }
	return s
}

func TestPutAndLookup(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "tok-1", 7))

	id, ok, err := s.Lookup(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, id)

	// Re-issuing a token moves it to the new owner.
	require.NoError(t, s.Put(ctx, "tok-1", 8))
	id, _, err = s.Lookup(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, 8, id)
}

func TestLookupUnknownToken(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, token := range []string{"missing", "", "   "} {
		_, ok, err := s.Lookup(ctx, token)
		require.NoError(t, err)
		assert.False(t, ok, "token %q", token)
	}
}

func TestPutRejectsEmptyToken(t *testing.T) {
	s := newStore(t)
	assert.Error(t, s.Put(context.Background(), " ", 1))
}

func TestNilDB(t *testing.T) {
	s := &SQLSessionStore{Now: time.Now}
	ctx := context.Background()

	assert.Error(t, s.Put(ctx, "tok", 1))
	_, _, err := s.Lookup(ctx, "tok")
	assert.Error(t, err)
}
