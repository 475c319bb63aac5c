package search

import (
	"context"
	"errors"
	"kamion-client/internal/domain"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testDelay = 30 * time.Millisecond

type recorder struct {
	mu       sync.Mutex
	terms    []string
	fetches  []domain.ShipmentQuery
	searches []int
	err      error
}

func (r *recorder) SetSearchTerm(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terms = append(r.terms, text)
}

func (r *recorder) FetchShipments(ctx context.Context, q domain.ShipmentQuery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetches = append(r.fetches, q)
	return r.err
}

func (r *recorder) SearchShipments(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searches = append(r.searches, id)
	return r.err
}

func (r *recorder) snapshot() (terms []string, fetches []domain.ShipmentQuery, searches []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.terms...),
		append([]domain.ShipmentQuery(nil), r.fetches...),
		append([]int(nil), r.searches...)
}

func newController(t *testing.T, r *recorder) *Controller {
	t.Helper()
	c := NewController(context.Background(), r, testDelay)
	t.Cleanup(c.Close)
	return c
}

func TestTypingSearchesOnceAfterPause(t *testing.T) {
	r := &recorder{}
	c := newController(t, r)

	start := time.Now()
	c.Type("1")
	c.Type("12")
	c.Type("123")

	terms, _, searches := r.snapshot()
	assert.Equal(t, []string{"1", "12", "123"}, terms, "the term is echoed immediately")
	assert.Empty(t, searches)
	assert.True(t, c.Pending())

	require.Eventually(t, func() bool {
		_, _, s := r.snapshot()
		return len(s) > 0
	}, time.Second, 5*time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), testDelay)

	time.Sleep(2 * testDelay)
	_, fetches, searches := r.snapshot()
	assert.Equal(t, []int{123}, searches)
	assert.Empty(t, fetches)
	assert.False(t, c.Pending())
}

func TestNonNumericTermDoesNotDispatch(t *testing.T) {
	for _, text := range []string{"12a3", "abc", "0", "-5", "1.5"} {
		t.Run(text, func(t *testing.T) {
			r := &recorder{}
			c := newController(t, r)

			c.Type(text)
			time.Sleep(3 * testDelay)

			terms, fetches, searches := r.snapshot()
			assert.Equal(t, []string{text}, terms)
			assert.Empty(t, fetches)
			assert.Empty(t, searches)
		})
	}
}

func TestTrimmedTermIsSearched(t *testing.T) {
	r := &recorder{}
	c := newController(t, r)

	c.Type(" 42 ")

	require.Eventually(t, func() bool {
		_, _, s := r.snapshot()
		return len(s) == 1 && s[0] == 42
	}, time.Second, 5*time.Millisecond)
}

func TestClearingReloadsImmediately(t *testing.T) {
	for _, text := range []string{"", "   "} {
		r := &recorder{}
		c := newController(t, r)

		c.Type("12")
		c.Type(text)
		assert.False(t, c.Pending(), "clearing cancels the pending search")

		require.Eventually(t, func() bool {
			_, f, _ := r.snapshot()
			return len(f) == 1
		}, testDelay, time.Millisecond, "the reload does not wait for the delay")

		time.Sleep(2 * testDelay)
		terms, fetches, searches := r.snapshot()
		assert.Equal(t, []string{"12", text}, terms)
		assert.Equal(t, []domain.ShipmentQuery{{}}, fetches)
		assert.Empty(t, searches)
	}
}

func TestCloseDropsPendingSearch(t *testing.T) {
	r := &recorder{}
	c := NewController(context.Background(), r, testDelay)

	c.Type("7")
	c.Close()
	c.Type("8")
	c.Type("")

	time.Sleep(2 * testDelay)
	_, fetches, searches := r.snapshot()
	assert.Empty(t, searches)
	assert.Empty(t, fetches)
}

func TestOnDispatchedReceivesResult(t *testing.T) {
	boom := errors.New("boom")
	r := &recorder{err: boom}
	c := newController(t, r)

	results := make(chan error, 1)
	c.OnDispatched = func(err error) { results <- err }

	c.Type("9")

	select {
	case err := <-results:
		assert.ErrorIs(t, err, boom)
	case <-time.After(time.Second):
		t.Fatal("dispatch result not reported")
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		term string
		id   int
		ok   bool
	}{
		{"22993", 22993, true},
		{"1", 1, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"12a3", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		id, ok := ParseID(tt.term)
		assert.Equal(t, tt.ok, ok, tt.term)
		assert.Equal(t, tt.id, id, tt.term)
	}
}

// blockingDispatcher holds searches until their context is cancelled.
type blockingDispatcher struct {
	recorder
	started chan struct{}
}

func (b *blockingDispatcher) SearchShipments(ctx context.Context, id int) error {
	b.started <- struct{}{}
	<-ctx.Done()
	return ctx.Err()
}

func TestStopCancelsInflightWithoutWaiting(t *testing.T) {
	d := &blockingDispatcher{started: make(chan struct{}, 1)}
	c := NewController(context.Background(), d, testDelay)

	results := make(chan error, 1)
	c.OnDispatched = func(err error) { results <- err }

	c.Type("5")
	select {
	case <-d.started:
	case <-time.After(time.Second):
		t.Fatal("search not dispatched")
	}

	start := time.Now()
	c.Stop()
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	select {
	case err := <-results:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("in-flight search was not cancelled")
	}

	c.Close()
	c.Type("6")
	assert.False(t, c.Pending())
}
