// Package search implements the load-list search box behaviour: echo the
// term immediately, reload the full list when the box is cleared, and
// search by id once typing pauses.
package search

import (
	"context"
	"errors"
	"kamion-client/internal/domain"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultDelay = 500 * time.Millisecond

// Dispatcher is the part of the shipment state the controller drives.
// *store.ShipmentSlice satisfies it.
type Dispatcher interface {
	SetSearchTerm(text string)
	FetchShipments(ctx context.Context, q domain.ShipmentQuery) error
	SearchShipments(ctx context.Context, id int) error
}

// Controller is a trailing-edge debounce in front of Dispatcher.
//
// Type never blocks on the network: the immediate reload runs on its own
// goroutine and the debounced search on the timer's. OnDispatched, when
// set, is called after every request with its result.
type Controller struct {
	ctx        context.Context
	cancel     context.CancelFunc
	dispatcher Dispatcher
	debouncer  *Debouncer

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup

	OnDispatched func(err error)
}

// NewController binds the controller to a child of ctx, which is used for
// every request it issues and is cancelled by Stop.
func NewController(ctx context.Context, d Dispatcher, delay time.Duration) *Controller {
	if delay <= 0 {
		delay = DefaultDelay
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Controller{
		ctx:        ctx,
		cancel:     cancel,
		dispatcher: d,
		debouncer:  NewDebouncer(delay),
	}
}

// Type handles one change of the search box text.
func (c *Controller) Type(text string) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}

	c.dispatcher.SetSearchTerm(text)
	c.debouncer.Cancel()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		if !c.track() {
			return
		}
		go func() {
			defer c.inflight.Done()
			c.done(c.dispatcher.FetchShipments(c.ctx, domain.ShipmentQuery{}))
		}()
		return
	}

	c.debouncer.Debounce(func() {
		id, ok := ParseID(trimmed)
		if !ok {
			// Non-numeric text keeps the last list on screen.
			zap.L().Debug("search term is not an id", zap.String("term", trimmed))
			return
		}

		if !c.track() {
			return
		}
		defer c.inflight.Done()
		c.done(c.dispatcher.SearchShipments(c.ctx, id))
	})
}

// Pending reports whether a debounced search is waiting to fire.
func (c *Controller) Pending() bool { return c.debouncer.Pending() }

// Stop cancels a pending search and the context of requests already
// issued, without waiting for them. The controller ignores input afterwards.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.debouncer.Cancel()
	c.cancel()
}

// Close is Stop followed by a wait for requests already issued.
func (c *Controller) Close() {
	c.Stop()
	c.inflight.Wait()
}

// ParseID reports whether a trimmed search term is a shipment id.
func ParseID(term string) (int, bool) {
	id, err := strconv.Atoi(term)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// track registers a request unless the controller is closed.
func (c *Controller) track() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	c.inflight.Add(1)
	return true
}

func (c *Controller) done(err error) {
	if err != nil && !errors.Is(err, context.Canceled) {
		zap.L().Debug("search dispatch failed", zap.Error(err))
	}
	if c.OnDispatched != nil {
		c.OnDispatched(err)
	}
}
