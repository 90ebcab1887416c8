package browse

import (
	"context"
	"dex/internal/catalog"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Source supplies the collection for Coordinator.Load.
type Source interface {
	FetchCollection(ctx context.Context) ([]catalog.Entry, error)
}

// Coordinator owns one browsing session. Dispatches are serialised: each
// action is reduced completely before the next is accepted, and View never
// observes a partial transition.
type Coordinator struct {
	mu      sync.Mutex
	state   State
	version uint64

	// notifyMu is never acquired while mu is held. Views are delivered in
	// version order; delivered is the last version every observer has seen.
	notifyMu  sync.Mutex
	turn      *sync.Cond
	delivered uint64
	observers []func(View)

	session string
	log     *zap.Logger
}

type Option func(*Coordinator)

func WithLogger(l *zap.Logger) Option {
	return func(c *Coordinator) {
		c.log = l
	}
}

func WithSessionID(id string) Option {
	return func(c *Coordinator) {
		c.session = id
	}
}

func NewCoordinator(opts ...Option) *Coordinator {
	c := &Coordinator{
		state:   NewState(),
		session: uuid.NewString(),
		log:     zap.NewNop(),
	}
	c.turn = sync.NewCond(&c.notifyMu)
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("session", c.session))
	return c
}

func (c *Coordinator) SessionID() string {
	return c.session
}

// Subscribe registers fn to receive the view after every accepted action,
// in the order the actions were applied. fn may call View or State but must
// not Dispatch.
func (c *Coordinator) Subscribe(fn func(View)) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.observers = append(c.observers, fn)
}

func (c *Coordinator) Dispatch(a Action) bool {
	c.mu.Lock()
	next, ok := Reduce(c.state, a)
	if !ok {
		c.mu.Unlock()
		c.log.Debug("action rejected", zap.Stringer("action", a))
		return false
	}
	c.state = next
	c.version++
	view := c.viewLocked()
	c.mu.Unlock()

	c.log.Debug("action applied",
		zap.Stringer("action", a),
		zap.Uint64("version", view.Version),
		zap.Int("matches", view.MatchCount),
		zap.Int("page", view.CurrentPage),
		zap.Int("pages", view.TotalPages),
	)
	c.notify(view)
	return true
}

// notify waits until every earlier version has been delivered, then hands
// v to the observers.
func (c *Coordinator) notify(v View) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	for c.delivered+1 != v.Version {
		c.turn.Wait()
	}
	defer func() {
		c.delivered = v.Version
		c.turn.Broadcast()
	}()

	for _, fn := range c.observers {
		fn(v)
	}
}

func (c *Coordinator) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Coordinator) viewLocked() View {
	v := c.state.View()
	v.Version = c.version
	return v
}

// State returns a copy of the current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Load fetches the collection from src and dispatches it. When the fetch
// fails or the collection is invalid an empty collection is loaded instead
// and the error is returned for the caller to act on.
func (c *Coordinator) Load(ctx context.Context, src Source) error {
	entries, err := src.FetchCollection(ctx)
	var col catalog.Collection
	if err == nil {
		col, err = catalog.NewCollection(entries)
	}
	if err != nil {
		c.log.Warn("collection load failed", zap.Error(err))
		c.Dispatch(loadCollectionAction{})
		return fmt.Errorf("loading collection: %w", err)
	}

	c.Dispatch(loadCollectionAction{col: col})
	c.log.Info("collection loaded", zap.Int("entries", col.Len()))
	return nil
}
