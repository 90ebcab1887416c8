package proptest

import (
	"dex/internal/browse"
	"dex/internal/catalog"
	"sync"

	"pgregory.net/rapid"
)

// CheckedCoordinator drives a real coordinator and the reference model in
// lockstep and fails on the first divergence. The coordinator must already
// hold loaded; the model starts from the same collection.
type CheckedCoordinator struct {
	real  *browse.Coordinator
	model *listModel
	t     *rapid.T

	mu       sync.Mutex
	notified int
	accepted int
}

func NewCheckedCoordinator(t *rapid.T, coord *browse.Coordinator, loaded []catalog.Entry) *CheckedCoordinator {
	c := &CheckedCoordinator{
		real:  coord,
		model: newListModel(),
		t:     t,
	}
	if !c.model.apply(browse.LoadAction{Entries: loaded}) {
		t.Fatalf("model rejected %d loaded entries", len(loaded))
	}
	coord.Subscribe(func(browse.View) {
		c.mu.Lock()
		c.notified++
		c.mu.Unlock()
	})
	return c
}

func (c *CheckedCoordinator) Model() *listModel {
	return c.model
}

func (c *CheckedCoordinator) Dispatch(a browse.Action) bool {
	before := c.real.View()

	realOK := c.real.Dispatch(a)
	modelOK := c.model.apply(a)
	if realOK != modelOK {
		c.t.Fatalf("%s divergence: real accepted=%v model accepted=%v", a, realOK, modelOK)
	}

	after := c.real.View()
	if realOK {
		c.accepted++
	} else {
		assertViewsEqual(c.t, invRejectIsNoop, before, after)
	}
	c.Check()
	return realOK
}

func (c *CheckedCoordinator) Check() {
	view := c.real.View()
	verifyViewInvariants(c.t, view)
	assertViewsEqual(c.t, invModelConsistent, c.model.view(), view)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.notified != c.accepted {
		c.t.Fatalf("[%s] violated: %d notifications for %d accepted actions", invObserverPerAccept, c.notified, c.accepted)
	}
}
