// Package session models the authenticated session as an explicit object.
//
// A Context starts in StateLoading, is resolved once the user's role is
// known, and notifies subscribed observers on every state change. Consumers
// read immutable Snapshots instead of shared mutable state. The post sign-in
// redirect is a single decision taken after resolution: it is produced at
// most once, and never after the user has navigated elsewhere.
package session

import (
	"context"
	"sync"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/profile"
)

// State is the resolution state of a session.
type State int

const (
	StateLoading State = iota
	StateResolved
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateResolved:
		return "resolved"
	case StateAnonymous:
		return "anonymous"
	}
	return "unknown"
}

// Snapshot is a read-only copy of the session at one point in time.
type Snapshot struct {
	State     State
	UserID    kernel.UUID
	Role      profile.Role
	ChangedAt time.Time
}

// HasUser reports whether a signed-in user is present.
func (s Snapshot) HasUser() bool {
	return s.State == StateResolved && s.UserID.Validate() == nil
}

// EventKind tells observers what happened.
type EventKind int

const (
	EventResolved EventKind = iota + 1
	EventSignedOut
)

// Event is delivered to observers after the state changed.
type Event struct {
	Kind     EventKind
	Previous Snapshot
	Current  Snapshot
}

// Observer reacts to session events. Observers run synchronously in
// subscription order and must not call back into the Context.
type Observer func(ctx context.Context, event Event)

// Context is one user's session.
type Context struct {
	mu             sync.Mutex
	snapshot       Snapshot
	observers      map[int]Observer
	order          []int
	nextID         int
	navigatedAway  bool
	redirectIssued bool
}

// New returns a loading session with no observers.
func New() *Context {
	return &Context{observers: make(map[int]Observer)}
}

// Snapshot returns the current state.
func (c *Context) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// Subscribe registers o and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (c *Context) Subscribe(o Observer) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.observers[id] = o
	c.order = append(c.order, id)

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.observers, id)
	}
}

// Resolve marks the session as signed in with the given role.
func (c *Context) Resolve(ctx context.Context, userID kernel.UUID, role profile.Role, now time.Time) {
	c.transition(ctx, EventResolved, Snapshot{
		State:     StateResolved,
		UserID:    userID,
		Role:      role,
		ChangedAt: now,
	})
}

// SignOut clears the user and notifies observers.
func (c *Context) SignOut(ctx context.Context, now time.Time) {
	c.transition(ctx, EventSignedOut, Snapshot{State: StateAnonymous, ChangedAt: now})
}

// MarkNavigated records that the user moved to another route on their own.
// A redirect that was not issued yet is suppressed from then on.
func (c *Context) MarkNavigated() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.navigatedAway = true
}

// Redirect returns the landing route for the signed-in user. It reports false
// while loading, without a user, after the user navigated away, or when the
// redirect was already issued.
func (c *Context) Redirect() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot.State == StateLoading || !c.snapshot.HasUser() || c.navigatedAway || c.redirectIssued {
		return "", false
	}
	c.redirectIssued = true
	return c.snapshot.Role.LandingRoute(), true
}

func (c *Context) transition(ctx context.Context, kind EventKind, next Snapshot) {
	c.mu.Lock()
	previous := c.snapshot
	c.snapshot = next
	if kind == EventSignedOut {
		c.redirectIssued = false
		c.navigatedAway = false
	}
	observers := make([]Observer, 0, len(c.observers))
	for _, id := range c.order {
		if o, ok := c.observers[id]; ok {
			observers = append(observers, o)
		}
	}
	c.mu.Unlock()

	event := Event{Kind: kind, Previous: previous, Current: next}
	for _, o := range observers {
		o(ctx, event)
	}
}
