// Package inflight rejects a request while an identical one is still being
// processed.
package inflight

import (
	"errors"
	"sync"
)

// ErrRequestInFlight is returned when the key is already held.
var ErrRequestInFlight = errors.New("an identical request is already in progress")

// Guard holds a set of busy keys. The zero value is ready to use.
type Guard struct {
	busy sync.Map
}

// Acquire marks key as busy. It returns a release function, or
// ErrRequestInFlight when key is already busy.
//
// Example:
//
//	release, err := guard.Acquire(laundryID)
//	if err != nil {
//	    return err
//	}
//	defer release()
func (g *Guard) Acquire(key string) (func(), error) {
	if _, loaded := g.busy.LoadOrStore(key, struct{}{}); loaded {
		return nil, ErrRequestInFlight
	}
	var once sync.Once
	return func() {
		once.Do(func() { g.busy.Delete(key) })
	}, nil
}
