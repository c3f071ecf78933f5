package storage

import (
	"context"
	"sync"
	"time"

	"todoapp/internal/domain"
)

// Autosaver mirrors collection snapshots to a Store off the caller's path.
// Rapid-fire snapshots within the debounce window are coalesced into one save;
// only the latest snapshot is ever written. Failures go to a non-blocking
// error channel and never affect the in-memory state that triggered them.
type Autosaver struct {
	store    Store
	debounce time.Duration

	mu      sync.Mutex
	pending []domain.Todo
	dirty   bool
	timer   *time.Timer
	closed  bool

	errs chan error
	wg   sync.WaitGroup
}

// NewAutosaver wraps store. A zero debounce saves on every snapshot.
func NewAutosaver(store Store, debounce time.Duration) *Autosaver {
	return &Autosaver{
		store:    store,
		debounce: debounce,
		errs:     make(chan error, 16),
	}
}

// Errors delivers save failures. The channel is buffered; when full, further
// errors are dropped rather than blocking a save.
func (a *Autosaver) Errors() <-chan error {
	return a.errs
}

// Enqueue schedules the snapshot for saving and returns immediately.
func (a *Autosaver) Enqueue(todos []domain.Todo) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.pending = todos
	a.dirty = true

	if a.debounce <= 0 {
		a.flushLocked()
		return
	}
	if a.timer == nil {
		a.timer = time.AfterFunc(a.debounce, a.onTimer)
	} else {
		a.timer.Reset(a.debounce)
	}
}

func (a *Autosaver) onTimer() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed || !a.dirty {
		return
	}
	a.flushLocked()
}

// flushLocked starts an async save of the pending snapshot. Caller holds mu.
func (a *Autosaver) flushLocked() {
	snapshot := a.pending
	a.dirty = false
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.store.Save(context.Background(), snapshot); err != nil {
			select {
			case a.errs <- err:
			default:
			}
		}
	}()
}

// Close flushes any pending snapshot and waits for in-flight saves.
func (a *Autosaver) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
	}
	if a.dirty {
		a.flushLocked()
	}
	a.mu.Unlock()

	a.wg.Wait()
	close(a.errs)
}
