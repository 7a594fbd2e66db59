package lms

import (
	"context"
	"sync/atomic"

	"github.com/misterclayt0n/fitcalc/internal/bmi"
	"github.com/misterclayt0n/fitcalc/internal/models"
)

// Lazy loads a table in the background. Until the load succeeds every
// Lookup misses, so the engine keeps using the proxy; a failed load stays
// failed.
type Lazy struct {
	table atomic.Pointer[Table]
	done  chan struct{}
	err   error
}

// LoadLazy starts load in a new goroutine and returns immediately.
func LoadLazy(load func() (*Table, error)) *Lazy {
	l := &Lazy{done: make(chan struct{})}
	go func() {
		defer close(l.done)
		t, err := load()
		if err != nil {
			l.err = err
			return
		}
		l.table.Store(t)
	}()
	return l
}

func (l *Lazy) Lookup(sex models.Sex, month int) (bmi.LMS, bool) {
	if l == nil {
		return bmi.LMS{}, false
	}
	return l.table.Load().Lookup(sex, month)
}

// Ready reports whether a table has been published.
func (l *Lazy) Ready() bool {
	return l != nil && l.table.Load() != nil
}

// Wait blocks until the load finishes or ctx is done. It returns the load
// error, or ctx.Err() when the caller stopped waiting first.
func (l *Lazy) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	select {
	case <-l.done:
		return l.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
