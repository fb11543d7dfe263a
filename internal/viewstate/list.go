// internal/viewstate/list.go
package viewstate

import (
	"context"
	"sync"
)

// FetchFunc loads the full remote collection for a list.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// RemoteList is the shared load/error state every page repeats: a
// materialized list fetched from the backend and the error message when the
// last fetch failed.
//
// Loads are sequenced: a completion belonging to an older Load is discarded,
// so the state only ever reflects the newest request instead of whichever
// response happened to land last.
type RemoteList[T any] struct {
	mu    sync.Mutex
	seq   uint64
	items []T
	err   string
	fetch FetchFunc[T]
}

func NewRemoteList[T any](fetch FetchFunc[T]) *RemoteList[T] {
	return &RemoteList[T]{fetch: fetch}
}

// Load runs the fetch. On success it stores the items and clears the error;
// on failure it stores the error message and clears the items.
func (l *RemoteList[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	l.mu.Unlock()

	items, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		// A newer Load superseded this one; drop the stale result.
		return err
	}
	if err != nil {
		l.items = nil
		l.err = err.Error()
		return err
	}
	l.items = items
	l.err = ""
	return nil
}

// Refresh re-runs the mount fetch, the resync step after every mutation.
func (l *RemoteList[T]) Refresh(ctx context.Context) error {
	return l.Load(ctx)
}

// Items returns the last successfully fetched snapshot.
func (l *RemoteList[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items
}

// Err returns the message of the last failed fetch, or "".
func (l *RemoteList[T]) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}
