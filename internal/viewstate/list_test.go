// internal/viewstate/list_test.go
package viewstate

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadStoresItemsAndClearsError(t *testing.T) {
	calls := 0
	list := NewRemoteList(func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	})

	err := list.Load(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, list.Items())
	assert.Empty(t, list.Err())
	assert.Equal(t, 1, calls)
}

func TestLoadFailureClearsItems(t *testing.T) {
	fail := false
	list := NewRemoteList(func(ctx context.Context) ([]string, error) {
		if fail {
			return nil, errors.New("backend down")
		}
		return []string{"a"}, nil
	})

	assert.NoError(t, list.Load(context.Background()))
	assert.NotEmpty(t, list.Items())

	fail = true
	err := list.Load(context.Background())

	assert.Error(t, err)
	assert.Nil(t, list.Items())
	assert.Equal(t, "backend down", list.Err())
}

func TestLoadIsIdempotentWithoutMutation(t *testing.T) {
	list := NewRemoteList(func(ctx context.Context) ([]int, error) {
		return []int{1, 2, 3}, nil
	})

	assert.NoError(t, list.Load(context.Background()))
	first := list.Items()
	assert.NoError(t, list.Refresh(context.Background()))

	assert.Equal(t, first, list.Items())
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	var mu sync.Mutex
	calls := 0
	list := NewRemoteList(func(ctx context.Context) ([]string, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(started)
			<-release
			return []string{"old"}, nil
		}
		return []string{"new"}, nil
	})

	// The first load starts, then stalls in flight.
	go func() {
		list.Load(context.Background())
		close(done)
	}()
	<-started

	// A second load starts later but completes first.
	assert.NoError(t, list.Load(context.Background()))
	assert.Equal(t, []string{"new"}, list.Items())

	// When the first load finally lands, its stale snapshot is discarded.
	close(release)
	<-done
	assert.Equal(t, []string{"new"}, list.Items())
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	items := []string{"MacBook Pro", "Calculus Textbook", "Desk Lamp"}
	textFn := func(s string) []string { return []string{s} }

	assert.Equal(t, []string{"MacBook Pro"}, Search(items, "macbook", textFn))
	assert.Equal(t, []string{"Calculus Textbook"}, Search(items, "TEXT", textFn))
	assert.Equal(t, []string{"MacBook Pro", "Calculus Textbook"}, Search(items, "book", textFn))
	assert.Empty(t, Search(items, "bicycle", textFn))
}

func TestSearchEmptyQueryKeepsEverything(t *testing.T) {
	items := []string{"a", "b"}
	textFn := func(s string) []string { return []string{s} }

	assert.Equal(t, items, Search(items, "", textFn))
	assert.Equal(t, items, Search(items, "   ", textFn))
}

func TestSearchResultIsSubset(t *testing.T) {
	items := []string{"alpha", "beta", "gamma", "alphabet"}
	textFn := func(s string) []string { return []string{s} }

	filtered := Search(items, "alpha", textFn)
	all := Search(items, "", textFn)

	for _, item := range filtered {
		assert.Contains(t, all, item)
	}
}

func TestSearchMatchesAnyTextField(t *testing.T) {
	type product struct{ name, description string }
	items := []product{
		{"Lamp", "warm light for late study"},
		{"Chair", "ergonomic"},
	}
	textFn := func(p product) []string { return []string{p.name, p.description} }

	assert.Len(t, Search(items, "study", textFn), 1)
	assert.Len(t, Search(items, "ergo", textFn), 1)
}

func TestByFieldEqualityAndAllSentinel(t *testing.T) {
	items := []string{"Books", "Electronics", "Books"}
	fieldFn := func(s string) string { return s }

	assert.Len(t, ByField(items, "Books", fieldFn), 2)
	assert.Equal(t, items, ByField(items, "All Categories", fieldFn))
	assert.Equal(t, items, ByField(items, "All", fieldFn))
	assert.Equal(t, items, ByField(items, "", fieldFn))
	assert.Empty(t, ByField(items, "Furniture", fieldFn))
}

func TestByFieldFiltersCategoriesStartingWithAll(t *testing.T) {
	items := []string{"All-Weather Gear", "Books"}
	fieldFn := func(s string) string { return s }

	assert.Equal(t, []string{"All-Weather Gear"}, ByField(items, "All-Weather Gear", fieldFn))
	assert.Empty(t, ByField(items, "Allspice", fieldFn))
}
