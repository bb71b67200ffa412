package enricher

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/places-api/places"
)

// fakeFetcher returns a canned detail per id and records call counts.
type fakeFetcher struct {
	mu      sync.Mutex
	calls   map[string]int
	failIDs map[string]bool
	active  int
	maxSeen int
}

func newFakeFetcher(failIDs ...string) *fakeFetcher {
	f := &fakeFetcher{calls: map[string]int{}, failIDs: map[string]bool{}}
	for _, id := range failIDs {
		f.failIDs[id] = true
	}
	return f
}

func (f *fakeFetcher) GetDetails(ctx context.Context, placeID, fields string) (places.PlaceDetail, error) {
	f.mu.Lock()
	f.calls[placeID]++
	f.active++
	if f.active > f.maxSeen {
		f.maxSeen = f.active
	}
	fail := f.failIDs[placeID]
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.active--
		f.mu.Unlock()
	}()

	if fail {
		return places.PlaceDetail{}, &places.UpstreamError{Status: "NOT_FOUND"}
	}
	return places.PlaceDetail{
		PlaceSummary: places.PlaceSummary{Name: "place " + placeID, PlaceID: placeID},
		Phone:        "555-" + placeID,
	}, nil
}

func TestEnrichPartialFailure(t *testing.T) {
	fetcher := newFakeFetcher("p2", "p4")
	e := New(fetcher, nil)

	out, err := e.Enrich(context.Background(), []string{"p1", "p2", "p3", "p4", "p5"})
	require.NoError(t, err)
	require.Len(t, out, 3, "failed ids are dropped, not fatal")

	got := map[string]bool{}
	for _, d := range out {
		got[d.PlaceID] = true
	}
	assert.True(t, got["p1"] && got["p3"] && got["p5"])
	assert.False(t, got["p2"] || got["p4"])
}

func TestEnrichSingleAttemptPerID(t *testing.T) {
	fetcher := newFakeFetcher("p1")
	e := New(fetcher, nil)

	_, err := e.Enrich(context.Background(), []string{"p1", "p2"})
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls["p1"], "no retry for a failed id")
	assert.Equal(t, 1, fetcher.calls["p2"])
}

func TestEnrichOutputFollowsInputOrder(t *testing.T) {
	fetcher := newFakeFetcher()
	e := New(fetcher, nil)

	ids := []string{"z", "a", "m", "q", "b", "x", "c"}
	out, err := e.Enrich(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, out, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, out[i].PlaceID)
	}
}

func TestEnrichBoundsParallelism(t *testing.T) {
	fetcher := newFakeFetcher()
	e := New(fetcher, nil)

	ids := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		ids = append(ids, string(rune('a'+i)))
	}
	out, err := e.Enrich(context.Background(), ids)
	require.NoError(t, err)
	assert.Len(t, out, 12)
	assert.LessOrEqual(t, fetcher.maxSeen, BatchSize)
}

func TestEnrichEmptyInput(t *testing.T) {
	e := New(newFakeFetcher(), nil)
	out, err := e.Enrich(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEnrichCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := New(newFakeFetcher(), nil)
	_, err := e.Enrich(ctx, []string{"p1"})
	require.Error(t, err)
}
