// Package enricher fetches per-place detail records in bounded,
// rate-paced batches and tolerates per-identifier failure.
package enricher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/yourorg/places-api/places"
)

const (
	// BatchSize is both the partition size and the parallelism bound
	// within one batch.
	BatchSize = 5
	// BatchPause is the pacing gap between batches, mandated by the
	// upstream's rate-limit terms (minimum 100ms).
	BatchPause = 150 * time.Millisecond
)

// DetailFetcher is the one upstream call the enricher needs.
type DetailFetcher interface {
	GetDetails(ctx context.Context, placeID, fields string) (places.PlaceDetail, error)
}

type Enricher struct {
	fetcher DetailFetcher
	log     *slog.Logger
	pace    *rate.Limiter
}

func New(fetcher DetailFetcher, log *slog.Logger) *Enricher {
	if log == nil {
		log = slog.Default()
	}
	return &Enricher{
		fetcher: fetcher,
		log:     log,
		pace:    rate.NewLimiter(rate.Every(BatchPause), 1),
	}
}

// Enrich fetches details for every id, five at a time. Each id gets
// exactly one attempt; a failed id is logged and dropped, so the output
// can be shorter than the input. Successful results come back in input
// order. The only returned error is context cancellation between
// batches.
func (e *Enricher) Enrich(ctx context.Context, placeIDs []string) ([]places.PlaceDetail, error) {
	jobID := uuid.NewString()
	results := make([]*places.PlaceDetail, len(placeIDs))
	var mu sync.Mutex

	for start := 0; start < len(placeIDs); start += BatchSize {
		if err := e.pace.Wait(ctx); err != nil {
			return collect(results), err
		}
		end := min(start+BatchSize, len(placeIDs))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(BatchSize)
		for i := start; i < end; i++ {
			idx, id := i, placeIDs[i]
			g.Go(func() error {
				detail, err := e.fetcher.GetDetails(gctx, id, "")
				if err != nil {
					e.log.Warn("detail fetch failed, dropping place",
						"job_id", jobID, "place_id", id, "error", err)
					return nil
				}
				mu.Lock()
				results[idx] = &detail
				mu.Unlock()
				return nil
			})
		}
		// Workers never return errors, so this only flushes the group.
		_ = g.Wait()
	}
	return collect(results), nil
}

func collect(results []*places.PlaceDetail) []places.PlaceDetail {
	out := make([]places.PlaceDetail, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}
