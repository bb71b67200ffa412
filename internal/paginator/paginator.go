// Package paginator walks a multi-page places search to completion,
// honoring the upstream's mandatory delay before a continuation token
// becomes valid.
package paginator

import (
	"context"
	"log/slog"
	"time"

	"github.com/yourorg/places-api/places"
)

const (
	// DefaultMaxPages bounds the bulk fetch-all mode.
	DefaultMaxPages = 3
	// PageTokenDelay is the upstream-mandated minimum wait before a
	// next_page_token may be exchanged. Treat it as a floor, not a
	// guarantee that the token is ready.
	PageTokenDelay = 2 * time.Second
)

// FetchPage runs one page of a fixed query. An empty token fetches the
// first page.
type FetchPage func(ctx context.Context, pageToken string) (places.SearchResult, error)

type Options struct {
	MaxPages  int
	PageDelay time.Duration
	Logger    *slog.Logger
}

// Result carries everything accumulated so far. On a mid-run failure
// the places from completed pages are still present.
type Result struct {
	Places        []places.PlaceSummary
	PagesFetched  int
	Status        string
	NextPageToken string
}

func (o Options) normalize() Options {
	if o.MaxPages <= 0 {
		o.MaxPages = DefaultMaxPages
	}
	if o.PageDelay <= 0 {
		o.PageDelay = PageTokenDelay
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// FetchAll fetches pages sequentially until the token runs out or the
// page cap is hit. A failure after at least one successful page returns
// the partial Result alongside the error; the caller decides whether
// that is a degraded success or a hard failure.
func FetchAll(ctx context.Context, fetch FetchPage, opts Options) (Result, error) {
	opts = opts.normalize()

	var out Result
	token := ""
	for {
		if token != "" {
			if err := wait(ctx, opts.PageDelay); err != nil {
				return out, err
			}
		}
		page, err := fetch(ctx, token)
		if err != nil {
			if out.PagesFetched > 0 {
				opts.Logger.Warn("page fetch failed, keeping earlier pages",
					"pages_fetched", out.PagesFetched, "error", err)
			}
			return out, err
		}
		out.Places = append(out.Places, page.Places...)
		out.PagesFetched++
		out.Status = page.Status
		token = page.NextPageToken

		if token == "" || out.PagesFetched >= opts.MaxPages {
			break
		}
	}
	// A still-pending token means we stopped at the cap, not exhaustion.
	out.NextPageToken = token
	return out, nil
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
