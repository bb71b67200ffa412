package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultRadius is applied to nearby searches that do not specify one.
const DefaultRadius = 5000

// DefaultDetailFields is the field whitelist sent on detail calls when
// the caller does not supply its own list.
const DefaultDetailFields = "name,formatted_address,formatted_phone_number,website,opening_hours,rating,user_ratings_total,geometry,place_id,types,business_status,price_level,photos,reviews"

type Client struct {
	key     string
	baseURL string
	http    *retryablehttp.Client
}

func NewClient(apiKey string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = 2
	rc.HTTPClient.Timeout = 10 * time.Second
	rc.Logger = nil

	return &Client{
		key:     apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/place",
		http:    rc,
	}
}

// NewClientWithBaseURL points the client at an alternate host. Used for
// tests and for proxying through a regional mirror.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	if baseURL != "" {
		c.baseURL = baseURL
	}
	return c
}

// KeyConfigured reports whether an upstream credential is present.
func (c *Client) KeyConfigured() bool { return c.key != "" }

// SearchNearby runs one nearby-search page. Radius defaults to
// DefaultRadius; a non-empty PageToken continues a previous query.
func (c *Client) SearchNearby(ctx context.Context, q NearbyQuery) (SearchResult, error) {
	radius := q.Radius
	if radius <= 0 {
		radius = DefaultRadius
	}
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%v,%v", q.Lat, q.Lng))
	params.Set("radius", fmt.Sprintf("%d", radius))
	params.Set("keyword", q.Keyword)
	if q.PageToken != "" {
		params.Set("pagetoken", q.PageToken)
	}
	return c.search(ctx, "nearbysearch", params)
}

// SearchText runs one free-text search page.
func (c *Client) SearchText(ctx context.Context, q TextQuery) (SearchResult, error) {
	params := url.Values{}
	params.Set("query", q.Query)
	if q.PageToken != "" {
		params.Set("pagetoken", q.PageToken)
	}
	return c.search(ctx, "textsearch", params)
}

func (c *Client) search(ctx context.Context, endpoint string, params url.Values) (SearchResult, error) {
	var raw rawSearchResponse
	if err := c.get(ctx, endpoint, params, &raw); err != nil {
		return SearchResult{}, err
	}
	if raw.Status != "OK" && raw.Status != "ZERO_RESULTS" {
		return SearchResult{}, &UpstreamError{Status: raw.Status, Message: raw.ErrorMessage}
	}
	out := SearchResult{
		Status:        raw.Status,
		Places:        make([]PlaceSummary, 0, len(raw.Results)),
		NextPageToken: raw.NextPageToken,
	}
	for _, p := range raw.Results {
		out.Places = append(out.Places, mapSummary(p))
	}
	return out, nil
}

// GetDetails fetches one place's detail record. An empty fields list
// falls back to DefaultDetailFields; anything else is passed through
// verbatim. Only status OK is success here; ZERO_RESULTS on a known
// place id is an upstream failure.
func (c *Client) GetDetails(ctx context.Context, placeID, fields string) (PlaceDetail, error) {
	if fields == "" {
		fields = DefaultDetailFields
	}
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", fields)

	var raw rawDetailsResponse
	if err := c.get(ctx, "details", params, &raw); err != nil {
		return PlaceDetail{}, err
	}
	if raw.Status != "OK" {
		return PlaceDetail{}, &UpstreamError{Status: raw.Status, Message: raw.ErrorMessage}
	}
	return mapDetail(raw.Result), nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, into any) error {
	if c.key == "" {
		return &ConfigurationError{Hint: "set GOOGLE_MAPS_API_KEY in the environment or .env file"}
	}
	params.Set("key", c.key)
	u := fmt.Sprintf("%s/%s/json?%s", c.baseURL, endpoint, params.Encode())

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &TransportError{Op: endpoint, Err: err}
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: endpoint, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return &TransportError{Op: endpoint, Err: fmt.Errorf("upstream http %d", resp.StatusCode)}
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return &TransportError{Op: endpoint, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
