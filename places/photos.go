package places

import (
	"fmt"
	"net/url"
)

// PhotoURL builds the fetchable image URL for a photo reference. The
// returned URL still requires the API key as a query parameter when
// requested, so this is only for handing to clients that append one.
func PhotoURL(ref string, maxWidth int) string {
	if ref == "" {
		return ""
	}
	if maxWidth <= 0 {
		maxWidth = 800
	}
	return fmt.Sprintf("https://maps.googleapis.com/maps/api/place/photo?maxwidth=%d&photo_reference=%s", maxWidth, url.QueryEscape(ref))
}
