package domain

import "context"

// PageFetcher retrieves the raw HTML of a forecast page.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) ([]byte, error)
}
