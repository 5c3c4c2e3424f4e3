package gsc

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/searchconsole/v1"
)

// ScopeWebmasters is the OAuth2 scope required for Search Console access.
const ScopeWebmasters = "https://www.googleapis.com/auth/webmasters"

// Client wraps the Search Console API service for one authenticated
// principal.
type Client struct {
	svc *searchconsole.Service
}

// NewClient creates a Search Console client using the provided TokenSource.
// Extra options are accepted so tests can point the client at a fake
// endpoint.
func NewClient(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)
	svc, err := searchconsole.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create search console service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ListProperties returns the site URLs accessible to the authenticated
// principal, in the order the API returns them.
func (c *Client) ListProperties(ctx context.Context) ([]string, error) {
	resp, err := c.svc.Sites.List().Context(ctx).Do()
	if err != nil {
		return nil, WrapError(err)
	}
	urls := make([]string, 0, len(resp.SiteEntry))
	for _, site := range resp.SiteEntry {
		urls = append(urls, site.SiteUrl)
	}
	return urls, nil
}
