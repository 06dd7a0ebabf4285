// Package cloud defines the abstraction over authenticated cloud API
// clients: operation-by-name invocation with pagination, a typed error
// taxonomy, and a per-run client cache.
//
// Implementations classify provider errors into Kind exactly once at this
// boundary. Callers never parse provider error strings.
package cloud

import "context"

// Page is one page of a (possibly paginated) API response, decoded to a
// generic field map.
type Page struct {
	// Fields holds the top-level response fields by name.
	Fields map[string]any

	// NextToken is the continuation token for the next page, empty when
	// the response is complete.
	NextToken string

	// TokenParam names the request parameter NextToken must be passed as
	// to fetch the next page (e.g. "Marker", "ContinuationToken").
	TokenParam string
}

// Paginated reports whether more pages follow this one.
func (p *Page) Paginated() bool {
	return p != nil && p.NextToken != "" && p.TokenParam != ""
}

// Client invokes operations of one service in one region.
//
// Implementations must be safe for concurrent use; one cached client is
// shared by every worker touching its (service, region, profile) key.
type Client interface {
	// Invoke calls the named operation with the given parameters (nil for
	// an empty/default request) and returns one response page. Failed
	// invocations return an *APIError with a classified Kind.
	Invoke(ctx context.Context, operation string, params map[string]any) (*Page, error)
}

// Factory constructs clients for (service, region, profile) triples.
type Factory interface {
	Client(ctx context.Context, service, region, profile string) (Client, error)
}
