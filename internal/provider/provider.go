// Package provider defines the interface for fetching asset prices
// from external market-data sources.
package provider

import "context"

// AssetInfo is a search hit from the market-data provider.
type AssetInfo struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

// MarketData fetches current quotes and searches listed assets.
type MarketData interface {
	// GetQuotes fetches current prices (in cents) for the given
	// tickers. Tickers the provider cannot quote are simply absent
	// from the result; callers must treat a missing quote as
	// "unchanged", never as zero. The error is non-nil only when the
	// whole request failed.
	GetQuotes(ctx context.Context, tickers []string) (map[string]int64, error)

	// Search looks up assets matching the query.
	Search(ctx context.Context, query string) ([]AssetInfo, error)
}
