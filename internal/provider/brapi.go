package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"
)

const (
	brapiBatchMax = 20
	// brapi's free tier allows a handful of requests per second;
	// stay well under it.
	brapiRequestsPerSecond = 2
)

// brapiQuoteResponse is the top-level brapi.dev quote response.
type brapiQuoteResponse struct {
	Results []brapiQuoteResult `json:"results"`
}

// brapiQuoteResult is a single quote result from brapi.dev.
type brapiQuoteResult struct {
	Symbol             string  `json:"symbol"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
}

// brapiListResponse is the brapi.dev asset-list/search response.
type brapiListResponse struct {
	Stocks []struct {
		Stock string `json:"stock"`
		Name  string `json:"name"`
	} `json:"stocks"`
}

// BrapiClient fetches quotes for B3-listed tickers from brapi.dev.
type BrapiClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	limiter    *rate.Limiter
}

// NewBrapiClient creates a new brapi.dev market-data client.
func NewBrapiClient(httpClient *http.Client, baseURL, token string) *BrapiClient {
	return &BrapiClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		limiter:    rate.NewLimiter(rate.Limit(brapiRequestsPerSecond), 1),
	}
}

// GetQuotes fetches current prices for the given tickers in batches.
// Tickers missing from the response, or quoted at zero, are omitted
// from the result.
func (c *BrapiClient) GetQuotes(ctx context.Context, tickers []string) (map[string]int64, error) {
	quotes := make(map[string]int64, len(tickers))

	for i := 0; i < len(tickers); i += brapiBatchMax {
		end := min(i+brapiBatchMax, len(tickers))
		if err := c.fetchBatch(ctx, tickers[i:end], quotes); err != nil {
			return nil, err
		}
	}
	return quotes, nil
}

// fetchBatch fetches one batch of tickers into quotes.
func (c *BrapiClient) fetchBatch(ctx context.Context, tickers []string, quotes map[string]int64) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	reqURL := c.baseURL + "/quote/" + url.PathEscape(strings.Join(tickers, ","))
	var resp brapiQuoteResponse
	if err := c.getJSON(ctx, reqURL, &resp); err != nil {
		return err
	}

	for _, r := range resp.Results {
		if r.RegularMarketPrice <= 0 {
			continue
		}
		quotes[r.Symbol] = int64(math.Round(r.RegularMarketPrice * 100))
	}
	return nil
}

// Search looks up B3 assets matching the query.
func (c *BrapiClient) Search(ctx context.Context, query string) ([]AssetInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := c.baseURL + "/quote/list?search=" + url.QueryEscape(query)
	var resp brapiListResponse
	if err := c.getJSON(ctx, reqURL, &resp); err != nil {
		return nil, err
	}

	results := make([]AssetInfo, 0, len(resp.Stocks))
	for _, s := range resp.Stocks {
		results = append(results, AssetInfo{Ticker: s.Stock, Name: s.Name})
	}
	return results, nil
}

// getJSON performs an authenticated GET and decodes the JSON body.
func (c *BrapiClient) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
