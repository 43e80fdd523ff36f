// Package rates provides the market exchange-rate quote adapter. Quotes are
// fetched from an exchangerate-api compatible endpoint and returned relative
// to a requested base currency.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	portsprov "github.com/preqsy/monetra-server/internal/core/ports/providers"
)

// Client fetches live conversion rates over HTTP.
// The API shape is GET {baseURL}/{apiKey}/latest/{base} returning
// {"conversion_rates": {"USD": 0.0007, ...}}.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Ensure implementation matches interface
var _ portsprov.ExchangeRateProvider = (*Client)(nil)

// NewClient creates a rate provider client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type latestRatesResponse struct {
	ConversionRates map[string]json.Number `json:"conversion_rates"`
}

// LatestRates returns the conversion rate for every supported currency
// relative to the given base code. Rates are decoded as decimals straight from
// the wire; they never pass through a float.
func (c *Client) LatestRates(ctx context.Context, baseCurrencyCode string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, baseCurrencyCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates for %s: %w", baseCurrencyCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d for base %s", resp.StatusCode, baseCurrencyCode)
	}

	var payload latestRatesResponse
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rate response: %w", err)
	}

	quotes := make(map[string]decimal.Decimal, len(payload.ConversionRates))
	for code, raw := range payload.ConversionRates {
		quote, err := decimal.NewFromString(raw.String())
		if err != nil {
			return nil, fmt.Errorf("invalid rate %q for %s: %w", raw.String(), code, err)
		}
		quotes[code] = quote
	}
	return quotes, nil
}
