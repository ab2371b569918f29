// File: internal/geocoder/http.go
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/doyensec/safeurl"
)

const (
	requestTimeout  = 10 * time.Second
	maxResponseSize = 1 << 20
)

// HTTPGeocoder calls the configured provider over an SSRF-guarded client:
// the provider URL comes from configuration, so outbound requests are still
// restricted to public hosts on http/https.
type HTTPGeocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPGeocoder(baseURL, apiKey string) *HTTPGeocoder {
	cfg := safeurl.GetConfigBuilder().
		SetTimeout(requestTimeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()

	return &HTTPGeocoder{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  safeurl.Client(cfg).Client,
	}
}

// providerResponse mirrors the provider's result list; the first entry wins.
type providerResponse struct {
	Results []Location `json:"results"`
}

func (g *HTTPGeocoder) Geocode(ctx context.Context, postalCode string) (Location, error) {
	query := url.Values{}
	query.Set("postalcode", postalCode)
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return Location{}, fmt.Errorf("geocode request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geocode %s: %w", postalCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geocode %s: provider returned %d", postalCode, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Location{}, fmt.Errorf("geocode %s: %w", postalCode, err)
	}

	var pr providerResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return Location{}, fmt.Errorf("geocode %s: %w", postalCode, err)
	}
	if len(pr.Results) == 0 {
		return Location{}, fmt.Errorf("geocode %s: no results", postalCode)
	}
	return pr.Results[0], nil
}
