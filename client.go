// Package nightscout provides a typed client for the Nightscout REST API and
// the daily-schedule resolution engine behind its profiles.
package nightscout

import (
	"context"
	"crypto/sha1" //nolint:gosec // Required for Nightscout API secret hashing (legacy API requirement)
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// Fetcher is the read surface of the API. It is implemented by *Client and
// can be swapped out in tests.
type Fetcher interface {
	GetSGVs(ctx context.Context, params url.Values) ([]SGV, error)
	GetServerStatus(ctx context.Context, params url.Values) (*ServerStatus, error)
	GetTreatments(ctx context.Context, params url.Values) ([]Treatment, error)
	GetProfiles(ctx context.Context, params url.Values) (*ProfileDefinitionSet, error)
	GetDevicesStatus(ctx context.Context, params url.Values) ([]DeviceStatus, error)
	GetLatestDevicesStatus(ctx context.Context, params url.Values) (map[string]DeviceStatus, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client handles communication with the Nightscout API. Every fetch is a
// one-shot request-response; retries, if desired, belong to the caller.
type Client struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
}

const defaultTimeout = 30 * time.Second

// NewClient creates a client for the given server URL. Pass an access token,
// an API secret, or neither for an unauthenticated server. The token takes
// precedence when both are set.
func NewClient(baseURL, accessToken, apiSecret string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: requestHeaders(accessToken, apiSecret),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// requestHeaders computes the auth header set once per client. A raw secret
// is SHA-1 hashed; a secret already carrying the token= prefix passes through
// verbatim.
func requestHeaders(accessToken, apiSecret string) http.Header {
	headers := http.Header{}
	headers.Set("Accept", "application/json")
	headers.Set("Content-Type", "application/json")
	switch {
	case accessToken != "":
		headers.Set("api-secret", "token="+accessToken)
	case strings.HasPrefix(apiSecret, "token="):
		headers.Set("api-secret", apiSecret)
	case apiSecret != "":
		headers.Set("api-secret", hashSecret(apiSecret))
	}
	return headers
}

// hashSecret generates the SHA-1 hash of the API secret
// Note: SHA-1 is required for Nightscout API compatibility
func hashSecret(secret string) string {
	hasher := sha1.New() //nolint:gosec // Required for Nightscout API
	hasher.Write([]byte(secret))
	return hex.EncodeToString(hasher.Sum(nil))
}

// GetSGVs fetches sensor glucose values. Params are MongoDB-style query
// expressions passed through verbatim, e.g.
// {"count": ["10"], "find[dateString][$gte]": ["2017-03-07T01:10:26.000Z"]}.
func (c *Client) GetSGVs(ctx context.Context, params url.Values) ([]SGV, error) {
	var entries []SGV
	if err := c.get(ctx, "/api/v1/entries/sgv.json", params, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetServerStatus fetches the server status and settings.
func (c *Client) GetServerStatus(ctx context.Context, params url.Values) (*ServerStatus, error) {
	var status ServerStatus
	if err := c.get(ctx, "/api/v1/status.json", params, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetTreatments fetches treatments (boluses, carb entries, temp basals, ...).
func (c *Client) GetTreatments(ctx context.Context, params url.Values) ([]Treatment, error) {
	var treatments []Treatment
	if err := c.get(ctx, "/api/v1/treatments.json", params, &treatments); err != nil {
		return nil, err
	}
	return treatments, nil
}

// GetProfiles fetches the profile definition history, sorted ascending by
// start date.
func (c *Client) GetProfiles(ctx context.Context, params url.Values) (*ProfileDefinitionSet, error) {
	var set ProfileDefinitionSet
	if err := c.get(ctx, "/api/v1/profile.json", params, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// GetDevicesStatus fetches device status reports.
func (c *Client) GetDevicesStatus(ctx context.Context, params url.Values) ([]DeviceStatus, error) {
	var statuses []DeviceStatus
	if err := c.get(ctx, "/api/v1/devicestatus.json", params, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// GetLatestDevicesStatus fetches device status reports and keeps only the
// most recent report per device.
func (c *Client) GetLatestDevicesStatus(ctx context.Context, params url.Values) (map[string]DeviceStatus, error) {
	statuses, err := c.GetDevicesStatus(ctx, params)
	if err != nil {
		return nil, err
	}
	return LatestDevicesStatus(statuses), nil
}

// LatestDevicesStatus groups reports by device and selects the one with the
// greatest created_at per group. Ties keep the report seen first.
func LatestDevicesStatus(statuses []DeviceStatus) map[string]DeviceStatus {
	grouped := make(map[string][]DeviceStatus)
	for _, status := range statuses {
		grouped[status.Device] = append(grouped[status.Device], status)
	}
	latest := make(map[string]DeviceStatus, len(grouped))
	for device, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CreatedAt.After(group[j].CreatedAt)
		})
		latest[device] = group[0]
	}
	return latest
}

// get executes an authenticated GET and decodes the JSON response into dest.
func (c *Client) get(ctx context.Context, path string, params url.Values, dest any) error {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
