package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Candidate is one personnel record returned by a directory search.
type Candidate struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Expertise  string `json:"expertise"`
}

// Client provides access to the institutional personnel directory.
type Client interface {
	// Search returns candidates matching the query.
	Search(ctx context.Context, query string) ([]Candidate, error)

	// Available checks whether the directory server is reachable.
	Available(ctx context.Context) bool
}

// httpClient implements Client against the directory HTTP API.
type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Client for the configured directory endpoint.
func NewClient(cfg Config) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 2 * time.Second,
				}).DialContext,
			},
		},
	}
}

// searchResponse is the JSON body returned by GET /api/personnel/search.
type searchResponse struct {
	Results []Candidate `json:"results"`
}

func (c *httpClient) Search(ctx context.Context, query string) ([]Candidate, error) {
	if !c.cfg.Enabled {
		return nil, ErrDisabled
	}
	if len(query) < c.cfg.MinQueryLen {
		return nil, fmt.Errorf("%w: need at least %d characters", ErrQueryTooShort, c.cfg.MinQueryLen)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	u := c.cfg.Endpoint + "/api/personnel/search?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionError(err) || ctx.Err() != nil {
			return nil, ErrUnavailable
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned status %d: %s", resp.StatusCode, string(body))
	}

	var out searchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return out.Results, nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	if !c.cfg.Enabled {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
