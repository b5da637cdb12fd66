package filter

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// fetchURL fetches content from a URL and returns the bytes
func (cfg *processConfig) fetchURL(urlStr string) ([]byte, error) {
	// Use custom client if provided, otherwise create default with timeout
	client := cfg.httpClient
	if client == nil {
		client = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("filter: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("filter: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("filter: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("filter: failed to read response body: %w", err)
	}

	return data, nil
}
