package github

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Getter fetches a URL and decodes the JSON response into v. The org
// client takes its Getter at construction time, so tests can substitute
// a fake without touching the network.
type Getter interface {
	GetJSON(url string, v any) error
}

// GetterFunc adapts a plain function to the Getter interface.
type GetterFunc func(url string, v any) error

func (f GetterFunc) GetJSON(url string, v any) error {
	return f(url, v)
}

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Code, e.Body)
}

// HTTPGetter is the default Getter, backed by net/http with optional
// token auth.
type HTTPGetter struct {
	token  string
	client *http.Client
}

func NewHTTPGetter(token string) *HTTPGetter {
	return &HTTPGetter{
		token: token,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (g *HTTPGetter) GetJSON(url string, v any) error {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	g.setAuth(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (g *HTTPGetter) setAuth(req *http.Request) {
	if g.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("token %s", g.token))
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
}
