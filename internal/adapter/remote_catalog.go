package adapter

import (
	"context"
	"errors"
	"fmt"
	"game-library/internal/core/model"
	"io"
	"net/http"
	"strings"
	"time"
)

var errNotFound = errors.New("not found")

// RemoteCatalogClient loads a published catalog, a JSON array of game records
// served at <BaseURL>/games.json. It is read-only.
type RemoteCatalogClient struct {
	BaseURL string
	Client  *http.Client
	Retry   int
}

func NewRemoteCatalogClient(baseURL string, retry int, httpClient *http.Client) *RemoteCatalogClient {
	if retry < 0 {
		retry = 0
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RemoteCatalogClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  httpClient,
		Retry:   retry,
	}
}

func (c *RemoteCatalogClient) LoadGames(ctx context.Context) ([]model.RawGame, error) {
	url := c.BaseURL + "/games.json"

	var lastErr error
	attempts := c.Retry + 1
	for i := 0; i < attempts; i++ {
		games, err := c.fetchOnce(ctx, url)
		if err == nil {
			return games, nil
		}
		// 404 and undecodable payloads are final
		var final *finalError
		if errors.Is(err, errNotFound) || errors.As(err, &final) {
			return nil, err
		}
		lastErr = err
		// simple backoff
		if i < attempts-1 {
			select {
			case <-time.After(time.Duration(150*(i+1)) * time.Millisecond):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

type finalError struct{ err error }

func (e *finalError) Error() string { return e.err.Error() }
func (e *finalError) Unwrap() error { return e.err }

func (c *RemoteCatalogClient) fetchOnce(ctx context.Context, url string) ([]model.RawGame, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &finalError{err}
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("catalog %s: %w", url, errNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("catalog: status %d: %s", resp.StatusCode, string(b))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	games, err := model.DecodeRawGames(body)
	if err != nil {
		return nil, &finalError{fmt.Errorf("catalog %s: %w", url, err)}
	}
	return games, nil
}
