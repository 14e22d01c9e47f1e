// Package client talks to the upstream foraging-conditions backend. The
// backend owns all weather aggregation and recommendation logic; this side
// only issues GET /check?suburb=<id> and decodes the JSON payload.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/capefungi/forager/internal/forage"
)

var (
	// ErrUpstreamStatus indicates a non-2xx response from the backend.
	ErrUpstreamStatus = errors.New("upstream returned unexpected status")
	// ErrDecode indicates the backend responded with a body that is not a
	// valid conditions payload.
	ErrDecode = errors.New("malformed conditions payload")
	// ErrCircuitOpen indicates the breaker is rejecting calls after
	// repeated upstream failures.
	ErrCircuitOpen = errors.New("conditions circuit open")
)

// ConditionsClient is an HTTP client for the conditions endpoint with the
// standard outbound resilience: bounded retry with exponential backoff and
// a circuit breaker.
type ConditionsClient struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker

	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

// New creates a ConditionsClient for the given base URL.
func New(baseURL string, httpClient *http.Client) *ConditionsClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "conditions",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &ConditionsClient{
		baseURL:         baseURL,
		client:          httpClient,
		circuit:         cb,
		maxRetries:      3,
		initialInterval: 500 * time.Millisecond,
		maxInterval:     5 * time.Second,
	}
}

// Check fetches the current conditions report for a suburb.
func (c *ConditionsClient) Check(ctx context.Context, suburb forage.Suburb) (forage.ConditionsReport, error) {
	values := url.Values{}
	values.Set("suburb", string(suburb))
	endpoint := fmt.Sprintf("%s/check?%s", c.baseURL, values.Encode())

	resp, err := c.do(ctx, endpoint)
	if err != nil {
		return forage.ConditionsReport{}, err
	}
	defer resp.Body.Close()

	var report forage.ConditionsReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return forage.ConditionsReport{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return report, nil
}

// do executes the GET with retries, exponential backoff, and the circuit
// breaker. Context cancellation aborts both in-flight requests and backoff
// waits.
func (c *ConditionsClient) do(ctx context.Context, endpoint string) (*http.Response, error) {
	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		result, err := c.circuit.Execute(func() (interface{}, error) {
			resp, execErr := c.client.Do(req)
			if execErr != nil {
				return nil, execErr
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				resp.Body.Close()
				return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
			}
			return resp, nil
		})

		if err == nil {
			return result.(*http.Response), nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}

		lastErr = err
		if attempt >= c.maxRetries {
			return nil, lastErr
		}

		delay := c.initialInterval << attempt
		if c.maxInterval > 0 && delay > c.maxInterval {
			delay = c.maxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}
