package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// NewtonConfig configures the Newton symbolic-math API client.
type NewtonConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewtonOracle queries the Newton API: GET {base}/{operation}/{expr}
// returning {"operation", "expression", "result"}.
type NewtonOracle struct {
	baseURL string
	client  *http.Client
}

func NewNewtonOracle(cfg NewtonConfig) *NewtonOracle {
	base := cfg.BaseURL
	if base == "" {
		base = "https://newton.now.sh/api/v2"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NewtonOracle{
		baseURL: strings.TrimRight(base, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type newtonResponse struct {
	Operation  string `json:"operation"`
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Error      string `json:"error"`
}

func (n *NewtonOracle) Evaluate(ctx context.Context, op Operation, expression string) (string, error) {
	expr := strings.Join(strings.Fields(expression), "")
	reqURL := fmt.Sprintf("%s/%s/%s", n.baseURL, op, url.PathEscape(expr))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("build newton request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return "", &ErrUnavailable{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", &ErrRateLimit{RetryAfter: retryAfter(resp), Err: fmt.Errorf("newton API status %d", resp.StatusCode)}
	case resp.StatusCode >= 500:
		return "", &ErrUnavailable{Err: fmt.Errorf("newton API status %d", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return "", &ErrInvalidResult{Err: fmt.Errorf("newton API status %d", resp.StatusCode)}
	}

	var body newtonResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &ErrInvalidResult{Err: fmt.Errorf("decode newton response: %w", err)}
	}
	if body.Error != "" {
		return "", &ErrInvalidResult{Content: body.Error, Err: fmt.Errorf("newton API error: %s", body.Error)}
	}
	if body.Result == "" {
		return "", &ErrInvalidResult{Err: fmt.Errorf("empty newton result")}
	}
	return body.Result, nil
}

func (n *NewtonOracle) Name() string { return "newton" }

// retryAfter reads the Retry-After header in its delta-seconds form.
// HTTP-date values and anything else unparseable yield 0.
func retryAfter(resp *http.Response) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
