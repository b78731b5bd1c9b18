package matchbook

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchbook/internal/platform/logging"
	"github.com/riskibarqy/matchbook/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
)

const (
	defaultBaseURL = "http://localhost:5000"
	passwordHeader = "password"
	maxResponse    = 4 << 20
)

// ErrUnavailable is returned while the circuit breaker rejects calls.
var ErrUnavailable = crerr.New("matchbook server is temporarily unavailable")

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("matchbook: status=%d", e.Status)
	}
	return fmt.Sprintf("matchbook: status=%d: %s", e.Status, e.Message)
}

// IsStatus reports whether err carries an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return stderrors.As(err, &apiErr) && apiErr.Status == status
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Clock          clockwork.Clock
}

// Client speaks the matchbook HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker, cfg.Clock),
	}
}

type Match struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Opponent  string    `json:"opponent"`
	Score     string    `json:"score"`
	Scorers   *string   `json:"scorers"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchInput is the writable part of a Match.
type MatchInput struct {
	Date     string  `json:"date"`
	Opponent string  `json:"opponent"`
	Score    string  `json:"score"`
	Scorers  *string `json:"scorers,omitempty"`
}

type NextMatch struct {
	ID        int64     `json:"id,omitempty"`
	Date      string    `json:"date"`
	Opponent  string    `json:"opponent"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Stats struct {
	ID           int64      `json:"id,omitempty"`
	Wins         int64      `json:"wins"`
	Draws        int64      `json:"draws"`
	Losses       int64      `json:"losses"`
	Goals        int64      `json:"goals"`
	GoalsAgainst int64      `json:"goalsAgainst"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

type messageBody struct {
	ID      int64  `json:"id,omitempty"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Authenticate asks the server whether secret is the admin password.
// A wrong secret comes back as an *APIError with status 403.
func (c *Client) Authenticate(ctx context.Context, secret string) error {
	return c.do(ctx, http.MethodPost, "/authenticate", "", map[string]string{"password": secret}, nil)
}

func (c *Client) ListMatches(ctx context.Context) ([]Match, error) {
	out := make([]Match, 0)
	if err := c.do(ctx, http.MethodGet, "/matches", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMatch returns the id the server assigned.
func (c *Client) CreateMatch(ctx context.Context, secret string, in MatchInput) (int64, error) {
	var out messageBody
	if err := c.do(ctx, http.MethodPost, "/matches", secret, in, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) UpdateMatch(ctx context.Context, secret string, id int64, in MatchInput) error {
	return c.do(ctx, http.MethodPut, matchPath(id), secret, in, nil)
}

func (c *Client) DeleteMatch(ctx context.Context, secret string, id int64) error {
	return c.do(ctx, http.MethodDelete, matchPath(id), secret, nil, nil)
}

// GetNextMatch returns nil when no next match has been set.
func (c *Client) GetNextMatch(ctx context.Context) (*NextMatch, error) {
	var out *NextMatch
	if err := c.do(ctx, http.MethodGet, "/next-match", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetNextMatch(ctx context.Context, secret string, in NextMatch) error {
	body := NextMatch{Date: in.Date, Opponent: in.Opponent, Time: in.Time}
	return c.do(ctx, http.MethodPost, "/next-match", secret, body, nil)
}

func (c *Client) GetStats(ctx context.Context) (Stats, error) {
	var out Stats
	if err := c.do(ctx, http.MethodGet, "/stats", "", nil, &out); err != nil {
		return Stats{}, err
	}
	return out, nil
}

// AddStats appends a snapshot and returns its id.
func (c *Client) AddStats(ctx context.Context, secret string, in Stats) (int64, error) {
	body := Stats{
		Wins:         in.Wins,
		Draws:        in.Draws,
		Losses:       in.Losses,
		Goals:        in.Goals,
		GoalsAgainst: in.GoalsAgainst,
	}
	var out messageBody
	if err := c.do(ctx, http.MethodPost, "/stats", secret, body, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func matchPath(id int64) string {
	return "/matches/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path, secret string, payload, target any) error {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "matchbook circuit breaker rejected request", "state", c.breaker.State(), "path", path)
		return ErrUnavailable
	}

	raw, err := c.execute(ctx, method, path, secret, payload)
	if err != nil {
		if isCircuitFailure(err) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return err
	}
	c.breaker.RecordSuccess()

	if target == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s %s response", method, path)
	}
	return nil
}

func (c *Client) execute(ctx context.Context, method, path, secret string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)

		if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
			return nil, crerr.Wrap(err, "encode request payload")
		}
		body = bytes.NewReader(buf.Bytes())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if secret != "" {
		req.Header.Set(passwordHeader, secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, crerr.Wrapf(err, "send %s %s", method, path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponse))
	if err != nil {
		return nil, crerr.Wrapf(err, "read %s %s response", method, path)
	}
	if resp.StatusCode/100 != 2 {
		return nil, c.apiError(ctx, method, path, resp.StatusCode, raw)
	}
	return raw, nil
}

func (c *Client) apiError(ctx context.Context, method, path string, status int, raw []byte) error {
	var body messageBody
	message := strings.TrimSpace(string(raw))
	if err := sonic.Unmarshal(raw, &body); err == nil && body.Error != "" {
		message = body.Error
	}
	if status >= http.StatusInternalServerError {
		c.logger.WarnContext(ctx, "matchbook server error", "method", method, "path", path, "status", status, "message", message)
	}
	return crerr.WithStack(&APIError{Status: status, Message: message})
}

// isCircuitFailure counts transport errors and 5xx answers. 4xx answers mean
// the server is healthy and only the request was wrong.
func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.Canceled) {
		return false
	}
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	return true
}
