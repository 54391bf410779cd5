// Package httpapi implements the platform client against the OpenHire
// REST API. Failures are classified into the app error taxonomy so the
// state containers never see raw transport errors.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/openhire/mobile-core/internal/apperrors"
	"github.com/openhire/mobile-core/internal/domain/auth"
	"github.com/openhire/mobile-core/internal/domain/model"
	"github.com/openhire/mobile-core/internal/ports"
)

const maxErrorBodyBytes = 4 * 1024

// Options configures the API client.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client talks to the platform API over HTTP and implements
// ports.PlatformClient.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger

	// token is the bearer credential for authenticated calls. A session
	// subscriber updates it through SetToken after login/logout, possibly
	// concurrently with in-flight requests.
	mu    sync.RWMutex
	token string
}

var _ ports.PlatformClient = (*Client)(nil)

// New constructs a client for the API at opts.BaseURL.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		return nil, errors.New("base URL must be provided")
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{base: base, http: hc, logger: logger}, nil
}

// SetToken installs (or clears, with "") the bearer credential.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Authenticate exchanges credentials for a session.
func (c *Client) Authenticate(ctx context.Context, creds auth.Credentials) (ports.AuthResult, error) {
	var out struct {
		Token string       `json:"token"`
		User  auth.Profile `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", nil, creds, &out); err != nil {
		return ports.AuthResult{}, err
	}
	if out.Token == "" || out.User.ID == "" {
		return ports.AuthResult{}, apperrors.Server("login response missing token or user")
	}
	return ports.AuthResult{User: out.User, Token: out.Token}, nil
}

// ListJobs fetches listings matching query. Server-side filtering keeps
// payloads small; the derived views re-filter locally regardless.
func (c *Client) ListJobs(ctx context.Context, query model.ListingsQuery) ([]model.JobListing, error) {
	params := url.Values{}
	if query.Location != "" {
		params.Set("location", query.Location)
	}
	if query.Type != "" {
		params.Set("type", string(query.Type))
	}
	if query.SalaryMin > 0 {
		params.Set("salary_min", strconv.Itoa(query.SalaryMin))
	}
	if text := strings.TrimSpace(query.Text); text != "" {
		params.Set("q", text)
	}

	var out struct {
		Listings []model.JobListing `json:"listings"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/jobs", params, nil, &out); err != nil {
		return nil, err
	}
	return out.Listings, nil
}

// ListApplications fetches the user's applications.
func (c *Client) ListApplications(ctx context.Context, userID string) ([]model.Application, error) {
	params := url.Values{}
	params.Set("user_id", userID)

	var out struct {
		Applications []model.Application `json:"applications"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/applications", params, nil, &out); err != nil {
		return nil, err
	}
	return out.Applications, nil
}

// SubmitApplication creates an application and returns the server record.
func (c *Client) SubmitApplication(ctx context.Context, req model.SubmitApplicationRequest) (model.Application, error) {
	var out model.Application
	if err := c.do(ctx, http.MethodPost, "/v1/applications", nil, req, &out); err != nil {
		return model.Application{}, err
	}
	return out, nil
}

// do runs one request/response cycle: encode, send, classify, decode.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, in, out any) error {
	endpoint := c.base + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "encode %s request", path)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "build %s request", path)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WarnContext(ctx, "close response body", "path", path, "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyStatus(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeServer, "decode %s response", path)
	}
	return nil
}

// classifyTransport maps client-side send failures. Timeouts get their
// own code so the UI can phrase them differently from dead-network cases,
// though both surface as retriable.
func classifyTransport(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, "request timed out")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(err, apperrors.ErrCodeTimeout, "request timed out")
	}
	return apperrors.Wrap(err, apperrors.ErrCodeTransport, "network request failed")
}

func classifyStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	msg := serverMessage(body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if msg == "" {
			msg = "credential rejected"
		}
		return apperrors.Unauthorized(msg)
	default:
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return apperrors.Server(msg)
	}
}

// serverMessage pulls the error string out of the API's error envelope,
// tolerating non-JSON bodies.
func serverMessage(body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Error != "" {
		return envelope.Error
	}
	return envelope.Message
}
