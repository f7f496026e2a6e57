// Package client is a Go SDK for the snack API built on resty.
//
// Non-2xx responses come back as *APIError, which unwraps to the matching
// apperror sentinel, so callers classify failures exactly as the server does:
//
//	if errors.Is(err, apperror.ErrNotFound) { ... }
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sakif/snack-api/internal/apperror"
	"github.com/sakif/snack-api/internal/dto"
)

const (
	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 15 * time.Second
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to one API server. It is safe for concurrent use.
type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: cli}
}

// SetToken sets the bearer token sent on authenticated calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Kind    string
	Message string
	Fields  []string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%d %s: %s [%s]", e.Status, e.Kind, e.Message, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Kind, e.Message)
}

// Unwrap maps the status back to the apperror kind the server started from.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return apperror.ErrValidation
	case http.StatusNotFound:
		return apperror.ErrNotFound
	case http.StatusConflict:
		return apperror.ErrDuplicateKey
	case http.StatusUnauthorized:
		return apperror.ErrUnauthorized
	default:
		return nil
	}
}

// errorBody mirrors handler.ErrorResponse.
type errorBody struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Fields  []string `json:"fields"`
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().
		SetContext(ctx).
		SetError(&errorBody{})
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func mapError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode(), Kind: "http_error", Message: resp.Status()}
	if body, ok := resp.Error().(*errorBody); ok && body.Error != "" {
		apiErr.Kind = body.Error
		apiErr.Message = body.Message
		apiErr.Fields = body.Fields
	}
	return apiErr
}

func (c *Client) ListSnacks(ctx context.Context) ([]dto.SnackResponse, error) {
	var out []dto.SnackResponse
	resp, err := c.request(ctx).SetResult(&out).Get("/snacks")
	if err != nil {
		return nil, fmt.Errorf("list snacks request: %w", err)
	}
	if err := mapError(resp); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSnack(ctx context.Context, id int64) (*dto.SnackResponse, error) {
	var out dto.SnackResponse
	resp, err := c.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&out).
		Get("/snacks/{id}")
	if err != nil {
		return nil, fmt.Errorf("get snack request: %w", err)
	}
	if err := mapError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSnack(ctx context.Context, title, body string, author int64) (*dto.SnackResponse, error) {
	var out dto.SnackResponse
	resp, err := c.request(ctx).
		SetBody(dto.SnackRequest{Title: &title, Body: &body, Author: &author}).
		SetResult(&out).
		Post("/snacks")
	if err != nil {
		return nil, fmt.Errorf("create snack request: %w", err)
	}
	if err := mapError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSnack(ctx context.Context, id int64, title, body string, author int64) (*dto.SnackResponse, error) {
	var out dto.SnackResponse
	resp, err := c.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(dto.SnackRequest{Title: &title, Body: &body, Author: &author}).
		SetResult(&out).
		Put("/snacks/{id}")
	if err != nil {
		return nil, fmt.Errorf("update snack request: %w", err)
	}
	if err := mapError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSnack(ctx context.Context, id int64) error {
	resp, err := c.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/snacks/{id}")
	if err != nil {
		return fmt.Errorf("delete snack request: %w", err)
	}
	return mapError(resp)
}

func (c *Client) CreateAccount(ctx context.Context, username, password string) (*dto.PrincipalResponse, error) {
	var out dto.PrincipalResponse
	resp, err := c.request(ctx).
		SetBody(dto.AccountRequest{Username: &username, Password: &password}).
		SetResult(&out).
		Post("/accounts")
	if err != nil {
		return nil, fmt.Errorf("create account request: %w", err)
	}
	if err := mapError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login obtains a token and keeps it for later authenticated calls.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	resp, err := c.request(ctx).
		SetBody(dto.AccountRequest{Username: &username, Password: &password}).
		SetResult(&out).
		Post("/auth/token")
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	if err := mapError(resp); err != nil {
		return nil, err
	}

	c.SetToken(out.Token)
	return &out, nil
}

// Me returns the principal the current token belongs to.
func (c *Client) Me(ctx context.Context) (*dto.PrincipalResponse, error) {
	var out dto.PrincipalResponse
	resp, err := c.request(ctx).SetResult(&out).Get("/me")
	if err != nil {
		return nil, fmt.Errorf("me request: %w", err)
	}
	if err := mapError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}
