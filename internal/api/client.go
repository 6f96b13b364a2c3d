package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNetwork marks transport-level failures (DNS, refused connection,
// timeout). Callers show a generic connectivity message for these.
var ErrNetwork = errors.New("unable to reach the server, check your connection")

// Error is a backend-reported failure: the envelope arrived but carried
// success=false. The message is surfaced to the user verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// TokenSource supplies the current bearer token, or "" when signed out.
type TokenSource interface {
	Token() string
}

// Page sizes fixed per resource.
const (
	SalonsPageSize  = 6
	UsersPageSize   = 10
	DefaultPageSize = 10
)

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client wraps every outbound call to the salon platform API. All
// responses share the {success, data, error, total, page, pages}
// envelope; data is decoded into the caller's type.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
	}
}

// SetTokenSource wires the session store in after construction. The
// client and the store reference each other, so this cannot happen in New.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// ListQuery carries pagination and server-side filter parameters.
// Filtering is done by the backend so matches outside the current page
// are found too.
type ListQuery struct {
	Page     int
	Limit    int
	Search   string
	Status   string
	Category string
	Role     string
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Role != "" {
		v.Set("role", q.Role)
	}
	return v
}

// Meta is the pagination block of a list envelope.
type Meta struct {
	Total int
	Page  int
	Pages int
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) (*Meta, error) {
	return c.do(ctx, http.MethodGet, path, query, "", nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) (*Meta, error) {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) (*Meta, error) {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, "", nil, nil)
	return err
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) (*Meta, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, nil, "application/json", reader, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) (*Meta, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, &Error{Status: resp.StatusCode, Message: "unexpected response from server"}
		}
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		return nil, &Error{Status: resp.StatusCode, Message: env.Error}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, &Error{Status: resp.StatusCode, Message: "unexpected response from server"}
		}
	}
	return &Meta{Total: env.Total, Page: env.Page, Pages: env.Pages}, nil
}
