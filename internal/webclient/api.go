package webclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"harvesthub/internal/apperr"
	"harvesthub/internal/domain"
)

// Client is a typed wrapper over the JSON API. Every call carries a finite
// timeout; a timeout is reported as its own error kind and otherwise treated
// like any network failure.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Token   string
}

const defaultAPITimeout = 10 * time.Second

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: defaultAPITimeout},
	}
}

// WithToken returns a shallow copy carrying a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.Token = token
	return &cp
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   bool            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

func transportErr(err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return apperr.Timeout(err)
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return apperr.Timeout(err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Timeout(err)
	}
	return apperr.Network(err)
}

func statusErr(status int, env envelope) error {
	msg := env.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	switch {
	case status == http.StatusBadRequest:
		if len(env.Errors) > 0 {
			return apperr.Validation(env.Errors)
		}
		return apperr.BadRequest(msg)
	case status == http.StatusUnauthorized:
		return apperr.Unauthenticated(msg)
	case status == http.StatusForbidden:
		return apperr.Forbidden(msg)
	case status == http.StatusNotFound:
		return apperr.NotFound(msg)
	default:
		return apperr.Persistence(fmt.Errorf("api: status %d: %s", status, msg))
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return transportErr(err)
	}
	defer res.Body.Close()

	var env envelope
	if derr := json.NewDecoder(res.Body).Decode(&env); derr != nil && res.StatusCode < 300 {
		return apperr.Network(derr)
	}
	if res.StatusCode >= 300 {
		return statusErr(res.StatusCode, env)
	}
	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// Health probes the API; nil means reachable.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) Workshops(ctx context.Context) ([]domain.Workshop, error) {
	var out []domain.Workshop
	err := c.do(ctx, http.MethodGet, "/workshops", nil, &out)
	return out, err
}

func (c *Client) Events(ctx context.Context) ([]domain.Event, error) {
	var out []domain.Event
	err := c.do(ctx, http.MethodGet, "/events", nil, &out)
	return out, err
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := c.do(ctx, http.MethodGet, "/products", nil, &out)
	return out, err
}

func (c *Client) Workshop(ctx context.Context, id int64) (domain.Workshop, error) {
	var out domain.Workshop
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/workshops/%d", id), nil, &out)
	return out, err
}

func (c *Client) Event(ctx context.Context, id int64) (domain.Event, error) {
	var out domain.Event
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil, &out)
	return out, err
}

type loginResult struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

func (c *Client) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	var out loginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"username": username, "password": password,
	}, &out)
	return out.User, out.Token, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out)
	return out, err
}

// BookingPayload is the submit shape. There is no total field on purpose:
// the preview total is display-only and the server derives its own.
type BookingPayload struct {
	WorkshopID          *int64  `json:"workshop_id,omitempty"`
	EventID             *int64  `json:"event_id,omitempty"`
	BookingDate         string  `json:"booking_date"`
	Participants        int     `json:"participants"`
	SpecialRequirements *string `json:"special_requirements,omitempty"`
}

func (c *Client) CreateBooking(ctx context.Context, p BookingPayload) (domain.Booking, error) {
	var out domain.Booking
	err := c.do(ctx, http.MethodPost, "/bookings", p, &out)
	return out, err
}
