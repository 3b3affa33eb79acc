// Package client talks to the reservation backend over HTTP.
//
// Every failure, whether a transport error, a status outside the 2xx range or
// an undecodable list body, is reported as an error matching ErrRequestFailed.
// Mutation responses are only checked for their status; their bodies are
// drained and ignored.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/reservation-console/internal/booking"
	"github.com/example/reservation-console/internal/logging"
)

// RequestIDHeader carries the correlation identifier of each backend call.
const RequestIDHeader = "X-Request-ID"

// Client issues requests against a single backend base URL.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	requestID  func() string
	logger     *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each request. Zero or negative leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRequestIDs sets the generator used when the context carries no request id.
func WithRequestIDs(next func() string) Option {
	return func(c *Client) {
		if next != nil {
			c.requestID = next
		}
	}
}

// WithLogger sets the logger used when the context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New constructs a client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("client: invalid base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("client: unsupported base URL scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("client: base URL %q has no host", baseURL)
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: http.DefaultClient,
		requestID:  uuid.NewString,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// ListRooms fetches every room in backend order.
func (c *Client) ListRooms(ctx context.Context) ([]booking.Room, error) {
	var rooms []booking.Room
	if err := c.send(ctx, http.MethodGet, booking.PathRooms, nil, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// ListReservations fetches every reservation in backend order.
func (c *Client) ListReservations(ctx context.Context) ([]booking.Reservation, error) {
	var reservations []booking.Reservation
	if err := c.send(ctx, http.MethodGet, booking.PathReservations, nil, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// AddRoom submits a new room.
func (c *Client) AddRoom(ctx context.Context, room booking.NewRoom) error {
	return c.send(ctx, http.MethodPost, booking.PathAddRoom, nil, room, nil)
}

// CreateReservation submits a new reservation.
func (c *Client) CreateReservation(ctx context.Context, reservation booking.NewReservation) error {
	return c.send(ctx, http.MethodPost, booking.PathCreateReservation, nil, reservation, nil)
}

// DeleteRoom asks the backend to remove the room with the given id.
func (c *Client) DeleteRoom(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, booking.PathDeleteRoom, idQuery(id), nil, nil)
}

// DeleteReservation asks the backend to remove the reservation with the given id.
func (c *Client) DeleteReservation(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, booking.PathDeleteReservation, idQuery(id), nil, nil)
}

// ExportReservations streams the backend export document in format to w.
func (c *Client) ExportReservations(ctx context.Context, format string, w io.Writer) error {
	query := url.Values{"format": []string{format}}
	return c.send(ctx, http.MethodGet, booking.PathExportReservations, query, nil, w)
}

func idQuery(id int) url.Values {
	return url.Values{"id": []string{strconv.Itoa(id)}}
}

// send performs one request. out may be nil (body discarded), an io.Writer
// (body copied) or a pointer that the JSON body is decoded into.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any, out any) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, mErr := json.Marshal(body)
		if mErr != nil {
			return fmt.Errorf("%w: %s %s: encode body: %w", ErrRequestFailed, method, path, mErr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := logging.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = c.requestID()
	}
	req.Header.Set(RequestIDHeader, requestID)

	logger := c.loggerFor(ctx).With("method", method, "path", path, "backend_request_id", requestID)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.DebugContext(ctx, "backend request failed", "error", err)
		return fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %s %s: close body: %w", ErrRequestFailed, method, path, cerr)
		}
	}()

	logger.DebugContext(ctx, "backend request completed", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	switch dst := out.(type) {
	case nil:
		return nil
	case io.Writer:
		if _, cErr := io.Copy(dst, resp.Body); cErr != nil {
			return fmt.Errorf("%w: %s %s: read body: %w", ErrRequestFailed, method, path, cErr)
		}
		return nil
	default:
		if dErr := json.NewDecoder(resp.Body).Decode(dst); dErr != nil {
			return fmt.Errorf("%w: %w: %s %s: %w", ErrRequestFailed, ErrDecode, method, path, dErr)
		}
		return nil
	}
}

func (c *Client) loggerFor(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != nil {
		return logger
	}
	return c.logger
}
