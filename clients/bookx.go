package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/emzola/bookxchange/data"
	"github.com/emzola/bookxchange/data/dto"
	"github.com/emzola/bookxchange/internal/catalog"
)

// DefaultBaseURL is used when no API URL is configured.
const DefaultBaseURL = "http://localhost:8080/api"

// SessionHeader scopes favourites to a client.
const SessionHeader = "X-Session-Id"

// Client talks to the bookXchange REST API.
type Client struct {
	baseURL string
	http    *http.Client

	mu      sync.Mutex
	session string
}

// Option configures a Client.
type Option func(*Client)

// WithSession sends session with every request.
func WithSession(session string) Option {
	return func(c *Client) { c.session = session }
}

// WithHTTPClient replaces the default transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    NewHTTPClient(15 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the session in use, including one minted by the server.
func (c *Client) Session() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// ListBooks returns the catalog view for the client's session. Only a
// MaxPrice of +Inf means no upper bound; every other bound is sent as given.
func (c *Client) ListBooks(ctx context.Context, qs dto.QsListListings) ([]catalog.Entry, error) {
	v := url.Values{}
	if qs.Search != "" {
		v.Set("search", qs.Search)
	}
	if qs.Sort != "" {
		v.Set("sort", qs.Sort)
	}
	if qs.MinPrice != 0 {
		v.Set("min_price", strconv.FormatFloat(qs.MinPrice, 'f', -1, 64))
	}
	if !math.IsInf(qs.MaxPrice, 1) {
		v.Set("max_price", strconv.FormatFloat(qs.MaxPrice, 'f', -1, 64))
	}
	if qs.Course != "" {
		v.Set("course", qs.Course)
	}
	var entries []catalog.Entry
	err := c.do(ctx, http.MethodGet, "/books", v, nil, &entries)
	return entries, err
}

// AddBook lists a book for sale.
func (c *Client) AddBook(ctx context.Context, body dto.CreateListingRequestBody) (*data.Listing, error) {
	var listing data.Listing
	if err := c.do(ctx, http.MethodPost, "/books", nil, body, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetBook fetches one listing.
func (c *Client) GetBook(ctx context.Context, id int64) (*data.Listing, error) {
	var listing data.Listing
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/books/%d", id), nil, nil, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// SearchBooks returns listings matching q.
func (c *Client) SearchBooks(ctx context.Context, q string) ([]data.Listing, error) {
	var listings []data.Listing
	err := c.do(ctx, http.MethodGet, "/books/search", url.Values{"q": {q}}, nil, &listings)
	return listings, err
}

// DeleteBook removes a listing.
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), nil, nil, nil)
}

// FavouriteBook marks a listing as a favourite of the session.
func (c *Client) FavouriteBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/books/%d/favourite", id), nil, nil, nil)
}

// UnfavouriteBook clears the favourite mark.
func (c *Client) UnfavouriteBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/books/%d/favourite", id), nil, nil, nil)
}

// ListRequests returns pending requests in submission order.
func (c *Client) ListRequests(ctx context.Context) ([]data.Request, error) {
	var requests []data.Request
	err := c.do(ctx, http.MethodGet, "/requests", nil, nil, &requests)
	return requests, err
}

// AddRequest submits a book request.
func (c *Client) AddRequest(ctx context.Context, body dto.CreateRequestRequestBody) (*data.Request, error) {
	var request data.Request
	if err := c.do(ctx, http.MethodPost, "/requests", nil, body, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// DeleteRequest removes a pending request.
func (c *Client) DeleteRequest(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/requests/%d", id), nil, nil, nil)
}

// ProcessRequests runs matching and returns the result lines.
func (c *Client) ProcessRequests(ctx context.Context) ([]string, error) {
	var results []string
	err := c.do(ctx, http.MethodPost, "/requests/process", nil, nil, &results)
	return results, err
}

// Courses returns course code suggestions containing q.
func (c *Client) Courses(ctx context.Context, q string) ([]string, error) {
	var courses []string
	err := c.do(ctx, http.MethodGet, "/courses", url.Values{"q": {q}}, nil, &courses)
	return courses, err
}

// readAPIError builds an APIError from a failed response. Bodies that are not
// an {"error": ...} envelope are kept as plain text.
func readAPIError(res *http.Response) *APIError {
	apiErr := &APIError{Status: res.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Error interface{} `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error != nil {
		apiErr.Message, apiErr.Fields = errorMessage(payload.Error)
		return apiErr
	}
	var text string
	if json.Unmarshal(raw, &text) != nil {
		text = string(raw)
	}
	apiErr.Message = strings.TrimSpace(text)
	return apiErr
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s := c.Session(); s != "" {
		req.Header.Set(SessionHeader, s)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &UnreachableError{Err: err}
	}
	defer res.Body.Close()

	if s := res.Header.Get(SessionHeader); s != "" {
		c.mu.Lock()
		if c.session == "" {
			c.session = s
		}
		c.mu.Unlock()
	}

	if res.StatusCode >= 400 {
		return readAPIError(res)
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}
