package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Credentials controls whether ambient cookies are attached to a request.
type Credentials int

const (
	// SameOrigin attaches cookies only when the target host is the configured upstream.
	SameOrigin Credentials = iota
	// Include always attaches cookies.
	Include
	// Omit never attaches cookies.
	Omit
)

// String returns the credentials mode as named by the Fetch standard.
func (c Credentials) String() string {
	switch c {
	case Include:
		return "include"
	case Omit:
		return "omit"
	default:
		return "same-origin"
	}
}

// Options describes a single request.
type Options struct {
	Method      string            // defaults to GET
	Headers     map[string]string // request headers
	Credentials Credentials       // cookie policy
}

// Response is a fully read HTTP response.
type Response struct {
	Status int  // HTTP status code
	OK     bool // true for 2xx
	body   []byte
}

// NewResponse builds a Response from a status and body.
func NewResponse(status int, body []byte) *Response {
	return &Response{
		Status: status,
		OK:     status >= 200 && status < 300,
		body:   body,
	}
}

// JSON decodes the body into v. An empty body decodes to nil.
func (r *Response) JSON(v any) error {
	if r.Empty() {
		return json.Unmarshal([]byte("null"), v)
	}
	return json.Unmarshal(r.body, v)
}

// JSONNumbers decodes the body like JSON but keeps numbers as json.Number,
// so integers beyond 2^53 survive intact.
func (r *Response) JSONNumbers(v any) error {
	body := r.body
	if r.Empty() {
		body = []byte("null")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("fetch: unexpected data after JSON value")
	}
	return nil
}

// Empty reports whether the body has no content.
func (r *Response) Empty() bool {
	return len(bytes.TrimSpace(r.body)) == 0
}

// Fetcher performs one HTTP round trip.
type Fetcher interface {
	Fetch(ctx context.Context, url string, opts Options) (*Response, error)
}

// Func adapts a plain function to the Fetcher interface.
type Func func(ctx context.Context, url string, opts Options) (*Response, error)

// Fetch calls f.
func (f Func) Fetch(ctx context.Context, url string, opts Options) (*Response, error) {
	return f(ctx, url, opts)
}

type cookiesKey struct{}

// WithCookies returns a copy of ctx carrying the cookies of the incoming
// request. They are the ambient credentials attached to outgoing requests.
func WithCookies(ctx context.Context, cookies []*http.Cookie) context.Context {
	return context.WithValue(ctx, cookiesKey{}, cookies)
}

// CookiesFrom returns the ambient cookies stored in ctx.
func CookiesFrom(ctx context.Context) []*http.Cookie {
	cookies, _ := ctx.Value(cookiesKey{}).([]*http.Cookie)
	return cookies
}
