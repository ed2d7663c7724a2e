package resend

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxErrorBody caps how much of a rejection payload is kept for logging.
const maxErrorBody = 64 << 10

// exchange records the outcome of a single API call. body is only kept
// for non-2xx answers.
type exchange struct {
	body       []byte
	statusCode int
}

// accepted reports whether the API answered with a 2xx status.
func (ex *exchange) accepted() bool {
	return ex.statusCode >= 200 && ex.statusCode < 300
}

type exchangeKey struct{}

// withExchange attaches a fresh recorder to ctx.
func withExchange(ctx context.Context) (context.Context, *exchange) {
	ex := &exchange{}
	return context.WithValue(ctx, exchangeKey{}, ex), ex
}

// transport rewrites requests to an optional base URL and records the
// response status, plus the payload of non-2xx responses, into the
// exchange found in the request context.
type transport struct {
	base    http.RoundTripper
	baseURL *url.URL
}

func newTransport(base http.RoundTripper, rawBaseURL string) (*transport, error) {
	if base == nil {
		base = http.DefaultTransport
	}
	t := &transport{base: base}
	if rawBaseURL != "" {
		u, err := url.Parse(rawBaseURL)
		if err != nil {
			return nil, err
		}
		t.baseURL = u
	}
	return t, nil
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.baseURL != nil {
		req = req.Clone(req.Context())
		req.URL.Scheme = t.baseURL.Scheme
		req.URL.Host = t.baseURL.Host
		req.URL.Path = strings.TrimSuffix(t.baseURL.Path, "/") + "/" + strings.TrimPrefix(req.URL.Path, "/")
		req.URL.RawPath = ""
		req.Host = t.baseURL.Host
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	ex, ok := req.Context().Value(exchangeKey{}).(*exchange)
	if !ok {
		return resp, nil
	}

	ex.statusCode = resp.StatusCode
	if ex.accepted() {
		return resp, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}

	ex.body = body
	resp.Body = io.NopCloser(bytes.NewReader(body))

	return resp, nil
}
