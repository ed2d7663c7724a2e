package middlewares_test

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/ELQUIA-Mainnki/reception/internal"
)

// testContext is a minimal internal.Context for unit-testing middleware
// without an App.
type testContext struct {
	response http.ResponseWriter
	request  *http.Request
	logs     []logEntry
	mu       sync.Mutex
	written  bool
}

type logEntry struct {
	level slog.Level
	msg   string
	attrs []any
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		response: w,
		request:  r,
	}
}

func (c *testContext) Request() *http.Request        { return c.request }
func (c *testContext) Response() http.ResponseWriter { return c.response }
func (c *testContext) Context() context.Context      { return c.request.Context() }
func (c *testContext) Param(name string) string      { return "" }
func (c *testContext) Query(name string) string      { return c.request.URL.Query().Get(name) }
func (c *testContext) Form(name string) string       { return c.request.FormValue(name) }
func (c *testContext) HasForm(name string) bool      { return c.request.Form.Has(name) }
func (c *testContext) Header(name string) string     { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string)  { c.response.Header().Set(name, value) }

func (c *testContext) JSON(code int, v any) error {
	c.written = true
	c.response.WriteHeader(code)
	return nil
}

func (c *testContext) String(code int, s string) error {
	c.written = true
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *testContext) NoContent(code int) error {
	c.written = true
	c.response.WriteHeader(code)
	return nil
}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

func (c *testContext) Bind(v any) (internal.ValidationErrors, error) { return nil, nil }
func (c *testContext) Written() bool                                 { return c.written }
func (c *testContext) Logger() *slog.Logger                          { return slog.Default() }
func (c *testContext) ResponseWriter() *internal.ResponseWriter      { return nil }

func (c *testContext) log(level slog.Level, msg string, attrs []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logs = append(c.logs, logEntry{level: level, msg: msg, attrs: attrs})
}

func (c *testContext) LogDebug(msg string, attrs ...any) { c.log(slog.LevelDebug, msg, attrs) }
func (c *testContext) LogInfo(msg string, attrs ...any)  { c.log(slog.LevelInfo, msg, attrs) }
func (c *testContext) LogWarn(msg string, attrs ...any)  { c.log(slog.LevelWarn, msg, attrs) }
func (c *testContext) LogError(msg string, attrs ...any) { c.log(slog.LevelError, msg, attrs) }

// entries returns a copy of the captured log entries.
func (c *testContext) entries() []logEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]logEntry(nil), c.logs...)
}

func (c *testContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *testContext) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}

func (c *testContext) Get(key any) any { return c.request.Context().Value(key) }

func (c *testContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}       { return c.request.Context().Done() }
func (c *testContext) Err() error                  { return c.request.Context().Err() }
func (c *testContext) Value(key any) any           { return c.request.Context().Value(key) }

// attr returns the value logged under key, or nil.
func (e logEntry) attr(key string) any {
	for i := 0; i+1 < len(e.attrs); i += 2 {
		if k, ok := e.attrs[i].(string); ok && k == key {
			return e.attrs[i+1]
		}
	}
	return nil
}

var _ internal.Context = (*testContext)(nil)
