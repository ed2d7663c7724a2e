package internal_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ELQUIA-Mainnki/reception/internal"
)

// requestVia creates an App with the given options, registers a handler at
// POST /, executes fn inside that handler, and sends the request.
func requestVia(t *testing.T, req *http.Request, opts []internal.Option, fn func(c internal.Context) error) *httptest.ResponseRecorder {
	t.Helper()

	opts = append(opts, internal.WithHandlers(routeFunc(func(r internal.Router) {
		r.POST("/", fn)
	})))
	app := internal.New(opts...)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

type routeFunc func(r internal.Router)

func (f routeFunc) Routes(r internal.Router) { f(r) }

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

type bindTarget struct {
	Name  string `form:"name" sanitize:"trim" validate:"required"`
	Notes string `form:"notes"`
}

func TestContext_Form(t *testing.T) {
	t.Parallel()

	req := formRequest(url.Values{"name": {"Alice"}, "empty": {""}})
	requestVia(t, req, nil, func(c internal.Context) error {
		assert.Equal(t, "Alice", c.Form("name"))
		assert.True(t, c.HasForm("empty"))
		assert.False(t, c.HasForm("missing"))
		assert.Empty(t, c.Form("missing"))
		return nil
	})
}

func TestContext_Bind(t *testing.T) {
	t.Parallel()

	t.Run("binds and sanitizes", func(t *testing.T) {
		t.Parallel()

		req := formRequest(url.Values{"name": {"  Alice  "}, "notes": {"a\nb"}})
		requestVia(t, req, nil, func(c internal.Context) error {
			var v bindTarget
			verrs, err := c.Bind(&v)
			require.NoError(t, err)
			require.Empty(t, verrs)
			assert.Equal(t, "Alice", v.Name)
			assert.Equal(t, "a\nb", v.Notes)
			return nil
		})
	})

	t.Run("returns validation errors separately", func(t *testing.T) {
		t.Parallel()

		req := formRequest(url.Values{"name": {"   "}})
		requestVia(t, req, nil, func(c internal.Context) error {
			var v bindTarget
			verrs, err := c.Bind(&v)
			require.NoError(t, err)
			require.True(t, verrs.Has("name"))
			return nil
		})
	})

	t.Run("non-pointer target is a system error", func(t *testing.T) {
		t.Parallel()

		req := formRequest(url.Values{"name": {"Alice"}})
		requestVia(t, req, nil, func(c internal.Context) error {
			verrs, err := c.Bind(bindTarget{})
			require.Error(t, err)
			require.Empty(t, verrs)
			return nil
		})
	})
}

func TestContext_Responses(t *testing.T) {
	t.Parallel()

	t.Run("JSON", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, formRequest(nil), nil, func(c internal.Context) error {
			return c.JSON(http.StatusOK, map[string]bool{"success": true})
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("String", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, formRequest(nil), nil, func(c internal.Context) error {
			return c.String(http.StatusInternalServerError, "Email API Error")
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "Email API Error", w.Body.String())
	})

	t.Run("NoContent", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, formRequest(nil), nil, func(c internal.Context) error {
			return c.NoContent(http.StatusNoContent)
		})
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestContext_SetGetAndContext(t *testing.T) {
	t.Parallel()

	type key struct{}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req := formRequest(nil).WithContext(ctx)
	requestVia(t, req, nil, func(c internal.Context) error {
		_, ok := c.Deadline()
		assert.True(t, ok)
		assert.NoError(t, c.Err())

		c.Set(key{}, "value")
		assert.Equal(t, "value", c.Get(key{}))
		assert.Equal(t, "value", c.Value(key{}))
		assert.Equal(t, "value", internal.ContextValue[string](c, key{}))
		assert.Zero(t, internal.ContextValue[int](c, key{}))
		return nil
	})
}

func TestApp_ErrorHandling(t *testing.T) {
	t.Parallel()

	t.Run("custom error handler", func(t *testing.T) {
		t.Parallel()

		opts := []internal.Option{
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				return c.String(http.StatusTeapot, "handled: "+err.Error())
			}),
		}
		w := requestVia(t, formRequest(nil), opts, func(internal.Context) error {
			return errors.New("boom")
		})
		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "handled: boom", w.Body.String())
	})

	t.Run("default writes HTTPError", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, formRequest(nil), nil, func(c internal.Context) error {
			return c.Error(http.StatusBadRequest, "Invalid Submission: name")
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid Submission: name\n", w.Body.String())
	})

	t.Run("default hides other errors", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, formRequest(nil), nil, func(internal.Context) error {
			return errors.New("secret detail")
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret detail")
	})

	t.Run("written response is kept", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, formRequest(nil), nil, func(c internal.Context) error {
			_ = c.String(http.StatusOK, "partial")
			return errors.New("late failure")
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "partial", w.Body.String())
	})
}

func TestApp_NotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithHandlers(routeFunc(func(r internal.Router) {
			r.POST("/api/submit", func(c internal.Context) error { return c.NoContent(http.StatusOK) })
		})),
		internal.WithNotFoundHandler(func(c internal.Context) error {
			return c.String(http.StatusNotFound, "Not Found")
		}),
		internal.WithMethodNotAllowedHandler(func(c internal.Context) error {
			return c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
		}),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", w.Body.String())

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/submit", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method Not Allowed", w.Body.String())
}

func TestApp_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) internal.Middleware {
		return func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}

	app := internal.New(
		internal.WithMiddleware(trace("global-1"), trace("global-2")),
		internal.WithHandlers(routeFunc(func(r internal.Router) {
			r.POST("/", func(c internal.Context) error {
				order = append(order, "handler")
				return c.NoContent(http.StatusOK)
			}, trace("route-1"), trace("route-2"))
		})),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, formRequest(nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"global-1", "global-2", "route-1", "route-2", "handler"}, order)
}

func TestApp_MiddlewareValuesReachHandler(t *testing.T) {
	t.Parallel()

	type key struct{}
	setter := func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			c.Set(key{}, "from-middleware")
			return next(c)
		}
	}

	w := requestVia(t, formRequest(nil), []internal.Option{internal.WithMiddleware(setter)}, func(c internal.Context) error {
		return c.String(http.StatusOK, internal.ContextValue[string](c, key{}))
	})
	assert.Equal(t, "from-middleware", w.Body.String())
}

func TestApp_HealthChecks(t *testing.T) {
	t.Parallel()

	failing := true
	app := internal.New(internal.WithHealthChecks(
		internal.WithReadinessCheck("resend", func(context.Context) error {
			if failing {
				return errors.New("not configured")
			}
			return nil
		}),
	))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	failing = false
	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApp_Run_GracefulShutdown(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routeFunc(func(r internal.Router) {
		r.GET("/ping", func(c internal.Context) error { return c.String(http.StatusOK, "pong") })
	})))

	ctx, cancel := context.WithCancel(context.Background())
	addrCh := make(chan net.Addr, 1)
	hookCalled := make(chan struct{}, 1)
	done := make(chan error, 1)

	go func() {
		done <- app.Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.OnReady(func(a net.Addr) { addrCh <- a }),
			internal.ShutdownTimeout(2*time.Second),
			internal.ShutdownHook(func(context.Context) error {
				hookCalled <- struct{}{}
				return nil
			}),
		)
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/ping")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	select {
	case <-hookCalled:
	default:
		t.Fatal("shutdown hook was not called")
	}
}
