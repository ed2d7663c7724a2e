package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ELQUIA-Mainnki/reception/internal"
)

// DefaultCORSMaxAge is how long browsers may cache a preflight answer.
const DefaultCORSMaxAge = 12 * time.Hour

// Browser-facing surface of the form endpoint.
const (
	corsAllowMethods  = "POST, OPTIONS"
	corsAllowHeaders  = "Origin, Content-Type, Accept, X-Request-ID"
	corsExposeHeaders = "X-Request-ID"
)

// corsPolicy decides which origins may post the form.
type corsPolicy struct {
	origins []string // nil allows any origin
	maxAge  string   // empty omits Access-Control-Max-Age
}

// CORSOption configures the CORS middleware.
type CORSOption func(*corsPolicy)

// WithAllowOrigins restricts posting to the listed origins. Entries are
// trimmed of whitespace and a trailing slash; blanks are skipped. A "*"
// entry, or no usable entry at all, allows any origin.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(p *corsPolicy) {
		p.origins = nil
		for _, o := range origins {
			o = strings.TrimSuffix(strings.TrimSpace(o), "/")
			if o == "*" {
				p.origins = nil
				return
			}
			if o != "" {
				p.origins = append(p.origins, o)
			}
		}
	}
}

// WithMaxAge sets the preflight cache duration. Zero omits the header.
func WithMaxAge(d time.Duration) CORSOption {
	return func(p *corsPolicy) {
		p.maxAge = ""
		if d > 0 {
			p.maxAge = strconv.Itoa(int(d.Seconds()))
		}
	}
}

func (p *corsPolicy) allows(origin string) bool {
	return p.origins == nil || slices.Contains(p.origins, origin)
}

// CORS lets browser pages on other origins post the form and read the
// request ID. Preflight requests from an allowed origin are answered with
// 204 without reaching the handler; anything from a disallowed origin passes
// through untouched and is blocked by the browser.
func CORS(opts ...CORSOption) internal.Middleware {
	p := &corsPolicy{maxAge: strconv.Itoa(int(DefaultCORSMaxAge.Seconds()))}
	for _, opt := range opts {
		opt(p)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			origin := c.Header("Origin")
			if origin == "" || !p.allows(origin) {
				return next(c)
			}

			h := c.Response().Header()
			h.Add("Vary", "Origin")
			if p.origins == nil {
				h.Set("Access-Control-Allow-Origin", "*")
			} else {
				h.Set("Access-Control-Allow-Origin", origin)
			}
			h.Set("Access-Control-Expose-Headers", corsExposeHeaders)

			if c.Request().Method != http.MethodOptions {
				return next(c)
			}

			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			if p.maxAge != "" {
				h.Set("Access-Control-Max-Age", p.maxAge)
			}
			return c.NoContent(http.StatusNoContent)
		}
	}
}
