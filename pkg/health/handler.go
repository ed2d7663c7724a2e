package health

import (
	"encoding/json"
	"net/http"
)

// LivenessHandler answers {"status":"healthy"} while the process serves HTTP.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeResponse(w, &Response{Status: StatusHealthy})
	}
}

// ReadinessHandler runs checks on every request and answers with the
// per-check results, 503 when any of them failed.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	cfg := newConfig(opts...)
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, runChecks(r.Context(), checks, cfg))
	}
}

func writeResponse(w http.ResponseWriter, resp *Response) {
	status := http.StatusOK
	if resp.Status != StatusHealthy {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
