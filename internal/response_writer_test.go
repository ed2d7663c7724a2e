package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusBadRequest)
	rw.WriteHeader(http.StatusOK) // ignored

	if rw.Status() != http.StatusBadRequest {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusBadRequest)
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !rw.Written() {
		t.Error("Written() = false, want true")
	}
}

func TestResponseWriter_Write(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	n, err := rw.Write([]byte("Email API Error"))
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if n != len("Email API Error") {
		t.Errorf("Write() = %d, want %d", n, len("Email API Error"))
	}
	if rw.Size() != int64(n) {
		t.Errorf("Size() = %d, want %d", rw.Size(), n)
	}
	if rw.Status() != http.StatusOK {
		t.Errorf("implicit Status() = %d, want 200", rw.Status())
	}
	if w.Body.String() != "Email API Error" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestResponseWriter_OnBeforeWrite(t *testing.T) {
	t.Run("runs hooks in order once", func(t *testing.T) {
		rw := NewResponseWriter(httptest.NewRecorder())

		var order []int
		rw.OnBeforeWrite(func() { order = append(order, 1) })
		rw.OnBeforeWrite(func() { order = append(order, 2) })

		rw.WriteHeader(http.StatusOK)
		_, _ = rw.Write([]byte("data"))

		if len(order) != 2 || order[0] != 1 || order[1] != 2 {
			t.Errorf("hook order = %v, want [1 2]", order)
		}
	})

	t.Run("runs on first Write", func(t *testing.T) {
		rw := NewResponseWriter(httptest.NewRecorder())

		var called bool
		rw.OnBeforeWrite(func() { called = true })
		_, _ = rw.Write([]byte("data"))

		if !called {
			t.Error("hook was not called on Write")
		}
	})

	t.Run("hook can set headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		rw := NewResponseWriter(w)

		rw.OnBeforeWrite(func() { rw.Header().Set("X-Submission-ID", "abc") })
		rw.WriteHeader(http.StatusOK)

		if got := w.Header().Get("X-Submission-ID"); got != "abc" {
			t.Errorf("header = %q, want abc", got)
		}
	})
}

func TestResponseWriter_FlushAndUnwrap(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.Flush()
	if !w.Flushed {
		t.Error("underlying flusher not called")
	}
	if rw.Unwrap() != w {
		t.Error("Unwrap() did not return underlying writer")
	}
}

func TestNewContext_ReusesWrappedWriter(t *testing.T) {
	rw := NewResponseWriter(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	c := newContext(rw, req, nil)
	if c.ResponseWriter() != rw {
		t.Error("newContext wrapped an already wrapped writer")
	}
}
