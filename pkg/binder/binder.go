// Package binder decodes request data into structs.
package binder

import (
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/gorilla/schema"
)

// DefaultMaxMemory is the multipart memory limit; larger parts spill to disk.
const DefaultMaxMemory = 32 << 20 // 32MB

var (
	// ErrParseForm indicates the request body could not be parsed as a form.
	ErrParseForm = errors.New("binder: failed to parse form")

	// ErrDecode indicates form values could not be decoded into the target.
	ErrDecode = errors.New("binder: failed to decode form")
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("form")
	d.IgnoreUnknownKeys(true)
	return d
}

// Form returns a bind function that decodes an
// application/x-www-form-urlencoded or multipart/form-data body into v
// using `form` struct tags. Missing keys leave fields at their zero value.
func Form() func(*http.Request, any) error {
	return func(r *http.Request, v any) error {
		if err := ParseForm(r); err != nil {
			return err
		}
		if err := decoder.Decode(v, r.PostForm); err != nil {
			return fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return nil
	}
}

// ParseForm parses the request body according to its content type.
// Safe to call more than once.
func ParseForm(r *http.Request) error {
	if r.PostForm != nil {
		return nil
	}

	var err error
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(DefaultMaxMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParseForm, err)
	}
	return nil
}
