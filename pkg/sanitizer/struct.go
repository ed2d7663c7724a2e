package sanitizer

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName is the struct tag read by SanitizeStruct.
const TagName = "sanitize"

// rules maps tag values to string transformations.
var rules = map[string]func(string) string{
	"trim":       Trim,
	"nfc":        NFC,
	"newlines":   NormalizeNewlines,
	"singleline": SingleLine,
	"strip":      PlainText,
}

// SanitizeStruct applies the comma-separated rules from `sanitize` tags
// to the string fields of the struct v points to. Rules run left to right.
//
// Example:
//
//	type Inquiry struct {
//	    Subject string `sanitize:"strip,trim,singleline"`
//	    Body    string `sanitize:"trim,newlines"`
//	}
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotPointer
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrNotPointer
	}
	return sanitizeValue(rv)
}

func sanitizeValue(rv reflect.Value) error {
	rt := rv.Type()
	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)

		if fv.Kind() == reflect.Struct {
			if err := sanitizeValue(fv); err != nil {
				return err
			}
			continue
		}

		tag := field.Tag.Get(TagName)
		if tag == "" || tag == "-" || fv.Kind() != reflect.String {
			continue
		}

		s := fv.String()
		for name := range strings.SplitSeq(tag, ",") {
			name = strings.TrimSpace(name)
			fn, ok := rules[name]
			if !ok {
				return fmt.Errorf("%w: %q on field %s", ErrUnknownRule, name, field.Name)
			}
			s = fn(s)
		}
		fv.SetString(s)
	}
	return nil
}
