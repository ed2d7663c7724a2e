package handlers

import (
	"net/http"
	"strings"

	"github.com/ELQUIA-Mainnki/reception/internal"
	"github.com/ELQUIA-Mainnki/reception/middlewares"
	"github.com/ELQUIA-Mainnki/reception/pkg/mailer"
)

// Response bodies of failed requests.
const (
	EmailAPIErrorBody    = "Email API Error"
	ServerErrorPrefix    = "Server Error: "
	NotFoundBody         = "Not Found"
	MethodNotAllowedBody = "Method Not Allowed"
)

// ErrorHandler maps handler errors to plain-text responses.
// HTTP errors keep their code and message, provider rejections become
// 500 Email API Error and everything else 500 Server Error: <message>.
func ErrorHandler(c internal.Context, err error) error {
	if httpErr := internal.AsHTTPError(err); httpErr != nil {
		return c.String(httpErr.Code, httpErr.Message)
	}

	if mailer.IsProviderError(err) {
		return c.String(http.StatusInternalServerError, EmailAPIErrorBody)
	}

	// Recover already logged panics with their stack.
	if !middlewares.IsPanicError(err) {
		c.LogError("submission failed",
			"error", err.Error(),
			"timeout", middlewares.IsTimeoutError(err),
		)
	}

	return c.String(http.StatusInternalServerError, ServerErrorPrefix+errorMessage(err))
}

// errorMessage flattens joined errors onto one line.
func errorMessage(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}

// NotFound answers unknown routes.
func NotFound(internal.Context) error {
	return internal.ErrNotFound(NotFoundBody)
}

// MethodNotAllowed answers known routes requested with the wrong method.
func MethodNotAllowed(internal.Context) error {
	return internal.ErrMethodNotAllowed(MethodNotAllowedBody)
}
