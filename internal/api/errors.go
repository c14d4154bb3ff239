package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
)

// FieldError is one structured validation failure
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error is the single shape every gateway failure is normalized into.
// StatusCode is 0 when no response was received.
type Error struct {
	Message    string
	StatusCode int
	Code       string
	Details    []FieldError
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return "api error: " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// IsTransport reports whether no HTTP response was received
func (e *Error) IsTransport() bool { return e.StatusCode == 0 }

// AsError extracts an *Error from err, wrapping unknown errors generically
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{Message: "Ndodhi një gabim i panjohur", Err: err}
}

// StatusCodeOf returns the HTTP status carried by err, or 0
func StatusCodeOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// errorBody covers both the backend's exception handler output
// ({status, code, message, details:{field:msg}}) and validation
// responses carrying an errors array.
type errorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details"`
	Errors  []json.RawMessage `json:"errors"`
}

func transportError(err error) *Error {
	msg := "Nuk mund të lidhet me serverin"
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		msg = "Kërkesa skadoi, provoni përsëri"
	}
	return &Error{Message: msg, Err: err}
}

func responseError(status int, body []byte) *Error {
	e := &Error{StatusCode: status}

	var parsed errorBody
	if len(body) > 0 && json.Unmarshal(body, &parsed) == nil {
		e.Code = parsed.Code
		e.Message = parsed.Message
		if e.Message == "" {
			e.Message = parsed.Error
		}
		e.Details = fieldErrors(parsed)
	} else if text := strings.TrimSpace(string(body)); text != "" && len(text) < 300 {
		e.Message = text
	}

	// validation failures are shown as one joined line
	if status == http.StatusBadRequest && len(e.Details) > 0 {
		msgs := make([]string, 0, len(e.Details))
		for _, d := range e.Details {
			msgs = append(msgs, d.Message)
		}
		e.Message = strings.Join(msgs, ", ")
	}

	if e.Message == "" || e.Message == http.StatusText(status) {
		e.Message = defaultMessage(status)
	}
	return e
}

func fieldErrors(b errorBody) []FieldError {
	var out []FieldError
	for _, raw := range b.Errors {
		var fe FieldError
		if err := json.Unmarshal(raw, &fe); err == nil && fe.Message != "" {
			out = append(out, fe)
			continue
		}
		// some endpoints send plain strings, others {defaultMessage: ...}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			out = append(out, FieldError{Message: s})
			continue
		}
		var spring struct {
			Field          string `json:"field"`
			DefaultMessage string `json:"defaultMessage"`
		}
		if err := json.Unmarshal(raw, &spring); err == nil && spring.DefaultMessage != "" {
			out = append(out, FieldError{Field: spring.Field, Message: spring.DefaultMessage})
		}
	}

	fields := make([]string, 0, len(b.Details))
	for f := range b.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		out = append(out, FieldError{Field: f, Message: b.Details[f]})
	}
	return out
}

func defaultMessage(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return "Kërkesë e pavlefshme"
	case status == http.StatusUnauthorized:
		return "Nuk jeni i autorizuar"
	case status == http.StatusForbidden:
		return "Nuk keni leje për këtë veprim"
	case status == http.StatusNotFound:
		return "Burimi nuk u gjet"
	case status == http.StatusConflict:
		return "Burimi ekziston tashmë"
	case status >= 500:
		return "Gabim në server, provoni më vonë"
	default:
		return fmt.Sprintf("Gabim HTTP %d", status)
	}
}
