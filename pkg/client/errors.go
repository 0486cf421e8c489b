package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is returned by every request that fails, whether the server
// answered with a non-2xx status or the request never completed.
type Error struct {
	Method string
	Path   string
	Status int    // 0 when no response was received
	Detail string // the body's "detail" field when it is a string
	Body   []byte
	Err    error // transport or decode failure
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Detail)
	default:
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	}
}

func (e *Error) Unwrap() error { return e.Err }

func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == http.StatusUnauthorized
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == http.StatusNotFound
}

// DetailOf returns the server supplied message carried by err, or "".
func DetailOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return ""
}

// parseDetail extracts {"detail": "..."}; list-shaped details (validation
// errors from some servers) are ignored.
func parseDetail(body []byte) string {
	var v struct {
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(body, &v) != nil || len(v.Detail) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(v.Detail, &s) != nil {
		return ""
	}
	return s
}
