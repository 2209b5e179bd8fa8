package clients

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// User-facing messages for client failures.
const (
	MsgUnreachable = "Unable to connect to server. Please check your connection."
	MsgServerError = "Server error occurred"
	MsgUnexpected  = "An unexpected error occurred"
)

// APIError is a response from the server with a non-success status.
type APIError struct {
	Status  int
	Message string
	// Fields holds validation messages when the server answered 422.
	Fields map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// UnreachableError means the request was sent but no response came back.
type UnreachableError struct {
	Err error
}

func (e *UnreachableError) Error() string {
	return "api unreachable: " + e.Err.Error()
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// Describe turns any client error into a message fit for the user.
func Describe(err error) string {
	var apiErr *APIError
	var unreachable *UnreachableError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		if apiErr.Message == "" {
			return MsgServerError
		}
		return apiErr.Message
	case errors.As(err, &unreachable):
		return MsgUnreachable
	default:
		return MsgUnexpected
	}
}

// errorMessage flattens the server's error payload, which is either a string
// or a map of messages.
func errorMessage(payload interface{}) (string, map[string]string) {
	switch v := payload.(type) {
	case string:
		return v, nil
	case map[string]interface{}:
		fields := make(map[string]string, len(v))
		keys := make([]string, 0, len(v))
		for k, msg := range v {
			fields[k] = fmt.Sprint(msg)
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			if k == "form" {
				parts[i] = fields[k]
				continue
			}
			parts[i] = k + ": " + fields[k]
		}
		return strings.Join(parts, "; "), fields
	default:
		return "", nil
	}
}
