package ports

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShipmentNotFound reports an id lookup that returned an empty list.
var ErrShipmentNotFound = errors.New("shipment not found")

// RejectedError is a well-formed envelope with success=false.
// Message is the backend's user-facing text and may be empty.
type RejectedError struct {
	Status    int
	ErrorCode int
	Message   string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("rejected by backend (status=%d error_code=%d): %s", e.Status, e.ErrorCode, e.Message)
}

// StatusError is a non-2xx HTTP answer. Message is taken from the body's
// envelope when it has one.
type StatusError struct {
	Code    int
	Message string
	Body    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("Code %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// ErrorMessage turns any gateway failure into the single string the
// client state keeps: the backend's message when there is one, otherwise
// fallback. Transport failures always use fallback.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var rejected *RejectedError
	if errors.As(err, &rejected) && strings.TrimSpace(rejected.Message) != "" {
		return rejected.Message
	}

	var status *StatusError
	if errors.As(err, &status) && strings.TrimSpace(status.Message) != "" {
		return status.Message
	}

	return fallback
}
