package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Amount is a monetary value exactly as the backend transmitted it.
// It is never converted to a float; rendering code parses it on demand.
type Amount string

// Accept both JSON strings and bare numbers, keeping the original digits.
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("amount: %w", err)
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

func (a Amount) String() string { return string(a) }

// UnixTime is a timestamp in Unix seconds.
type UnixTime int64

// Some endpoints send timestamps as numeric strings; both forms are accepted.
func (u *UnixTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*u = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("unix time: %w", err)
		}
		if s == "" {
			*u = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("unix time %q: %w", s, err)
		}
		*u = UnixTime(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("unix time: %w", err)
	}
	*u = UnixTime(n)
	return nil
}

func (u UnixTime) Time() time.Time { return time.Unix(int64(u), 0) }

func (u UnixTime) IsZero() bool { return u == 0 }
