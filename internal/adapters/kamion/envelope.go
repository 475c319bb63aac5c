package kamion

import (
	"encoding/json"
	"fmt"
	"io"
	"kamion-client/internal/domain"
	"kamion-client/internal/ports"
)

// envelope is the wrapper around every backend response.
// Data is decoded only after Success has been checked, since a failed
// envelope's payload is not trusted (and often not the expected shape).
type envelope struct {
	Success   bool               `json:"success"`
	Status    int                `json:"status"`
	Message   *string            `json:"message"`
	ErrorCode int                `json:"error_code"`
	Data      json.RawMessage    `json:"data"`
	Meta      *domain.Pagination `json:"meta,omitempty"`
}

// decodeEnvelope reads r and returns the trusted payload, or a
// *ports.RejectedError for success=false.
func decodeEnvelope(r io.Reader) (*envelope, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	if !env.Success {
		rej := &ports.RejectedError{
			Status:    env.Status,
			ErrorCode: env.ErrorCode,
		}
		if env.Message != nil {
			rej.Message = *env.Message
		}
		return nil, rej
	}

	return &env, nil
}

func decodeData[T any](env *envelope, what string) (T, error) {
	var out T
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", what, err)
	}
	return out, nil
}
