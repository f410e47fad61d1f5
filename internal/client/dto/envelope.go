package dto

import (
	"encoding/json"
	"fmt"
)

// Envelope is the standard response wrapper: {data, success, message?}.
// The feed and swipe endpoints return their bodies raw, so Decode must
// tolerate both shapes. Success is a pointer so that a raw body (where the
// field is absent) can be told apart from an explicit success=false.
type Envelope struct {
	Data    json.RawMessage `json:"data"`
	Success *bool           `json:"success"`
	Message string          `json:"message,omitempty"`
}

// Decode unmarshals body into v, accepting either an enveloped response or
// a raw body. A well-formed envelope with success=false yields an error
// carrying the server message.
func Decode(body []byte, v any) error {
	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Success != nil {
		if !*env.Success {
			return &ServerError{Message: env.Message}
		}
		if env.Data == nil {
			return nil
		}
		return json.Unmarshal(env.Data, v)
	}

	// Raw shape: the body is the payload itself.
	return json.Unmarshal(body, v)
}

// DecodeEmpty checks a response that carries no payload (logout, account
// deletion, profile deletion). Empty and raw bodies pass; an envelope with
// success=false fails.
func DecodeEmpty(body []byte) error {
	if len(body) == 0 {
		return nil
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil // not an envelope; nothing to verify
	}
	if env.Success != nil && !*env.Success {
		return &ServerError{Message: env.Message}
	}
	return nil
}

// ServerError is a server-reported application failure delivered through
// the response envelope (success=false).
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return "server reported failure"
	}
	return fmt.Sprintf("server reported failure: %s", e.Message)
}
