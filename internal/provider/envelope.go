package provider

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Envelope is the uniform wrapper around every Cloudflare v4 response.
type Envelope struct {
	Success  bool              `json:"success"`
	Result   json.RawMessage   `json:"result"`
	Errors   []ResponseInfo    `json:"errors"`
	Messages []json.RawMessage `json:"messages"`
	// Message is not part of the v4 envelope but some edge errors carry it.
	Message string `json:"message,omitempty"`
}

// ResponseInfo is one entry of the envelope's errors array.
type ResponseInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var emptyResult = json.RawMessage(`[]`)

// unwrapResult returns the envelope's result, or an empty array when the
// result is missing or null.
func unwrapResult(body []byte) json.RawMessage {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return emptyResult
	}
	result := bytes.TrimSpace(env.Result)
	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return emptyResult
	}
	return env.Result
}

// errorMessage picks the most useful human-readable reason from a failure body.
func errorMessage(body []byte) string {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return DefaultUpstreamMessage
	}
	msgs := make([]string, 0, len(env.Errors))
	for _, e := range env.Errors {
		if m := strings.TrimSpace(e.Message); m != "" {
			msgs = append(msgs, m)
		}
	}
	if len(msgs) > 0 {
		return strings.Join(msgs, ", ")
	}
	if m := strings.TrimSpace(env.Message); m != "" {
		return m
	}
	return DefaultUpstreamMessage
}

// rawBody keeps a failure body in a form that re-encodes faithfully.
func rawBody(body []byte) any {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	return string(body)
}
