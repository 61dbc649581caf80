package backendapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

func (e *APIError) StatusCode() int {
	return e.Status
}

type fieldError struct {
	Loc []interface{} `json:"loc"`
	Msg string        `json:"msg"`
}

// parseAPIError prefers the server's "detail". A list of field errors becomes
// one "loc.path: msg" line each; any other JSON body is kept verbatim.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 && string(envelope.Detail) != "null" {
		var text string
		if json.Unmarshal(envelope.Detail, &text) == nil {
			apiErr.Detail = text
			return apiErr
		}

		var fields []fieldError
		if json.Unmarshal(envelope.Detail, &fields) == nil && len(fields) > 0 {
			lines := make([]string, 0, len(fields))
			for _, f := range fields {
				loc := make([]string, 0, len(f.Loc))
				for _, part := range f.Loc {
					loc = append(loc, fmt.Sprint(part))
				}
				lines = append(lines, fmt.Sprintf("%s: %s", strings.Join(loc, "."), f.Msg))
			}
			apiErr.Detail = strings.Join(lines, "\n")
			return apiErr
		}
	}

	if trimmed := strings.TrimSpace(string(body)); trimmed != "" && json.Valid(body) {
		apiErr.Detail = trimmed
		return apiErr
	}

	apiErr.Detail = http.StatusText(status)
	if apiErr.Detail == "" {
		apiErr.Detail = fmt.Sprintf("Request failed with status %d", status)
	}
	return apiErr
}
