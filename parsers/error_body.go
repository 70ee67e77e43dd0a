package parsers

import (
	"encoding/json"
	"strings"

	"github.com/sendpost/sendpost-go/types"
)

// ErrorMessageFromBody extracts a human-readable message from a
// SendPost error response. SendPost answers with {"error": "..."};
// proxies in front of it sometimes answer with {"message": "..."}.
func ErrorMessageFromBody(data []byte) (string, bool) {
	if len(data) == 0 {
		return "", false
	}

	var res struct {
		types.ErrorResponse
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return "", false
	}

	msg := strings.TrimSpace(res.Error)
	if msg == "" {
		msg = strings.TrimSpace(res.Message)
	}
	return msg, msg != ""
}
