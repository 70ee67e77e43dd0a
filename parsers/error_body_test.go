package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ErrorMessageFromBody(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expectOk bool
		expect   string
	}{
		{name: "error field", body: `{"error":"invalid api key"}`, expectOk: true, expect: "invalid api key"},
		{name: "message field", body: `{"message":"Too Many Requests"}`, expectOk: true, expect: "Too Many Requests"},
		{name: "error wins", body: `{"error":"a","message":"b"}`, expectOk: true, expect: "a"},
		{name: "blank", body: `{"error":"  "}`},
		{name: "not json", body: `Bad Gateway`},
		{name: "json array", body: `[]`},
		{name: "empty", body: ``},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := ErrorMessageFromBody([]byte(tt.body))
			assert.Equal(t, tt.expectOk, ok)
			assert.Equal(t, tt.expect, msg)
		})
	}
}
