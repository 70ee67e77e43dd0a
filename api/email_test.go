package api

import (
	"net/http"
	"testing"

	"github.com/sendpost/sendpost-go/types"

	"github.com/stretchr/testify/assert"
)

func TestEmail_Send(t *testing.T) {
	c := httpClient([]byte(`[
		{"messageId": "m-1", "to": "a@example.com"},
		{"messageId": "m-2", "to": "b@example.com"}
	]`), 200, nil)
	api := NewEmailApi(testSubAccountKey, testBackend(c))

	res, err := api.Send(types.EmailMessage{
		From:        types.EmailAddress{Email: "from@example.com", Name: "Sender"},
		To:          []types.Recipient{{Email: "a@example.com"}, {Email: "b@example.com"}},
		Subject:     "Hello",
		TextBody:    "Hi",
		TrackOpens:  true,
		TrackClicks: true,
		IpPool:      "pool",
	})
	assert.NoError(t, err)
	assert.Equal(t, []types.EmailResponse{
		{MessageId: "m-1", To: "a@example.com"},
		{MessageId: "m-2", To: "b@example.com"},
	}, res)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, "https://api.sendpost.io/api/v1/subaccount/email/", tr.Url())
	assert.Equal(t, http.MethodPost, tr.Method())
	assert.Equal(t, testSubAccountKey, tr.Header(HeaderSubAccountApiKey))
	assert.JSONEq(t, `{
		"from": {"email": "from@example.com", "name": "Sender"},
		"to": [{"email": "a@example.com"}, {"email": "b@example.com"}],
		"subject": "Hello",
		"textBody": "Hi",
		"trackOpens": true,
		"trackClicks": true,
		"ippool": "pool"
	}`, tr.Body())
}
