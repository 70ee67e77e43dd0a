package api

import (
	"net/http"
	"testing"

	"github.com/sendpost/sendpost-go/types"

	"github.com/stretchr/testify/assert"
)

func TestMessages_Get(t *testing.T) {
	c := httpClient([]byte(`{
		"messageID": "abc/1",
		"accountID": 1,
		"subAccountID": 2,
		"ipID": 3,
		"publicIP": "1.2.3.4",
		"localIP": "10.0.0.1",
		"emailType": "smtp",
		"submittedAt": 1700000000,
		"from": {"email": "from@example.com"},
		"to": {"email": "to@example.com", "name": "Customer"},
		"subject": "Order",
		"ipPool": "pool",
		"attempt": 1
	}`), 200, nil)
	api := NewMessagesApi(testAccountKey, testBackend(c))

	res, err := api.Get("abc/1")
	assert.NoError(t, err)
	assert.Equal(t, &types.Message{
		MessageId:    "abc/1",
		AccountId:    1,
		SubAccountId: 2,
		IpId:         3,
		PublicIp:     "1.2.3.4",
		LocalIp:      "10.0.0.1",
		EmailType:    "smtp",
		SubmittedAt:  1700000000,
		From:         &types.EmailAddress{Email: "from@example.com"},
		To:           &types.EmailAddress{Email: "to@example.com", Name: "Customer"},
		Subject:      "Order",
		IpPool:       "pool",
		Attempt:      1,
	}, res)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, "https://api.sendpost.io/api/v1/account/message/abc%2F1", tr.Url())
	assert.Equal(t, http.MethodGet, tr.Method())
	assert.Equal(t, testAccountKey, tr.Header(HeaderAccountApiKey))
}
