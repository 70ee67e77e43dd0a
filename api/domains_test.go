package api

import (
	"net/http"
	"testing"

	"github.com/sendpost/sendpost-go/errors"
	"github.com/sendpost/sendpost-go/types"

	"github.com/stretchr/testify/assert"
)

func TestDomains_Create(t *testing.T) {
	testCases := []struct {
		name      string
		resBody   []byte
		resCode   int
		expectRes *types.Domain
		expectErr bool
	}{
		{
			name:    "with dkim",
			resBody: []byte(`{"id": 5, "name": "example.com", "verified": false, "dkim": {"textValue": "k=rsa; p=abc"}}`),
			resCode: 200,
			expectRes: &types.Domain{
				Id:   5,
				Name: "example.com",
				Dkim: &types.DnsRecord{TextValue: "k=rsa; p=abc"},
			},
		},
		{
			name:      "without dkim",
			resBody:   []byte(`{"id": 6, "name": "example.com", "verified": true}`),
			resCode:   200,
			expectRes: &types.Domain{Id: 6, Name: "example.com", Verified: true},
		},
		{
			name:      "conflict",
			resBody:   []byte(`{"error": "domain already exists"}`),
			resCode:   409,
			expectErr: true,
		},
	}

	for _, tt := range testCases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := httpClient(tt.resBody, tt.resCode, nil)
			api := NewDomainsApi(testSubAccountKey, testBackend(c))

			res, err := api.Create(types.CreateDomainRequest{Name: "example.com"})
			if tt.expectErr {
				assert.Error(t, err)
				assert.Equal(t, tt.resCode, errors.StatusCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectRes, res)
			}

			tr, _ := c.Transport.(*testTransport)
			assert.Equal(t, "https://api.sendpost.io/api/v1/subaccount/domain/", tr.Url())
			assert.Equal(t, http.MethodPost, tr.Method())
			assert.Equal(t, testSubAccountKey, tr.Header(HeaderSubAccountApiKey))
			assert.Empty(t, tr.Header(HeaderAccountApiKey))
		})
	}
}

func TestDomains_All(t *testing.T) {
	c := httpClient([]byte(`[{"id": 1, "name": "a.com", "verified": true}]`), 200, nil)
	api := NewDomainsApi(testSubAccountKey, testBackend(c))

	res, err := api.All(types.ListOptions{Search: "a"})
	assert.NoError(t, err)
	assert.Equal(t, []types.Domain{{Id: 1, Name: "a.com", Verified: true}}, res)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, "https://api.sendpost.io/api/v1/subaccount/domain/?search=a", tr.Url())
}
