package api

import (
	"github.com/sendpost/sendpost-go/types"
)

var (
	pathEmail = "subaccount/email/"
)

// Email implements the /subaccount/email API method.
type Email struct {
	api *apiClient
}

func NewEmailApi(subAccountApiKey string, backend Backend) *Email {
	return &Email{
		api: newApiClient(HeaderSubAccountApiKey, subAccountApiKey, backend),
	}
}

// Send submits msg and returns one response per recipient,
// in the order of msg.To.
func (c *Email) Send(msg types.EmailMessage) ([]types.EmailResponse, error) {
	var res []types.EmailResponse
	return toNilErr(res, c.api.postJson(pathEmail, msg, &res))
}
