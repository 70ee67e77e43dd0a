package api

import (
	"net/url"
	"strings"

	"github.com/sendpost/sendpost-go/types"
)

var (
	pathMessage = "account/message/{messageId}"
)

// Messages implements the /account/message API method.
type Messages struct {
	api *apiClient
}

func NewMessagesApi(accountApiKey string, backend Backend) *Messages {
	return &Messages{
		api: newApiClient(HeaderAccountApiKey, accountApiKey, backend),
	}
}

func (c *Messages) Get(messageId string) (*types.Message, error) {
	var res types.Message
	return toNilErr(&res, c.api.getJson(
		strings.Replace(pathMessage, "{messageId}", url.PathEscape(messageId), 1),
		nil,
		&res,
	))
}
