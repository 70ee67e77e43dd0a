package api

import (
	"github.com/sendpost/sendpost-go/types"
)

var (
	pathWebhooks = "account/webhook/"
)

// Webhooks implements the /account/webhook API methods.
type Webhooks struct {
	api *apiClient
}

func NewWebhooksApi(accountApiKey string, backend Backend) *Webhooks {
	return &Webhooks{
		api: newApiClient(HeaderAccountApiKey, accountApiKey, backend),
	}
}

func (c *Webhooks) All(opts types.ListOptions) ([]types.Webhook, error) {
	var res []types.Webhook
	return toNilErr(res, c.api.getJson(pathWebhooks, opts.Query(), &res))
}

func (c *Webhooks) Create(req types.CreateWebhookRequest) (*types.Webhook, error) {
	var res types.Webhook
	return toNilErr(&res, c.api.postJson(pathWebhooks, req, &res))
}
