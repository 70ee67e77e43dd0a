package api

import (
	"github.com/sendpost/sendpost-go/types"
)

var (
	pathSubAccounts = "account/subaccount/"
)

// SubAccounts implements the /account/subaccount API methods.
// Authenticated with the account API key.
type SubAccounts struct {
	api *apiClient
}

func NewSubAccountsApi(accountApiKey string, backend Backend) *SubAccounts {
	return &SubAccounts{
		api: newApiClient(HeaderAccountApiKey, accountApiKey, backend),
	}
}

func (c *SubAccounts) All(opts types.ListOptions) ([]types.SubAccount, error) {
	var res []types.SubAccount
	return toNilErr(res, c.api.getJson(pathSubAccounts, opts.Query(), &res))
}

func (c *SubAccounts) Create(req types.CreateSubAccountRequest) (*types.SubAccount, error) {
	var res types.SubAccount
	return toNilErr(&res, c.api.postJson(pathSubAccounts, req, &res))
}
