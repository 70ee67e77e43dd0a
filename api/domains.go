package api

import (
	"github.com/sendpost/sendpost-go/types"
)

var (
	pathDomains = "subaccount/domain/"
)

// Domains implements the /subaccount/domain API methods.
// Authenticated with a sub-account API key.
type Domains struct {
	api *apiClient
}

func NewDomainsApi(subAccountApiKey string, backend Backend) *Domains {
	return &Domains{
		api: newApiClient(HeaderSubAccountApiKey, subAccountApiKey, backend),
	}
}

func (c *Domains) All(opts types.ListOptions) ([]types.Domain, error) {
	var res []types.Domain
	return toNilErr(res, c.api.getJson(pathDomains, opts.Query(), &res))
}

func (c *Domains) Create(req types.CreateDomainRequest) (*types.Domain, error) {
	var res types.Domain
	return toNilErr(&res, c.api.postJson(pathDomains, req, &res))
}
