package api

import (
	"github.com/sendpost/sendpost-go/types"
)

var (
	pathIPs     = "account/ip/"
	pathIPPools = "account/ippool/"
)

// IPs implements the /account/ip API methods.
type IPs struct {
	api *apiClient
}

func NewIPsApi(accountApiKey string, backend Backend) *IPs {
	return &IPs{
		api: newApiClient(HeaderAccountApiKey, accountApiKey, backend),
	}
}

func (c *IPs) All(opts types.ListOptions) ([]types.IP, error) {
	var res []types.IP
	return toNilErr(res, c.api.getJson(pathIPs, opts.Query(), &res))
}

// IPPools implements the /account/ippool API methods.
type IPPools struct {
	api *apiClient
}

func NewIPPoolsApi(accountApiKey string, backend Backend) *IPPools {
	return &IPPools{
		api: newApiClient(HeaderAccountApiKey, accountApiKey, backend),
	}
}

func (c *IPPools) All(opts types.ListOptions) ([]types.IPPool, error) {
	var res []types.IPPool
	return toNilErr(res, c.api.getJson(pathIPPools, opts.Query(), &res))
}

func (c *IPPools) Create(req types.IPPoolCreateRequest) (*types.IPPool, error) {
	var res types.IPPool
	return toNilErr(&res, c.api.postJson(pathIPPools, req, &res))
}
