package api

import (
	"fmt"
	"strings"

	"github.com/sendpost/sendpost-go/types"
)

var (
	pathSubAccountStats          = "account/subaccount/stat/{subAccountId}"
	pathSubAccountAggregateStats = "account/subaccount/stat/{subAccountId}/aggregate"
	pathAccountStats             = "account/stat/"
)

// Stats implements the per-sub-account /account/subaccount/stat API methods.
type Stats struct {
	api *apiClient
}

func NewStatsApi(accountApiKey string, backend Backend) *Stats {
	return &Stats{
		api: newApiClient(HeaderAccountApiKey, accountApiKey, backend),
	}
}

// Daily returns one record per day of the range.
func (c *Stats) Daily(subAccountId int64, dates types.DateRange) ([]types.Stat, error) {
	var res []types.Stat
	return toNilErr(res, c.api.getJson(
		strings.Replace(pathSubAccountStats, "{subAccountId}", fmt.Sprint(subAccountId), 1),
		dates.Query(),
		&res,
	))
}

// Aggregate returns a single record summed over the range.
func (c *Stats) Aggregate(subAccountId int64, dates types.DateRange) (*types.AggregateStat, error) {
	var res types.AggregateStat
	return toNilErr(&res, c.api.getJson(
		strings.Replace(pathSubAccountAggregateStats, "{subAccountId}", fmt.Sprint(subAccountId), 1),
		dates.Query(),
		&res,
	))
}

// AccountStats implements the /account/stat API method,
// which sums every sub-account of the account.
type AccountStats struct {
	api *apiClient
}

func NewAccountStatsApi(accountApiKey string, backend Backend) *AccountStats {
	return &AccountStats{
		api: newApiClient(HeaderAccountApiKey, accountApiKey, backend),
	}
}

func (c *AccountStats) Daily(dates types.DateRange) ([]types.AccountStats, error) {
	var res []types.AccountStats
	return toNilErr(res, c.api.getJson(pathAccountStats, dates.Query(), &res))
}
