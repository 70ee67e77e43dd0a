package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/sendpost/sendpost-go/types"

	"github.com/stretchr/testify/assert"
)

var testRange = types.TrailingDays(time.Date(2024, time.May, 10, 8, 0, 0, 0, time.UTC), 7)

func TestStats_Daily(t *testing.T) {
	c := httpClient([]byte(`[
		{"date": "2024-05-09", "stat": {"processed": 3, "delivered": 2}},
		{"date": "2024-05-10"}
	]`), 200, nil)
	api := NewStatsApi(testAccountKey, testBackend(c))

	res, err := api.Daily(42, testRange)
	assert.NoError(t, err)
	assert.Equal(t, []types.Stat{
		{Date: "2024-05-09", Stat: &types.StatCounts{Processed: 3, Delivered: 2}},
		{Date: "2024-05-10"},
	}, res)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, "https://api.sendpost.io/api/v1/account/subaccount/stat/42?from=2024-05-03&to=2024-05-10", tr.Url())
	assert.Equal(t, http.MethodGet, tr.Method())
	assert.Equal(t, testAccountKey, tr.Header(HeaderAccountApiKey))
}

func TestStats_Aggregate(t *testing.T) {
	c := httpClient([]byte(`{"processed": 10, "delivered": 9, "dropped": 1}`), 200, nil)
	api := NewStatsApi(testAccountKey, testBackend(c))

	res, err := api.Aggregate(42, testRange)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), res.Processed)
	assert.Equal(t, int64(9), res.Delivered)
	assert.Equal(t, int64(1), res.Dropped)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, "https://api.sendpost.io/api/v1/account/subaccount/stat/42/aggregate?from=2024-05-03&to=2024-05-10", tr.Url())
}

func TestAccountStats_Daily(t *testing.T) {
	c := httpClient([]byte(`[{"date": "2024-05-10", "stat": {"processed": 5, "opened": 2, "clicked": 1}}]`), 200, nil)
	api := NewAccountStatsApi(testAccountKey, testBackend(c))

	res, err := api.Daily(testRange)
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, int64(5), res[0].Stat.Processed)
	assert.Equal(t, int64(2), res[0].Stat.Opened)
	assert.Equal(t, int64(1), res[0].Stat.Clicked)

	tr, _ := c.Transport.(*testTransport)
	assert.Equal(t, "https://api.sendpost.io/api/v1/account/stat/?from=2024-05-03&to=2024-05-10", tr.Url())
}
