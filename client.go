package sendpost_go

import (
	"net/http"

	"github.com/sendpost/sendpost-go/api"
)

type Client struct {
	httpClient *http.Client
	backend    api.Backend

	accountApiKey    string
	subAccountApiKey string

	subAccounts  *api.SubAccounts
	webhooks     *api.Webhooks
	messages     *api.Messages
	stats        *api.Stats
	accountStats *api.AccountStats
	ips          *api.IPs
	ipPools      *api.IPPools
	domains      *api.Domains
	email        *api.Email
}

// NewClient builds a client holding both SendPost credentials:
// account-level resources are called with accountApiKey,
// domains and email sending with subAccountApiKey.
func NewClient(accountApiKey string, subAccountApiKey string, opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	backend := api.Backend{
		BaseUrl:    cfg.baseUrl,
		HttpClient: httpClient,
		Limiter:    cfg.limiter,
		Logger:     cfg.logger,
	}

	return &Client{
		httpClient:       httpClient,
		backend:          backend,
		accountApiKey:    accountApiKey,
		subAccountApiKey: subAccountApiKey,
		subAccounts:      api.NewSubAccountsApi(accountApiKey, backend),
		webhooks:         api.NewWebhooksApi(accountApiKey, backend),
		messages:         api.NewMessagesApi(accountApiKey, backend),
		stats:            api.NewStatsApi(accountApiKey, backend),
		accountStats:     api.NewAccountStatsApi(accountApiKey, backend),
		ips:              api.NewIPsApi(accountApiKey, backend),
		ipPools:          api.NewIPPoolsApi(accountApiKey, backend),
		domains:          api.NewDomainsApi(subAccountApiKey, backend),
		email:            api.NewEmailApi(subAccountApiKey, backend),
	}
}

// WithSubAccountApiKey returns a client sharing c's HTTP client and
// account-level APIs whose sub-account APIs authenticate with apiKey.
func (c *Client) WithSubAccountApiKey(apiKey string) *Client {
	if apiKey == c.subAccountApiKey {
		return c
	}
	cp := *c
	cp.subAccountApiKey = apiKey
	cp.domains = api.NewDomainsApi(apiKey, c.backend)
	cp.email = api.NewEmailApi(apiKey, c.backend)
	return &cp
}

func (c *Client) SubAccountApiKey() string {
	return c.subAccountApiKey
}

func (c *Client) SubAccounts() *api.SubAccounts {
	return c.subAccounts
}

func (c *Client) Webhooks() *api.Webhooks {
	return c.webhooks
}

func (c *Client) Messages() *api.Messages {
	return c.messages
}

func (c *Client) Stats() *api.Stats {
	return c.stats
}

func (c *Client) AccountStats() *api.AccountStats {
	return c.accountStats
}

func (c *Client) IPs() *api.IPs {
	return c.ips
}

func (c *Client) IPPools() *api.IPPools {
	return c.ipPools
}

func (c *Client) Domains() *api.Domains {
	return c.domains
}

func (c *Client) Email() *api.Email {
	return c.email
}
