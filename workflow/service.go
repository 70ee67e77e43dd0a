package workflow

import (
	sendpost_go "github.com/sendpost/sendpost-go"
	"github.com/sendpost/sendpost-go/types"
)

// Service is the set of remote SendPost calls the workflow depends on.
// Sub-account scoped calls receive the sub-account API key to use;
// every other call is made with the account API key.
type Service interface {
	ListSubAccounts() ([]types.SubAccount, error)
	CreateSubAccount(req types.CreateSubAccountRequest) (*types.SubAccount, error)
	CreateWebhook(req types.CreateWebhookRequest) (*types.Webhook, error)
	ListWebhooks() ([]types.Webhook, error)
	CreateDomain(subAccountApiKey string, req types.CreateDomainRequest) (*types.Domain, error)
	ListDomains(subAccountApiKey string) ([]types.Domain, error)
	SendEmail(subAccountApiKey string, msg types.EmailMessage) ([]types.EmailResponse, error)
	GetMessage(messageId string) (*types.Message, error)
	SubAccountStats(subAccountId int64, dates types.DateRange) ([]types.Stat, error)
	SubAccountAggregateStats(subAccountId int64, dates types.DateRange) (*types.AggregateStat, error)
	ListIPs() ([]types.IP, error)
	CreateIPPool(req types.IPPoolCreateRequest) (*types.IPPool, error)
	ListIPPools() ([]types.IPPool, error)
	AccountStats(dates types.DateRange) ([]types.AccountStats, error)
}

type clientService struct {
	client *sendpost_go.Client
}

var _ Service = &clientService{}

// NewClientService adapts the SDK client to Service.
func NewClientService(client *sendpost_go.Client) Service {
	return &clientService{client: client}
}

func (s *clientService) ListSubAccounts() ([]types.SubAccount, error) {
	return s.client.SubAccounts().All(types.ListOptions{})
}

func (s *clientService) CreateSubAccount(req types.CreateSubAccountRequest) (*types.SubAccount, error) {
	return s.client.SubAccounts().Create(req)
}

func (s *clientService) CreateWebhook(req types.CreateWebhookRequest) (*types.Webhook, error) {
	return s.client.Webhooks().Create(req)
}

func (s *clientService) ListWebhooks() ([]types.Webhook, error) {
	return s.client.Webhooks().All(types.ListOptions{})
}

func (s *clientService) CreateDomain(subAccountApiKey string, req types.CreateDomainRequest) (*types.Domain, error) {
	return s.client.WithSubAccountApiKey(subAccountApiKey).Domains().Create(req)
}

func (s *clientService) ListDomains(subAccountApiKey string) ([]types.Domain, error) {
	return s.client.WithSubAccountApiKey(subAccountApiKey).Domains().All(types.ListOptions{})
}

func (s *clientService) SendEmail(subAccountApiKey string, msg types.EmailMessage) ([]types.EmailResponse, error) {
	return s.client.WithSubAccountApiKey(subAccountApiKey).Email().Send(msg)
}

func (s *clientService) GetMessage(messageId string) (*types.Message, error) {
	return s.client.Messages().Get(messageId)
}

func (s *clientService) SubAccountStats(subAccountId int64, dates types.DateRange) ([]types.Stat, error) {
	return s.client.Stats().Daily(subAccountId, dates)
}

func (s *clientService) SubAccountAggregateStats(subAccountId int64, dates types.DateRange) (*types.AggregateStat, error) {
	return s.client.Stats().Aggregate(subAccountId, dates)
}

func (s *clientService) ListIPs() ([]types.IP, error) {
	return s.client.IPs().All(types.ListOptions{})
}

func (s *clientService) CreateIPPool(req types.IPPoolCreateRequest) (*types.IPPool, error) {
	return s.client.IPPools().Create(req)
}

func (s *clientService) ListIPPools() ([]types.IPPool, error) {
	return s.client.IPPools().All(types.ListOptions{})
}

func (s *clientService) AccountStats(dates types.DateRange) ([]types.AccountStats, error) {
	return s.client.AccountStats().Daily(dates)
}
