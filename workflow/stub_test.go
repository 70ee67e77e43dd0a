package workflow

import (
	"github.com/sendpost/sendpost-go/types"
)

type recordedCall struct {
	Method           string
	SubAccountApiKey string
	Arg              any
}

// stubService records every call and answers with canned values.
type stubService struct {
	calls []recordedCall

	subAccounts      []types.SubAccount
	createdAccount   *types.SubAccount
	webhook          *types.Webhook
	domain           *types.Domain
	emailResponses   [][]types.EmailResponse
	message          *types.Message
	stats            []types.Stat
	aggregate        *types.AggregateStat
	ips              []types.IP
	pool             *types.IPPool
	accountStats     []types.AccountStats
	errs             map[string]error
	getMessageErrors []error
}

var _ Service = &stubService{}

func newStubService() *stubService {
	return &stubService{errs: map[string]error{}}
}

func (s *stubService) record(method string, key string, arg any) error {
	s.calls = append(s.calls, recordedCall{Method: method, SubAccountApiKey: key, Arg: arg})
	return s.errs[method]
}

func (s *stubService) methods() []string {
	var m []string
	for _, c := range s.calls {
		m = append(m, c.Method)
	}
	return m
}

func (s *stubService) callsTo(method string) []recordedCall {
	var res []recordedCall
	for _, c := range s.calls {
		if c.Method == method {
			res = append(res, c)
		}
	}
	return res
}

func (s *stubService) ListSubAccounts() ([]types.SubAccount, error) {
	if err := s.record("ListSubAccounts", "", nil); err != nil {
		return nil, err
	}
	return s.subAccounts, nil
}

func (s *stubService) CreateSubAccount(req types.CreateSubAccountRequest) (*types.SubAccount, error) {
	if err := s.record("CreateSubAccount", "", req); err != nil {
		return nil, err
	}
	return s.createdAccount, nil
}

func (s *stubService) CreateWebhook(req types.CreateWebhookRequest) (*types.Webhook, error) {
	if err := s.record("CreateWebhook", "", req); err != nil {
		return nil, err
	}
	return s.webhook, nil
}

func (s *stubService) ListWebhooks() ([]types.Webhook, error) {
	if err := s.record("ListWebhooks", "", nil); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *stubService) CreateDomain(key string, req types.CreateDomainRequest) (*types.Domain, error) {
	if err := s.record("CreateDomain", key, req); err != nil {
		return nil, err
	}
	return s.domain, nil
}

func (s *stubService) ListDomains(key string) ([]types.Domain, error) {
	if err := s.record("ListDomains", key, nil); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *stubService) SendEmail(key string, msg types.EmailMessage) ([]types.EmailResponse, error) {
	if err := s.record("SendEmail", key, msg); err != nil {
		return nil, err
	}
	if len(s.emailResponses) == 0 {
		return nil, nil
	}
	res := s.emailResponses[0]
	s.emailResponses = s.emailResponses[1:]
	return res, nil
}

func (s *stubService) GetMessage(messageId string) (*types.Message, error) {
	if err := s.record("GetMessage", "", messageId); err != nil {
		return nil, err
	}
	if len(s.getMessageErrors) > 0 {
		err := s.getMessageErrors[0]
		s.getMessageErrors = s.getMessageErrors[1:]
		return nil, err
	}
	return s.message, nil
}

func (s *stubService) SubAccountStats(id int64, dates types.DateRange) ([]types.Stat, error) {
	if err := s.record("SubAccountStats", "", statsArg{id, dates}); err != nil {
		return nil, err
	}
	return s.stats, nil
}

func (s *stubService) SubAccountAggregateStats(id int64, dates types.DateRange) (*types.AggregateStat, error) {
	if err := s.record("SubAccountAggregateStats", "", statsArg{id, dates}); err != nil {
		return nil, err
	}
	return s.aggregate, nil
}

func (s *stubService) ListIPs() ([]types.IP, error) {
	if err := s.record("ListIPs", "", nil); err != nil {
		return nil, err
	}
	return s.ips, nil
}

func (s *stubService) CreateIPPool(req types.IPPoolCreateRequest) (*types.IPPool, error) {
	if err := s.record("CreateIPPool", "", req); err != nil {
		return nil, err
	}
	return s.pool, nil
}

func (s *stubService) ListIPPools() ([]types.IPPool, error) {
	if err := s.record("ListIPPools", "", nil); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *stubService) AccountStats(dates types.DateRange) ([]types.AccountStats, error) {
	if err := s.record("AccountStats", "", statsArg{0, dates}); err != nil {
		return nil, err
	}
	return s.accountStats, nil
}

type statsArg struct {
	SubAccountId int64
	Dates        types.DateRange
}
