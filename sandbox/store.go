package sandbox

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sendpost/sendpost-go/types"
)

// sentMessage is a stored message together with the data the stats
// endpoints aggregate over.
type sentMessage struct {
	types.Message
	day string
}

// MemoryStore holds all sandbox state in memory.
type MemoryStore struct {
	mu sync.RWMutex

	now    func() time.Time
	nextId int64

	subAccounts []types.SubAccount
	webhooks    []types.Webhook
	domains     map[int64][]types.Domain
	ips         []types.IP
	pools       []types.IPPool
	messages    map[string]sentMessage
	sent        []string
}

func newMemoryStore(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		now:      now,
		domains:  map[int64][]types.Domain{},
		messages: map[string]sentMessage{},
	}
}

func (s *MemoryStore) id() int64 {
	s.nextId++
	return s.nextId
}

func (s *MemoryStore) AddSubAccount(name, apiKey string, typ types.SubAccountType) types.SubAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	if apiKey == "" {
		apiKey = "sandbox-" + uuid.NewString()
	}
	sa := types.SubAccount{
		Id:      s.id(),
		Name:    name,
		ApiKey:  apiKey,
		Type:    typ,
		Created: s.now().Unix(),
	}
	s.subAccounts = append(s.subAccounts, sa)
	return sa
}

func (s *MemoryStore) SubAccounts() []types.SubAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.SubAccount{}, s.subAccounts...)
}

func (s *MemoryStore) subAccountByKey(apiKey string) (types.SubAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sa := range s.subAccounts {
		if sa.ApiKey == apiKey {
			return sa, true
		}
	}
	return types.SubAccount{}, false
}

func (s *MemoryStore) hasSubAccount(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sa := range s.subAccounts {
		if sa.Id == id {
			return true
		}
	}
	return false
}

func (s *MemoryStore) AddWebhook(req types.CreateWebhookRequest) types.Webhook {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := types.Webhook{
		Id:           s.id(),
		Url:          req.Url,
		Enabled:      req.Enabled,
		Processed:    req.Processed,
		Delivered:    req.Delivered,
		Dropped:      req.Dropped,
		SoftBounced:  req.SoftBounced,
		HardBounced:  req.HardBounced,
		Opened:       req.Opened,
		Clicked:      req.Clicked,
		Unsubscribed: req.Unsubscribed,
		Spam:         req.Spam,
		Created:      s.now().Unix(),
	}
	s.webhooks = append(s.webhooks, w)
	return w
}

func (s *MemoryStore) Webhooks() []types.Webhook {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Webhook{}, s.webhooks...)
}

func (s *MemoryStore) AddDomain(subAccountId int64, name string) types.Domain {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := types.Domain{
		Id:   s.id(),
		Name: name,
		Dkim: &types.DnsRecord{
			Type:      "TXT",
			Host:      "sendpost._domainkey." + name,
			TextValue: "v=DKIM1; k=rsa; p=" + uuid.NewString(),
		},
		Created: s.now().Unix(),
	}
	s.domains[subAccountId] = append(s.domains[subAccountId], d)
	return d
}

func (s *MemoryStore) Domains(subAccountId int64) []types.Domain {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Domain{}, s.domains[subAccountId]...)
}

func (s *MemoryStore) AddIP(publicIp string) types.IP {
	s.mu.Lock()
	defer s.mu.Unlock()

	ip := types.IP{
		Id:                 s.id(),
		PublicIp:           publicIp,
		ReverseDnsHostname: "mta-" + publicIp + ".sandbox.sendpost.io",
		Created:            s.now().Unix(),
	}
	s.ips = append(s.ips, ip)
	return ip
}

func (s *MemoryStore) IPs() []types.IP {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.IP{}, s.ips...)
}

// AddPool creates a pool from the referenced IPs. The second return
// value names the first public IP that is not allocated to the account.
func (s *MemoryStore) AddPool(req types.IPPoolCreateRequest) (types.IPPool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var members []types.IP
	for _, eip := range req.Ips {
		ip, ok := s.ipByAddress(eip.PublicIp)
		if !ok {
			return types.IPPool{}, eip.PublicIp
		}
		members = append(members, ip)
	}

	pool := types.IPPool{
		Id:               s.id(),
		Name:             req.Name,
		RoutingStrategy:  req.RoutingStrategy,
		Ips:              members,
		WarmupInterval:   req.WarmupInterval,
		OverflowStrategy: req.OverflowStrategy,
		Created:          s.now().Unix(),
	}
	s.pools = append(s.pools, pool)
	return pool, ""
}

func (s *MemoryStore) ipByAddress(publicIp string) (types.IP, bool) {
	for _, ip := range s.ips {
		if ip.PublicIp == publicIp {
			return ip, true
		}
	}
	return types.IP{}, false
}

func (s *MemoryStore) Pools() []types.IPPool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.IPPool{}, s.pools...)
}

func (s *MemoryStore) hasPool(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pools {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Send stores one message per recipient and returns their responses.
func (s *MemoryStore) Send(subAccount types.SubAccount, msg types.EmailMessage) []types.EmailResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var publicIp string
	var ipId int64
	if len(s.ips) > 0 {
		publicIp = s.ips[0].PublicIp
		ipId = s.ips[0].Id
	}
	for _, p := range s.pools {
		if p.Name == msg.IpPool && len(p.Ips) > 0 {
			publicIp = p.Ips[0].PublicIp
			ipId = p.Ips[0].Id
		}
	}

	emailType := "transactional"
	if len(msg.Groups) > 0 {
		emailType = "marketing"
	}

	responses := make([]types.EmailResponse, 0, len(msg.To))
	for _, to := range msg.To {
		id := uuid.NewString()
		from := msg.From
		rcpt := types.EmailAddress{Email: to.Email, Name: to.Name}
		s.messages[id] = sentMessage{
			Message: types.Message{
				MessageId:    id,
				AccountId:    1,
				SubAccountId: subAccount.Id,
				IpId:         ipId,
				PublicIp:     publicIp,
				LocalIp:      publicIp,
				EmailType:    emailType,
				SubmittedAt:  now.Unix(),
				From:         &from,
				To:           &rcpt,
				Subject:      msg.Subject,
				IpPool:       msg.IpPool,
				Attempt:      1,
			},
			day: now.UTC().Format(types.DateLayout),
		}
		s.sent = append(s.sent, id)
		responses = append(responses, types.EmailResponse{
			MessageId:   id,
			To:          to.Email,
			SubmittedAt: now.Unix(),
		})
	}
	return responses
}

func (s *MemoryStore) Message(id string) (types.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.messages[id]
	return m.Message, ok
}

// DailyStats counts the messages of every day in [from, to].
// A subAccountId of 0 counts every sub-account.
func (s *MemoryStore) DailyStats(subAccountId int64, from, to time.Time) []types.AccountStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byDay := map[string]*types.AccountStatCounts{}
	for _, id := range s.sent {
		m := s.messages[id]
		if subAccountId != 0 && m.SubAccountId != subAccountId {
			continue
		}
		c, ok := byDay[m.day]
		if !ok {
			c = &types.AccountStatCounts{}
			byDay[m.day] = c
		}
		c.Processed++
		c.Delivered++
	}

	var res []types.AccountStats
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := day.Format(types.DateLayout)
		c := byDay[date]
		if c == nil {
			c = &types.AccountStatCounts{}
		}
		res = append(res, types.AccountStats{Date: date, Stat: c})
	}
	return res
}
