package workflow

// Session holds the identifiers produced by earlier steps and consumed
// by later ones. Every field is optional: pointers are nil and strings
// empty until the producing step succeeds. A value, once set, is only
// ever replaced by a newer one and never cleared.
type Session struct {
	SubAccountId     *int64
	SubAccountApiKey string
	WebhookId        *int64
	DomainId         *int64
	IpPoolId         *int64
	IpPoolName       string
	SentMessageId    string
}

func (s *Session) setSubAccount(id int64, apiKey string) {
	s.SubAccountId = &id
	if apiKey != "" {
		s.SubAccountApiKey = apiKey
	}
}

func (s *Session) setWebhook(id int64) {
	s.WebhookId = &id
}

func (s *Session) setDomain(id int64) {
	s.DomainId = &id
}

func (s *Session) setIpPool(id int64, name string) {
	s.IpPoolId = &id
	if name != "" {
		s.IpPoolName = name
	}
}

func (s *Session) setSentMessage(messageId string) {
	if messageId != "" {
		s.SentMessageId = messageId
	}
}
