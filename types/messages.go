package types

// Message is the stored record of a single sent email.
type Message struct {
	MessageId    string        `json:"messageID"`
	AccountId    int64         `json:"accountID"`
	SubAccountId int64         `json:"subAccountID"`
	IpId         int64         `json:"ipID"`
	PublicIp     string        `json:"publicIP"`
	LocalIp      string        `json:"localIP"`
	EmailType    string        `json:"emailType"`
	SubmittedAt  int64         `json:"submittedAt"`
	From         *EmailAddress `json:"from,omitempty"`
	To           *EmailAddress `json:"to,omitempty"`
	Subject      string        `json:"subject"`
	IpPool       string        `json:"ipPool"`
	Attempt      int           `json:"attempt"`
}
