package types

type EmailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type Recipient struct {
	Email        string         `json:"email"`
	Name         string         `json:"name,omitempty"`
	CustomFields map[string]any `json:"customFields,omitempty"`
}

// EmailMessage is the body of a send request. SendPost answers
// with one EmailResponse per recipient in To.
type EmailMessage struct {
	From        EmailAddress      `json:"from"`
	To          []Recipient       `json:"to"`
	Cc          []Recipient       `json:"cc,omitempty"`
	Bcc         []Recipient       `json:"bcc,omitempty"`
	Subject     string            `json:"subject"`
	HtmlBody    string            `json:"htmlBody,omitempty"`
	TextBody    string            `json:"textBody,omitempty"`
	TrackOpens  bool              `json:"trackOpens"`
	TrackClicks bool              `json:"trackClicks"`
	Headers     map[string]string `json:"headers,omitempty"`
	Groups      []string          `json:"groups,omitempty"`
	IpPool      string            `json:"ippool,omitempty"`
}

type EmailResponse struct {
	MessageId   string `json:"messageId"`
	To          string `json:"to"`
	SubmittedAt int64  `json:"submittedAt,omitempty"`
	ErrorCode   int    `json:"errorCode,omitempty"`
}
