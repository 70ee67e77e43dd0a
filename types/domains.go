package types

type Domain struct {
	Id       int64      `json:"id"`
	Name     string     `json:"name"`
	Verified bool       `json:"verified"`
	Dkim     *DnsRecord `json:"dkim,omitempty"`
	Created  int64      `json:"created,omitempty"`
}

type DnsRecord struct {
	Type      string `json:"type,omitempty"`
	Host      string `json:"host,omitempty"`
	TextValue string `json:"textValue"`
}

type CreateDomainRequest struct {
	Name string `json:"name"`
}
