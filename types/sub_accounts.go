package types

type SubAccountType int

const (
	SubAccountTypeRegular SubAccountType = 0
	SubAccountTypePlus    SubAccountType = 1
)

func (t SubAccountType) String() string {
	if t == SubAccountTypePlus {
		return "Plus"
	}
	return "Regular"
}

type SubAccount struct {
	Id      int64          `json:"id"`
	Name    string         `json:"name"`
	ApiKey  string         `json:"apiKey"`
	Type    SubAccountType `json:"type"`
	Blocked bool           `json:"blocked"`
	Created int64          `json:"created,omitempty"`
}

type CreateSubAccountRequest struct {
	Name string `json:"name"`
}
