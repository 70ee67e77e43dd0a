package types

type Webhook struct {
	Id           int64  `json:"id"`
	Url          string `json:"url"`
	Enabled      bool   `json:"enabled"`
	Processed    bool   `json:"processed"`
	Delivered    bool   `json:"delivered"`
	Dropped      bool   `json:"dropped"`
	SoftBounced  bool   `json:"softBounced"`
	HardBounced  bool   `json:"hardBounced"`
	Opened       bool   `json:"opened"`
	Clicked      bool   `json:"clicked"`
	Unsubscribed bool   `json:"unsubscribed"`
	Spam         bool   `json:"spam"`
	Created      int64  `json:"created,omitempty"`
}

// CreateWebhookRequest subscribes Url to the delivery events
// whose flags are set.
type CreateWebhookRequest struct {
	Url          string `json:"url"`
	Enabled      bool   `json:"enabled"`
	Processed    bool   `json:"processed"`
	Delivered    bool   `json:"delivered"`
	Dropped      bool   `json:"dropped"`
	SoftBounced  bool   `json:"softBounced"`
	HardBounced  bool   `json:"hardBounced"`
	Opened       bool   `json:"opened"`
	Clicked      bool   `json:"clicked"`
	Unsubscribed bool   `json:"unsubscribed"`
	Spam         bool   `json:"spam"`
}

// AllEventsWebhook returns an enabled request subscribed to every event.
func AllEventsWebhook(url string) CreateWebhookRequest {
	return CreateWebhookRequest{
		Url:          url,
		Enabled:      true,
		Processed:    true,
		Delivered:    true,
		Dropped:      true,
		SoftBounced:  true,
		HardBounced:  true,
		Opened:       true,
		Clicked:      true,
		Unsubscribed: true,
		Spam:         true,
	}
}
