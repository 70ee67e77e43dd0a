package workflow

import (
	"fmt"
	"time"

	"github.com/sendpost/sendpost-go/types"
)

// Fixtures are the literal demo values the workflow sends.
type Fixtures struct {
	FromEmail  string
	ToEmail    string
	DomainName string
	WebhookUrl string
}

func DefaultFixtures() Fixtures {
	return Fixtures{
		FromEmail:  "from@yourdomain.com",
		ToEmail:    "to@example.com",
		DomainName: "yourdomain.com",
		WebhookUrl: "https://your-webhook-endpoint.com/webhook",
	}
}

const (
	poolWarmupHours = 24
	statsWindowDays = 7
)

func subAccountName(now time.Time) string {
	return fmt.Sprintf("ESP Client - %d", now.UnixMilli())
}

func ipPoolName(now time.Time) string {
	return fmt.Sprintf("Marketing Pool %d", now.UnixMilli())
}

func transactionalEmail(f Fixtures, ipPool string) types.EmailMessage {
	return types.EmailMessage{
		From: types.EmailAddress{Email: f.FromEmail, Name: "Your Company"},
		To: []types.Recipient{{
			Email: f.ToEmail,
			Name:  "Customer",
			CustomFields: map[string]any{
				"customer_id": "67890",
				"order_value": "99.99",
			},
		}},
		Subject:     "Order Confirmation - Transactional Email",
		HtmlBody:    "<h1>Thank you for your order!</h1><p>Your order has been confirmed and will be processed shortly.</p>",
		TextBody:    "Thank you for your order! Your order has been confirmed and will be processed shortly.",
		TrackOpens:  true,
		TrackClicks: true,
		Headers: map[string]string{
			"X-Order-ID":   "12345",
			"X-Email-Type": "transactional",
		},
		IpPool: ipPool,
	}
}

func marketingEmail(f Fixtures, ipPool string) types.EmailMessage {
	return types.EmailMessage{
		From: types.EmailAddress{Email: f.FromEmail, Name: "Marketing Team"},
		To: []types.Recipient{
			{Email: f.ToEmail, Name: "Customer 1"},
		},
		Subject: "Special Offer - 20% Off Everything!",
		HtmlBody: "<html><body>" +
			"<h1>Special Offer!</h1>" +
			"<p>Get 20% off on all products. Use code: <strong>SAVE20</strong></p>" +
			"<p><a href=\"https://example.com/shop\">Shop Now</a></p>" +
			"</body></html>",
		TextBody:    "Special Offer! Get 20% off on all products. Use code: SAVE20. Visit: https://example.com/shop",
		TrackOpens:  true,
		TrackClicks: true,
		Groups:      []string{"marketing", "promotional"},
		Headers: map[string]string{
			"X-Email-Type":  "marketing",
			"X-Campaign-ID": "campaign-001",
		},
		IpPool: ipPool,
	}
}

// ipPoolRequest puts only the first listed IP into the pool.
func ipPoolRequest(name string, ips []types.IP) types.IPPoolCreateRequest {
	var members []types.EIP
	if len(ips) > 0 {
		members = []types.EIP{{PublicIp: ips[0].PublicIp}}
	}
	return types.IPPoolCreateRequest{
		Name:             name,
		RoutingStrategy:  types.RoutingRoundRobin,
		Ips:              members,
		WarmupInterval:   poolWarmupHours,
		OverflowStrategy: types.OverflowNone,
	}
}
