package workflow

import (
	"net/http"

	sendpost_errors "github.com/sendpost/sendpost-go/errors"
	"github.com/sendpost/sendpost-go/retry"
	"github.com/sendpost/sendpost-go/types"
)

// SendTransactionalEmail sends the order confirmation through the
// session's IP pool, if any, and records the first message id.
func (r *Runner) SendTransactionalEmail() error {
	r.begin(stepSendTransactional)

	msg := transactionalEmail(r.fixtures, r.session.IpPoolName)
	responses, err := r.send("transactional email", msg)
	if err != nil {
		return err
	}
	if len(responses) > 0 {
		r.session.setSentMessage(responses[0].MessageId)
		r.printf("✓ Transactional email sent successfully!\n")
		r.printf("  Message ID: %s\n", responses[0].MessageId)
		r.printf("  To: %s\n", responses[0].To)
	}
	return nil
}

// SendMarketingEmail sends the promotional email. Its message id is
// recorded only when no transactional message id exists yet.
func (r *Runner) SendMarketingEmail() error {
	r.begin(stepSendMarketing)

	msg := marketingEmail(r.fixtures, r.session.IpPoolName)
	responses, err := r.send("marketing email", msg)
	if err != nil {
		return err
	}
	if len(responses) > 0 {
		if r.session.SentMessageId == "" {
			r.session.setSentMessage(responses[0].MessageId)
		}
		r.printf("✓ Marketing email sent successfully!\n")
		r.printf("  Message ID: %s\n", responses[0].MessageId)
		r.printf("  To: %s\n", responses[0].To)
	}
	return nil
}

func (r *Runner) send(kind string, msg types.EmailMessage) ([]types.EmailResponse, error) {
	if msg.IpPool != "" {
		r.printf("  Using IP Pool: %s\n", msg.IpPool)
	}
	r.printf("Sending %s...\n", kind)
	r.printf("  From: %s\n", msg.From.Email)
	for _, to := range msg.To {
		r.printf("  To: %s\n", to.Email)
	}
	r.printf("  Subject: %s\n", msg.Subject)

	responses, err := r.service.SendEmail(r.subAccountKey(), msg)
	if err != nil {
		return nil, r.fail("send "+kind, err)
	}
	return responses, nil
}

// GetMessageDetails looks up the session's sent message.
func (r *Runner) GetMessageDetails() error {
	r.begin(stepGetMessage)

	messageId := r.session.SentMessageId
	if messageId == "" {
		return r.fail("get message details", &PreconditionError{
			Step:    stepGetMessage.name,
			Missing: "message ID",
			Hint:    "Please send an email first.",
		})
	}

	r.printf("Retrieving message with ID: %s\n", messageId)

	var message *types.Message
	err := r.lookupRetry.Do(r.lookupAttempts, stepGetMessage.name, func(attempt int) (error, retry.ExitStrategy) {
		m, err := r.service.GetMessage(messageId)
		if err != nil {
			if sendpost_errors.StatusCode(err) == http.StatusNotFound {
				return err, retry.Continue
			}
			return err, retry.StopNow
		}
		message = m
		return nil, retry.StopNow
	})
	if err != nil {
		return r.fail("get message details", err)
	}

	r.printf("✓ Message retrieved successfully!\n")
	r.printf("  Message ID: %s\n", message.MessageId)
	r.printf("  Account ID: %d\n", message.AccountId)
	r.printf("  Sub-Account ID: %d\n", message.SubAccountId)
	r.printf("  IP ID: %d\n", message.IpId)
	r.printf("  Public IP: %s\n", message.PublicIp)
	r.printf("  Local IP: %s\n", message.LocalIp)
	r.printf("  Email Type: %s\n", message.EmailType)
	if submitted := formatUnix(message.SubmittedAt); submitted != "" {
		r.printf("  Submitted At: %s\n", submitted)
	}
	if message.From != nil {
		r.printf("  From: %s\n", orNA(message.From.Email))
	}
	if message.To != nil {
		r.printf("  To: %s\n", orNA(message.To.Email))
		if message.To.Name != "" {
			r.printf("    Name: %s\n", message.To.Name)
		}
	}
	if message.Subject != "" {
		r.printf("  Subject: %s\n", message.Subject)
	}
	if message.IpPool != "" {
		r.printf("  IP Pool: %s\n", message.IpPool)
	}
	r.printf("  Delivery Attempts: %d\n", message.Attempt)
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
