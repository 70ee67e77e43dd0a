package sendpost_go

import (
	"github.com/sendpost/sendpost-go/types"
)

func typesListOptions() types.ListOptions {
	return types.ListOptions{}
}

func typesEmail() types.EmailMessage {
	return types.EmailMessage{
		From:    types.EmailAddress{Email: "from@example.com"},
		To:      []types.Recipient{{Email: "to@example.com"}},
		Subject: "hello",
	}
}
