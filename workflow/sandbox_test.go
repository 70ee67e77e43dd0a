package workflow

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sendpost_go "github.com/sendpost/sendpost-go"
	"github.com/sendpost/sendpost-go/sandbox"
)

func sandboxService(t *testing.T, cfg sandbox.Config, accountKey, subAccountKey string) Service {
	t.Helper()
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return fixedNow }
	}
	srv := httptest.NewServer(sandbox.New(cfg))
	t.Cleanup(srv.Close)

	client := sendpost_go.NewClient(
		accountKey,
		subAccountKey,
		sendpost_go.WithBaseUrl(srv.URL+sandbox.BasePath),
		sendpost_go.WithTransport(srv.Client().Transport),
	)
	return NewClientService(client)
}

func Test_Run_AgainstSandbox(t *testing.T) {
	t.Parallel()

	svc := sandboxService(t, sandbox.Config{
		AccountApiKey:    "acct",
		SubAccountApiKey: "sub",
	}, "acct", "sub")
	r, out := newTestRunner(svc, WithSubAccountApiKey("sub"))

	report := r.Run()

	assert.Empty(t, report.Failed())
	s := r.Session()
	require.NotNil(t, s.SubAccountId)
	assert.Equal(t, "sub", s.SubAccountApiKey)
	assert.NotNil(t, s.WebhookId)
	assert.NotNil(t, s.DomainId)
	assert.NotNil(t, s.IpPoolId)
	assert.NotEmpty(t, s.IpPoolName)
	assert.NotEmpty(t, s.SentMessageId)
	assert.Contains(t, out.String(), "Message ID: "+s.SentMessageId)
	assert.Contains(t, out.String(), "Total Processed: 2")
	assert.Contains(t, out.String(), "IP Pool: "+s.IpPoolName)
}

func Test_Run_AgainstSandbox_NoIPs(t *testing.T) {
	t.Parallel()

	svc := sandboxService(t, sandbox.Config{
		AccountApiKey:    "acct",
		SubAccountApiKey: "sub",
		IPs:              []string{},
	}, "acct", "sub")
	r, out := newTestRunner(svc, WithSubAccountApiKey("sub"))

	report := r.Run()

	assert.Empty(t, report.Failed())
	assert.Nil(t, r.Session().IpPoolId)
	assert.Contains(t, out.String(), "No IPs available")
}

func Test_Run_AgainstSandbox_InvalidAccountKey(t *testing.T) {
	t.Parallel()

	svc := sandboxService(t, sandbox.Config{
		AccountApiKey:    "acct",
		SubAccountApiKey: "sub",
	}, "wrong", "sub")
	log := &capturingLogger{}
	r, out := newTestRunner(svc, WithSubAccountApiKey("sub"), WithLogger(log))

	report := r.Run()

	assert.Len(t, report.Results, 15)
	assert.NotEmpty(t, report.Failed())
	assert.Nil(t, r.Session().SubAccountId)
	// sub-account scoped calls still succeed with the configured key
	assert.NotNil(t, r.Session().DomainId)
	assert.NotEmpty(t, r.Session().SentMessageId)
	assert.Contains(t, out.String(), "Workflow completed!")
	assert.NotEmpty(t, log.errors)
	assert.Contains(t, log.errors[0], "status code: 401")
}
