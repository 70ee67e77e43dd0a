package workflow

import (
	"errors"
	"fmt"
	"io"
	"time"

	sendpost_errors "github.com/sendpost/sendpost-go/errors"
	"github.com/sendpost/sendpost-go/logger"
	"github.com/sendpost/sendpost-go/retry"
	"github.com/sendpost/sendpost-go/types"
)

// Runner executes the ESP demo workflow against a Service.
//
// Every step is exported as a method and can be called on its own;
// Run executes the full workflow in its fixed order. A step failure is
// reported and returned, never propagated to the steps after it.
//
// Usage Example:
//
//	client := sendpost_go.NewClient(accountKey, subAccountKey)
//	runner := workflow.NewRunner(
//	    workflow.NewClientService(client),
//	    workflow.WithSubAccountApiKey(subAccountKey),
//	)
//	report := runner.Run()
//	for _, failed := range report.Failed() {
//	    fmt.Println(failed.Name, failed.Err)
//	}
type Runner struct {
	service Service
	session *Session

	subAccountApiKey string
	fixtures         Fixtures
	out              io.Writer
	logger           logger.Logger
	now              func() time.Time
	settler          Settler
	selector         SubAccountSelector
	lookupRetry      retry.Retry
	lookupAttempts   int

	window *types.DateRange
}

func NewRunner(service Service, opts ...RunnerOption) *Runner {
	cfg := defaultRunnerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Runner{
		service:          service,
		session:          &Session{},
		subAccountApiKey: cfg.subAccountApiKey,
		fixtures:         cfg.fixtures,
		out:              cfg.out,
		logger:           cfg.logger,
		now:              cfg.now,
		settler:          cfg.settler,
		selector:         cfg.selector,
		lookupRetry:      cfg.lookupRetry,
		lookupAttempts:   cfg.lookupAttempts,
	}
}

// Session exposes the identifiers collected so far.
func (r *Runner) Session() *Session {
	return r.session
}

// Step is one named unit of the workflow.
type Step struct {
	Name  string
	Title string
	Run   func() error
}

type stepMeta struct {
	number int
	name   string
	title  string
}

var (
	stepListSubAccounts   = stepMeta{1, "list-sub-accounts", "Listing All Sub-Accounts"}
	stepCreateSubAccount  = stepMeta{2, "create-sub-account", "Creating Sub-Account"}
	stepCreateWebhook     = stepMeta{3, "create-webhook", "Creating Webhook"}
	stepListWebhooks      = stepMeta{4, "list-webhooks", "Listing All Webhooks"}
	stepAddDomain         = stepMeta{5, "add-domain", "Adding Domain"}
	stepListDomains       = stepMeta{6, "list-domains", "Listing All Domains"}
	stepSendTransactional = stepMeta{7, "send-transactional-email", "Sending Transactional Email"}
	stepSendMarketing     = stepMeta{8, "send-marketing-email", "Sending Marketing Email"}
	stepGetMessage        = stepMeta{9, "get-message-details", "Retrieving Message Details"}
	stepSubAccountStats   = stepMeta{10, "get-sub-account-stats", "Getting Sub-Account Statistics"}
	stepAggregateStats    = stepMeta{11, "get-aggregate-stats", "Getting Aggregate Statistics"}
	stepListIPs           = stepMeta{12, "list-ips", "Listing All IPs"}
	stepCreateIPPool      = stepMeta{13, "create-ip-pool", "Creating IP Pool"}
	stepListIPPools       = stepMeta{14, "list-ip-pools", "Listing All IP Pools"}
	stepAccountStats      = stepMeta{15, "get-account-stats", "Getting Account-Level Statistics"}

	stepSettle = stepMeta{0, "settle", "Waiting for message data to be stored"}
)

func (r *Runner) step(meta stepMeta, run func() error) Step {
	return Step{Name: meta.name, Title: meta.title, Run: run}
}

// Catalog lists every operation by number, including the ones
// the full run does not execute.
func (r *Runner) Catalog() []Step {
	return []Step{
		r.step(stepListSubAccounts, r.ListSubAccounts),
		r.step(stepCreateSubAccount, r.CreateSubAccount),
		r.step(stepCreateWebhook, r.CreateWebhook),
		r.step(stepListWebhooks, r.ListWebhooks),
		r.step(stepAddDomain, r.AddDomain),
		r.step(stepListDomains, r.ListDomains),
		r.step(stepSendTransactional, r.SendTransactionalEmail),
		r.step(stepSendMarketing, r.SendMarketingEmail),
		r.step(stepGetMessage, r.GetMessageDetails),
		r.step(stepSubAccountStats, r.GetSubAccountStats),
		r.step(stepAggregateStats, r.GetAggregateStats),
		r.step(stepListIPs, r.ListIPs),
		r.step(stepCreateIPPool, r.CreateIPPool),
		r.step(stepListIPPools, r.ListIPPools),
		r.step(stepAccountStats, r.GetAccountStats),
	}
}

// Lookup finds a catalog step by name.
func (r *Runner) Lookup(name string) (Step, bool) {
	for _, s := range r.Catalog() {
		if s.Name == name {
			return s, true
		}
	}
	return Step{}, false
}

// Steps returns the full run in execution order. IP pool creation
// precedes both sends so they can use the pool; the sends precede the
// stats and the message lookup, which runs last after the settle wait.
func (r *Runner) Steps() []Step {
	return []Step{
		r.step(stepListSubAccounts, r.ListSubAccounts),
		r.step(stepCreateWebhook, r.CreateWebhook),
		r.step(stepListWebhooks, r.ListWebhooks),
		r.step(stepAddDomain, r.AddDomain),
		r.step(stepListDomains, r.ListDomains),
		r.step(stepListIPs, r.ListIPs),
		r.step(stepCreateIPPool, r.CreateIPPool),
		r.step(stepListIPPools, r.ListIPPools),
		r.step(stepSendTransactional, r.SendTransactionalEmail),
		r.step(stepSendMarketing, r.SendMarketingEmail),
		r.step(stepSubAccountStats, r.GetSubAccountStats),
		r.step(stepAggregateStats, r.GetAggregateStats),
		r.step(stepAccountStats, r.GetAccountStats),
		r.step(stepSettle, r.settle),
		r.step(stepGetMessage, r.GetMessageDetails),
	}
}

// Run executes every step of Steps regardless of earlier failures.
func (r *Runner) Run() Report {
	r.printf("╔═══════════════════════════════════════════════════════════════╗\n")
	r.printf("║   SendPost Go SDK - ESP Example Workflow                      ║\n")
	r.printf("╚═══════════════════════════════════════════════════════════════╝\n")

	report := r.RunSteps(r.Steps())

	r.printf("\n╔═══════════════════════════════════════════════════════════════╗\n")
	r.printf("║   Workflow completed!                                         ║\n")
	r.printf("╚═══════════════════════════════════════════════════════════════╝\n")
	report.Print(r.out)
	return report
}

// RunSteps executes steps in order, collecting every result.
func (r *Runner) RunSteps(steps []Step) Report {
	var report Report
	for _, s := range steps {
		start := r.now()
		err := s.Run()
		report.Results = append(report.Results, StepResult{
			Name:     s.Name,
			Err:      err,
			Duration: r.now().Sub(start),
		})
	}
	return report
}

func (r *Runner) settle() error {
	r.printf("\n⏳ Waiting a few seconds for message data to be stored...\n")
	r.settler.Settle()
	return nil
}

// subAccountKey prefers the key of the sub-account selected or created
// during the run over the configured one.
func (r *Runner) subAccountKey() string {
	if r.session.SubAccountApiKey != "" {
		return r.session.SubAccountApiKey
	}
	return r.subAccountApiKey
}

// statsWindow is computed once so every stats step of a run
// queries the same seven days.
func (r *Runner) statsWindow() types.DateRange {
	if r.window == nil {
		w := types.TrailingDays(r.now(), statsWindowDays)
		r.window = &w
	}
	return *r.window
}

func (r *Runner) begin(meta stepMeta) {
	r.printf("\n=== Step %d: %s ===\n", meta.number, meta.title)
}

func (r *Runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// fail logs err for the step and returns it unchanged.
func (r *Runner) fail(action string, err error) error {
	var precondition *PreconditionError
	if errors.As(err, &precondition) {
		r.logger.Errorf("✗ %s: no %s available. %s", action, precondition.Missing, precondition.Hint)
		return err
	}

	var apiErr *sendpost_errors.ApiError
	if errors.As(err, &apiErr) {
		r.logger.Errorf(
			"✗ Failed to %s: status code: %d, response body: %s",
			action, apiErr.HttpStatusCode, string(apiErr.Body),
		)
		return err
	}

	r.logger.Errorf("✗ Failed to %s: %v", action, err)
	return err
}

func formatUnix(sec int64) string {
	if sec == 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
