package workflow

import (
	"io"
	"os"
	"time"

	"github.com/sendpost/sendpost-go/logger"
	"github.com/sendpost/sendpost-go/retry"
	"github.com/sendpost/sendpost-go/types"
)

// DefaultSettleDelay gives SendPost time to store sent messages
// before the final message lookup.
const DefaultSettleDelay = 3 * time.Second

type runnerConfig struct {
	// subAccountApiKey is the sub-account credential used until a
	// sub-account is selected or created during the run
	// default: ""
	subAccountApiKey string

	// fixtures are the addresses, domain and webhook URL the steps send
	// default: DefaultFixtures()
	fixtures Fixtures

	// out receives the human-readable progress of every step
	// default: os.Stdout
	out io.Writer

	// logger receives step failures with status code and response body
	// default: logger.Noop
	logger logger.Logger

	// now is the clock used for generated names and the stats window
	// default: time.Now
	now func() time.Time

	// settler runs between the stats steps and the message lookup
	// default: NewFixedDelay(DefaultSettleDelay)
	settler Settler

	// selector picks the sub-account adopted by the listing step
	// when the session has none yet
	// default: FirstSubAccount
	selector SubAccountSelector

	// lookupRetry and lookupAttempts control how often a message lookup
	// answered with 404 is repeated
	// default: retry.NewExponentialRetry(), 1 attempt
	lookupRetry    retry.Retry
	lookupAttempts int
}

func defaultRunnerConfig() runnerConfig {
	return runnerConfig{
		fixtures:       DefaultFixtures(),
		out:            os.Stdout,
		logger:         logger.Noop{},
		now:            time.Now,
		settler:        NewFixedDelay(DefaultSettleDelay),
		selector:       FirstSubAccount,
		lookupRetry:    retry.NewExponentialRetry(),
		lookupAttempts: 1,
	}
}

type RunnerOption func(c *runnerConfig)

func WithSubAccountApiKey(apiKey string) RunnerOption {
	return func(c *runnerConfig) {
		c.subAccountApiKey = apiKey
	}
}

func WithFixtures(f Fixtures) RunnerOption {
	return func(c *runnerConfig) {
		c.fixtures = f
	}
}

func WithOutput(out io.Writer) RunnerOption {
	return func(c *runnerConfig) {
		c.out = out
	}
}

func WithLogger(l logger.Logger) RunnerOption {
	return func(c *runnerConfig) {
		c.logger = l
	}
}

func WithClock(now func() time.Time) RunnerOption {
	return func(c *runnerConfig) {
		c.now = now
	}
}

func WithSettler(s Settler) RunnerOption {
	return func(c *runnerConfig) {
		c.settler = s
	}
}

func WithSettleDelay(d time.Duration) RunnerOption {
	return func(c *runnerConfig) {
		c.settler = NewFixedDelay(d)
	}
}

func WithSubAccountSelector(s SubAccountSelector) RunnerOption {
	return func(c *runnerConfig) {
		c.selector = s
	}
}

// WithMessageLookupRetry polls the message lookup up to attempts times
// while SendPost answers 404.
func WithMessageLookupRetry(r retry.Retry, attempts int) RunnerOption {
	return func(c *runnerConfig) {
		c.lookupRetry = r
		c.lookupAttempts = attempts
	}
}

// SubAccountSelector picks the sub-account to adopt from a listing.
type SubAccountSelector func(subAccounts []types.SubAccount) (types.SubAccount, bool)

// FirstSubAccount adopts the first listed sub-account that has an id.
func FirstSubAccount(subAccounts []types.SubAccount) (types.SubAccount, bool) {
	for _, s := range subAccounts {
		if s.Id != 0 {
			return s, true
		}
	}
	return types.SubAccount{}, false
}

// NamedSubAccount adopts the first listed sub-account called name.
func NamedSubAccount(name string) SubAccountSelector {
	return func(subAccounts []types.SubAccount) (types.SubAccount, bool) {
		for _, s := range subAccounts {
			if s.Id != 0 && s.Name == name {
				return s, true
			}
		}
		return types.SubAccount{}, false
	}
}
