package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	PlaceholderAccountApiKey    = "YOUR_ACCOUNT_API_KEY_HERE"
	PlaceholderSubAccountApiKey = "YOUR_SUB_ACCOUNT_API_KEY_HERE"

	EnvAccountApiKey    = "SENDPOST_ACCOUNT_API_KEY"
	EnvSubAccountApiKey = "SENDPOST_SUB_ACCOUNT_API_KEY"
	EnvBaseUrl          = "SENDPOST_BASE_URL"
	EnvFromEmail        = "SENDPOST_FROM_EMAIL"
	EnvToEmail          = "SENDPOST_TO_EMAIL"
	EnvDomainName       = "SENDPOST_DOMAIN_NAME"
	EnvWebhookUrl       = "SENDPOST_WEBHOOK_URL"
	EnvSettleDelay      = "SENDPOST_SETTLE_DELAY"
	EnvRequestsPerSec   = "SENDPOST_RPS"
	EnvTimeout          = "SENDPOST_TIMEOUT"
	EnvLookupAttempts   = "SENDPOST_LOOKUP_ATTEMPTS"

	DefaultEnvFile = ".env"
)

// Config holds everything the example needs to talk to SendPost.
type Config struct {
	AccountApiKey    string `yaml:"account_api_key"`
	SubAccountApiKey string `yaml:"sub_account_api_key"`
	BaseUrl          string `yaml:"base_url"`

	FromEmail  string `yaml:"from_email"`
	ToEmail    string `yaml:"to_email"`
	DomainName string `yaml:"domain_name"`
	WebhookUrl string `yaml:"webhook_url"`

	SettleDelay       time.Duration `yaml:"settle_delay"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Timeout           time.Duration `yaml:"timeout"`
	LookupAttempts    int           `yaml:"lookup_attempts"`
}

func Default() Config {
	return Config{
		AccountApiKey:    PlaceholderAccountApiKey,
		SubAccountApiKey: PlaceholderSubAccountApiKey,
		BaseUrl:          "https://api.sendpost.io/api/v1",
		FromEmail:        "from@yourdomain.com",
		ToEmail:          "to@example.com",
		DomainName:       "yourdomain.com",
		WebhookUrl:       "https://your-webhook-endpoint.com/webhook",
		SettleDelay:      3 * time.Second,
		Timeout:          10 * time.Second,
		LookupAttempts:   1,
	}
}

// Source says where Load reads from. Empty file names are skipped.
type Source struct {
	Fs afero.Fs

	// ConfigFile is an optional YAML file. It must exist when set.
	ConfigFile string

	// EnvFile is a dotenv file. A missing file is ignored.
	EnvFile string

	// Getenv reads the process environment.
	// default: os.Getenv
	Getenv func(string) string
}

// Load layers the defaults, the YAML file, the dotenv file and the
// process environment, each overriding the ones before it.
func Load(src Source) (Config, error) {
	if src.Fs == nil {
		src.Fs = afero.NewOsFs()
	}
	if src.Getenv == nil {
		src.Getenv = os.Getenv
	}

	cfg := Default()

	if src.ConfigFile != "" {
		data, err := afero.ReadFile(src.Fs, src.ConfigFile)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", src.ConfigFile, err)
		}
	}

	dotenv := map[string]string{}
	if src.EnvFile != "" {
		f, err := src.Fs.Open(src.EnvFile)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("opening env file: %w", err)
		default:
			dotenv, err = godotenv.Parse(f)
			_ = f.Close()
			if err != nil {
				return cfg, fmt.Errorf("parsing env file %s: %w", src.EnvFile, err)
			}
		}
	}

	lookup := func(key string) string {
		if v := src.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) string) error {
	setString := func(key string, dst *string) {
		if v := lookup(key); v != "" {
			*dst = v
		}
	}
	setString(EnvAccountApiKey, &c.AccountApiKey)
	setString(EnvSubAccountApiKey, &c.SubAccountApiKey)
	setString(EnvBaseUrl, &c.BaseUrl)
	setString(EnvFromEmail, &c.FromEmail)
	setString(EnvToEmail, &c.ToEmail)
	setString(EnvDomainName, &c.DomainName)
	setString(EnvWebhookUrl, &c.WebhookUrl)

	if v := lookup(EnvSettleDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSettleDelay, err)
		}
		c.SettleDelay = d
	}
	if v := lookup(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v := lookup(EnvRequestsPerSec); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequestsPerSec, err)
		}
		c.RequestsPerSecond = rps
	}
	if v := lookup(EnvLookupAttempts); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLookupAttempts, err)
		}
		c.LookupAttempts = n
	}
	return nil
}

func (c Config) Validate() error {
	if c.BaseUrl == "" {
		return fmt.Errorf("base url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0")
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("settle delay must be >= 0")
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests per second must be >= 0")
	}
	if c.LookupAttempts < 1 {
		return fmt.Errorf("lookup attempts must be >= 1")
	}
	return nil
}

// HasPlaceholderCredentials reports whether either API key
// still holds its placeholder value.
func (c Config) HasPlaceholderCredentials() bool {
	return c.AccountApiKey == PlaceholderAccountApiKey ||
		c.SubAccountApiKey == PlaceholderSubAccountApiKey
}
