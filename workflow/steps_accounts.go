package workflow

import (
	"github.com/sendpost/sendpost-go/types"
)

// ListSubAccounts lists the account's sub-accounts and, when the session
// has none yet, adopts the one picked by the selector.
func (r *Runner) ListSubAccounts() error {
	r.begin(stepListSubAccounts)
	r.printf("Retrieving all sub-accounts...\n")

	subAccounts, err := r.service.ListSubAccounts()
	if err != nil {
		return r.fail("list sub-accounts", err)
	}

	r.printf("✓ Retrieved %d sub-account(s)\n", len(subAccounts))
	for _, s := range subAccounts {
		r.printf("  - ID: %d\n", s.Id)
		r.printf("    Name: %s\n", s.Name)
		r.printf("    API Key: %s\n", s.ApiKey)
		r.printf("    Type: %s\n", s.Type)
		r.printf("    Blocked: %s\n", yesNo(s.Blocked))
		if created := formatUnix(s.Created); created != "" {
			r.printf("    Created: %s\n", created)
		}
		r.printf("\n")
	}

	if r.session.SubAccountId == nil {
		if selected, ok := r.selector(subAccounts); ok {
			r.session.setSubAccount(selected.Id, selected.ApiKey)
			r.printf("Using sub-account %d (%s)\n", selected.Id, selected.Name)
		}
	}
	return nil
}

// CreateSubAccount creates a new, uniquely named sub-account on every
// call and makes it the session's sub-account.
func (r *Runner) CreateSubAccount() error {
	r.begin(stepCreateSubAccount)

	req := types.CreateSubAccountRequest{Name: subAccountName(r.now())}
	r.printf("Creating sub-account: %s\n", req.Name)

	subAccount, err := r.service.CreateSubAccount(req)
	if err != nil {
		return r.fail("create sub-account", err)
	}
	r.session.setSubAccount(subAccount.Id, subAccount.ApiKey)

	r.printf("✓ Sub-account created successfully!\n")
	r.printf("  ID: %d\n", subAccount.Id)
	r.printf("  Name: %s\n", subAccount.Name)
	r.printf("  API Key: %s\n", subAccount.ApiKey)
	r.printf("  Type: %s\n", subAccount.Type)
	return nil
}

// CreateWebhook registers the fixture URL for every delivery event.
func (r *Runner) CreateWebhook() error {
	r.begin(stepCreateWebhook)

	req := types.AllEventsWebhook(r.fixtures.WebhookUrl)
	r.printf("Creating webhook...\n")
	r.printf("  URL: %s\n", req.Url)

	webhook, err := r.service.CreateWebhook(req)
	if err != nil {
		return r.fail("create webhook", err)
	}
	r.session.setWebhook(webhook.Id)

	r.printf("✓ Webhook created successfully!\n")
	r.printf("  ID: %d\n", webhook.Id)
	r.printf("  URL: %s\n", webhook.Url)
	r.printf("  Enabled: %t\n", webhook.Enabled)
	return nil
}

func (r *Runner) ListWebhooks() error {
	r.begin(stepListWebhooks)
	r.printf("Retrieving all webhooks...\n")

	webhooks, err := r.service.ListWebhooks()
	if err != nil {
		return r.fail("list webhooks", err)
	}

	r.printf("✓ Retrieved %d webhook(s)\n", len(webhooks))
	for _, w := range webhooks {
		r.printf("  - ID: %d\n", w.Id)
		r.printf("    URL: %s\n", w.Url)
		r.printf("    Enabled: %t\n", w.Enabled)
		r.printf("\n")
	}
	return nil
}

// AddDomain adds the fixture domain to the sub-account. Publishing the
// returned DKIM record is left to the operator.
func (r *Runner) AddDomain() error {
	r.begin(stepAddDomain)

	req := types.CreateDomainRequest{Name: r.fixtures.DomainName}
	r.printf("Adding domain: %s\n", req.Name)

	domain, err := r.service.CreateDomain(r.subAccountKey(), req)
	if err != nil {
		return r.fail("add domain", err)
	}
	r.session.setDomain(domain.Id)

	r.printf("✓ Domain added successfully!\n")
	r.printf("  ID: %d\n", domain.Id)
	r.printf("  Domain: %s\n", domain.Name)
	r.printf("  Verified: %s\n", yesNo(domain.Verified))
	if domain.Dkim != nil {
		r.printf("  DKIM Record: %s\n", domain.Dkim.TextValue)
		r.printf("\n⚠️  IMPORTANT: Add the DNS records shown above to your domain's DNS settings to verify the domain.\n")
	}
	return nil
}

func (r *Runner) ListDomains() error {
	r.begin(stepListDomains)
	r.printf("Retrieving all domains...\n")

	domains, err := r.service.ListDomains(r.subAccountKey())
	if err != nil {
		return r.fail("list domains", err)
	}

	r.printf("✓ Retrieved %d domain(s)\n", len(domains))
	for _, d := range domains {
		r.printf("  - ID: %d\n", d.Id)
		r.printf("    Domain: %s\n", d.Name)
		r.printf("    Verified: %s\n", yesNo(d.Verified))
		r.printf("\n")
	}
	return nil
}
