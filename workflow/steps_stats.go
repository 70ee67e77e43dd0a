package workflow

import (
	"github.com/sendpost/sendpost-go/types"
)

func (r *Runner) requireSubAccount(meta stepMeta, action string) (int64, error) {
	if r.session.SubAccountId == nil {
		return 0, r.fail(action, &PreconditionError{
			Step:    meta.name,
			Missing: "sub-account ID",
			Hint:    "Please list or create a sub-account first.",
		})
	}
	return *r.session.SubAccountId, nil
}

// GetSubAccountStats prints per-day stats of the last seven days
// and the processed/delivered totals over them.
func (r *Runner) GetSubAccountStats() error {
	r.begin(stepSubAccountStats)

	subAccountId, err := r.requireSubAccount(stepSubAccountStats, "get sub-account stats")
	if err != nil {
		return err
	}

	window := r.statsWindow()
	r.printf("Retrieving stats for sub-account ID: %d\n", subAccountId)
	r.printf("  From: %s\n", window.FromString())
	r.printf("  To: %s\n", window.ToString())

	stats, err := r.service.SubAccountStats(subAccountId, window)
	if err != nil {
		return r.fail("get sub-account stats", err)
	}

	r.printf("✓ Stats retrieved successfully!\n")
	r.printf("  Retrieved %d stat record(s)\n", len(stats))

	var total types.StatCounts
	for _, s := range stats {
		r.printf("\n  Date: %s\n", s.Date)
		if s.Stat == nil {
			continue
		}
		r.printCounts("    ", *s.Stat)
		total.Add(*s.Stat)
	}

	r.printf("\n  Summary (Last %d days):\n", statsWindowDays)
	r.printf("    Total Processed: %d\n", total.Processed)
	r.printf("    Total Delivered: %d\n", total.Delivered)
	return nil
}

// GetAggregateStats prints one pre-summed record for the last seven days.
func (r *Runner) GetAggregateStats() error {
	r.begin(stepAggregateStats)

	subAccountId, err := r.requireSubAccount(stepAggregateStats, "get aggregate stats")
	if err != nil {
		return err
	}

	window := r.statsWindow()
	r.printf("Retrieving aggregate stats for sub-account ID: %d\n", subAccountId)
	r.printf("  From: %s\n", window.FromString())
	r.printf("  To: %s\n", window.ToString())

	stat, err := r.service.SubAccountAggregateStats(subAccountId, window)
	if err != nil {
		return r.fail("get aggregate stats", err)
	}

	r.printf("✓ Aggregate stats retrieved successfully!\n")
	r.printCounts("  ", stat.StatCounts)
	return nil
}

// GetAccountStats prints per-day stats summed over all sub-accounts.
func (r *Runner) GetAccountStats() error {
	r.begin(stepAccountStats)

	window := r.statsWindow()
	r.printf("Retrieving account-level stats...\n")
	r.printf("  From: %s\n", window.FromString())
	r.printf("  To: %s\n", window.ToString())

	stats, err := r.service.AccountStats(window)
	if err != nil {
		return r.fail("get account stats", err)
	}

	r.printf("✓ Account stats retrieved successfully!\n")
	r.printf("  Retrieved %d stat record(s)\n", len(stats))
	for _, s := range stats {
		r.printf("\n  Date: %s\n", s.Date)
		if s.Stat == nil {
			continue
		}
		r.printCounts("    ", s.Stat.StatCounts)
		r.printf("    Opens: %d\n", s.Stat.Opened)
		r.printf("    Clicks: %d\n", s.Stat.Clicked)
	}
	return nil
}

func (r *Runner) printCounts(indent string, c types.StatCounts) {
	r.printf("%sProcessed: %d\n", indent, c.Processed)
	r.printf("%sDelivered: %d\n", indent, c.Delivered)
	r.printf("%sDropped: %d\n", indent, c.Dropped)
	r.printf("%sHard Bounced: %d\n", indent, c.HardBounced)
	r.printf("%sSoft Bounced: %d\n", indent, c.SoftBounced)
	r.printf("%sUnsubscribed: %d\n", indent, c.Unsubscribed)
	r.printf("%sSpam: %d\n", indent, c.Spam)
}
