package types

type StatCounts struct {
	Processed    int64 `json:"processed"`
	Delivered    int64 `json:"delivered"`
	Dropped      int64 `json:"dropped"`
	HardBounced  int64 `json:"hardBounced"`
	SoftBounced  int64 `json:"softBounced"`
	Unsubscribed int64 `json:"unsubscribed"`
	Spam         int64 `json:"spam"`
}

func (c *StatCounts) Add(other StatCounts) {
	c.Processed += other.Processed
	c.Delivered += other.Delivered
	c.Dropped += other.Dropped
	c.HardBounced += other.HardBounced
	c.SoftBounced += other.SoftBounced
	c.Unsubscribed += other.Unsubscribed
	c.Spam += other.Spam
}

// Stat is one day of sub-account statistics.
type Stat struct {
	Date string      `json:"date"`
	Stat *StatCounts `json:"stat,omitempty"`
}

// AggregateStat is a single pre-summed record over a date range.
type AggregateStat struct {
	StatCounts
}

type AccountStatCounts struct {
	StatCounts
	Opened  int64 `json:"opened"`
	Clicked int64 `json:"clicked"`
}

// AccountStats is one day of statistics across all sub-accounts.
type AccountStats struct {
	Date string             `json:"date"`
	Stat *AccountStatCounts `json:"stat,omitempty"`
}
