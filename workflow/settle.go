package workflow

import (
	"time"
)

// Settler waits for SendPost to store freshly sent messages
// before they are looked up.
type Settler interface {
	Settle()
}

// FixedDelay is a single flat wait, not a polling loop.
type FixedDelay struct {
	Delay time.Duration
	sleep func(time.Duration)
}

var _ Settler = &FixedDelay{}

func NewFixedDelay(d time.Duration) *FixedDelay {
	return &FixedDelay{Delay: d, sleep: time.Sleep}
}

func (f *FixedDelay) Settle() {
	if f.Delay <= 0 {
		return
	}
	sleep := f.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(f.Delay)
}

// SettlerFunc adapts a plain function to Settler.
type SettlerFunc func()

func (f SettlerFunc) Settle() {
	f()
}
