package web

import (
	"sync"
	"time"
)

// Planning stage labels shown while the backend works. They are cosmetic;
// nothing ties them to real backend progress.
var planningStages = []string{
	"Sketching your route...",
	"Picking the best neighborhoods...",
	"Crunching the budget numbers...",
	"Finding flights and stays...",
	"Checking the forecast...",
	"Adding the finishing touches...",
}

// StageCycler rotates through the stage labels on a fixed interval. Stop is
// called unconditionally when the owning request settles, success or failure,
// so the ticker never outlives it.
type StageCycler struct {
	mu     sync.Mutex
	stages []string
	index  int
	ticker *time.Ticker
	done   chan struct{}
}

func NewStageCycler(interval time.Duration) *StageCycler {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	c := &StageCycler{
		stages: planningStages,
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go c.run()
	return c
}

func (c *StageCycler) run() {
	for {
		select {
		case <-c.ticker.C:
			c.mu.Lock()
			c.index = (c.index + 1) % len(c.stages)
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}

// Current returns the label to display right now.
func (c *StageCycler) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stages[c.index]
}

// Stop tears the cycler down. Safe to call more than once.
func (c *StageCycler) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case <-c.done:
	default:
		c.ticker.Stop()
		close(c.done)
	}
}
