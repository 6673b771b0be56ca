// Package stats counts processed geometries per job step.
package stats

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

// Counter counts elements and the rate between the first Add and Stop.
type Counter struct {
	name    string
	counter int64
	mu      sync.Mutex
	start   time.Time
	stop    time.Time
}

func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

func (c *Counter) Add(n int) {
	atomic.AddInt64(&c.counter, int64(n))
	c.mu.Lock()
	if c.start.IsZero() {
		c.start = time.Now()
	}
	c.mu.Unlock()
}

func (c *Counter) Value() int64 {
	return atomic.LoadInt64(&c.counter)
}

// Stop fixes the end time for Rps. Further calls are ignored.
func (c *Counter) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop.IsZero() {
		c.stop = time.Now()
	}
}

// Rps returns elements per second, or 0 if no time elapsed.
func (c *Counter) Rps() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.start.IsZero() {
		return 0
	}
	stop := c.stop
	if stop.IsZero() {
		stop = time.Now()
	}
	d := stop.Sub(c.start).Seconds()
	if d <= 0 {
		return 0
	}
	return float64(c.Value()) / d
}

func (c *Counter) String() string {
	return fmt.Sprintf("%s: %s geometries (%s/s)",
		c.name, humanize.Comma(c.Value()), humanize.Comma(int64(c.Rps())))
}
