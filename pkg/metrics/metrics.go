// Package metrics collects per-operation counters for calls made
// against the remote API. The collector is in-memory and exposed
// through snapshots; all methods are nil-safe so instrumentation can
// be left unwired.
package metrics

import (
	"sync"
	"time"
)

// OpStats are the accumulated counters for one operation.
type OpStats struct {
	Calls           int64         `json:"calls"`
	Faults          int64         `json:"faults"`
	StatusErrors    int64         `json:"statusErrors"`
	HTTPErrors      int64         `json:"httpErrors"`
	TransportErrors int64         `json:"transportErrors"`
	TotalDuration   time.Duration `json:"totalDuration"`
}

// Collector accumulates operation counters. Safe for concurrent use.
type Collector struct {
	mu  sync.Mutex
	ops map[string]*OpStats
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{ops: make(map[string]*OpStats)}
}

func (c *Collector) stats(operation string) *OpStats {
	s, ok := c.ops[operation]
	if !ok {
		s = &OpStats{}
		c.ops[operation] = s
	}
	return s
}

// ObserveCall records one completed call and its duration.
func (c *Collector) ObserveCall(operation string, d time.Duration) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats(operation)
	s.Calls++
	s.TotalDuration += d
}

// ObserveFault records a SOAP fault outcome.
func (c *Collector) ObserveFault(operation string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats(operation).Faults++
}

// ObserveStatusError records an application status error outcome.
func (c *Collector) ObserveStatusError(operation string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats(operation).StatusErrors++
}

// ObserveHTTPError records a non-2xx reply that carried no fault.
func (c *Collector) ObserveHTTPError(operation string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats(operation).HTTPErrors++
}

// ObserveTransportError records a network-level failure.
func (c *Collector) ObserveTransportError(operation string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats(operation).TransportErrors++
}

// Snapshot returns a copy of all counters keyed by operation.
func (c *Collector) Snapshot() map[string]OpStats {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]OpStats, len(c.ops))
	for op, s := range c.ops {
		out[op] = *s
	}
	return out
}
