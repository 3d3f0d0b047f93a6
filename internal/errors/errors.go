package errors

import (
	"errors"

	"github.com/conneroisu/localvec/pkg/hybridvec"
)

// collectorInlineCapacity covers the usual handful of failures without a
// heap allocation for the backing store.
const collectorInlineCapacity = 4

// Collector gathers errors from independent operations, such as one per
// input file, so processing can continue past a failure. It is safe for
// concurrent use.
type Collector struct {
	errs *hybridvec.Synced[error]
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{errs: hybridvec.NewSynced[error](collectorInlineCapacity)}
}

// Add records err. Nil errors are ignored.
func (c *Collector) Add(err error) {
	if err == nil {
		return
	}
	c.errs.Push(err)
}

// Errors returns a copy of the collected errors in the order they were added.
func (c *Collector) Errors() []error {
	return c.errs.Snapshot()
}

// Len returns the number of collected errors.
func (c *Collector) Len() int {
	return c.errs.Len()
}

// HasErrors returns true if there are any errors.
func (c *Collector) HasErrors() bool {
	return c.Len() > 0
}

// Err joins the collected errors, or returns nil when there are none.
func (c *Collector) Err() error {
	if !c.HasErrors() {
		return nil
	}
	return errors.Join(c.Errors()...)
}

// Clear drops all collected errors.
func (c *Collector) Clear() {
	c.errs.Clear()
}
