package derive

import "sync/atomic"

// Stats is a snapshot of the counters of a run.
type Stats struct {
	// Expanded is the number of derivation strings every rule has been applied to.
	Expanded int64
	// Words is the number of callback invocations.
	Words int64
	// Discarded counts rewritten strings dropped for length.
	Discarded int64
	// Duplicates counts continue strings dropped because they were already scheduled.
	Duplicates int64
	// InFlight is the number of strings scheduled but not yet expanded.
	InFlight int64
}

// counters are owned by one explorer and reset at the start of every run.
type counters struct {
	expanded   atomic.Int64
	words      atomic.Int64
	discarded  atomic.Int64
	duplicates atomic.Int64
	inFlight   atomic.Int64
}

func (c *counters) reset() {
	c.expanded.Store(0)
	c.words.Store(0)
	c.discarded.Store(0)
	c.duplicates.Store(0)
	c.inFlight.Store(0)
}

func (c *counters) snapshot() Stats {
	return Stats{
		Expanded:   c.expanded.Load(),
		Words:      c.words.Load(),
		Discarded:  c.discarded.Load(),
		Duplicates: c.duplicates.Load(),
		InFlight:   c.inFlight.Load(),
	}
}
