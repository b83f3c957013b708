package progress

import (
	"sync"
	"time"
)

// Delta represents an incremental counter change recorded after a command.
type Delta struct {
	Total     int
	Succeeded int
	Failed    int
	Denied    int
}

// Progress keeps aggregated command counters for one lab session. It is
// safe for concurrent use.
type Progress struct {
	SessionID string
	StartedAt time.Time

	// Counters – modified via Update().
	TotalCommands     int
	SucceededCommands int
	FailedCommands    int
	DeniedCommands    int

	sync.Mutex
	onChange func(Progress)
}

// New creates a tracker for sessionID.
func New(sessionID string, startedAt time.Time) *Progress {
	return &Progress{SessionID: sessionID, StartedAt: startedAt}
}

// Update applies the supplied delta. If an onChange callback has been
// registered it is invoked with a copy of the updated tracker outside the
// critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()

	p.TotalCommands += d.Total
	p.SucceededCommands += d.Succeeded
	p.FailedCommands += d.Failed
	p.DeniedCommands += d.Denied

	snapshot := p.copy()
	cb := p.onChange

	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

// copy must be called with the lock held.
func (p *Progress) copy() Progress {
	return Progress{
		SessionID:         p.SessionID,
		StartedAt:         p.StartedAt,
		TotalCommands:     p.TotalCommands,
		SucceededCommands: p.SucceededCommands,
		FailedCommands:    p.FailedCommands,
		DeniedCommands:    p.DeniedCommands,
	}
}

// OnChange registers a callback that is invoked after every Update. Passing
// nil disables the callback.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}
