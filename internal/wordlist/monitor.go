package wordlist

import (
	"context"
	"sync/atomic"
	"time"
)

// Monitor periodically samples a shared progress counter and invokes
// Render with the current/total pair, independent of how many workers
// are contributing to the counter. It is purely a polling observer: it
// never blocks generation and never affects correctness if Render is
// slow or is never wired up at all (e.g. -d/--disable-loading-bar).
type Monitor struct {
	Progress *atomic.Uint64
	Total    uint64
	Render   func(current, total uint64)
	Interval time.Duration
}

// Run polls Progress every m.Interval (default 100ms) until ctx is
// cancelled, and performs one final render with the last observed value
// on return so a UI never freezes at a stale percentage.
func (m *Monitor) Run(ctx context.Context) {
	if m.Render == nil {
		return
	}

	interval := m.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.Render(m.Progress.Load(), m.Total)
			return
		case <-ticker.C:
			m.Render(m.Progress.Load(), m.Total)
		}
	}
}
