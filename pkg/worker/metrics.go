package worker

import "sync/atomic"

// Metrics tracks pool activity with atomic counters.
type Metrics struct {
	submitted  atomic.Uint64
	completed  atomic.Uint64
	failed     atomic.Uint64
	active     atomic.Int64
	peakActive atomic.Int64
}

// Stats is a point-in-time copy of pool counters.
type Stats struct {
	Submitted  uint64
	Completed  uint64
	Failed     uint64
	PeakActive int64
}

func (m *Metrics) recordPeak(active int64) {
	for {
		peak := m.peakActive.Load()
		if active <= peak {
			return
		}
		if m.peakActive.CompareAndSwap(peak, active) {
			return
		}
	}
}

func (m *Metrics) snapshot() Stats {
	return Stats{
		Submitted:  m.submitted.Load(),
		Completed:  m.completed.Load(),
		Failed:     m.failed.Load(),
		PeakActive: m.peakActive.Load(),
	}
}
