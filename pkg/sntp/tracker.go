package sntp

import (
	"sync"
	"time"
)

// Sample is one recorded exchange outcome, kept for status reporting.
type Sample struct {
	Time    time.Time
	Offset  float64 // ms
	Delay   float64 // ms
	Stratum Stratum
	Refid   string
}

// Tracker keeps a bounded in-memory window of recent samples. Nothing is
// persisted; the window starts empty on every run.
type Tracker struct {
	lock    sync.RWMutex
	samples []Sample
	limit   int
}

func NewTracker(limit int) *Tracker {
	return &Tracker{limit: limit}
}

func (t *Tracker) Record(result *QueryResult) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.samples = append(t.samples, Sample{
		Time:    result.Dst,
		Offset:  result.Offset,
		Delay:   result.Delay,
		Stratum: result.Header.Stratum,
		Refid:   result.Header.Refid,
	})
	if len(t.samples) > t.limit {
		t.samples = t.samples[len(t.samples)-t.limit:]
	}
}

// Samples returns the recorded window, newest last.
func (t *Tracker) Samples() []Sample {
	t.lock.RLock()
	defer t.lock.RUnlock()

	samples := make([]Sample, len(t.samples))
	copy(samples, t.samples)
	return samples
}
