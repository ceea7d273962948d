package prefilter

// Tracker wraps a Prefilter for the duration of one multi-match search and
// retires it when too few of its candidates turn into matches. A retired
// tracker returns -1 from Find and the caller falls back to trying every
// position.
//
// A Tracker holds per-search counters and must not be shared between
// goroutines.
type Tracker struct {
	inner Prefilter

	candidates     uint64
	confirms       uint64
	lastCheckpoint uint64

	cfg    TrackerConfig
	active bool
}

// TrackerConfig controls when a Tracker retires its prefilter.
type TrackerConfig struct {
	// CheckInterval is how many candidates pass between checks.
	// Default: 64
	CheckInterval uint64

	// MinEfficiency is the lowest acceptable confirms/candidates ratio.
	// Default: 0.1
	MinEfficiency float64

	// WarmupPeriod is the number of candidates seen before the first check.
	// Default: 128
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.1,
		WarmupPeriod:  128,
	}
}

// NewTracker wraps inner with the default configuration.
// It returns nil if inner is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig wraps inner with cfg. It returns nil if inner is nil.
func NewTrackerWithConfig(inner Prefilter, cfg TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	return &Tracker{inner: inner, cfg: cfg, active: true}
}

// Find returns the next candidate at or after start, or -1 when there is
// none or the prefilter has been retired.
func (t *Tracker) Find(haystack []byte, start int) int {
	if !t.active {
		return -1
	}
	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.candidates++
		t.check()
	}
	return pos
}

// ConfirmMatch records that the last candidate was a real match.
func (t *Tracker) ConfirmMatch() {
	t.confirms++
}

// IsActive reports whether the prefilter is still in use.
func (t *Tracker) IsActive() bool {
	return t.active
}

// Stats returns the counters and the current confirms/candidates ratio.
func (t *Tracker) Stats() (candidates, confirms uint64, efficiency float64, active bool) {
	if t.candidates > 0 {
		efficiency = float64(t.confirms) / float64(t.candidates)
	}
	return t.candidates, t.confirms, efficiency, t.active
}

// Inner returns the wrapped prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

func (t *Tracker) check() {
	if t.candidates < t.cfg.WarmupPeriod {
		return
	}
	if t.candidates-t.lastCheckpoint < t.cfg.CheckInterval {
		return
	}
	t.lastCheckpoint = t.candidates
	if float64(t.confirms)/float64(t.candidates) < t.cfg.MinEfficiency {
		t.active = false
	}
}
