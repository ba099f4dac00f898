package graphstore

import (
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// Reloader guards repeated Load calls against a corpus source that is
// mid-write or otherwise persistently malformed. A run of failed
// reloads trips the breaker open so operators get a fast, explicit
// failure instead of a retry storm against a known-bad source.
type Reloader struct {
	paths Paths
	cb    *gobreaker.CircuitBreaker

	mu      sync.RWMutex
	current *Store
}

// ReloaderSettings configures the circuit breaker's trip behavior.
type ReloaderSettings struct {
	// MaxFailures is the number of consecutive failed reloads that
	// trips the breaker open.
	MaxFailures uint32
	// OpenTimeout is how long the breaker stays open before allowing
	// a single trial reload.
	OpenTimeout time.Duration
}

// DefaultReloaderSettings returns conservative defaults: trip after 3
// consecutive failures, stay open for 30 seconds.
func DefaultReloaderSettings() ReloaderSettings {
	return ReloaderSettings{MaxFailures: 3, OpenTimeout: 30 * time.Second}
}

// NewReloader constructs a Reloader that performs an initial Load;
// the returned error is the initial load's error, if any.
func NewReloader(paths Paths, settings ReloaderSettings) (*Reloader, error) {
	r := &Reloader{paths: paths}
	r.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "graphstore-reload",
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.MaxFailures
		},
	})

	store, err := Load(paths)
	if err != nil {
		return r, err
	}
	r.current = store
	return r, nil
}

// Current returns the most recently successfully loaded Store.
func (r *Reloader) Current() *Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// BreakerState reports the reload circuit breaker's current state
// ("closed", "open", or "half-open"), for health/diagnostics endpoints.
func (r *Reloader) BreakerState() string {
	return r.cb.State().String()
}

// Reload attempts to load the artifacts again through the circuit
// breaker. On success the new Store becomes Current; on failure (or
// while the breaker is open) the previous Store is left untouched and
// the error is returned.
func (r *Reloader) Reload() error {
	result, err := r.cb.Execute(func() (interface{}, error) {
		return Load(r.paths)
	})
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.current = result.(*Store)
	r.mu.Unlock()
	return nil
}
