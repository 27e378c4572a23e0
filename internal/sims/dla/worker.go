package dla

import (
	"sync"
	"time"
)

const (
	// workerBatch steps are taken per lock acquisition so the worker does
	// not fight consumers for the mutex on every single step.
	workerBatch = 10
	// workerIdleSleep is how long the worker backs off while paused or
	// complete. Resuming can therefore lag by up to this interval.
	workerIdleSleep = 100 * time.Millisecond
)

// Shared owns a Sim behind the single lock that the worker, the renderer,
// and the UI handlers all go through.
type Shared struct {
	mu  sync.Mutex
	sim *Sim
}

// NewShared wraps sim for concurrent use.
func NewShared(sim *Sim) *Shared {
	return &Shared{sim: sim}
}

// With runs fn with the lock held. fn must not block or perform I/O.
func (s *Shared) With(fn func(*Sim)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.sim)
}

// StartWorker launches the background goroutine that advances the
// simulation. It runs for the life of the process; pausing and completion
// are expressed through the sim flags, never by stopping the goroutine.
func (s *Shared) StartWorker() {
	go func() {
		for {
			s.mu.Lock()
			if !s.sim.paused && !s.sim.complete {
				for i := 0; i < workerBatch; i++ {
					s.sim.Step()
				}
				s.mu.Unlock()
			} else {
				s.mu.Unlock()
				time.Sleep(workerIdleSleep)
			}
		}
	}()
}
