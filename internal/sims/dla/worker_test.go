package dla

import (
	"testing"
	"time"

	"dla-ca/internal/core"
)

func TestWorkerAdvancesWhenRunning(t *testing.T) {
	shared := NewShared(newTestSim(core.SeedCenter, 64, 64, 500))
	shared.StartWorker()
	shared.With(func(s *Sim) { s.TogglePause(UnpauseButtonText) })

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		var updates uint64
		shared.With(func(s *Sim) { updates = s.Updates() })
		if updates > 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("worker made no progress on a running simulation")
}

func TestWorkerIdlesWhilePaused(t *testing.T) {
	shared := NewShared(newTestSim(core.SeedCenter, 64, 64, 500))
	shared.StartWorker()

	time.Sleep(50 * time.Millisecond)

	shared.With(func(s *Sim) {
		if s.Updates() != 0 {
			t.Errorf("paused simulation advanced %d updates", s.Updates())
		}
	})
}

func TestWorkerStopsAtCompletion(t *testing.T) {
	shared := NewShared(newTestSim(core.SeedCenter, 21, 21, 25))
	shared.StartWorker()
	shared.With(func(s *Sim) { s.TogglePause(UnpauseButtonText) })

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		done := false
		shared.With(func(s *Sim) { done = s.Complete() })
		if done {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	var stuck, target int
	shared.With(func(s *Sim) { stuck, target = s.Stuck(), s.Target() })
	if stuck < target {
		t.Fatalf("worker finished with %d stuck, target %d", stuck, target)
	}
}
