package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/tilt-snake/core"
)

func TestPausableClockAdvances(t *testing.T) {
	clock := NewPausableClock()

	t1 := clock.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := clock.Now()

	if !t2.After(t1) {
		t.Errorf("Expected running clock to advance, got t1=%v, t2=%v", t1, t2)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	clock := NewPausableClock()

	clock.Pause()
	if !clock.IsPaused() {
		t.Fatal("Expected clock to report paused")
	}

	t1 := clock.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := clock.Now()

	if !t1.Equal(t2) {
		t.Errorf("Expected frozen time while paused, got t1=%v, t2=%v", t1, t2)
	}
}

func TestPausableClockResumes(t *testing.T) {
	clock := NewPausableClock()

	clock.Pause()
	frozen := clock.Now()
	time.Sleep(20 * time.Millisecond)
	clock.Resume()

	if clock.IsPaused() {
		t.Fatal("Expected clock to report running after resume")
	}

	time.Sleep(10 * time.Millisecond)
	now := clock.Now()
	if !now.After(frozen) {
		t.Errorf("Expected time to advance after resume, frozen=%v now=%v", frozen, now)
	}

	// Game time excludes the paused stretch
	if elapsed := now.Sub(frozen); elapsed > 15*time.Millisecond {
		t.Errorf("Expected the paused stretch excluded from game time, elapsed %v", elapsed)
	}

	if total := clock.TotalPauseDuration(); total < 20*time.Millisecond {
		t.Errorf("Expected at least 20ms of tracked pause time, got %v", total)
	}
}

func TestPausableClockDoublePauseAndResume(t *testing.T) {
	clock := NewPausableClock()

	clock.Pause()
	clock.Pause()
	if !clock.IsPaused() {
		t.Error("Expected paused after double pause")
	}

	clock.Resume()
	clock.Resume()
	if clock.IsPaused() {
		t.Error("Expected running after double resume")
	}
}

// TestPausedClockHoldsSimulation drives an engine from a paused clock and
// checks that the cadence sees no elapsed time
func TestPausedClockHoldsSimulation(t *testing.T) {
	render := newRenderRecorder()
	sound := &soundRecorder{}
	eng := New(render, sound, rand.New(rand.NewSource(1)), DefaultConfig())

	clock := NewPausableClock()
	eng.Reset(clock.Now())
	eng.apple = core.Point{X: 7, Y: 7}
	clock.Pause()

	head := eng.body[0]
	for i := 0; i < 5; i++ {
		time.Sleep(2 * time.Millisecond)
		eng.Update(clock.Now())
	}

	if eng.body[0] != head {
		t.Errorf("Expected the snake held at %+v while paused, head moved to %+v", head, eng.body[0])
	}
	if render.presents != 5 {
		t.Errorf("Expected rendering to continue while paused, got %d presents", render.presents)
	}
}
