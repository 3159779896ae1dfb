package core

import (
	"testing"
	"time"
)

type stubAutomaton struct {
	steps  int
	onStep func()
}

func (s *stubAutomaton) Name() string { return "stub" }
func (s *stubAutomaton) Size() Size { return Size{W: 1, H: 1} }
func (s *stubAutomaton) Cells() []uint8 { return []uint8{0} }
func (s *stubAutomaton) Toggle(int, int) {}
func (s *stubAutomaton) Reset(int64) {}
func (s *stubAutomaton) Clear() {}

func (s *stubAutomaton) Step() {
	s.steps++
	if s.onStep != nil {
		s.onStep()
	}
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestScheduler(rateHz float64) (*Scheduler, *stubAutomaton, *fakeClock, *int) {
	auto := &stubAutomaton{}
	renders := new(int)
	s := NewScheduler(auto, func() { *renders++ })
	clk := &fakeClock{t: time.Unix(1000, 0)}
	s.now = clk.now
	s.frameStart = clk.t
	s.frameEnd = clk.t
	s.SetRate(rateHz)
	return s, auto, clk, renders
}

const frame60Hz = 16700 * time.Microsecond

func TestAlternatingStepsAt30HzTarget(t *testing.T) {
	s, auto, clk, renders := newTestScheduler(30)

	for i := 1; i <= 20; i++ {
		clk.advance(frame60Hz)
		before := auto.steps
		s.OnFrame(clk.t)
		stepped := auto.steps - before
		if i%2 == 1 && stepped != 0 {
			t.Fatalf("frame %d: stepped %d times, want 0 (insufficient elapsed time)", i, stepped)
		}
		if i%2 == 0 && stepped != 1 {
			t.Fatalf("frame %d: stepped %d times, want 1", i, stepped)
		}
		if s.debt < 0 {
			t.Fatalf("frame %d: negative debt %v", i, s.debt)
		}
	}
	if *renders != 20 {
		t.Fatalf("renders = %d, want one per frame", *renders)
	}
}

func TestSkipFrameStillRenders(t *testing.T) {
	s, auto, clk, renders := newTestScheduler(0.2)

	clk.advance(frame60Hz)
	s.OnFrame(clk.t)
	if auto.steps != 0 {
		t.Fatalf("stepped %d times within one 60Hz frame at 0.2Hz target", auto.steps)
	}
	if *renders != 1 {
		t.Fatalf("renders = %d, want 1", *renders)
	}
}

func TestPauseIdempotence(t *testing.T) {
	s, auto, clk, renders := newTestScheduler(1000)
	s.SetPaused(true)

	for i := 0; i < 10; i++ {
		clk.advance(3 * time.Second)
		s.OnFrame(clk.t)
	}
	if auto.steps != 0 {
		t.Fatalf("stepped %d times while paused", auto.steps)
	}
	if *renders != 10 {
		t.Fatalf("renders = %d, want one per frame while paused", *renders)
	}
}

func TestStallResumesWithSingleStep(t *testing.T) {
	s, auto, clk, _ := newTestScheduler(1)

	clk.advance(5 * time.Second)
	s.OnFrame(clk.t)
	if auto.steps != 1 {
		t.Fatalf("stepped %d times after a 5s stall at 1Hz, want 1", auto.steps)
	}
	if s.debt != 0 {
		t.Fatalf("debt = %v after stall catch-up, want 0", s.debt)
	}
}

func TestBudgetBreaksCatchUp(t *testing.T) {
	s, auto, clk, _ := newTestScheduler(1000)
	auto.onStep = func() { clk.advance(5 * time.Millisecond) }

	clk.advance(frame60Hz)
	// Pretend the previous frame's work ended 2ms ago: little idle headroom,
	// so the budget is 8ms and the second 5ms step exhausts it.
	s.frameEnd = clk.t.Add(-2 * time.Millisecond)
	s.OnFrame(clk.t)

	if auto.steps != 2 {
		t.Fatalf("stepped %d times, want 2 (budget break)", auto.steps)
	}
	if s.debt != s.interval {
		t.Fatalf("residual debt = %v, want clamped to one interval %v", s.debt, s.interval)
	}
}

func TestStepStatsRecorded(t *testing.T) {
	s, auto, clk, _ := newTestScheduler(1000)
	auto.onStep = func() { clk.advance(5 * time.Millisecond) }

	clk.advance(frame60Hz)
	s.OnFrame(clk.t)

	// First step has no predecessor; each later one records a 5ms interval.
	if s.steps.Len() != auto.steps-1 {
		t.Fatalf("step samples = %d, want %d", s.steps.Len(), auto.steps-1)
	}
	if got := s.StepStats().Latest; got != 200 {
		t.Fatalf("latest step rate = %v, want 200", got)
	}
}

func TestTieCountsAsSufficient(t *testing.T) {
	s, auto, clk, _ := newTestScheduler(10)

	clk.advance(100 * time.Millisecond) // exactly one interval
	s.OnFrame(clk.t)
	if auto.steps != 1 {
		t.Fatalf("stepped %d times on an exact-interval frame, want 1", auto.steps)
	}
}

func TestRateChangeReinterpretsDebt(t *testing.T) {
	s, auto, clk, _ := newTestScheduler(30)
	s.debt = 50 * time.Millisecond

	s.SetRate(40) // 25ms interval; existing debt is now two intervals
	clk.advance(time.Millisecond)
	s.OnFrame(clk.t)
	if auto.steps != 2 {
		t.Fatalf("stepped %d times, want 2 (50ms debt against 25ms interval)", auto.steps)
	}
}

func TestDebtStaysBounded(t *testing.T) {
	s, auto, clk, _ := newTestScheduler(60)

	gaps := []time.Duration{
		0, 5 * time.Millisecond, frame60Hz, 100 * time.Millisecond,
		3 * time.Second, frame60Hz, frame60Hz, time.Minute, frame60Hz,
	}
	for i, gap := range gaps {
		clk.advance(gap)
		s.OnFrame(clk.t)
		if s.debt < 0 {
			t.Fatalf("after frame %d: negative debt %v", i, s.debt)
		}
		if s.debt > s.debtCap() {
			t.Fatalf("after frame %d: debt %v exceeds cap %v", i, s.debt, s.debtCap())
		}
	}
	if auto.steps == 0 {
		t.Fatal("expected at least one step across the frame sequence")
	}
}

func TestStopHaltsScheduling(t *testing.T) {
	s, auto, clk, renders := newTestScheduler(60)
	s.Stop()

	clk.advance(time.Second)
	s.OnFrame(clk.t)
	if auto.steps != 0 || *renders != 0 {
		t.Fatalf("steps = %d, renders = %d after Stop, want 0/0", auto.steps, *renders)
	}
	if !s.Stopped() {
		t.Fatal("Stopped() = false after Stop")
	}
}

func TestImmediateRedrawIgnoresPause(t *testing.T) {
	s, _, _, renders := newTestScheduler(60)
	s.SetPaused(true)
	s.RequestImmediateRedraw()
	if *renders != 1 {
		t.Fatalf("renders = %d after RequestImmediateRedraw, want 1", *renders)
	}
}

func TestSetRateClamps(t *testing.T) {
	s, _, _, _ := newTestScheduler(60)
	s.SetRate(0)
	if s.Rate() != MinRate {
		t.Fatalf("rate = %v, want clamped to %v", s.Rate(), MinRate)
	}
	s.SetRate(5000)
	if s.Rate() != MaxRate {
		t.Fatalf("rate = %v, want clamped to %v", s.Rate(), MaxRate)
	}
}

func TestFrameStatsRecordProcessedFramesOnly(t *testing.T) {
	s, _, clk, _ := newTestScheduler(30)

	for i := 0; i < 10; i++ {
		clk.advance(frame60Hz)
		s.OnFrame(clk.t)
	}
	// Every other frame skips; only 5 carried elapsed time into the debt.
	if s.frames.Len() != 5 {
		t.Fatalf("frame samples = %d, want 5", s.frames.Len())
	}
	got := s.FrameStats().Latest
	want := 1000.0 / (2 * 16.7)
	if diff := got - want; diff > 0.01 || diff < -0.01 {
		t.Fatalf("latest frame rate = %v, want ~%v", got, want)
	}
}
