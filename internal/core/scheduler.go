package core

import "time"

const (
	// maxFrameBudget bounds the wall-clock time one frame may spend in the
	// catch-up loop so high step rates cannot starve the renderer.
	maxFrameBudget = 100 * time.Millisecond

	// idleBudgetFactor scales recent idle headroom into the frame budget.
	idleBudgetFactor = 4

	// maxStallDebt caps the debt a single frame delta may contribute. A
	// multi-second stall (minimized window, suspended host) resumes with a
	// short burst instead of replaying the whole gap.
	maxStallDebt = 100 * time.Millisecond
)

// Scheduler drives an Automaton at a target step rate decoupled from the
// display refresh rate. Each display refresh delivers a timestamp to
// OnFrame, which converts accumulated elapsed time into zero or more steps
// under a per-frame time budget, then asks the render gate to redraw.
//
// All state is touched only inside OnFrame and the setters; the driving
// loop delivers at most one frame at a time, so no locking is needed.
type Scheduler struct {
	auto   Automaton
	render func()

	rate     float64       // target steps/second, within [MinRate, MaxRate]
	interval time.Duration // 1/rate, always > 0
	debt     time.Duration // elapsed time not yet converted into steps
	paused   bool
	stopped  bool

	frameStart time.Time // timestamp of the last processed frame
	frameEnd   time.Time // when the last frame finished its work
	lastStep   time.Time

	frames *Window // frame-to-frame intervals, milliseconds
	steps  *Window // step-to-step intervals, milliseconds

	now func() time.Time
}

// NewScheduler creates a scheduler for the automaton with the given render
// gate. The initial target rate is 1 step/second and the scheduler starts
// unpaused.
func NewScheduler(auto Automaton, render func()) *Scheduler {
	s := &Scheduler{
		auto:   auto,
		render: render,
		frames: NewWindow(),
		steps:  NewWindow(),
		now:    time.Now,
	}
	s.SetRate(pivotRate)
	t := s.now()
	s.frameStart = t
	s.frameEnd = t
	return s
}

// SetRate changes the target step rate, clamped to [MinRate, MaxRate]. The
// change takes effect on the next frame; outstanding debt is reinterpreted
// against the new interval rather than reset.
func (s *Scheduler) SetRate(rateHz float64) {
	if rateHz < MinRate {
		rateHz = MinRate
	}
	if rateHz > MaxRate {
		rateHz = MaxRate
	}
	s.rate = rateHz
	s.interval = StepInterval(rateHz)
}

// Rate returns the current target step rate in steps/second.
func (s *Scheduler) Rate() float64 { return s.rate }

// SetPaused toggles stepping. Renders continue while paused.
func (s *Scheduler) SetPaused(p bool) { s.paused = p }

// Paused reports whether stepping is suspended.
func (s *Scheduler) Paused() bool { return s.paused }

// Stop makes every subsequent OnFrame call a no-op. It never interrupts an
// in-flight frame; steps are atomic with respect to stopping.
func (s *Scheduler) Stop() { s.stopped = true }

// Stopped reports whether the scheduler has been stopped.
func (s *Scheduler) Stopped() bool { return s.stopped }

// RequestImmediateRedraw invokes the render gate synchronously. Call it
// after mutating the automaton outside the step cycle (cell toggle, clear,
// reseed) so the view reflects the change regardless of pause state.
func (s *Scheduler) RequestImmediateRedraw() {
	s.render()
}

// FrameStats summarizes observed display refresh rates in frames/second.
func (s *Scheduler) FrameStats() Summary { return s.frames.SummarizeRates() }

// StepStats summarizes observed step completion rates in steps/second.
func (s *Scheduler) StepStats() Summary { return s.steps.SummarizeRates() }

// OnFrame processes one display refresh with the given timestamp.
//
// A frame that has not yet accumulated one interval of elapsed time only
// redraws; this is what lets a 0.2 Hz target coexist with a 60 Hz display.
// Otherwise the elapsed time joins the debt and the catch-up loop converts
// whole intervals into steps until the debt is spent or the frame budget
// runs out. Leftover debt beyond one interval is discarded so the loop is
// self-correcting after arbitrary stalls.
func (s *Scheduler) OnFrame(now time.Time) {
	if s.stopped {
		return
	}
	diff := now.Sub(s.frameStart)
	if s.paused || diff < s.interval-s.debt {
		s.render()
		return
	}

	s.frameStart = now
	s.debt += diff
	if limit := s.debtCap(); s.debt > limit {
		s.debt = limit
	}
	s.frames.Record(millis(diff))

	idle := now.Sub(s.frameEnd)
	budget := idle * idleBudgetFactor
	if budget > maxFrameBudget {
		budget = maxFrameBudget
	}

	for s.debt >= s.interval {
		s.auto.Step()
		s.debt -= s.interval
		s.markStep()
		if s.now().Sub(now) > budget {
			// Steps still owed are deferred to later frames.
			break
		}
	}
	if s.debt > s.interval {
		s.debt = s.interval
	}

	s.render()
	s.frameEnd = s.now()
}

// debtCap limits how much debt a single frame may carry into the catch-up
// loop: at least one interval, at most the frame budget ceiling.
func (s *Scheduler) debtCap() time.Duration {
	if s.interval > maxStallDebt {
		return s.interval
	}
	return maxStallDebt
}

func (s *Scheduler) markStep() {
	t := s.now()
	if !s.lastStep.IsZero() {
		if d := t.Sub(s.lastStep); d > 0 {
			s.steps.Record(millis(d))
		}
	}
	s.lastStep = t
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
