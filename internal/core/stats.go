package core

// WindowSize is the number of samples a Window retains.
const WindowSize = 100

// Window is a bounded history of float samples. Recording past capacity
// silently drops the oldest entry.
type Window struct {
	buf  []float64
	head int
	n    int
}

// NewWindow returns an empty window holding up to WindowSize samples.
func NewWindow() *Window {
	return &Window{buf: make([]float64, WindowSize)}
}

// Record inserts a sample as the most recent entry.
func (w *Window) Record(v float64) {
	w.buf[w.head] = v
	w.head = (w.head + 1) % len(w.buf)
	if w.n < len(w.buf) {
		w.n++
	}
}

// Len reports the number of retained samples.
func (w *Window) Len() int { return w.n }

// Samples returns the retained samples, most recent first.
func (w *Window) Samples() []float64 {
	out := make([]float64, w.n)
	for i := 0; i < w.n; i++ {
		out[i] = w.buf[(w.head-1-i+len(w.buf))%len(w.buf)]
	}
	return out
}

// Summary holds derived values over a sample window.
type Summary struct {
	Latest float64
	Mean   float64
	Min    float64
	Max    float64
}

// Summarize computes the summary over the raw samples. An empty window
// summarizes to zeros.
func (w *Window) Summarize() Summary {
	if w.n == 0 {
		return Summary{}
	}
	latest := w.buf[(w.head-1+len(w.buf))%len(w.buf)]
	s := Summary{Latest: latest, Min: latest, Max: latest}
	sum := 0.0
	for i := 0; i < w.n; i++ {
		v := w.buf[(w.head-1-i+len(w.buf))%len(w.buf)]
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(w.n)
	return s
}

// SummarizeRates treats the samples as millisecond intervals and summarizes
// the corresponding rates in events/second (1000/v per sample).
func (w *Window) SummarizeRates() Summary {
	if w.n == 0 {
		return Summary{}
	}
	latest := 1000.0 / w.buf[(w.head-1+len(w.buf))%len(w.buf)]
	s := Summary{Latest: latest, Min: latest, Max: latest}
	sum := 0.0
	for i := 0; i < w.n; i++ {
		v := 1000.0 / w.buf[(w.head-1-i+len(w.buf))%len(w.buf)]
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(w.n)
	return s
}
