package core

import (
	"math"
	"testing"
)

func TestWindowEmpty(t *testing.T) {
	w := NewWindow()
	if w.Len() != 0 {
		t.Fatalf("empty window Len = %d", w.Len())
	}
	if s := w.Summarize(); s != (Summary{}) {
		t.Fatalf("empty window summary = %+v, want zeros", s)
	}
}

func TestWindowSingleSample(t *testing.T) {
	w := NewWindow()
	w.Record(42)
	s := w.Summarize()
	if s.Latest != 42 || s.Mean != 42 || s.Min != 42 || s.Max != 42 {
		t.Fatalf("single-sample summary = %+v, want all 42", s)
	}
}

func TestWindowSummary(t *testing.T) {
	w := NewWindow()
	w.Record(10)
	w.Record(20)
	w.Record(30)
	s := w.Summarize()
	if s.Latest != 30 {
		t.Fatalf("latest = %v, want 30", s.Latest)
	}
	if s.Mean != 20 {
		t.Fatalf("mean = %v, want 20", s.Mean)
	}
	if s.Min != 10 || s.Max != 30 {
		t.Fatalf("min/max = %v/%v, want 10/30", s.Min, s.Max)
	}
}

func TestWindowBound(t *testing.T) {
	w := NewWindow()
	for i := 0; i < 150; i++ {
		w.Record(float64(i))
	}
	if w.Len() != WindowSize {
		t.Fatalf("Len = %d, want %d", w.Len(), WindowSize)
	}
	samples := w.Samples()
	if len(samples) != WindowSize {
		t.Fatalf("len(Samples) = %d, want %d", len(samples), WindowSize)
	}
	for i, v := range samples {
		want := float64(149 - i)
		if v != want {
			t.Fatalf("samples[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestWindowRateSummary(t *testing.T) {
	w := NewWindow()
	w.Record(10) // 100 events/s
	w.Record(20) // 50 events/s
	s := w.SummarizeRates()
	if s.Latest != 50 {
		t.Fatalf("latest rate = %v, want 50", s.Latest)
	}
	if math.Abs(s.Mean-75) > 1e-9 {
		t.Fatalf("mean rate = %v, want 75", s.Mean)
	}
	if s.Min != 50 || s.Max != 100 {
		t.Fatalf("min/max rate = %v/%v, want 50/100", s.Min, s.Max)
	}
}
