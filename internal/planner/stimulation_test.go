package planner

import (
	"math"
	"testing"
	"time"

	"github.com/lokomat-fes/lokictl/pkg/types"
)

// scriptedGait returns fixed fractions regardless of time.
type scriptedGait struct {
	left  float64
	right float64
}

func (g scriptedGait) StrideFraction(_ time.Duration, side types.Side) float64 {
	if side == types.Right {
		return g.right
	}
	return g.left
}

func kinds(cmds []Command) []CommandKind {
	out := make([]CommandKind, len(cmds))
	for i, c := range cmds {
		out[i] = c.Kind
	}
	return out
}

func TestStrideBasedTransitions(t *testing.T) {
	// One channel, on while the left stride fraction is in [0.5, 1).
	s := NewStrideBased(func(left, _ float64) []bool {
		return []bool{left >= 0.5}
	})

	steps := []struct {
		left     float64
		expected CommandKind
	}{
		{0.1, Hold},  // idle, stays idle
		{0.3, Hold},  // still idle
		{0.6, Start}, // crosses into the window
		{0.7, Hold},  // already stimulating
		{0.9, Hold},  // still stimulating
		{0.2, Stop},  // leaves the window
		{0.3, Hold},  // idle again
		{0.8, Start}, // next stride
	}

	for i, step := range steps {
		cmds := s.Tick(time.Duration(i)*time.Millisecond, scriptedGait{left: step.left})
		if len(cmds) != 1 {
			t.Fatalf("step %d: expected 1 command, got %d", i, len(cmds))
		}
		if cmds[0].Kind != step.expected {
			t.Errorf("step %d (left=%.1f): expected %s, got %s", i, step.left, step.expected, cmds[0].Kind)
		}
	}
}

func TestStrideBasedStartsAreIndefinite(t *testing.T) {
	s := NewStrideBased(func(_, _ float64) []bool { return []bool{true} })

	cmds := s.Tick(0, scriptedGait{})
	if cmds[0].Kind != Start {
		t.Fatalf("expected Start, got %s", cmds[0].Kind)
	}
	if cmds[0].Duration != 0 {
		t.Errorf("stride-based starts run until Stop, got duration %v", cmds[0].Duration)
	}
}

func TestStrideBasedPerChannelState(t *testing.T) {
	// Two channels driven by opposite sides.
	s := NewStrideBased(func(left, right float64) []bool {
		return []bool{left >= 0.5, right >= 0.5}
	})

	cmds := s.Tick(0, scriptedGait{left: 0.6, right: 0.1})
	if got := kinds(cmds); got[0] != Start || got[1] != Hold {
		t.Errorf("expected [start hold], got %v", got)
	}

	cmds = s.Tick(time.Millisecond, scriptedGait{left: 0.1, right: 0.6})
	if got := kinds(cmds); got[0] != Stop || got[1] != Start {
		t.Errorf("expected [stop start], got %v", got)
	}
}

func TestWindowContains(t *testing.T) {
	tests := []struct {
		name     string
		window   Window
		frac     float64
		expected bool
	}{
		{"inside plain window", Window{From: 0.2, To: 0.6}, 0.4, true},
		{"below plain window", Window{From: 0.2, To: 0.6}, 0.1, false},
		{"at upper bound is out", Window{From: 0.2, To: 0.6}, 0.6, false},
		{"at lower bound is in", Window{From: 0.2, To: 0.6}, 0.2, true},
		{"wrapping window late", Window{From: 0.8, To: 0.1}, 0.9, true},
		{"wrapping window early", Window{From: 0.8, To: 0.1}, 0.05, true},
		{"wrapping window middle", Window{From: 0.8, To: 0.1}, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.Contains(tt.frac); got != tt.expected {
				t.Errorf("Contains(%.2f) = %v, want %v", tt.frac, got, tt.expected)
			}
		})
	}
}

func TestWindowCondition(t *testing.T) {
	cond := WindowCondition([]Window{
		{Side: types.Left, From: 0.0, To: 0.5},
		{Side: types.Right, From: 0.0, To: 0.5},
	})

	got := cond(0.25, 0.75)
	if !got[0] || got[1] {
		t.Errorf("expected [true false], got %v", got)
	}
}

func TestFixedCadence(t *testing.T) {
	g := FixedCadence{Period: time.Second}

	tests := []struct {
		t        time.Duration
		side     types.Side
		expected float64
	}{
		{0, types.Left, 0},
		{250 * time.Millisecond, types.Left, 0.25},
		{1500 * time.Millisecond, types.Left, 0.5},
		{0, types.Right, 0.5},
		{750 * time.Millisecond, types.Right, 0.25},
	}

	for _, tt := range tests {
		got := g.StrideFraction(tt.t, tt.side)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("StrideFraction(%v, %s) = %f, want %f", tt.t, tt.side, got, tt.expected)
		}
	}
}

func TestFixedCadenceZeroPeriod(t *testing.T) {
	g := FixedCadence{}
	if got := g.StrideFraction(time.Second, types.Left); got != 0 {
		t.Errorf("expected 0 for zero period, got %f", got)
	}
}
