package rehastim

import (
	"testing"
	"time"

	"github.com/lokomat-fes/lokictl/pkg/types"
)

// testClock is a manually advanced clock for recorder tests.
type testClock struct {
	t time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *testClock) now() time.Time {
	return c.t
}

func (c *testClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestDataFirstEventRequiresChannels(t *testing.T) {
	d := NewData()

	if err := d.Add(time.Second, nil); err == nil {
		t.Error("expected error when first event has no channels")
	}
	if d.HasData() {
		t.Error("failed add should not record anything")
	}
}

func TestDataNilChannelsCopyPrevious(t *testing.T) {
	d := NewData()

	channels := []types.Channel{{Index: 1, Amplitude: 20}, {Index: 2, Amplitude: 15}}
	if err := d.Add(time.Second, channels); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if err := d.Add(2*time.Second, nil); err != nil {
		t.Fatalf("Add() with nil channels error: %v", err)
	}

	events := d.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if len(events[1].Channels) != 2 || events[1].Channels[1].Amplitude != 15 {
		t.Errorf("second event should copy previous channels, got %+v", events[1].Channels)
	}

	// The copy must be independent of the caller's slice.
	channels[0].Amplitude = 99
	if d.Events()[0].Channels[0].Amplitude != 20 {
		t.Error("recorded channels should not alias the caller's slice")
	}
}

func TestDataCloseOpenEvent(t *testing.T) {
	clock := newTestClock()
	d := NewData(WithClock(clock.now))

	channels := []types.Channel{{Index: 1, Amplitude: 20}}
	if err := d.AddOpen(channels); err != nil {
		t.Fatalf("AddOpen() error: %v", err)
	}

	clock.advance(1500 * time.Millisecond)
	d.CloseOpenEvent()

	events := d.Events()
	if events[0].Open {
		t.Fatal("event should be closed")
	}
	if events[0].Duration != 1500*time.Millisecond {
		t.Errorf("expected duration 1.5s, got %v", events[0].Duration)
	}

	// Closing again is a no-op.
	clock.advance(time.Second)
	d.CloseOpenEvent()
	if d.Events()[0].Duration != 1500*time.Millisecond {
		t.Error("closing an already closed event should not change it")
	}
}

func TestDataCloseWithoutEvents(t *testing.T) {
	d := NewData()
	// Must not panic.
	d.CloseOpenEvent()
}

func TestDataVectorsExcludeOpenEvents(t *testing.T) {
	clock := newTestClock()
	d := NewData(WithClock(clock.now))

	channels := []types.Channel{{Index: 1, Amplitude: 20}, {Index: 2, Amplitude: 10}}
	clock.advance(time.Second)
	if err := d.Add(500*time.Millisecond, channels); err != nil {
		t.Fatal(err)
	}
	clock.advance(time.Second)
	if err := d.AddOpen(nil); err != nil {
		t.Fatal(err)
	}

	if got := d.Times(); len(got) != 1 || got[0] != 1 {
		t.Errorf("expected times [1], got %v", got)
	}
	if got := d.Durations(); len(got) != 1 || got[0] != 500*time.Millisecond {
		t.Errorf("expected durations [500ms], got %v", got)
	}

	amps := d.Amplitudes()
	if len(amps) != 2 {
		t.Fatalf("expected one row per channel, got %d rows", len(amps))
	}
	if len(amps[0]) != 1 || amps[0][0] != 20 || amps[1][0] != 10 {
		t.Errorf("unexpected amplitude matrix %v", amps)
	}
}

func TestDataAmplitudesGrowToWidestEvent(t *testing.T) {
	d := NewData()

	if err := d.Add(time.Second, []types.Channel{{Index: 1, Amplitude: 20}}); err != nil {
		t.Fatal(err)
	}
	if err := d.Add(time.Second, []types.Channel{
		{Index: 1, Amplitude: 25},
		{Index: 2, Amplitude: 15},
		{Index: 3, Amplitude: 10},
	}); err != nil {
		t.Fatal(err)
	}

	amps := d.Amplitudes()
	if len(amps) != 3 {
		t.Fatalf("expected one row per channel of the widest event, got %d rows", len(amps))
	}
	for c, row := range amps {
		if len(row) != 2 {
			t.Fatalf("expected one column per event in row %d, got %d", c, len(row))
		}
	}
	if amps[0][0] != 20 || amps[0][1] != 25 {
		t.Errorf("unexpected first row %v", amps[0])
	}
	// Channels absent from the narrow event stay at zero instead of being dropped.
	if amps[1][0] != 0 || amps[2][0] != 0 {
		t.Errorf("missing channels should read as zero, got %v / %v", amps[1], amps[2])
	}
	if amps[1][1] != 15 || amps[2][1] != 10 {
		t.Errorf("amplitudes of the wider event should all be kept, got %v / %v", amps[1], amps[2])
	}
}

func TestDataCopyIsDeep(t *testing.T) {
	d := NewData()
	if err := d.Add(time.Second, []types.Channel{{Index: 1, Amplitude: 20}}); err != nil {
		t.Fatal(err)
	}

	cp := d.Copy()
	if cp.Session() != d.Session() {
		t.Error("copy should keep the session ID")
	}
	if !cp.T0().Equal(d.T0()) {
		t.Error("copy should keep t0")
	}

	if err := cp.Add(time.Second, nil); err != nil {
		t.Fatal(err)
	}
	if d.Len() != 1 || cp.Len() != 2 {
		t.Errorf("copy should not share events, got %d and %d", d.Len(), cp.Len())
	}
}

func TestDataSetT0(t *testing.T) {
	clock := newTestClock()
	d := NewData(WithClock(clock.now))

	clock.advance(time.Minute)
	d.SetT0(time.Time{})
	if !d.T0().Equal(clock.now()) {
		t.Error("zero t0 should reset to the current time")
	}

	explicit := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	d.SetT0(explicit)
	if !d.T0().Equal(explicit) {
		t.Error("explicit t0 should be kept")
	}
}
