package rehastim

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lokomat-fes/lokictl/internal/logging"
	"github.com/lokomat-fes/lokictl/pkg/types"
)

// Event is one recorded stimulation command.
type Event struct {
	Time     time.Time
	Duration time.Duration
	Open     bool // the stimulation is still running, duration not yet known
	Channels []types.Channel
}

// Data accumulates the stimulation events of one session, anchored at t0.
// Everything is in memory; recorded sessions are not written to disk. The
// mutex guards the event slice against the device's auto-stop timer
// goroutine recording concurrently with readers.
type Data struct {
	session uuid.UUID
	now     func() time.Time
	bus     *logging.Bus

	mu     sync.Mutex
	t0     time.Time
	events []Event
}

// DataOption customizes a Data recorder.
type DataOption func(*Data)

// WithClock replaces the wall clock, letting simulations record in
// synthetic time.
func WithClock(now func() time.Time) DataOption {
	return func(d *Data) {
		d.now = now
	}
}

// WithDataBus routes recorder warnings to the given log bus.
func WithDataBus(bus *logging.Bus) DataOption {
	return func(d *Data) {
		d.bus = bus
	}
}

// NewData creates an empty recorder with t0 set to the current time.
func NewData(opts ...DataOption) *Data {
	d := &Data{
		session: uuid.New(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.t0 = d.now()
	return d
}

// Session returns the session identifier.
func (d *Data) Session() uuid.UUID {
	return d.session
}

// T0 returns the starting time of the recording.
func (d *Data) T0() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.t0
}

// SetT0 resets the starting time. A zero value means the current time.
func (d *Data) SetT0(t time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t.IsZero() {
		t = d.now()
	}
	d.t0 = t
}

// Len returns the number of recorded events.
func (d *Data) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.events)
}

// HasData reports whether anything has been recorded.
func (d *Data) HasData() bool {
	return d.Len() > 0
}

// Add records a stimulation of known duration. A nil channels slice copies
// the channel configuration of the previous event; the first event must
// carry channels.
func (d *Data) Add(duration time.Duration, channels []types.Channel) error {
	return d.add(duration, false, channels)
}

// AddOpen records a stimulation whose duration is not known yet. The
// duration is filled in by CloseOpenEvent.
func (d *Data) AddOpen(channels []types.Channel) error {
	return d.add(0, true, channels)
}

func (d *Data) add(duration time.Duration, open bool, channels []types.Channel) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if channels == nil {
		if len(d.events) == 0 {
			return errors.New("the first recorded event must specify its channels")
		}
		channels = d.events[len(d.events)-1].Channels
	}
	d.events = append(d.events, Event{
		Time:     d.now(),
		Duration: duration,
		Open:     open,
		Channels: copyChannels(channels),
	})
	return nil
}

// CloseOpenEvent fills in the duration of the last event if it is still
// open, measured from the event's start to now.
func (d *Data) CloseOpenEvent() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.events) == 0 {
		if d.bus != nil {
			d.bus.Warnf("no stimulation event to close")
		}
		return
	}

	last := &d.events[len(d.events)-1]
	if !last.Open {
		return
	}
	last.Duration = d.now().Sub(last.Time)
	last.Open = false
}

// Events returns a copy of the recorded events.
func (d *Data) Events() []Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.eventsLocked()
}

// eventsLocked expects d.mu to be held.
func (d *Data) eventsLocked() []Event {
	out := make([]Event, len(d.events))
	for i, e := range d.events {
		out[i] = e
		out[i].Channels = copyChannels(e.Channels)
	}
	return out
}

// Times returns, for each closed event, its start in seconds since t0.
func (d *Data) Times() []float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []float64
	for _, e := range d.events {
		if e.Open {
			continue
		}
		out = append(out, e.Time.Sub(d.t0).Seconds())
	}
	return out
}

// Durations returns the duration of each closed event.
func (d *Data) Durations() []time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []time.Duration
	for _, e := range d.events {
		if e.Open {
			continue
		}
		out = append(out, e.Duration)
	}
	return out
}

// Amplitudes returns the stimulation amplitudes of the closed events as one
// row per channel. The matrix is sized to the widest event; events recorded
// with fewer channels leave zeros in the missing rows.
func (d *Data) Amplitudes() [][]float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	var closed []Event
	nChannels := 0
	for _, e := range d.events {
		if e.Open {
			continue
		}
		closed = append(closed, e)
		if len(e.Channels) > nChannels {
			nChannels = len(e.Channels)
		}
	}
	if len(closed) == 0 {
		return nil
	}

	out := make([][]float64, nChannels)
	for c := range out {
		out[c] = make([]float64, len(closed))
	}
	for i, e := range closed {
		for c, ch := range e.Channels {
			out[c][i] = ch.Amplitude
		}
	}
	return out
}

// Copy returns a deep copy of the recorded data. The copy shares the
// session ID and clock with the original.
func (d *Data) Copy() *Data {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := &Data{
		session: d.session,
		t0:      d.t0,
		now:     d.now,
		bus:     d.bus,
	}
	out.events = d.eventsLocked()
	return out
}

func copyChannels(channels []types.Channel) []types.Channel {
	out := make([]types.Channel, len(channels))
	copy(out, channels)
	return out
}
