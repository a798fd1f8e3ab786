// Package rehastim is a standardisation layer over the stimulator hardware
// families used on the rig, smoothing over the differences in their
// low-level protocols.
package rehastim

import (
	"fmt"
	"sync"
	"time"

	"github.com/lokomat-fes/lokictl/internal/logging"
	"github.com/lokomat-fes/lokictl/pkg/types"
)

// Program is the stimulation program sent to the device when the
// stimulation is initialized.
type Program struct {
	Channels            []types.Channel
	StimulationInterval int // ms between pulse trains
	LowFrequencyFactor  int
}

// Port is the transport to a stimulator. Production ports speak the serial
// protocol of a device family; tests substitute a scripted port.
type Port interface {
	// InitStimulation programs the device channels and timing.
	InitStimulation(program Program) error
	// StartStimulation begins a pulse train. A nil channels slice reuses
	// the configuration last sent to the device.
	StartStimulation(channels []types.Channel) error
	// PauseStimulation pauses the current pulse train.
	PauseStimulation() error
	// EndStimulation terminates the stimulation program.
	EndStimulation() error
	// Close releases the port.
	Close() error
}

// Device is the common surface of all stimulator families.
type Device interface {
	Name() string
	SetChannels(channels []types.Channel)
	Channels() []types.Channel
	InitializeStimulation() error
	Start(duration time.Duration) error
	Stop() error
	Close() error
}

// Rehastim2 drives a Hasomed Rehastim 2 stimulator through a Port.
//
// Stimulation is initialized lazily on the first Start, which programs the
// channels at the same time. Channel changes are tracked and re-sent to the
// device only when they are dirty. The mutex keeps the timer goroutine of a
// timed Start from racing caller-side Start, Stop and SetChannels.
type Rehastim2 struct {
	port     Port
	bus      *logging.Bus
	recorder *Data

	stimulationInterval int // ms between pulse trains
	lowFrequencyFactor  int

	mu            sync.Mutex
	channels      []types.Channel
	initialized   bool
	channelsDirty bool
	stopTimer     *time.Timer
}

// Rehastim2Option customizes a Rehastim2.
type Rehastim2Option func(*Rehastim2)

// WithBus routes device log records to the given bus.
func WithBus(bus *logging.Bus) Rehastim2Option {
	return func(d *Rehastim2) {
		d.bus = bus
	}
}

// WithRecorder records every start and stop into the given session data.
func WithRecorder(data *Data) Rehastim2Option {
	return func(d *Rehastim2) {
		d.recorder = data
	}
}

// NewRehastim2 creates a device over the given port.
func NewRehastim2(port Port, stimulationInterval, lowFrequencyFactor int, opts ...Rehastim2Option) *Rehastim2 {
	d := &Rehastim2{
		port:                port,
		stimulationInterval: stimulationInterval,
		lowFrequencyFactor:  lowFrequencyFactor,
		channelsDirty:       true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name implements Device.
func (d *Rehastim2) Name() string {
	return "Rehastim2"
}

// SetChannels replaces the channel configuration. The new configuration is
// sent to the device on the next Start.
func (d *Rehastim2) SetChannels(channels []types.Channel) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.channels = copyChannels(channels)
	d.channelsDirty = true
}

// Channels returns a copy of the current channel configuration.
func (d *Rehastim2) Channels() []types.Channel {
	d.mu.Lock()
	defer d.mu.Unlock()
	return copyChannels(d.channels)
}

// InitializeStimulation programs the device and the channels ahead of the
// first Start.
func (d *Rehastim2) InitializeStimulation() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initStimulation()
}

// initStimulation expects d.mu to be held.
func (d *Rehastim2) initStimulation() error {
	program := Program{
		Channels:            copyChannels(d.channels),
		StimulationInterval: d.stimulationInterval,
		LowFrequencyFactor:  d.lowFrequencyFactor,
	}
	if err := d.port.InitStimulation(program); err != nil {
		return fmt.Errorf("failed to initialize stimulation: %w", err)
	}
	d.initialized = true
	d.channelsDirty = false
	return nil
}

// Start begins stimulating. A positive duration schedules an automatic Stop
// after that long; zero stimulates until an explicit Stop.
func (d *Rehastim2) Start(duration time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		// The very first start initializes the stimulation, which takes
		// care of the channels at the same time.
		if err := d.initStimulation(); err != nil {
			return err
		}
	}

	var channels []types.Channel
	if d.channelsDirty {
		channels = copyChannels(d.channels)
		d.channelsDirty = false
	}

	if err := d.port.StartStimulation(channels); err != nil {
		return fmt.Errorf("failed to start stimulation: %w", err)
	}

	if d.bus != nil {
		d.bus.Debugf("%s: stimulation started", d.Name())
	}
	if d.recorder != nil {
		if duration > 0 {
			_ = d.recorder.Add(duration, copyChannels(d.channels))
		} else {
			_ = d.recorder.AddOpen(copyChannels(d.channels))
		}
	}

	if d.stopTimer != nil {
		d.stopTimer.Stop()
		d.stopTimer = nil
	}
	if duration > 0 {
		d.stopTimer = time.AfterFunc(duration, func() {
			_ = d.Stop()
		})
	}
	return nil
}

// Stop pauses the stimulation.
func (d *Rehastim2) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopTimer != nil {
		d.stopTimer.Stop()
		d.stopTimer = nil
	}

	if err := d.port.PauseStimulation(); err != nil {
		return fmt.Errorf("failed to stop stimulation: %w", err)
	}

	if d.bus != nil {
		d.bus.Debugf("%s: stimulation stopped", d.Name())
	}
	if d.recorder != nil {
		d.recorder.CloseOpenEvent()
	}
	return nil
}

// Close ends the stimulation program and releases the port.
func (d *Rehastim2) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopTimer != nil {
		d.stopTimer.Stop()
		d.stopTimer = nil
	}

	if err := d.port.EndStimulation(); err != nil {
		return fmt.Errorf("failed to end stimulation: %w", err)
	}
	if err := d.port.Close(); err != nil {
		return fmt.Errorf("failed to close port: %w", err)
	}
	return nil
}
