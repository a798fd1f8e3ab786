package types

// Channel describes one electrode channel on a stimulator.
type Channel struct {
	Index     int     // channel number on the device, 1-based
	Amplitude float64 // stimulation amplitude in mA
}
