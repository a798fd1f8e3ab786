package logging

import (
	"fmt"
	"sync"
	"time"
)

// Level defines the severity of a log record.
type Level int

// Enum for log levels. The order is important for filtering.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of a Level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Record is a single structured log event: severity, timestamp and a
// free-text message. Records are transient; a record is handed to the
// attached sink once and then discarded.
type Record struct {
	Level     Level
	Timestamp time.Time
	Message   string
}

// Sink receives every record emitted on a Bus.
type Sink interface {
	Handle(Record)
}

// FuncSink adapts a plain function to a Sink.
type FuncSink func(Record)

// Handle implements Sink.
func (f FuncSink) Handle(r Record) { f(r) }

// Bus is a process-wide fan-in of log records. Many producers write to it;
// exactly one sink, attached at startup, consumes every record synchronously.
// Records emitted before a sink is attached are dropped.
type Bus struct {
	mu   sync.Mutex
	sink Sink
}

// NewBus creates an empty bus with no sink attached.
func NewBus() *Bus {
	return &Bus{}
}

// Default is the process-wide bus used by the application. Tests construct
// their own Bus with a capturing sink instead.
var Default = NewBus()

// Attach registers the single consumer of the bus, replacing any previous one.
func (b *Bus) Attach(s Sink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sink = s
}

// Emit hands a record to the attached sink. There is no filtering, no
// buffering and no failure mode: a malformed record produces a malformed line.
func (b *Bus) Emit(r Record) {
	b.mu.Lock()
	sink := b.sink
	b.mu.Unlock()
	if sink != nil {
		sink.Handle(r)
	}
}

// Log emits a record stamped with the current time.
func (b *Bus) Log(level Level, msg string) {
	b.Emit(Record{Level: level, Timestamp: time.Now(), Message: msg})
}

// Debugf emits a formatted debug record.
func (b *Bus) Debugf(format string, args ...any) {
	b.Log(LevelDebug, fmt.Sprintf(format, args...))
}

// Infof emits a formatted info record.
func (b *Bus) Infof(format string, args ...any) {
	b.Log(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf emits a formatted warning record.
func (b *Bus) Warnf(format string, args ...any) {
	b.Log(LevelWarn, fmt.Sprintf(format, args...))
}

// Errorf emits a formatted error record.
func (b *Bus) Errorf(format string, args ...any) {
	b.Log(LevelError, fmt.Sprintf(format, args...))
}
