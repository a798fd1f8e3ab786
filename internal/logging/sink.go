package logging

import (
	"fmt"
	"io"

	clog "github.com/charmbracelet/log"
)

// timestampLayout is the wire format of the timestamp in formatted lines.
const timestampLayout = "2006-01-02T15:04:05"

// Format renders a record as "<LEVEL>: <timestamp>: <message>". Missing
// fields are rendered as empty text rather than raised as errors; a zero
// timestamp renders as an empty string.
func Format(r Record) string {
	ts := ""
	if !r.Timestamp.IsZero() {
		ts = r.Timestamp.Format(timestampLayout)
	}
	return fmt.Sprintf("%s: %s: %s", r.Level, ts, r.Message)
}

// WriterSink writes one formatted line per record to an output channel,
// typically the debug console of a development session.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Handle implements Sink.
func (s *WriterSink) Handle(r Record) {
	fmt.Fprintln(s.w, Format(r))
}

// CharmSink forwards records to a charmbracelet logger for styled
// operator-facing output on stderr.
type CharmSink struct {
	l *clog.Logger
}

// NewCharmSink creates a sink backed by the given logger.
func NewCharmSink(l *clog.Logger) *CharmSink {
	return &CharmSink{l: l}
}

// Handle implements Sink.
func (s *CharmSink) Handle(r Record) {
	switch r.Level {
	case LevelDebug:
		s.l.Debug(r.Message)
	case LevelWarn:
		s.l.Warn(r.Message)
	case LevelError:
		s.l.Error(r.Message)
	default:
		s.l.Info(r.Message)
	}
}

// Tee fans a record out to several sinks while keeping the bus itself
// single-listener.
func Tee(sinks ...Sink) Sink {
	return FuncSink(func(r Record) {
		for _, s := range sinks {
			s.Handle(r)
		}
	})
}
