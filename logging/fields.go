package logging

import "time"

func String(key, value string) Field { return Field{Key: key, Value: value} }

func Int(key string, value int) Field { return Field{Key: key, Value: value} }

func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Component tags entries with the emitting subsystem.
func Component(name string) Field { return String("component", name) }

// RunID tags every entry of one CLI invocation.
func RunID(id string) Field { return String("run_id", id) }

// Levels is the relay level count of a computation.
func Levels(n int) Field { return Int("levels", n) }

// Sequence is a raw input line.
func Sequence(s string) Field { return String("sequence", s) }

// Line is a 1-based input line number.
func Line(n int) Field { return Int("line", n) }

func Latency(d time.Duration) Field { return Duration("latency", d) }
