// Package timing measures the stages of a completion request.
package timing

import (
	"fmt"
	"strings"
	"time"
)

// Lap is one recorded stage: its label and the time spent since the previous lap
type Lap struct {
	Label    string
	Duration time.Duration
}

// Timer records consecutive laps from a common start
type Timer struct {
	start time.Time
	last  time.Time
	laps  []Lap
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	now := time.Now()
	return &Timer{start: now, last: now}
}

// Lap records the time spent since the previous lap (or the start) under label
func (t *Timer) Lap(label string) time.Duration {
	now := time.Now()
	d := now.Sub(t.last)
	t.last = now
	t.laps = append(t.laps, Lap{Label: label, Duration: d})
	return d
}

// Elapsed returns total elapsed time since timer creation
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Laps returns the recorded laps in order
func (t *Timer) Laps() []Lap {
	out := make([]Lap, len(t.laps))
	copy(out, t.laps)
	return out
}

// Get returns the total duration recorded under label.
// A label recorded several times is summed.
func (t *Timer) Get(label string) (time.Duration, bool) {
	var total time.Duration
	found := false
	for _, l := range t.laps {
		if l.Label == label {
			total += l.Duration
			found = true
		}
	}
	return total, found
}

// Summary formats the total and every lap in milliseconds
func (t *Timer) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %.3fms", ms(t.Elapsed()))

	if len(t.laps) > 0 {
		b.WriteString(" (")
		for i, l := range t.laps {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %.3fms", l.Label, ms(l.Duration))
		}
		b.WriteString(")")
	}

	return b.String()
}

// Reset restarts the timer and drops all laps
func (t *Timer) Reset() {
	t.start = time.Now()
	t.last = t.start
	t.laps = nil
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
