package csvdata

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Time conversion constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// clock is a wall-clock reading split into components
type clock struct {
	hours   float64
	minutes float64
	seconds float64
}

// parseClock extracts hours, minutes and seconds from a raw timestamp cell.
// Telemetry logs carry either epoch milliseconds encoded as a decimal number
// or a "date hh:mm:ss[.fff]" string; both resolve to the UTC time of day.
func parseClock(raw string) (clock, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return clock{}, fmt.Errorf("empty timestamp")
	}

	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		// Normalize to three decimals, drop the point: the digits are
		// epoch milliseconds.
		digits := strings.Replace(fmt.Sprintf("%.3f", v), ".", "", 1)
		ms, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return clock{}, fmt.Errorf("timestamp %q overflows: %w", raw, err)
		}
		t := time.UnixMilli(ms).UTC()
		return clock{
			hours:   float64(t.Hour()),
			minutes: float64(t.Minute()),
			seconds: float64(t.Second()) + float64(t.Nanosecond())/float64(time.Second),
		}, nil
	}

	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return clock{}, fmt.Errorf("timestamp %q has no time part", raw)
	}

	parts := strings.Split(fields[1], ":")
	if len(parts) != 3 {
		return clock{}, fmt.Errorf("timestamp %q is not hh:mm:ss", raw)
	}

	var c clock
	for i, dst := range []*float64{&c.hours, &c.minutes, &c.seconds} {
		v, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return clock{}, fmt.Errorf("timestamp %q: %w", raw, err)
		}
		*dst = v
	}
	return c, nil
}

// secondsSince returns the elapsed seconds between two clock readings,
// rounded to three decimals
func secondsSince(c, offset clock) float64 {
	elapsed := (c.hours-offset.hours)*SecondsPerHour +
		(c.minutes-offset.minutes)*SecondsPerMinute +
		(c.seconds - offset.seconds)
	return math.Round(elapsed*1000) / 1000
}

// TimeAxis returns each sample's offset in seconds from the first sample of
// the time index column. The first element is always 0.0. When the column is
// missing or unparseable the row index doubles as the axis.
func (m *Manager) TimeAxis() []float64 {
	axis := make([]float64, len(m.rows))

	idx, err := m.IndexOf(TimeIndexHeader)
	if err != nil {
		return indexAxis(axis)
	}

	cells := m.rawColumn(idx)
	if len(cells) == 0 {
		return axis
	}

	offset, err := parseClock(cells[0])
	if err != nil {
		return indexAxis(axis)
	}

	axis[0] = 0.0
	for i, cell := range cells[1:] {
		c, err := parseClock(cell)
		if err != nil {
			return indexAxis(axis)
		}
		axis[i+1] = secondsSince(c, offset)
	}
	return axis
}

func indexAxis(axis []float64) []float64 {
	for i := range axis {
		axis[i] = float64(i)
	}
	return axis
}
