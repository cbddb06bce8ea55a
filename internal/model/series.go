package model

import "math"

// Extrema buffer constants
const (
	// RangeBufferFactor pads chart ranges so traces never touch the frame
	RangeBufferFactor = 0.05

	// ConstantRangePad is the half-range used for constant signals
	ConstantRangePad = 1.0
)

// Series is a single chart trace derived from one CSV column
type Series struct {
	ID       string // unique per chart insertion
	Header   Header
	Label    string
	ColorHex string    // "#rrggbb"
	Points   []float64 // column values in row order
	Times    []float64 // x axis in seconds, same length as Points
}

// Range returns the buffered (min, max) the chart should span for this
// series. A constant signal gets a fixed pad around its value so the trace
// does not sit on the frame; otherwise the extrema are widened by
// RangeBufferFactor and rounded to three decimals.
func (s *Series) Range() (float64, float64) {
	if len(s.Points) == 0 {
		return -ConstantRangePad, ConstantRangePad
	}

	minVal, maxVal := s.Points[0], s.Points[0]
	for _, v := range s.Points[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	if minVal == maxVal {
		return minVal - ConstantRangePad, maxVal + ConstantRangePad
	}

	buffer := math.Abs(RangeBufferFactor * (maxVal - minVal))
	lo, hi := round3(minVal-buffer), round3(maxVal+buffer)

	// Rounding to three decimals can collapse the interval when the spread
	// is below the rounding granularity; keep the unrounded bounds then
	if lo >= hi {
		return minVal - buffer, maxVal + buffer
	}
	return lo, hi
}

// IsConstant reports whether every point repeats the first value
func (s *Series) IsConstant() bool {
	for _, v := range s.Points {
		if v != s.Points[0] {
			return false
		}
	}
	return true
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
