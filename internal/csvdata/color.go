package csvdata

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Series color constants. Saturation and lightness are fixed; only the hue
// moves, spread across the palette by column index.
const (
	ColorSaturation = 0.9
	ColorLightness  = 0.6
	HueSpreadRange  = 0xFFFFFF
)

// ColorForIndex returns the deterministic "#rrggbb" color for a column.
// The hue wraps around the palette so neighboring columns get visually
// distinct traces.
func ColorForIndex(idx, columnCount int) string {
	if columnCount <= 0 {
		columnCount = 1
	}

	colorFactor := float64(HueSpreadRange) / float64(columnCount)
	hue := math.Mod(float64(idx)*colorFactor, float64(columnCount)) / float64(columnCount)

	c := colorful.Hsl(hue*360, ColorSaturation, ColorLightness)
	return c.Hex()
}
