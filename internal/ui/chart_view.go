package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/csvision/csvision/internal/model"
)

// ChartView is a custom widget that draws the selected series as polylines
// over a framed plot area with horizontal grid lines, tick labels, and a
// legend strip. Long series are downsampled to pixel resolution before
// drawing.
type ChartView struct {
	widget.BaseWidget

	localization *Localization
	series       []*model.Series
}

// NewChartView creates an empty chart view
func NewChartView(localization *Localization) *ChartView {
	cv := &ChartView{
		localization: localization,
	}
	cv.ExtendBaseWidget(cv)
	return cv
}

// SetSeries replaces the drawn series and redraws. Must be called on the UI
// thread.
func (cv *ChartView) SetSeries(series []*model.Series) {
	cv.series = series
	cv.Refresh()
}

// Series returns the currently drawn series
func (cv *ChartView) Series() []*model.Series {
	return cv.series
}

// CreateRenderer creates the widget renderer
func (cv *ChartView) CreateRenderer() fyne.WidgetRenderer {
	return &chartRenderer{chart: cv}
}

// plotScale maps data coordinates onto the pixel plot area
type plotScale struct {
	xMin, xMax float64
	yMin, yMax float64
	origin     fyne.Position // top-left corner of the plot area
	width      float32
	height     float32
}

// x maps a data x value to a pixel column
func (ps plotScale) x(v float64) float32 {
	return ps.origin.X + float32((v-ps.xMin)/(ps.xMax-ps.xMin))*ps.width
}

// y maps a data y value to a pixel row; pixel y grows downwards
func (ps plotScale) y(v float64) float32 {
	return ps.origin.Y + ps.height - float32((v-ps.yMin)/(ps.yMax-ps.yMin))*ps.height
}

// combinedRange returns the x extent and the union of the buffered y ranges
// across all series. With no series the y range defaults to (-1, 1).
func combinedRange(series []*model.Series) (xMax, yMin, yMax float64) {
	first := true
	for _, s := range series {
		lo, hi := s.Range()
		if first {
			yMin, yMax = lo, hi
			first = false
		} else {
			if lo < yMin {
				yMin = lo
			}
			if hi > yMax {
				yMax = hi
			}
		}
		for _, t := range s.Times {
			if t > xMax {
				xMax = t
			}
		}
	}

	if first {
		yMin, yMax = -1, 1
	}
	if yMax <= yMin {
		yMin, yMax = yMin-1, yMax+1
	}
	if xMax <= 0 {
		xMax = 1
	}
	return xMax, yMin, yMax
}

// downsampleStep returns the sampling stride that reduces n points to at
// most one per pixel column
func downsampleStep(n int, width float32) int {
	if width <= 0 || n <= 0 {
		return 1
	}
	step := int(float32(n) / width)
	if step < 1 {
		step = 1
	}
	return step
}

// sampleIndices returns the point indices drawn for a series of n points.
// The first and last points are always kept so the trace reaches both edges.
func sampleIndices(n, step int) []int {
	if n <= 0 {
		return nil
	}

	indices := []int{0}
	for i := step; i < n-1; i += step {
		indices = append(indices, i)
	}
	if n > 1 {
		indices = append(indices, n-1)
	}
	return indices
}

// formatTick renders an axis tick value compactly
func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// parseHexColor converts "#rrggbb" to a color; bad input yields opaque black
func parseHexColor(hex string) color.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return color.NRGBA{A: 0xff}
	}
	val, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
		A: 0xff,
	}
}

// chartRenderer renders the chart view
type chartRenderer struct {
	chart   *ChartView
	size    fyne.Size
	objects []fyne.CanvasObject
}

// Layout rebuilds the canvas objects for the new size
func (r *chartRenderer) Layout(size fyne.Size) {
	r.size = size
	r.rebuild()
}

// MinSize returns the minimum size
func (r *chartRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ChartMinWidth, ChartMinHeight)
}

// Refresh rebuilds the canvas objects from the current series
func (r *chartRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.chart)
}

// Objects returns the canvas objects
func (r *chartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *chartRenderer) Destroy() {}

// rebuild regenerates every canvas object for the current size and series
func (r *chartRenderer) rebuild() {
	r.objects = nil

	if r.size.Width <= 0 || r.size.Height <= 0 {
		return
	}

	background := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	background.Resize(r.size)
	r.objects = append(r.objects, background)

	if len(r.chart.series) == 0 {
		hint := canvas.NewText(r.chart.localization.GetText(KeyNoDataHint), theme.Color(theme.ColorNamePlaceHolder))
		hintSize := hint.MinSize()
		hint.Move(fyne.NewPos((r.size.Width-hintSize.Width)/2, (r.size.Height-hintSize.Height)/2))
		r.objects = append(r.objects, hint)
		return
	}

	scale := r.plotScale()

	r.addGrid(scale)
	r.addAxes(scale)
	for _, s := range r.chart.series {
		r.addSeries(s, scale)
	}
	r.addLegend()
}

// plotScale computes the data-to-pixel mapping for the current size
func (r *chartRenderer) plotScale() plotScale {
	xMax, yMin, yMax := combinedRange(r.chart.series)

	width := r.size.Width - ChartMarginLeft - ChartMarginRight
	height := r.size.Height - ChartMarginTop - ChartLegendHeight - ChartMarginBottom
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return plotScale{
		xMin:   0,
		xMax:   xMax,
		yMin:   yMin,
		yMax:   yMax,
		origin: fyne.NewPos(ChartMarginLeft, ChartMarginTop+ChartLegendHeight),
		width:  width,
		height: height,
	}
}

// addAxes draws the plot frame's left and bottom edges
func (r *chartRenderer) addAxes(scale plotScale) {
	axisColor := theme.Color(theme.ColorNameForeground)

	yAxis := canvas.NewLine(axisColor)
	yAxis.StrokeWidth = ChartAxisStrokeWidth
	yAxis.Position1 = fyne.NewPos(scale.origin.X, scale.origin.Y)
	yAxis.Position2 = fyne.NewPos(scale.origin.X, scale.origin.Y+scale.height)

	xAxis := canvas.NewLine(axisColor)
	xAxis.StrokeWidth = ChartAxisStrokeWidth
	xAxis.Position1 = fyne.NewPos(scale.origin.X, scale.origin.Y+scale.height)
	xAxis.Position2 = fyne.NewPos(scale.origin.X+scale.width, scale.origin.Y+scale.height)

	r.objects = append(r.objects, yAxis, xAxis)
}

// addGrid draws horizontal grid lines with y tick labels and x tick labels in
// seconds along the bottom edge
func (r *chartRenderer) addGrid(scale plotScale) {
	gridColor := theme.Color(theme.ColorNameSeparator)
	textColor := theme.Color(theme.ColorNameForeground)

	for i := 0; i < ChartYTicks; i++ {
		v := scale.yMin + (scale.yMax-scale.yMin)*float64(i)/float64(ChartYTicks-1)
		yPix := scale.y(v)

		if i > 0 {
			grid := canvas.NewLine(gridColor)
			grid.StrokeWidth = ChartAxisStrokeWidth
			grid.Position1 = fyne.NewPos(scale.origin.X, yPix)
			grid.Position2 = fyne.NewPos(scale.origin.X+scale.width, yPix)
			r.objects = append(r.objects, grid)
		}

		label := canvas.NewText(formatTick(v), textColor)
		label.TextSize = ChartTickTextSize
		labelSize := label.MinSize()
		label.Move(fyne.NewPos(scale.origin.X-labelSize.Width-4, yPix-labelSize.Height/2))
		r.objects = append(r.objects, label)
	}

	for i := 0; i < ChartXTicks; i++ {
		v := scale.xMax * float64(i) / float64(ChartXTicks-1)
		xPix := scale.x(v)

		label := canvas.NewText(formatTick(v)+"s", textColor)
		label.TextSize = ChartTickTextSize
		labelSize := label.MinSize()
		label.Move(fyne.NewPos(xPix-labelSize.Width/2, scale.origin.Y+scale.height+4))
		r.objects = append(r.objects, label)
	}
}

// addSeries draws one series as a polyline, downsampled to pixel resolution
func (r *chartRenderer) addSeries(s *model.Series, scale plotScale) {
	n := len(s.Points)
	if n < 2 || len(s.Times) != n {
		return
	}

	lineColor := parseHexColor(s.ColorHex)
	indices := sampleIndices(n, downsampleStep(n, scale.width))

	prevX := scale.x(s.Times[indices[0]])
	prevY := scale.y(s.Points[indices[0]])
	for _, i := range indices[1:] {
		x := scale.x(s.Times[i])
		y := scale.y(s.Points[i])

		segment := canvas.NewLine(lineColor)
		segment.StrokeWidth = ChartStrokeWidth
		segment.Position1 = fyne.NewPos(prevX, prevY)
		segment.Position2 = fyne.NewPos(x, y)
		r.objects = append(r.objects, segment)

		prevX, prevY = x, y
	}
}

// addLegend draws one swatch and label per series across the top strip
func (r *chartRenderer) addLegend() {
	textColor := theme.Color(theme.ColorNameForeground)

	x := ChartMarginLeft
	for _, s := range r.chart.series {
		swatch := canvas.NewRectangle(parseHexColor(s.ColorHex))
		swatch.Resize(fyne.NewSize(SwatchSize, SwatchSize))
		swatch.Move(fyne.NewPos(x, ChartMarginTop+(ChartLegendHeight-SwatchSize)/2))

		label := canvas.NewText(s.Label, textColor)
		label.TextSize = ChartLegendTextSize
		labelSize := label.MinSize()
		label.Move(fyne.NewPos(x+SwatchSize+4, ChartMarginTop+(ChartLegendHeight-labelSize.Height)/2))

		r.objects = append(r.objects, swatch, label)

		x += SwatchSize + 4 + labelSize.Width + 16
		if x > r.size.Width-ChartMarginRight {
			break
		}
	}
}
