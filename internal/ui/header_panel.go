package ui

import (
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/csvision/csvision/internal/csvdata"
	"github.com/csvision/csvision/internal/model"
)

// HeaderFilter enumerates visible subsets of headers in the panel.
// String() returns human-friendly names for the filter select.
type HeaderFilter int

const (
	FilterAll HeaderFilter = iota
	FilterVarying
	FilterConstant
	FilterZero
)

// String returns the display name for a header filter
func (hf HeaderFilter) String() string {
	switch hf {
	case FilterAll:
		return "All"
	case FilterVarying:
		return "Varying"
	case FilterConstant:
		return "Constant"
	case FilterZero:
		return "Zero"
	default:
		return "Unknown"
	}
}

// headerFilters lists the filters in select order
var headerFilters = []HeaderFilter{FilterAll, FilterVarying, FilterConstant, FilterZero}

// HeaderPanel lists the headers of the loaded file grouped by signal group,
// with a search box and a kind filter above the list. Ticking a header adds
// it to the chart; selection is capped at the configured series limit.
type HeaderPanel struct {
	widget.BaseWidget

	localization *Localization

	searchEntry *widget.Entry
	kindSelect  *widget.Select
	listBox     *fyne.Container
	content     *fyne.Container

	manager       *csvdata.Manager
	currentFilter HeaderFilter
	maxSeries     int
	selected      []int // column indices in selection order
	checks        map[int]*widget.Check
	muted         bool // guards SetChecked round trips

	onSelectionChanged func(indices []int)
	onLimitReached     func()
}

// NewHeaderPanel creates an empty header panel
func NewHeaderPanel(localization *Localization) *HeaderPanel {
	hp := &HeaderPanel{
		localization:  localization,
		currentFilter: FilterAll,
		maxSeries:     1,
		checks:        make(map[int]*widget.Check),
	}
	hp.ExtendBaseWidget(hp)
	hp.createUI()
	hp.rebuildList()
	return hp
}

// SetSelectionChanged sets the callback invoked whenever the set of ticked
// headers changes. Indices are column indices in selection order.
func (hp *HeaderPanel) SetSelectionChanged(callback func(indices []int)) {
	hp.onSelectionChanged = callback
}

// SetLimitReached sets the callback invoked when a tick is rejected because
// the series limit is already reached
func (hp *HeaderPanel) SetLimitReached(callback func()) {
	hp.onLimitReached = callback
}

// SetMaxSeries updates the selection cap. An over-full selection keeps its
// current entries; the cap only blocks new ticks.
func (hp *HeaderPanel) SetMaxSeries(limit int) {
	if limit < 1 {
		limit = 1
	}
	hp.maxSeries = limit
}

// SetManager swaps the header list to the given file and clears the selection
func (hp *HeaderPanel) SetManager(m *csvdata.Manager) {
	hp.manager = m
	hp.selected = nil
	hp.checks = make(map[int]*widget.Check)
	hp.rebuildList()
	hp.notifySelection()
}

// SelectedIndices returns the selected column indices in selection order
func (hp *HeaderPanel) SelectedIndices() []int {
	out := make([]int, len(hp.selected))
	copy(out, hp.selected)
	return out
}

// SelectedNames returns the qualified names of the selected headers in
// selection order
func (hp *HeaderPanel) SelectedNames() []string {
	if hp.manager == nil {
		return nil
	}

	names := make([]string, 0, len(hp.selected))
	for _, idx := range hp.selected {
		h, err := hp.manager.HeaderInfo(idx)
		if err != nil {
			continue
		}
		names = append(names, h.QualifiedName())
	}
	return names
}

// SelectByNames ticks the headers matching the given qualified names. Names
// that no longer exist in the file are skipped; the series cap still applies.
func (hp *HeaderPanel) SelectByNames(names []string) {
	if hp.manager == nil {
		return
	}

	byName := make(map[string]int, hp.manager.ColumnCount())
	for _, idx := range hp.manager.Indices() {
		h, err := hp.manager.HeaderInfo(idx)
		if err != nil {
			continue
		}
		byName[h.QualifiedName()] = idx
	}

	for _, name := range names {
		idx, ok := byName[name]
		if !ok {
			log.Printf("Header %q not found in current file, skipping", name)
			continue
		}
		if check, ok := hp.checks[idx]; ok {
			check.SetChecked(true)
		}
	}
}

// createUI creates the search, filter and list components
func (hp *HeaderPanel) createUI() {
	hp.searchEntry = widget.NewEntry()
	hp.searchEntry.SetPlaceHolder(hp.localization.GetText(KeySearchHeaders))
	hp.searchEntry.OnChanged = func(string) {
		hp.rebuildList()
	}

	filterOptions := make([]string, 0, len(headerFilters))
	for _, f := range headerFilters {
		filterOptions = append(filterOptions, f.String())
	}
	hp.kindSelect = widget.NewSelect(filterOptions, func(selected string) {
		for _, f := range headerFilters {
			if f.String() == selected {
				hp.currentFilter = f
				break
			}
		}
		hp.rebuildList()
	})
	hp.kindSelect.SetSelected(FilterAll.String())

	hp.listBox = container.NewVBox()

	hp.content = container.NewBorder(
		container.NewVBox(hp.searchEntry, hp.kindSelect),
		nil,
		nil,
		nil,
		container.NewVScroll(hp.listBox),
	)
}

// rebuildList repopulates the grouped checkbox list from the current
// manager, search query and kind filter. Check widgets persist across
// rebuilds so ticked state survives filtering.
func (hp *HeaderPanel) rebuildList() {
	hp.listBox.Objects = nil

	if hp.manager == nil {
		hint := widget.NewLabel(hp.localization.GetText(KeyNoHeadersHint))
		hint.Wrapping = fyne.TextWrapWord
		hp.listBox.Add(hint)
		hp.listBox.Refresh()
		return
	}

	query := strings.ToLower(strings.TrimSpace(hp.searchEntry.Text))

	for _, group := range hp.manager.HeaderMapping() {
		var rows []fyne.CanvasObject
		for _, h := range group.Headers {
			if !hp.shouldShowHeader(h, query) {
				continue
			}
			rows = append(rows, hp.headerRow(h))
		}
		if len(rows) == 0 {
			continue
		}

		if group.Name != "" {
			groupLabel := widget.NewLabel(group.Name)
			groupLabel.TextStyle = fyne.TextStyle{Bold: true}
			hp.listBox.Add(groupLabel)
		}
		for _, row := range rows {
			hp.listBox.Add(row)
		}
	}

	hp.listBox.Refresh()
}

// shouldShowHeader returns whether a header passes the kind filter and the
// search query. The time index column is the x axis, never a plottable row.
func (hp *HeaderPanel) shouldShowHeader(h model.Header, query string) bool {
	if h.Name == csvdata.TimeIndexHeader {
		return false
	}

	switch hp.currentFilter {
	case FilterVarying:
		if h.Kind != model.KindVarying {
			return false
		}
	case FilterConstant:
		if h.Kind != model.KindConstant && h.Kind != model.KindConstantZero {
			return false
		}
	case FilterZero:
		if h.Kind != model.KindConstantZero {
			return false
		}
	}

	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(h.QualifiedName()), query)
}

// headerRow builds one list row: a color swatch plus a checkbox
func (hp *HeaderPanel) headerRow(h model.Header) fyne.CanvasObject {
	swatch := canvas.NewRectangle(parseHexColor(csvdata.ColorForIndex(h.Index, hp.manager.ColumnCount())))
	swatch.SetMinSize(fyne.NewSize(SwatchSize, SwatchSize))

	check, exists := hp.checks[h.Index]
	if !exists {
		idx := h.Index // capture for closure
		check = widget.NewCheck(h.DisplayName(), func(checked bool) {
			hp.onCheckToggled(idx, checked)
		})
		hp.checks[h.Index] = check
	}

	return container.NewHBox(container.NewCenter(swatch), check)
}

// onCheckToggled updates the selection for a single checkbox change
func (hp *HeaderPanel) onCheckToggled(idx int, checked bool) {
	if hp.muted {
		return
	}

	if checked {
		if len(hp.selected) >= hp.maxSeries {
			log.Printf("Selection rejected for column %d: limit of %d reached", idx, hp.maxSeries)
			hp.muted = true
			hp.checks[idx].SetChecked(false)
			hp.muted = false
			if hp.onLimitReached != nil {
				hp.onLimitReached()
			}
			return
		}
		hp.selected = append(hp.selected, idx)
	} else {
		for i, sel := range hp.selected {
			if sel == idx {
				hp.selected = append(hp.selected[:i], hp.selected[i+1:]...)
				break
			}
		}
	}

	hp.notifySelection()
}

// notifySelection fires the selection callback with a copy of the selection
func (hp *HeaderPanel) notifySelection() {
	if hp.onSelectionChanged != nil {
		hp.onSelectionChanged(hp.SelectedIndices())
	}
}

// CreateRenderer creates the widget renderer
func (hp *HeaderPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(hp.content)
}

// MinSize keeps the panel usable when the split is dragged small
func (hp *HeaderPanel) MinSize() fyne.Size {
	min := hp.BaseWidget.MinSize()
	if min.Width < HeaderPanelMinWidth {
		min.Width = HeaderPanelMinWidth
	}
	return min
}
