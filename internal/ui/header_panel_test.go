package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/csvision/csvision/internal/csvdata"
)

const samplePanelLog = `time index;Truma_n_Amcu::voltage;Truma_n_Amcu::current;mode;Truma_n_Fan::rpm
|2023-01-05 10:00:00.000|;12.5;0;2;1500
|2023-01-05 10:00:01.500|;12.7;0;2;1520
|2023-01-05 10:00:03.000|;12.9;0;2;1540
`

func samplePanelManager(t *testing.T) *csvdata.Manager {
	t.Helper()

	m, err := csvdata.NewManagerFromReader(strings.NewReader(samplePanelLog), "sample.csv", csvdata.DefaultHeaderPrefix)
	if err != nil {
		t.Fatalf("NewManagerFromReader() error = %v", err)
	}
	return m
}

func newTestPanel(t *testing.T) *HeaderPanel {
	t.Helper()

	_ = test.NewApp()
	hp := NewHeaderPanel(NewLocalization())
	hp.SetMaxSeries(6)
	hp.SetManager(samplePanelManager(t))
	return hp
}

func TestHeaderPanel_TimeIndexHidden(t *testing.T) {
	hp := newTestPanel(t)

	// Column 0 is the time index and must never get a checkbox
	if _, exists := hp.checks[0]; exists {
		t.Error("time index column should not be listed")
	}

	// The four remaining columns are all listed
	if got := len(hp.checks); got != 4 {
		t.Errorf("check count = %d, want 4", got)
	}
}

func TestHeaderPanel_SelectionOrder(t *testing.T) {
	hp := newTestPanel(t)

	var lastNotified []int
	hp.SetSelectionChanged(func(indices []int) {
		lastNotified = indices
	})

	hp.checks[4].SetChecked(true)
	hp.checks[1].SetChecked(true)

	want := []int{4, 1}
	got := hp.SelectedIndices()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("SelectedIndices() = %v, want %v", got, want)
	}
	if len(lastNotified) != 2 {
		t.Errorf("callback got %v, want 2 entries", lastNotified)
	}

	hp.checks[4].SetChecked(false)
	got = hp.SelectedIndices()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("after untick SelectedIndices() = %v, want [1]", got)
	}
}

func TestHeaderPanel_SelectionCap(t *testing.T) {
	hp := newTestPanel(t)
	hp.SetMaxSeries(1)

	limitHit := false
	hp.SetLimitReached(func() {
		limitHit = true
	})

	hp.checks[1].SetChecked(true)
	hp.checks[4].SetChecked(true)

	if got := hp.SelectedIndices(); len(got) != 1 || got[0] != 1 {
		t.Errorf("SelectedIndices() = %v, want [1]", got)
	}
	if !limitHit {
		t.Error("limit callback should fire when the cap is reached")
	}
	if hp.checks[4].Checked {
		t.Error("rejected checkbox should be unticked again")
	}
}

func TestHeaderPanel_SelectedNames(t *testing.T) {
	hp := newTestPanel(t)

	hp.checks[1].SetChecked(true)
	hp.checks[3].SetChecked(true)

	want := []string{"Amcu / voltage", "mode"}
	got := hp.SelectedNames()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("SelectedNames() = %v, want %v", got, want)
	}
}

func TestHeaderPanel_SelectByNames(t *testing.T) {
	hp := newTestPanel(t)

	hp.SelectByNames([]string{"Fan / rpm", "Amcu / voltage", "no such header"})

	want := []int{4, 1}
	got := hp.SelectedIndices()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("SelectedIndices() = %v, want %v", got, want)
	}
}

func TestHeaderPanel_SetManagerClearsSelection(t *testing.T) {
	hp := newTestPanel(t)

	hp.checks[1].SetChecked(true)
	hp.SetManager(samplePanelManager(t))

	if got := hp.SelectedIndices(); len(got) != 0 {
		t.Errorf("SelectedIndices() = %v, want empty after SetManager", got)
	}
}

func TestHeaderPanel_KindFilter(t *testing.T) {
	hp := newTestPanel(t)

	mgr := hp.manager
	voltage, err := mgr.HeaderInfo(1)
	if err != nil {
		t.Fatalf("HeaderInfo(1) error = %v", err)
	}
	current, err := mgr.HeaderInfo(2)
	if err != nil {
		t.Fatalf("HeaderInfo(2) error = %v", err)
	}
	mode, err := mgr.HeaderInfo(3)
	if err != nil {
		t.Fatalf("HeaderInfo(3) error = %v", err)
	}

	tests := []struct {
		name   string
		filter HeaderFilter
		query  string
		header string
		want   bool
	}{
		{"varying passes varying filter", FilterVarying, "", voltage.QualifiedName(), true},
		{"zero fails varying filter", FilterVarying, "", current.QualifiedName(), false},
		{"zero passes constant filter", FilterConstant, "", current.QualifiedName(), true},
		{"constant passes constant filter", FilterConstant, "", mode.QualifiedName(), true},
		{"constant fails zero filter", FilterZero, "", mode.QualifiedName(), false},
		{"zero passes zero filter", FilterZero, "", current.QualifiedName(), true},
		{"query matches group", FilterAll, "amcu", voltage.QualifiedName(), true},
		{"query misses", FilterAll, "rpm", voltage.QualifiedName(), false},
	}

	byName := map[string]int{
		voltage.QualifiedName(): 1,
		current.QualifiedName(): 2,
		mode.QualifiedName():    3,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hp.currentFilter = tt.filter
			h, err := mgr.HeaderInfo(byName[tt.header])
			if err != nil {
				t.Fatalf("HeaderInfo() error = %v", err)
			}
			if got := hp.shouldShowHeader(h, tt.query); got != tt.want {
				t.Errorf("shouldShowHeader(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func TestHeaderFilter_String(t *testing.T) {
	tests := []struct {
		filter HeaderFilter
		want   string
	}{
		{FilterAll, "All"},
		{FilterVarying, "Varying"},
		{FilterConstant, "Constant"},
		{FilterZero, "Zero"},
		{HeaderFilter(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.filter.String(); got != tt.want {
			t.Errorf("HeaderFilter(%d).String() = %q, want %q", tt.filter, got, tt.want)
		}
	}
}
