package model

import "testing"

func TestSeries_Range(t *testing.T) {
	tests := []struct {
		name    string
		points  []float64
		wantMin float64
		wantMax float64
	}{
		{"empty", nil, -1.0, 1.0},
		{"constant", []float64{5, 5, 5}, 4.0, 6.0},
		{"constant zero", []float64{0, 0, 0}, -1.0, 1.0},
		{"varying", []float64{0, 10}, -0.5, 10.5},
		{"negative", []float64{-20, -10}, -20.5, -9.5},
	}

	for _, test := range tests {
		s := &Series{Points: test.points}
		gotMin, gotMax := s.Range()
		if gotMin != test.wantMin || gotMax != test.wantMax {
			t.Errorf("%s: Range() = (%v, %v), expected (%v, %v)",
				test.name, gotMin, gotMax, test.wantMin, test.wantMax)
		}
	}
}

func TestSeries_Range_AlwaysWidens(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
	}{
		{"constant", []float64{3.3, 3.3, 3.3}},
		{"spread below rounding granularity", []float64{1.0000001, 1.0000002}},
		{"tiny spread around zero", []float64{-0.0000001, 0.0000002}},
	}

	for _, test := range tests {
		s := &Series{Points: test.points}
		minVal, maxVal := s.Range()
		if minVal >= maxVal {
			t.Errorf("%s: Range() must satisfy min < max, got (%v, %v)", test.name, minVal, maxVal)
		}
	}
}

func TestSeries_IsConstant(t *testing.T) {
	tests := []struct {
		name     string
		points   []float64
		expected bool
	}{
		{"constant", []float64{2, 2, 2}, true},
		{"varying", []float64{2, 3}, false},
		{"single", []float64{7}, true},
	}

	for _, test := range tests {
		s := &Series{Points: test.points}
		if got := s.IsConstant(); got != test.expected {
			t.Errorf("%s: IsConstant() = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestHeader_QualifiedName(t *testing.T) {
	tests := []struct {
		header   Header
		expected string
	}{
		{Header{Name: "time index"}, "time index"},
		{Header{Name: "AmcuDebugData::operationTime", Group: "AmcuDebugData", Key: "operationTime"}, "AmcuDebugData / operationTime"},
		{Header{Name: "voltage", Key: "voltage"}, "voltage"},
	}

	for _, test := range tests {
		if got := test.header.QualifiedName(); got != test.expected {
			t.Errorf("QualifiedName() for %q = %q, expected %q", test.header.Name, got, test.expected)
		}
	}
}
