package csvdata

import "testing"

func TestTimeAxis_DateTimeFormat(t *testing.T) {
	m := sampleManager(t)

	axis := m.TimeAxis()
	expected := []float64{0.0, 1.5, 3.0}
	if len(axis) != len(expected) {
		t.Fatalf("Expected %d samples, got %d", len(expected), len(axis))
	}
	for i, want := range expected {
		if axis[i] != want {
			t.Errorf("TimeAxis[%d] = %v, expected %v", i, axis[i], want)
		}
	}
}

func TestTimeAxis_EpochMilliseconds(t *testing.T) {
	content := "time index;value\n0.000;1\n1.500;2\n3.000;3\n"
	m, err := NewManager(writeSample(t, content), "")
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	axis := m.TimeAxis()
	expected := []float64{0.0, 1.5, 3.0}
	for i, want := range expected {
		if axis[i] != want {
			t.Errorf("TimeAxis[%d] = %v, expected %v", i, axis[i], want)
		}
	}
}

func TestTimeAxis_FirstSampleIsZero(t *testing.T) {
	content := "time index;value\n2023-01-01 10:20:30.250;1\n2023-01-01 10:20:31.750;2\n"
	m, err := NewManager(writeSample(t, content), "")
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	axis := m.TimeAxis()
	if axis[0] != 0.0 {
		t.Errorf("TimeAxis[0] = %v, expected 0.0", axis[0])
	}
	if axis[1] != 1.5 {
		t.Errorf("TimeAxis[1] = %v, expected 1.5", axis[1])
	}
}

func TestTimeAxis_MissingColumnFallsBackToRowIndex(t *testing.T) {
	content := "a;b\n1;2\n3;4\n5;6\n"
	m, err := NewManager(writeSample(t, content), "")
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	axis := m.TimeAxis()
	for i := range axis {
		if axis[i] != float64(i) {
			t.Errorf("TimeAxis[%d] = %v, expected %v", i, axis[i], float64(i))
		}
	}
}

func TestTimeAxis_UnparseableFallsBackToRowIndex(t *testing.T) {
	content := "time index;value\ngarbage;1\nmore garbage;2\n"
	m, err := NewManager(writeSample(t, content), "")
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	axis := m.TimeAxis()
	if axis[0] != 0.0 || axis[1] != 1.0 {
		t.Errorf("TimeAxis = %v, expected row indices", axis)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		hours   float64
		minutes float64
		seconds float64
		wantErr bool
	}{
		{"date time", "2023-11-14 14:34:10.500", 14, 34, 10.5, false},
		{"date time whole seconds", "2023-11-14 00:05:09", 0, 5, 9, false},
		{"epoch ms", "3661.250", 1, 1, 1.25, false},
		{"empty", "", 0, 0, 0, true},
		{"no time part", "2023-11-14", 0, 0, 0, true},
		{"garbage", "one two three", 0, 0, 0, true},
	}

	for _, test := range tests {
		c, err := parseClock(test.raw)
		if test.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got nil", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if c.hours != test.hours || c.minutes != test.minutes || c.seconds != test.seconds {
			t.Errorf("%s: parseClock(%q) = (%v, %v, %v), expected (%v, %v, %v)",
				test.name, test.raw, c.hours, c.minutes, c.seconds, test.hours, test.minutes, test.seconds)
		}
	}
}

func TestSecondsSince(t *testing.T) {
	offset := clock{hours: 14, minutes: 34, seconds: 10}
	later := clock{hours: 14, minutes: 35, seconds: 12.5}

	if got := secondsSince(later, offset); got != 62.5 {
		t.Errorf("secondsSince = %v, expected 62.5", got)
	}

	// Rounds to three decimals
	almost := clock{hours: 14, minutes: 34, seconds: 10.0001}
	if got := secondsSince(almost, offset); got != 0.0 {
		t.Errorf("secondsSince = %v, expected 0.0", got)
	}
}
