package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/csvision/csvision/internal/csvdata"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestHeaderPrefix(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	prefix := settings.GetHeaderPrefix()
	if prefix != csvdata.DefaultHeaderPrefix {
		t.Errorf("Expected default prefix %s, got %s", csvdata.DefaultHeaderPrefix, prefix)
	}

	// Test setting custom value
	settings.SetHeaderPrefix("Vendor_")
	if got := settings.GetHeaderPrefix(); got != "Vendor_" {
		t.Errorf("Expected prefix 'Vendor_', got %s", got)
	}
}

func TestDataDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDataDirectory()
	if dir == "" {
		t.Error("Data directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/telemetry"
	settings.SetDataDirectory(customDir)

	if got := settings.GetDataDirectory(); got != customDir {
		t.Errorf("Expected data directory %s, got %s", customDir, got)
	}
}

func TestMaxChartSeries(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	maxSeries := settings.GetMaxChartSeries()
	if maxSeries != DefaultMaxChartSeries {
		t.Errorf("Expected default max series %d, got %d", DefaultMaxChartSeries, maxSeries)
	}

	// Test setting custom value
	settings.SetMaxChartSeries(4)
	if got := settings.GetMaxChartSeries(); got != 4 {
		t.Errorf("Expected max series 4, got %d", got)
	}

	// Test boundary values
	settings.SetMaxChartSeries(0) // Should be clamped to 1
	if settings.GetMaxChartSeries() != MinChartSeries {
		t.Error("Max series should be clamped to minimum 1")
	}

	settings.SetMaxChartSeries(50) // Should be clamped to 12
	if settings.GetMaxChartSeries() != MaxChartSeries {
		t.Error("Max series should be clamped to maximum 12")
	}
}

func TestAutoReload(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetAutoReload() != DefaultAutoReload {
		t.Errorf("Expected default auto reload %v", DefaultAutoReload)
	}

	settings.SetAutoReload(false)
	if settings.GetAutoReload() {
		t.Error("Expected auto reload to be disabled")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("de")
	if got := settings.GetLanguage(); got != "de" {
		t.Errorf("Expected language 'de', got %s", got)
	}
}

func TestRecentFiles(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if len(settings.GetRecentFiles()) != 0 {
		t.Error("Expected no recent files initially")
	}

	settings.AddRecentFile("/logs/a.csv")
	settings.AddRecentFile("/logs/b.csv")
	settings.AddRecentFile("/logs/a.csv") // re-open moves to front

	recent := settings.GetRecentFiles()
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent files, got %d", len(recent))
	}
	if recent[0] != "/logs/a.csv" || recent[1] != "/logs/b.csv" {
		t.Errorf("Recent files = %v, expected [a.csv b.csv] order", recent)
	}

	// Empty paths are ignored
	settings.AddRecentFile("")
	if len(settings.GetRecentFiles()) != 2 {
		t.Error("Empty path must not be recorded")
	}
}

func TestRecentFiles_Cap(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	for i := 0; i < MaxRecentFiles+3; i++ {
		settings.AddRecentFile(string(rune('a'+i)) + ".csv")
	}

	if got := len(settings.GetRecentFiles()); got != MaxRecentFiles {
		t.Errorf("Expected recent list capped at %d, got %d", MaxRecentFiles, got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "de"} {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}
}
