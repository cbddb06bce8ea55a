package config

import (
	"fyne.io/fyne/v2"

	"github.com/csvision/csvision/internal/csvdata"
	"github.com/csvision/csvision/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyHeaderPrefix   = "header_prefix"
	KeyDataDir        = "data_directory"
	KeyMaxChartSeries = "max_chart_series"
	KeyAutoReload     = "auto_reload_on_change"
	KeyLanguage       = "app_language"
	KeyRecentFiles    = "recent_files"
)

// Default values
const (
	DefaultMaxChartSeries = 6
	DefaultAutoReload     = true
	DefaultLanguage       = "system"
	MaxRecentFiles        = 8

	MinChartSeries = 1
	MaxChartSeries = 12
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetHeaderPrefix returns the vendor prefix stripped from CSV header names
func (s *Settings) GetHeaderPrefix() string {
	prefix := s.app.Preferences().String(KeyHeaderPrefix)
	if prefix == "" {
		s.SetHeaderPrefix(csvdata.DefaultHeaderPrefix)
		return csvdata.DefaultHeaderPrefix
	}
	return prefix
}

// SetHeaderPrefix sets the vendor header prefix
func (s *Settings) SetHeaderPrefix(prefix string) {
	s.app.Preferences().SetString(KeyHeaderPrefix, prefix)
}

// GetDataDirectory returns the directory the file-open dialog starts in
func (s *Settings) GetDataDirectory() string {
	dir := s.app.Preferences().String(KeyDataDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDocumentsDir()
		if err != nil {
			defaultDir = "/tmp"
		}
		s.SetDataDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDataDirectory sets the data directory
func (s *Settings) SetDataDirectory(dir string) {
	s.app.Preferences().SetString(KeyDataDir, dir)
}

// GetMaxChartSeries returns the maximum number of headers plotted at once
func (s *Settings) GetMaxChartSeries() int {
	value := s.app.Preferences().Int(KeyMaxChartSeries)
	if value <= 0 {
		s.SetMaxChartSeries(DefaultMaxChartSeries)
		return DefaultMaxChartSeries
	}
	return value
}

// SetMaxChartSeries sets the maximum number of chart series
func (s *Settings) SetMaxChartSeries(count int) {
	if count < MinChartSeries {
		count = MinChartSeries
	}
	if count > MaxChartSeries {
		count = MaxChartSeries
	}
	s.app.Preferences().SetInt(KeyMaxChartSeries, count)
}

// GetAutoReload returns whether the chart reloads when the file changes on disk
func (s *Settings) GetAutoReload() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoReload, DefaultAutoReload)
}

// SetAutoReload sets whether to reload automatically on file changes
func (s *Settings) SetAutoReload(autoReload bool) {
	s.app.Preferences().SetBool(KeyAutoReload, autoReload)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetRecentFiles returns the recently opened files, most recent first
func (s *Settings) GetRecentFiles() []string {
	return s.app.Preferences().StringList(KeyRecentFiles)
}

// AddRecentFile pushes a path to the front of the recent files list,
// de-duplicating and capping the list length
func (s *Settings) AddRecentFile(path string) {
	if path == "" {
		return
	}

	recent := []string{path}
	for _, existing := range s.GetRecentFiles() {
		if existing == path {
			continue
		}
		recent = append(recent, existing)
		if len(recent) == MaxRecentFiles {
			break
		}
	}
	s.app.Preferences().SetStringList(KeyRecentFiles, recent)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"de":     "Deutsch",
	}
}
