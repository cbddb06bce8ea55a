package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyOpen                = "open"
	KeyFile                = "file"
	KeySettings            = "settings"
	KeyLanguage            = "language"
	KeySaveSession         = "save_session"
	KeyLoadSession         = "load_session"
	KeyRecentFiles         = "recent_files"
	KeyRevealFile          = "reveal_file"
	KeyEnterPath           = "enter_path"
	KeySearchHeaders       = "search_headers"
	KeyHeaderPrefix        = "header_prefix"
	KeyDataDirectory       = "data_directory"
	KeyMaxChartSeries      = "max_chart_series"
	KeyAutoReload          = "auto_reload"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyBrowse              = "browse"
	KeySettingsSaved       = "settings_saved"
	KeyLoadStarted         = "load_started"
	KeyLoadCompleted       = "load_completed"
	KeyFileReloaded        = "file_reloaded"
	KeyInvalidFile         = "invalid_file"
	KeyPleaseEnterPath     = "please_enter_path"
	KeyAlreadyLoading      = "already_loading"
	KeyMaxSeriesReached    = "max_series_reached"
	KeyNoDataHint          = "no_data_hint"
	KeyNoHeadersHint       = "no_headers_hint"
	KeyErrorOpeningFile    = "error_opening_file"
	KeySessionSaved        = "session_saved"
	KeyErrorSavingSession  = "error_saving_session"
	KeyErrorLoadingSession = "error_loading_session"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"de": "Deutsch",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "CSVision",
		KeyOpen:                "Open",
		KeyFile:                "File",
		KeySettings:            "Settings",
		KeyLanguage:            "Language",
		KeySaveSession:         "Save Session",
		KeyLoadSession:         "Load Session",
		KeyRecentFiles:         "Recent Files",
		KeyRevealFile:          "Show in File Manager",
		KeyEnterPath:           "Path to CSV file",
		KeySearchHeaders:       "Search headers",
		KeyHeaderPrefix:        "Header Prefix",
		KeyDataDirectory:       "Data Directory",
		KeyMaxChartSeries:      "Max Chart Series",
		KeyAutoReload:          "Reload file on change",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyBrowse:              "Browse",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyLoadStarted:         "Loading file...",
		KeyLoadCompleted:       "File loaded",
		KeyFileReloaded:        "File reloaded",
		KeyInvalidFile:         "Not a CSV file",
		KeyPleaseEnterPath:     "Please choose a CSV file",
		KeyAlreadyLoading:      "File is already loading",
		KeyMaxSeriesReached:    "Series limit reached",
		KeyNoDataHint:          "Select headers on the left to plot them",
		KeyNoHeadersHint:       "Open a CSV file to list its headers",
		KeyErrorOpeningFile:    "Error opening file",
		KeySessionSaved:        "Session saved",
		KeyErrorSavingSession:  "Error saving session",
		KeyErrorLoadingSession: "Error loading session",
	}

	// German texts
	l.texts["de"] = map[string]string{
		KeyAppTitle:            "CSVision",
		KeyOpen:                "Öffnen",
		KeyFile:                "Datei",
		KeySettings:            "Einstellungen",
		KeyLanguage:            "Sprache",
		KeySaveSession:         "Sitzung speichern",
		KeyLoadSession:         "Sitzung laden",
		KeyRecentFiles:         "Zuletzt verwendet",
		KeyRevealFile:          "Im Dateimanager anzeigen",
		KeyEnterPath:           "Pfad zur CSV-Datei",
		KeySearchHeaders:       "Header suchen",
		KeyHeaderPrefix:        "Header-Präfix",
		KeyDataDirectory:       "Datenverzeichnis",
		KeyMaxChartSeries:      "Max. Diagrammserien",
		KeyAutoReload:          "Datei bei Änderung neu laden",
		KeySave:                "Speichern",
		KeyCancel:              "Abbrechen",
		KeyBrowse:              "Durchsuchen",
		KeySettingsSaved:       "Einstellungen erfolgreich gespeichert!",
		KeyLoadStarted:         "Datei wird geladen...",
		KeyLoadCompleted:       "Datei geladen",
		KeyFileReloaded:        "Datei neu geladen",
		KeyInvalidFile:         "Keine CSV-Datei",
		KeyPleaseEnterPath:     "Bitte eine CSV-Datei wählen",
		KeyAlreadyLoading:      "Datei wird bereits geladen",
		KeyMaxSeriesReached:    "Serienlimit erreicht",
		KeyNoDataHint:          "Header links auswählen, um sie zu zeichnen",
		KeyNoHeadersHint:       "CSV-Datei öffnen, um Header anzuzeigen",
		KeyErrorOpeningFile:    "Fehler beim Öffnen der Datei",
		KeySessionSaved:        "Sitzung gespeichert",
		KeyErrorSavingSession:  "Fehler beim Speichern der Sitzung",
		KeyErrorLoadingSession: "Fehler beim Laden der Sitzung",
	}
}
