package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/csvision/csvision/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 500
	SettingsDialogHeight = 400
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	prefixEntry     *widget.Entry
	dataDirEntry    *widget.Entry
	maxSeriesEntry  *widget.Entry
	autoReloadCheck *widget.Check
	languageSelect  *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Header prefix stripped from raw CSV headers
	sd.prefixEntry = widget.NewEntry()
	sd.prefixEntry.SetPlaceHolder("Truma_n_")

	// Data directory selection
	sd.dataDirEntry = widget.NewEntry()
	sd.dataDirEntry.SetPlaceHolder("Data directory path")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	dataDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.dataDirEntry)

	// Max chart series
	sd.maxSeriesEntry = widget.NewEntry()
	sd.maxSeriesEntry.SetPlaceHolder(strconv.Itoa(config.MinChartSeries) + "-" + strconv.Itoa(config.MaxChartSeries))

	// Auto-reload on file change
	sd.autoReloadCheck = widget.NewCheck(sd.localization.GetText(KeyAutoReload), nil)

	// Language selection
	languageOptions := []string{}
	languageLabels := sd.settings.GetLanguageOptions()
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Create form
	form := container.NewVBox(
		widget.NewLabel("File Settings"),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyHeaderPrefix)+":"),
		sd.prefixEntry,

		widget.NewLabel(sd.localization.GetText(KeyDataDirectory)+":"),
		dataDirRow,

		widget.NewLabel(sd.localization.GetText(KeyMaxChartSeries)+":"),
		sd.maxSeriesEntry,

		sd.autoReloadCheck,

		widget.NewSeparator(),
		widget.NewLabel("Interface Settings"),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.prefixEntry.SetText(sd.settings.GetHeaderPrefix())
	sd.dataDirEntry.SetText(sd.settings.GetDataDirectory())
	sd.maxSeriesEntry.SetText(strconv.Itoa(sd.settings.GetMaxChartSeries()))
	sd.autoReloadCheck.SetChecked(sd.settings.GetAutoReload())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.dataDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// An empty prefix is valid: raw header names are kept as-is
	sd.settings.SetHeaderPrefix(sd.prefixEntry.Text)

	dataDir := sd.dataDirEntry.Text
	if dataDir != "" {
		sd.settings.SetDataDirectory(dataDir)
	}

	if maxSeriesStr := sd.maxSeriesEntry.Text; maxSeriesStr != "" {
		if maxSeries, err := strconv.Atoi(maxSeriesStr); err == nil {
			sd.settings.SetMaxChartSeries(maxSeries)
		}
	}

	sd.settings.SetAutoReload(sd.autoReloadCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
