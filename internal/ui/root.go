package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/csvision/csvision/internal/config"
	"github.com/csvision/csvision/internal/csvdata"
	"github.com/csvision/csvision/internal/model"
	"github.com/csvision/csvision/internal/platform"
	"github.com/csvision/csvision/internal/session"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	pathEntry    *widget.Entry
	openBtn      *widget.Button
	progressBar  *widget.ProgressBar
	headerPanel  *HeaderPanel
	chartView    *ChartView
	loadSvc      csvdata.Loader
	settings     *config.Settings
	localization *Localization

	// Auto-reload support
	watcher   *platform.Watcher
	watcherMu sync.Mutex

	// Selection to re-apply after the next completed load (reload, session)
	pendingSelection []string

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, loadSvc csvdata.Loader) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure the data directory exists
	platform.CreateDirectoryIfNotExists(settings.GetDataDirectory())

	ui := &RootUI{
		window:       window,
		loadSvc:      loadSvc,
		settings:     settings,
		localization: localization,
	}

	log.Printf("RootUI initialized with load service: %v", ui.loadSvc != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for load updates
	ui.loadSvc.SetUpdateCallback(ui.onTaskUpdate)
	ui.loadSvc.SetHeaderPrefix(settings.GetHeaderPrefix())

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create file path entry
	ui.pathEntry = widget.NewEntry()
	ui.pathEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterPath))
	// Trigger loading when user presses Enter in the path field
	ui.pathEntry.OnSubmitted = func(string) {
		ui.onOpenClick()
	}

	// Create open button
	ui.openBtn = widget.NewButton(ui.localization.GetText(KeyOpen), ui.onOpenClick)

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create load progress bar
	ui.progressBar = widget.NewProgressBar()

	// Create top panel: settings + progress on the left, open button on the
	// right, the path entry filling the rest
	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, fixedWidth(ToolbarProgressWidth, ui.progressBar)),
		ui.openBtn,
		ui.pathEntry,
	)

	// Create header panel and chart view
	ui.headerPanel = NewHeaderPanel(ui.localization)
	ui.headerPanel.SetMaxSeries(ui.settings.GetMaxChartSeries())
	ui.headerPanel.SetSelectionChanged(ui.onSelectionChanged)
	ui.headerPanel.SetLimitReached(func() {
		ui.showPopup(ui.localization.GetText(KeyMaxSeriesReached))
	})

	ui.chartView = NewChartView(ui.localization)

	split := container.NewHSplit(ui.headerPanel, ui.chartView)
	split.SetOffset(ContentSplitOffset)

	// A transparent rectangle keeps the window from shrinking below a usable size
	minSpacer := canvas.NewRectangle(color.RGBA{})
	minSpacer.SetMinSize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	content := container.NewBorder(
		topPanel, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		container.NewStack(minSpacer, split),
	)

	ui.window.SetContent(content)

	// Escape closes the window
	ui.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			ui.window.Close()
		}
	})

	log.Printf("UI setup completed successfully")
}

// fixedWidth fixes an object's width using a transparent rectangle underneath
func fixedWidth(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
	return container.NewStack(spacer, obj)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpen), ui.showFileOpenDialog)
	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyRevealFile), ui.onRevealFile)
	saveSessionItem := fyne.NewMenuItem(ui.localization.GetText(KeySaveSession), ui.onSaveSession)
	loadSessionItem := fyne.NewMenuItem(ui.localization.GetText(KeyLoadSession), ui.onLoadSession)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Recent files submenu
	recentItem := fyne.NewMenuItem(ui.localization.GetText(KeyRecentFiles), nil)
	recentMenu := fyne.NewMenu("")
	for _, path := range ui.settings.GetRecentFiles() {
		recentPath := path // Capture for closure
		recentMenu.Items = append(recentMenu.Items, fyne.NewMenuItem(path, func() {
			ui.loadFile(recentPath)
		}))
	}
	recentItem.ChildMenu = recentMenu
	if len(recentMenu.Items) == 0 {
		recentItem.Disabled = true
	}

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile),
			openItem,
			recentItem,
			revealItem,
			fyne.NewMenuItemSeparator(),
			saveSessionItem,
			loadSessionItem,
			fyne.NewMenuItemSeparator(),
			settingsItem,
		),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Update UI elements
	ui.pathEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterPath))
	ui.openBtn.SetText(ui.localization.GetText(KeyOpen))
	ui.chartView.Refresh()
}

// onOpenClick handles the open button click
func (ui *RootUI) onOpenClick() {
	pathText := strings.TrimSpace(ui.pathEntry.Text)
	if pathText == "" {
		ui.showFileOpenDialog()
		return
	}

	ui.loadFile(pathText)
}

// showFileOpenDialog shows the CSV file picker
func (ui *RootUI) showFileOpenDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		ui.pathEntry.SetText(path)
		ui.loadFile(path)
	}, ui.window)
}

// loadFile submits a load task for the given path
func (ui *RootUI) loadFile(path string) {
	if !platform.IsCSVPath(path) {
		ui.showPopup(ui.localization.GetText(KeyInvalidFile) + ": " + path)
		return
	}

	log.Printf("Adding load task for file: %s", path)

	task, err := ui.loadSvc.AddTask(path)
	if err != nil {
		if strings.Contains(err.Error(), "already") {
			ui.showPopup(ui.localization.GetText(KeyAlreadyLoading))
		} else {
			ui.showPopup("Error: " + err.Error())
		}
		return
	}

	log.Printf("Task added successfully: ID=%s, Status=%s, Path=%s", task.ID, task.Status, task.Path)

	ui.progressBar.SetValue(0)
	ui.showPopup(ui.localization.GetText(KeyLoadStarted))
}

// showPopup shows a transient message popup
func (ui *RootUI) showPopup(message string) {
	widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
}

// onRevealFile highlights the loaded CSV file in the system file manager
func (ui *RootUI) onRevealFile() {
	mgr := ui.loadSvc.CurrentManager()
	if mgr == nil {
		ui.showPopup(ui.localization.GetText(KeyPleaseEnterPath))
		return
	}

	if err := platform.RevealInManager(mgr.Path()); err != nil {
		log.Printf("Error revealing file %s: %v", mgr.Path(), err)
		ui.showPopup(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Propagate settings the running services depend on
		ui.loadSvc.SetHeaderPrefix(ui.settings.GetHeaderPrefix())
		ui.headerPanel.SetMaxSeries(ui.settings.GetMaxChartSeries())
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()

		// Auto-reload may have been toggled
		if mgr := ui.loadSvc.CurrentManager(); mgr != nil {
			ui.startWatcher(mgr.Path())
		}
	})
}

// onSaveSession saves the current file, prefix and selection as a session file
func (ui *RootUI) onSaveSession() {
	mgr := ui.loadSvc.CurrentManager()
	if mgr == nil {
		ui.showPopup(ui.localization.GetText(KeyPleaseEnterPath))
		return
	}

	sess := session.New(mgr.Path(), ui.settings.GetHeaderPrefix(), ui.headerPanel.SelectedNames())

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := session.Save(path, sess); err != nil {
			log.Printf("Error saving session to %s: %v", path, err)
			ui.showPopup(ui.localization.GetText(KeyErrorSavingSession) + ": " + err.Error())
			return
		}

		log.Printf("Session saved to %s", path)
		ui.showPopup(ui.localization.GetText(KeySessionSaved))
	}, ui.window)
}

// onLoadSession restores a session file: prefix, file and header selection
func (ui *RootUI) onLoadSession() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		sess, err := session.Load(path)
		if err != nil {
			log.Printf("Error loading session from %s: %v", path, err)
			ui.showPopup(ui.localization.GetText(KeyErrorLoadingSession) + ": " + err.Error())
			return
		}

		if sess.HeaderPrefix != "" {
			ui.settings.SetHeaderPrefix(sess.HeaderPrefix)
			ui.loadSvc.SetHeaderPrefix(sess.HeaderPrefix)
		}

		ui.pendingSelection = sess.SelectedHeaders
		ui.pathEntry.SetText(sess.CSVPath)
		ui.loadFile(sess.CSVPath)
	}, ui.window)
}

// onSelectionChanged rebuilds the chart from the ticked headers
func (ui *RootUI) onSelectionChanged(indices []int) {
	mgr := ui.loadSvc.CurrentManager()
	if mgr == nil {
		ui.chartView.SetSeries(nil)
		return
	}

	series := make([]*model.Series, 0, len(indices))
	for _, idx := range indices {
		s, err := mgr.SeriesFor(idx)
		if err != nil {
			log.Printf("Cannot build series for column %d: %v", idx, err)
			continue
		}
		series = append(series, s)
	}

	ui.chartView.SetSeries(series)
}

// debouncedProgressUpdate limits progress bar refreshes during a load
func (ui *RootUI) debouncedProgressUpdate(progress float64) {
	ui.uiUpdateMutex.Lock()
	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		ui.uiUpdateMutex.Unlock()
		return
	}
	ui.lastUIUpdate = now
	ui.uiUpdateMutex.Unlock()

	fyne.Do(func() {
		ui.progressBar.SetValue(progress)
	})
}

// onTaskUpdate handles task updates from the load service
func (ui *RootUI) onTaskUpdate(task *model.LoadTask) {
	log.Printf("Task update received: id=%s status=%s percent=%d progress=%.2f rows=%d cols=%d",
		task.ID, task.Status, task.Percent, task.Progress, task.RowCount, task.ColumnCount)

	switch task.Status {
	case model.TaskStatusParsing:
		ui.debouncedProgressUpdate(task.Progress)
	case model.TaskStatusCompleted:
		fyne.Do(func() {
			ui.progressBar.SetValue(1)
			ui.onLoadCompleted(task)
		})
	case model.TaskStatusError:
		fyne.Do(func() {
			ui.progressBar.SetValue(0)
			ui.showPopup(ui.localization.GetText(KeyErrorOpeningFile) + ": " + task.LastError)
		})
	case model.TaskStatusStopped:
		fyne.Do(func() {
			ui.progressBar.SetValue(0)
		})
	}
}

// onLoadCompleted swaps the UI over to the freshly parsed file. Runs on the
// UI thread.
func (ui *RootUI) onLoadCompleted(task *model.LoadTask) {
	mgr, ok := ui.loadSvc.ManagerFor(task.ID)
	if !ok {
		log.Printf("No manager available for completed task %s", task.ID)
		return
	}

	ui.pathEntry.SetText(task.Path)
	ui.settings.AddRecentFile(task.Path)
	ui.headerPanel.SetMaxSeries(ui.settings.GetMaxChartSeries())
	ui.headerPanel.SetManager(mgr)
	ui.chartView.SetSeries(nil)

	// Re-apply a selection carried over a reload or session restore
	if names := ui.pendingSelection; len(names) > 0 {
		ui.pendingSelection = nil
		ui.headerPanel.SelectByNames(names)
	}

	ui.startWatcher(task.Path)

	// Refresh the recent files submenu
	ui.createMenu()

	ui.showPopup(fmt.Sprintf("%s: %d x %d",
		ui.localization.GetText(KeyLoadCompleted), task.RowCount, task.ColumnCount))
}

// startWatcher watches the loaded file for on-disk changes, replacing any
// previous watcher. No watcher is started when auto-reload is off.
func (ui *RootUI) startWatcher(path string) {
	ui.stopWatcher()

	if !ui.settings.GetAutoReload() {
		return
	}

	w, err := platform.NewWatcher(path, ui.onFileChanged)
	if err != nil {
		log.Printf("Cannot watch %s: %v", path, err)
		return
	}

	ui.watcherMu.Lock()
	ui.watcher = w
	ui.watcherMu.Unlock()

	log.Printf("Watching %s for changes", path)
}

// stopWatcher closes the active watcher, if any
func (ui *RootUI) stopWatcher() {
	ui.watcherMu.Lock()
	defer ui.watcherMu.Unlock()

	if ui.watcher != nil {
		ui.watcher.Close()
		ui.watcher = nil
	}
}

// onFileChanged reloads the watched file, keeping the current selection.
// Called from the watcher goroutine.
func (ui *RootUI) onFileChanged(path string) {
	log.Printf("Watched file changed: %s", path)

	if !ui.settings.GetAutoReload() {
		return
	}

	fyne.Do(func() {
		ui.pendingSelection = ui.headerPanel.SelectedNames()
		if _, err := ui.loadSvc.AddTask(path); err != nil {
			if errors.Is(err, csvdata.ErrInvalidFileType) {
				log.Printf("Watched file no longer loadable: %v", err)
				return
			}
			log.Printf("Reload of %s rejected: %v", path, err)
			return
		}
		ui.showPopup(ui.localization.GetText(KeyFileReloaded))
	})
}
