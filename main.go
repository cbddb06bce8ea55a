package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/csvision/csvision/internal/config"
	"github.com/csvision/csvision/internal/csvdata"
	"github.com/csvision/csvision/internal/platform"
	"github.com/csvision/csvision/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.csvision.csvision"
	AppName = "CSVision"

	WindowWidth  = 1500
	WindowHeight = 900

	// Loads are sequential so a reload never races the chart
	MaxParallelLoads = 1
)

func main() {
	// Log version information
	fmt.Printf("CSVision v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	dataDir := settings.GetDataDirectory()
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		fmt.Printf("failed to ensure data dir: %v\n", err)
	}

	loadSvc := csvdata.NewService(settings.GetHeaderPrefix(), MaxParallelLoads)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, loadSvc)

	// Show and run
	myWindow.ShowAndRun()
}
