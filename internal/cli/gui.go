package cli

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/asset-standardizer/internal/config"
	"github.com/ytget/asset-standardizer/internal/platform"
	"github.com/ytget/asset-standardizer/internal/process"
	"github.com/ytget/asset-standardizer/internal/ui"
)

// launchGUI opens the main window and blocks until it is closed
func launchGUI(opts *options) error {
	log.Printf("%s v%s starting...", AppName, opts.version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAppTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetMaster()

	settings := config.NewSettings(myApp, config.NewFileLanguageStore(opts.langFile), platform.DetectSystemLanguage)

	// Cancelled on exit so a running animation stops with the window
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ui.NewRootUI(ctx, myWindow, settings, process.NewService(opts.interval), nil, nil)

	myWindow.ShowAndRun()
	return nil
}
