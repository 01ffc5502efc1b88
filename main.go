package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/recipe-browser/internal/browse"
	"github.com/ytget/recipe-browser/internal/config"
	"github.com/ytget/recipe-browser/internal/logging"
	"github.com/ytget/recipe-browser/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.recipe-browser"
	AppName = "Recipe Browser"

	WindowWidth  = 900
	WindowHeight = 650
)

func main() {
	logger, _, err := logging.New(os.Getenv("RECIPES_DEBUG") != "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	svc := browse.NewService(nil, logger.Named("browse"))
	defer svc.Close()

	fetcher, err := ui.NewFetcher(settings, logger.Named("mealdb"))
	if err != nil {
		// A bad stored URL falls back to the public API
		logger.Warn("invalid stored base url, using default", zap.Error(err))
		settings.SetBaseURL(config.DefaultBaseURL)
		fetcher, err = ui.NewFetcher(settings, logger.Named("mealdb"))
		if err != nil {
			logger.Fatal("cannot create recipe client", zap.Error(err))
		}
	}
	svc.SetFetcher(fetcher)

	ui.NewRootUI(myWindow, myApp, svc, logger.Named("ui"))

	myWindow.ShowAndRun()
}
