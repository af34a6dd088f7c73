package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"losnot/internal/app"
	"losnot/internal/autostart"
	"losnot/internal/config"
	"losnot/internal/logger"
	"losnot/internal/notes"
	"losnot/internal/opener"
	"losnot/internal/shutdown"
	"losnot/internal/views"
)

func main() {
	appLogger := logger.FromEnv()
	paths := config.DefaultPaths()

	store := config.NewStore(paths.ConfigFile)
	if err := store.Load(); err != nil {
		appLogger.Warning("Main", "config load failed, starting empty", map[string]interface{}{
			"path":  paths.ConfigFile,
			"error": err.Error(),
		})
	}

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      app.AppID,
		Name:    app.AppName,
		Version: app.AppVersion,
	})
	fyneApp := fyneapp.NewWithID(app.AppID)
	fyneApp.Settings().SetTheme(views.NewNoteTheme())

	application := app.NewApplication(fyneApp, app.Dependencies{
		Config:    store,
		Notes:     notes.NewManager(paths.NotesDir, appLogger),
		Autostart: autostart.New(paths.AutostartDir, executable()),
		Opener:    opener.NewCommand(),
		Logger:    appLogger,
	})

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(application)
	shutdownManager.Listen()

	appLogger.Info("Main", "starting", map[string]interface{}{
		"version":   app.AppVersion,
		"config":    paths.ConfigFile,
		"notes_dir": paths.NotesDir,
	})

	if err := application.Run(); err != nil {
		log.Fatalf("losnot: %v", err)
	}
	appLogger.Info("Main", "terminated", nil)
}

// executable is the Exec= value for the autostart entry.
func executable() string {
	if path, err := os.Executable(); err == nil {
		return path
	}
	return "losnot"
}
