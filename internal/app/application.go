package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/google/uuid"

	"losnot/internal/autostart"
	"losnot/internal/config"
	"losnot/internal/logger"
	"losnot/internal/notes"
	"losnot/internal/opener"
	"losnot/internal/views"
)

const (
	AppName           = "Losnot"
	AppID             = "io.github.losnot"
	AppVersion        = "1.0.0"
	DefaultNoteWidth  = 320
	DefaultNoteHeight = 220
)

type Dependencies struct {
	Config    *config.Store
	Notes     *notes.Manager
	Autostart *autostart.Manager
	Opener    opener.Opener
	Logger    logger.Logger
}

// Application owns every open note window. All methods run on the Fyne
// event loop.
type Application struct {
	fyneApp   fyne.App
	config    *config.Store
	notes     *notes.Manager
	autostart *autostart.Manager
	opener    opener.Opener
	logger    logger.Logger

	windows   map[uuid.UUID]*views.NoteWindow
	newWindow func() fyne.Window
}

func NewApplication(fyneApp fyne.App, deps Dependencies) *Application {
	log := deps.Logger
	if log == nil {
		log = logger.NoOpLogger{}
	}

	a := &Application{
		fyneApp:   fyneApp,
		config:    deps.Config,
		notes:     deps.Notes,
		autostart: deps.Autostart,
		opener:    deps.Opener,
		logger:    log,
		windows:   make(map[uuid.UUID]*views.NoteWindow),
	}
	a.newWindow = a.undecoratedWindow
	return a
}

// Run opens the first note and blocks in the Fyne event loop.
func (a *Application) Run() error {
	a.CheckAutostart()

	if _, err := a.NewNote(); err != nil {
		return fmt.Errorf("open first note: %w", err)
	}

	a.logger.Info("Application", "event loop starting", map[string]interface{}{
		"version":   AppVersion,
		"notes_dir": a.notes.Dir(),
		"config":    a.config.Path(),
	})
	a.fyneApp.Run()
	return nil
}

// Count is the number of open notes.
func (a *Application) Count() int {
	return len(a.windows)
}

func (a *Application) Window(id uuid.UUID) (*views.NoteWindow, bool) {
	nw, ok := a.windows[id]
	return nw, ok
}

// NewNote opens a window for a fresh note, sized from the last saved geometry.
func (a *Application) NewNote() (*views.NoteWindow, error) {
	if err := a.config.Load(); err != nil {
		a.logger.Warning("Application", "config reload failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	geometry, hasGeometry := a.config.Geometry()

	note, err := a.notes.Create()
	if err != nil {
		return nil, err
	}

	window := a.newWindow()
	window.SetPadded(false)

	nw := views.NewNoteWindow(window, note, a.logger)
	a.windows[note.ID] = nw
	a.wire(nw)

	if hasGeometry && geometry.Width > 0 && geometry.Height > 0 {
		nw.ApplyGeometry(geometry)
	} else {
		window.Resize(fyne.NewSize(DefaultNoteWidth, DefaultNoteHeight))
	}
	nw.Show()

	a.logger.Info("Application", "note opened", map[string]interface{}{
		"id":    note.ID.String(),
		"path":  note.Path(),
		"count": a.Count(),
	})
	return nw, nil
}

// undecoratedWindow prefers a splash window where the driver offers one.
func (a *Application) undecoratedWindow() fyne.Window {
	if drv, ok := a.fyneApp.Driver().(desktop.Driver); ok {
		window := drv.CreateSplashWindow()
		window.SetTitle(AppName)
		return window
	}
	return a.fyneApp.NewWindow(AppName)
}

func (a *Application) wire(nw *views.NoteWindow) {
	id := nw.Note().ID

	nw.SetNewNoteHandler(func() {
		if _, err := a.NewNote(); err != nil {
			a.logger.Warning("Application", "new note failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	})
	nw.SetCloseHandler(func() {
		a.CloseNote(id)
	})
	nw.SetOpenNotesDirHandler(func() {
		if err := a.OpenNotesDir(); err != nil {
			a.logger.Warning("Application", "open notes directory failed", map[string]interface{}{
				"dir":   a.notes.Dir(),
				"error": err.Error(),
			})
		}
	})
	nw.SetAutostartHandlers(a.AutostartEnabled, func(enabled bool) {
		if err := a.SetAutostart(enabled); err != nil {
			a.logger.Warning("Application", "autostart change failed", map[string]interface{}{
				"enabled": enabled,
				"error":   err.Error(),
			})
		}
	})
	nw.SetDisableSessionHandler(func() {
		a.DisableSession(id)
	})
	nw.SetDisablePermanentHandler(func() {
		a.DisablePermanent(id)
	})
	nw.SetResizeHandler(a.saveGeometry)
}

// saveGeometry persists the new window size with the last known position.
// Fyne reports resizes but not moves, so x and y are only ever carried over
// from the config file, never updated here.
func (a *Application) saveGeometry(size fyne.Size) {
	current, _ := a.config.Geometry()
	a.config.SetGeometry(views.WithSize(current, size))

	if err := a.config.Save(); err != nil {
		a.logger.Warning("Application", "geometry save failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// CloseNote closes a note window unless it is the last one open.
func (a *Application) CloseNote(id uuid.UUID) bool {
	if _, ok := a.windows[id]; !ok {
		return false
	}
	if a.Count() <= 1 {
		a.logger.Debug("Application", "refusing to close last note", nil)
		return false
	}

	a.remove(id)
	return true
}

// DisableSession closes the note regardless of count and quits after the last one.
func (a *Application) DisableSession(id uuid.UUID) {
	if _, ok := a.windows[id]; !ok {
		return
	}

	a.remove(id)
	if a.Count() == 0 {
		a.logger.Info("Application", "disabled for session", nil)
		a.fyneApp.Quit()
	}
}

// DisablePermanent turns autostart off, then behaves like DisableSession.
func (a *Application) DisablePermanent(id uuid.UUID) {
	if err := a.SetAutostart(false); err != nil {
		a.logger.Warning("Application", "autostart disable failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	a.DisableSession(id)
}

func (a *Application) remove(id uuid.UUID) {
	nw := a.windows[id]
	delete(a.windows, id)
	nw.Close()

	a.logger.Info("Application", "note closed", map[string]interface{}{
		"id":    id.String(),
		"path":  nw.Note().Path(),
		"count": a.Count(),
	})
}

// CheckAutostart compares the config flag with the installed entry and logs
// a mismatch. The entry wins: it is what the desktop acts on.
func (a *Application) CheckAutostart() bool {
	flag, installed := a.config.Autostart(), a.autostart.Enabled()
	if flag == installed {
		return true
	}

	a.logger.Warning("Application", "autostart flag disagrees with entry", map[string]interface{}{
		"config_flag": flag,
		"entry":       a.autostart.Path(),
		"installed":   installed,
	})
	return false
}

// AutostartEnabled reports whether the autostart entry is installed.
func (a *Application) AutostartEnabled() bool {
	return a.autostart.Enabled()
}

// SetAutostart installs or removes the autostart entry and records the flag.
func (a *Application) SetAutostart(enabled bool) error {
	var err error
	if enabled {
		err = a.autostart.Enable()
	} else {
		err = a.autostart.Disable()
	}
	if err != nil {
		return err
	}

	a.config.SetAutostart(enabled)
	if err := a.config.Save(); err != nil {
		return err
	}

	a.logger.Info("Application", "autostart updated", map[string]interface{}{
		"enabled": enabled,
		"entry":   a.autostart.Path(),
	})
	return nil
}

func (a *Application) OpenNotesDir() error {
	if err := a.notes.EnsureDir(); err != nil {
		return err
	}
	return a.opener.Open(a.notes.Dir())
}

// Shutdown saves the config and stops the event loop. Safe to call from any goroutine.
func (a *Application) Shutdown() {
	fyne.Do(func() {
		if err := a.config.Save(); err != nil {
			a.logger.Error("Application", err, nil)
		}
		a.fyneApp.Quit()
	})
}
