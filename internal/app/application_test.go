package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"losnot/internal/autostart"
	"losnot/internal/config"
	"losnot/internal/logger"
	"losnot/internal/notes"
)

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(path string) error {
	f.opened = append(f.opened, path)
	return f.err
}

type fixture struct {
	app    *Application
	store  *config.Store
	opener *fakeOpener
	paths  config.Paths
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	paths := config.Paths{
		ConfigFile:   filepath.Join(root, "config", "losnot", "config.ini"),
		AutostartDir: filepath.Join(root, "config", "autostart"),
		NotesDir:     filepath.Join(root, "notes"),
	}

	store := config.NewStore(paths.ConfigFile)
	op := &fakeOpener{}
	application := NewApplication(test.NewTempApp(t), Dependencies{
		Config:    store,
		Notes:     notes.NewManager(paths.NotesDir, logger.NoOpLogger{}),
		Autostart: autostart.New(paths.AutostartDir, "losnot"),
		Opener:    op,
		Logger:    logger.NoOpLogger{},
	})

	return &fixture{app: application, store: store, opener: op, paths: paths}
}

func TestNewNote_RegistersWindowWithDefaultSize(t *testing.T) {
	f := newFixture(t)

	nw, err := f.app.NewNote()
	require.NoError(t, err)

	assert.Equal(t, 1, f.app.Count())
	got, ok := f.app.Window(nw.Note().ID)
	require.True(t, ok)
	assert.Same(t, nw, got)
	assert.Equal(t, fyne.NewSize(DefaultNoteWidth, DefaultNoteHeight), nw.Window().Canvas().Size())
	assert.DirExists(t, f.paths.NotesDir)
}

func TestCloseNote_LastNoteIsRefused(t *testing.T) {
	f := newFixture(t)
	nw, err := f.app.NewNote()
	require.NoError(t, err)

	assert.False(t, f.app.CloseNote(nw.Note().ID))
	assert.Equal(t, 1, f.app.Count())
}

// interceptWindow records the close intercept so tests can play the window
// manager's close button.
type interceptWindow struct {
	fyne.Window
	intercept func()
}

func (w *interceptWindow) SetCloseIntercept(callback func()) {
	w.intercept = callback
	w.Window.SetCloseIntercept(callback)
}

func (f *fixture) recordWindows() *[]*interceptWindow {
	var created []*interceptWindow
	f.app.newWindow = func() fyne.Window {
		w := &interceptWindow{Window: f.app.fyneApp.NewWindow(AppName)}
		created = append(created, w)
		return w
	}
	return &created
}

func TestWindowManagerClose_FollowsLastNoteRule(t *testing.T) {
	f := newFixture(t)
	created := f.recordWindows()

	first, err := f.app.NewNote()
	require.NoError(t, err)
	require.Len(t, *created, 1)
	require.NotNil(t, (*created)[0].intercept)

	(*created)[0].intercept()
	assert.Equal(t, 1, f.app.Count())

	second, err := f.app.NewNote()
	require.NoError(t, err)
	require.Len(t, *created, 2)

	(*created)[1].intercept()
	assert.Equal(t, 1, f.app.Count())
	_, ok := f.app.Window(second.Note().ID)
	assert.False(t, ok)
	_, ok = f.app.Window(first.Note().ID)
	assert.True(t, ok)
}

func TestCheckAutostart_DetectsMismatch(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.app.CheckAutostart())

	require.NoError(t, f.app.SetAutostart(true))
	assert.True(t, f.app.CheckAutostart())

	require.NoError(t, os.Remove(filepath.Join(f.paths.AutostartDir, autostart.DesktopFileName)))
	assert.False(t, f.app.CheckAutostart())
}

func TestCloseNote_ClosesWhenOthersRemain(t *testing.T) {
	f := newFixture(t)
	first, err := f.app.NewNote()
	require.NoError(t, err)
	second, err := f.app.NewNote()
	require.NoError(t, err)

	assert.True(t, f.app.CloseNote(first.Note().ID))
	assert.Equal(t, 1, f.app.Count())

	_, ok := f.app.Window(first.Note().ID)
	assert.False(t, ok)

	assert.False(t, f.app.CloseNote(second.Note().ID))
	assert.False(t, f.app.CloseNote(first.Note().ID))
}

func TestGeometry_ResizeIsAppliedToNextNote(t *testing.T) {
	f := newFixture(t)
	first, err := f.app.NewNote()
	require.NoError(t, err)

	first.Window().Resize(fyne.NewSize(480, 360))

	g, ok := f.store.Geometry()
	require.True(t, ok)
	assert.Equal(t, 480, g.Width)
	assert.Equal(t, 360, g.Height)

	second, err := f.app.NewNote()
	require.NoError(t, err)
	assert.Equal(t, fyne.NewSize(480, 360), second.Window().Canvas().Size())
}

func TestGeometry_ReloadedFromDiskAndPositionKept(t *testing.T) {
	f := newFixture(t)

	other := config.NewStore(f.paths.ConfigFile)
	other.SetGeometry(config.Geometry{X: 40, Y: 50, Width: 500, Height: 250})
	require.NoError(t, other.Save())

	nw, err := f.app.NewNote()
	require.NoError(t, err)
	assert.Equal(t, fyne.NewSize(500, 250), nw.Window().Canvas().Size())

	nw.Window().Resize(fyne.NewSize(510, 260))

	require.NoError(t, other.Load())
	g, _ := other.Geometry()
	assert.Equal(t, config.Geometry{X: 40, Y: 50, Width: 510, Height: 260}, g)
}

func TestAutostart_EnableThenDisable(t *testing.T) {
	f := newFixture(t)
	entry := filepath.Join(f.paths.AutostartDir, autostart.DesktopFileName)

	require.NoError(t, f.app.SetAutostart(true))
	assert.FileExists(t, entry)
	assert.True(t, f.app.AutostartEnabled())
	assert.True(t, f.store.Autostart())

	require.NoError(t, f.app.SetAutostart(false))
	assert.NoFileExists(t, entry)
	assert.False(t, f.app.AutostartEnabled())

	reloaded := config.NewStore(f.paths.ConfigFile)
	require.NoError(t, reloaded.Load())
	assert.False(t, reloaded.Autostart())
}

func TestDisablePermanent_RemovesAutostartAndClosesLastNote(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.app.SetAutostart(true))
	nw, err := f.app.NewNote()
	require.NoError(t, err)

	f.app.DisablePermanent(nw.Note().ID)

	assert.Equal(t, 0, f.app.Count())
	assert.False(t, f.app.AutostartEnabled())
	assert.False(t, f.store.Autostart())
}

func TestDisableSession_ClosesEvenTheLastNote(t *testing.T) {
	f := newFixture(t)
	nw, err := f.app.NewNote()
	require.NoError(t, err)

	f.app.DisableSession(nw.Note().ID)

	assert.Equal(t, 0, f.app.Count())
}

func TestOpenNotesDir_UsesOpener(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.app.OpenNotesDir())

	assert.Equal(t, []string{f.paths.NotesDir}, f.opener.opened)
	assert.DirExists(t, f.paths.NotesDir)
}

func TestOpenNotesDir_ReportsOpenerFailure(t *testing.T) {
	f := newFixture(t)
	f.opener.err = errors.New("no opener")

	assert.Error(t, f.app.OpenNotesDir())
}

func TestNewNote_EditsLandOnDisk(t *testing.T) {
	f := newFixture(t)
	nw, err := f.app.NewNote()
	require.NoError(t, err)

	for _, text := range []string{"a", "ab", "abc"} {
		require.NoError(t, nw.Note().SetText(text))
	}

	data, err := os.ReadFile(nw.Note().Path())
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}
