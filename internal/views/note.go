package views

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"losnot/internal/config"
	"losnot/internal/logger"
	"losnot/internal/notes"
)

const HeaderHeight = 28

// NoteWindow is the floating window of a single note.
type NoteWindow struct {
	window fyne.Window
	note   *notes.Note
	logger logger.Logger

	// UI Components
	title       *widget.Label
	editor      *widget.Entry
	addButton   *widget.Button
	menuButton  *widget.Button
	closeButton *widget.Button
	layout      *resizeLayout

	// Event handlers - connected to the application shell
	newNoteHandler          func()
	closeHandler            func()
	openNotesDirHandler     func()
	autostartHandler        func(bool)
	autostartState          func() bool
	disableSessionHandler   func()
	disablePermanentHandler func()
	resizeHandler           func(fyne.Size)
}

func NewNoteWindow(window fyne.Window, note *notes.Note, log logger.Logger) *NoteWindow {
	nw := &NoteWindow{
		window: window,
		note:   note,
		logger: log,
	}

	nw.initializeComponents()
	nw.buildLayout()
	nw.setupEventHandlers()

	return nw
}

func (nw *NoteWindow) initializeComponents() {
	nw.title = widget.NewLabel(nw.note.Title())
	nw.title.Alignment = fyne.TextAlignCenter
	nw.title.Truncation = fyne.TextTruncateEllipsis

	nw.editor = widget.NewMultiLineEntry()
	nw.editor.Wrapping = fyne.TextWrapWord
	nw.editor.TextStyle = fyne.TextStyle{Monospace: true}

	nw.addButton = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		if nw.newNoteHandler != nil {
			nw.newNoteHandler()
		}
	})
	nw.menuButton = widget.NewButtonWithIcon("", theme.MoreVerticalIcon(), nw.showMenu)
	nw.closeButton = widget.NewButtonWithIcon("", theme.CancelIcon(), nw.requestClose)

	for _, b := range []*widget.Button{nw.addButton, nw.menuButton, nw.closeButton} {
		b.Importance = widget.LowImportance
	}
}

func (nw *NoteWindow) buildLayout() {
	headerBackground := canvas.NewRectangle(colorHeader)
	headerBackground.SetMinSize(fyne.NewSize(0, HeaderHeight))

	header := container.NewStack(
		headerBackground,
		container.NewBorder(
			nil, nil,
			nw.addButton,
			container.NewHBox(nw.menuButton, nw.closeButton),
			nw.title,
		),
	)

	body := container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil, nil, nil,
		nw.editor,
	)

	nw.layout = &resizeLayout{}
	nw.window.SetContent(container.New(nw.layout, body))
}

func (nw *NoteWindow) setupEventHandlers() {
	nw.editor.OnChanged = nw.autosave

	nw.window.SetCloseIntercept(nw.requestClose)

	nw.layout.onResize = func(size fyne.Size) {
		if nw.resizeHandler != nil {
			nw.resizeHandler(size)
		}
	}
}

// autosave writes the whole buffer on every change. Failures are logged only.
func (nw *NoteWindow) autosave(text string) {
	if err := nw.note.SetText(text); err != nil {
		nw.logger.Warning("NoteWindow", "autosave failed", map[string]interface{}{
			"path":  nw.note.Path(),
			"error": err.Error(),
		})
	}
}

func (nw *NoteWindow) requestClose() {
	if nw.closeHandler != nil {
		nw.closeHandler()
	}
}

// Event handler setters - called by the application shell

func (nw *NoteWindow) SetNewNoteHandler(handler func()) {
	nw.newNoteHandler = handler
}

func (nw *NoteWindow) SetCloseHandler(handler func()) {
	nw.closeHandler = handler
}

func (nw *NoteWindow) SetOpenNotesDirHandler(handler func()) {
	nw.openNotesDirHandler = handler
}

// SetAutostartHandlers connects the "Start at login" toggle. state reports the current setting.
func (nw *NoteWindow) SetAutostartHandlers(state func() bool, toggle func(bool)) {
	nw.autostartState = state
	nw.autostartHandler = toggle
}

func (nw *NoteWindow) SetDisableSessionHandler(handler func()) {
	nw.disableSessionHandler = handler
}

func (nw *NoteWindow) SetDisablePermanentHandler(handler func()) {
	nw.disablePermanentHandler = handler
}

func (nw *NoteWindow) SetResizeHandler(handler func(fyne.Size)) {
	nw.resizeHandler = handler
}

// Menu builds the per-note menu with the current autostart state.
func (nw *NoteWindow) Menu() *fyne.Menu {
	autostart := nw.autostartState != nil && nw.autostartState()

	rename := fyne.NewMenuItem("Rename note", nw.ShowRenameDialog)
	openDir := fyne.NewMenuItem("Open notes directory", func() {
		if nw.openNotesDirHandler != nil {
			nw.openNotesDirHandler()
		}
	})
	startAtLogin := fyne.NewMenuItem("Start at login", func() {
		if nw.autostartHandler != nil {
			nw.autostartHandler(!autostart)
		}
	})
	startAtLogin.Checked = autostart

	disableSession := fyne.NewMenuItem("Disable for session", func() {
		if nw.disableSessionHandler != nil {
			nw.disableSessionHandler()
		}
	})
	disablePermanent := fyne.NewMenuItem("Disable permanently", func() {
		if nw.disablePermanentHandler != nil {
			nw.disablePermanentHandler()
		}
	})

	return fyne.NewMenu("",
		rename,
		openDir,
		startAtLogin,
		fyne.NewMenuItemSeparator(),
		disableSession,
		disablePermanent,
	)
}

func (nw *NoteWindow) showMenu() {
	driver := fyne.CurrentApp().Driver()
	pos := driver.AbsolutePositionForObject(nw.menuButton).
		Add(fyne.NewPos(0, nw.menuButton.Size().Height))
	widget.ShowPopUpMenuAtPosition(nw.Menu(), nw.window.Canvas(), pos)
}

func (nw *NoteWindow) ShowRenameDialog() {
	entry, onSubmit := nw.renameForm()

	items := []*widget.FormItem{widget.NewFormItem("Name", entry)}
	dialog.ShowForm("Rename Note", "OK", "Cancel", items, onSubmit, nw.window)
}

// renameForm returns the name entry and the dialog callback reading it.
func (nw *NoteWindow) renameForm() (*widget.Entry, func(bool)) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(nw.note.Title())

	return entry, func(confirmed bool) {
		if !confirmed || strings.TrimSpace(entry.Text) == "" {
			return
		}
		if err := nw.Rename(entry.Text); err != nil {
			nw.logger.Warning("NoteWindow", "rename failed", map[string]interface{}{
				"path":  nw.note.Path(),
				"name":  entry.Text,
				"error": err.Error(),
			})
		}
	}
}

// Rename renames the note and, only on success, the displayed title.
func (nw *NoteWindow) Rename(name string) error {
	if err := nw.note.Rename(name); err != nil {
		return err
	}

	nw.title.SetText(nw.note.Title())
	nw.window.SetTitle(nw.note.Title())
	return nil
}

// ApplyGeometry sizes the window from a stored geometry. Fyne exposes no
// window positioning, so X and Y are only carried through the config.
func (nw *NoteWindow) ApplyGeometry(g config.Geometry) {
	if g.Width <= 0 || g.Height <= 0 {
		return
	}
	nw.window.Resize(SizeOf(g))
}

func (nw *NoteWindow) Show() {
	nw.window.Show()
	nw.window.Canvas().Focus(nw.editor)
}

// Close closes the window without going through the close intercept.
func (nw *NoteWindow) Close() {
	nw.window.Close()
}

func (nw *NoteWindow) Window() fyne.Window {
	return nw.window
}

func (nw *NoteWindow) Note() *notes.Note {
	return nw.note
}

func (nw *NoteWindow) Title() string {
	return nw.title.Text
}
