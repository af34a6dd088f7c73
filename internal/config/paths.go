package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	AppDirName     = "losnot"
	ConfigFileName = "config.ini"
	NotesDirEnv    = "LOSNOT_NOTES_DIR"
)

// Paths groups every on-disk location the application touches.
type Paths struct {
	ConfigFile   string
	AutostartDir string
	NotesDir     string
}

// DefaultPaths resolves locations from the XDG base directories.
func DefaultPaths() Paths {
	notesDir := filepath.Join(xdg.DataHome, AppDirName, "notes")
	if dir := os.Getenv(NotesDirEnv); dir != "" {
		notesDir = dir
	}

	return Paths{
		ConfigFile:   filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName),
		AutostartDir: filepath.Join(xdg.ConfigHome, "autostart"),
		NotesDir:     notesDir,
	}
}
