package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

const (
	sectionWindow = "window"
	sectionApp    = "app"
)

// Geometry is the last known placement of a note window.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Store is the flat INI file holding window geometry and the autostart flag.
// It is not safe for concurrent use; callers stay on the UI goroutine.
type Store struct {
	path string
	file *ini.File
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
		file: ini.Empty(),
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory state with the file's contents.
// A missing file leaves the store empty.
func (s *Store) Load() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	file, err := ini.LooseLoad(s.path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", s.path, err)
	}

	s.file = file
	return nil
}

func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	// key=value, as GKeyFile writes it.
	ini.PrettyFormat = false
	if err := s.file.SaveTo(s.path); err != nil {
		return fmt.Errorf("save config %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) Geometry() (Geometry, bool) {
	if !s.hasSection(sectionWindow) {
		return Geometry{}, false
	}

	section := s.file.Section(sectionWindow)
	return Geometry{
		X:      section.Key("x").MustInt(0),
		Y:      section.Key("y").MustInt(0),
		Width:  section.Key("width").MustInt(0),
		Height: section.Key("height").MustInt(0),
	}, true
}

func (s *Store) SetGeometry(g Geometry) {
	section := s.file.Section(sectionWindow)
	section.Key("x").SetValue(fmt.Sprint(g.X))
	section.Key("y").SetValue(fmt.Sprint(g.Y))
	section.Key("width").SetValue(fmt.Sprint(g.Width))
	section.Key("height").SetValue(fmt.Sprint(g.Height))
}

func (s *Store) Autostart() bool {
	if !s.hasSection(sectionApp) {
		return false
	}
	return s.file.Section(sectionApp).Key("autostart").MustBool(false)
}

func (s *Store) SetAutostart(enabled bool) {
	s.file.Section(sectionApp).Key("autostart").SetValue(fmt.Sprint(enabled))
}

func (s *Store) hasSection(name string) bool {
	section, err := s.file.GetSection(name)
	return err == nil && section != nil
}
