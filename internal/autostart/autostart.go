// Package autostart manages the XDG autostart desktop entry that launches
// the application at login.
package autostart

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	DesktopFileName = "losnot.desktop"
	entrySection    = "Desktop Entry"
)

type Manager struct {
	dir  string
	exec string
}

// New returns a manager writing into dir. exec is the program path for the
// Exec= key; it is quoted as needed when the entry is written.
func New(dir, exec string) *Manager {
	return &Manager{dir: dir, exec: exec}
}

func (m *Manager) Path() string {
	return filepath.Join(m.dir, DesktopFileName)
}

func (m *Manager) Enable() error {
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}

	// Desktop files use key=value without padding.
	ini.PrettyFormat = false
	if err := DesktopEntry(m.exec).SaveTo(m.Path()); err != nil {
		return fmt.Errorf("write autostart entry: %w", err)
	}
	return nil
}

// Disable removes the entry. A missing entry is not an error.
func (m *Manager) Disable() error {
	if err := os.Remove(m.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove autostart entry: %w", err)
	}
	return nil
}

func (m *Manager) Enabled() bool {
	_, err := os.Stat(m.Path())
	return err == nil
}

func DesktopEntry(exec string) *ini.File {
	// Desktop files have no inline comments; keep # and ; verbatim.
	file := ini.Empty(ini.LoadOptions{IgnoreInlineComment: true})
	section := file.Section(entrySection)

	keys := []struct{ name, value string }{
		{"Type", "Application"},
		{"Name", "Losnot"},
		{"Exec", QuoteExec(exec)},
		{"Hidden", "false"},
		{"NoDisplay", "false"},
		{"X-GNOME-Autostart-enabled", "true"},
	}
	for _, k := range keys {
		section.Key(k.name).SetValue(k.value)
	}
	return file
}

const execReserved = " \t\n\"'\\><~|&;$*?#()`"

// QuoteExec quotes a program path for the Exec= key following the Desktop
// Entry rules: reserved characters force double quotes, inside which ", `,
// $ and \ are backslash-escaped; string-level escaping then doubles every
// backslash.
func QuoteExec(arg string) string {
	if arg == "" || !strings.ContainsAny(arg, execReserved) {
		return arg
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, r := range arg {
		switch r {
		case '"', '`', '$', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')

	return strings.ReplaceAll(b.String(), `\`, `\\`)
}
