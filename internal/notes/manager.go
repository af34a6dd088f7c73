package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"losnot/internal/logger"
)

const (
	DefaultTitle    = "Untitled"
	FileExt         = ".txt"
	timestampLayout = "2006-01-02-150405"
)

var (
	ErrInvalidName = errors.New("invalid note name")
	ErrExists      = errors.New("note already exists")
)

// Manager allocates note files inside a single directory.
type Manager struct {
	dir      string
	logger   logger.Logger
	now      func() time.Time
	reserved map[string]struct{}
}

func NewManager(dir string, log logger.Logger) *Manager {
	return &Manager{
		dir:      dir,
		logger:   log,
		now:      time.Now,
		reserved: make(map[string]struct{}),
	}
}

func (m *Manager) Dir() string {
	return m.dir
}

func (m *Manager) EnsureDir() error {
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return fmt.Errorf("create notes dir %s: %w", m.dir, err)
	}
	return nil
}

// Create allocates a new, empty note. Nothing is written until the first SetText.
func (m *Manager) Create() (*Note, error) {
	if err := m.EnsureDir(); err != nil {
		return nil, err
	}

	path := m.allocatePath()
	note := &Note{
		ID:      uuid.New(),
		manager: m,
		path:    path,
		title:   DefaultTitle,
	}

	m.logger.Debug("NoteFiles", "note allocated", map[string]interface{}{
		"id":   note.ID.String(),
		"path": path,
	})
	return note, nil
}

// allocatePath names the file after the current second, suffixing -2, -3, ...
// when that name was already handed out or exists on disk.
func (m *Manager) allocatePath() string {
	base := DefaultTitle + "-" + m.now().Format(timestampLayout)

	path := filepath.Join(m.dir, base+FileExt)
	for n := 2; m.taken(path); n++ {
		path = filepath.Join(m.dir, fmt.Sprintf("%s-%d%s", base, n, FileExt))
	}

	m.reserved[path] = struct{}{}
	return path
}

func (m *Manager) taken(path string) bool {
	if _, ok := m.reserved[path]; ok {
		return true
	}
	_, err := os.Lstat(path)
	return err == nil
}

func (m *Manager) pathForName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(m.dir, name+FileExt), nil
}

func (m *Manager) write(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write note %s: %w", path, err)
	}
	return nil
}

func (m *Manager) move(from, to string) error {
	if m.taken(to) {
		return fmt.Errorf("%w: %s", ErrExists, to)
	}
	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("rename note %s: %w", from, err)
	}

	delete(m.reserved, from)
	m.reserved[to] = struct{}{}
	return nil
}

func titleFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), FileExt)
}
