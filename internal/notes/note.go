package notes

import (
	"github.com/google/uuid"
)

// Note is one sticky note and its backing text file.
type Note struct {
	ID uuid.UUID

	manager *Manager
	path    string
	title   string
	text    string
}

func (n *Note) Path() string {
	return n.path
}

func (n *Note) Title() string {
	return n.title
}

func (n *Note) Text() string {
	return n.text
}

// SetText records the buffer and overwrites the backing file with it.
// The buffer is kept even when the write fails.
func (n *Note) SetText(text string) error {
	n.text = text
	return n.manager.write(n.path, text)
}

// Rename moves the backing file to <notes-dir>/<name>.txt. Path and title
// change only when the move succeeds.
func (n *Note) Rename(name string) error {
	target, err := n.manager.pathForName(name)
	if err != nil {
		return err
	}
	if target == n.path {
		return nil
	}

	if err := n.manager.write(n.path, n.text); err != nil {
		return err
	}
	if err := n.manager.move(n.path, target); err != nil {
		return err
	}

	n.manager.logger.Info("NoteFiles", "note renamed", map[string]interface{}{
		"id":   n.ID.String(),
		"from": n.path,
		"to":   target,
	})

	n.path = target
	n.title = titleFromPath(target)
	return nil
}
