package opener

import (
	"fmt"
	"os/exec"
)

// DefaultCommand is the freedesktop file-manager opener.
const DefaultCommand = "xdg-open"

type Opener interface {
	Open(path string) error
}

// Command launches an external program with the path as its last argument
// and does not wait for it to exit.
type Command struct {
	Name string
	Args []string
}

func NewCommand() Command {
	return Command{Name: DefaultCommand}
}

func (c Command) Open(path string) error {
	args := append(append([]string{}, c.Args...), path)
	cmd := exec.Command(c.Name, args...)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", c.Name, err)
	}

	// Reap the child so it does not linger as a zombie.
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
