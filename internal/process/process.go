// Package process launches the platform file manager on a directory.
package process

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrOpen indicates the file manager could not be started.
var ErrOpen = errors.New("failed to open directory")

// Opener starts an external viewer for a directory. The zero value uses
// the platform default command.
type Opener struct {
	// Start runs cmd without waiting for it. Defaults to (*exec.Cmd).Start.
	Start func(cmd *exec.Cmd) error
}

// OpenDir opens dir in the platform file manager and returns once the
// viewer has been started.
func (o Opener) OpenDir(dir string) error {
	cmd := openCommand(dir)
	start := o.Start
	if start == nil {
		start = (*exec.Cmd).Start
	}
	if err := start(cmd); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOpen, dir, err)
	}
	return nil
}
