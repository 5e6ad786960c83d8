//go:build windows

package process

import "os/exec"

// explorer.exe exits non-zero even on success, so callers must not Wait.
func openCommand(dir string) *exec.Cmd {
	return exec.Command("explorer", dir) // #nosec G204 -- dir is the configured output directory
}
