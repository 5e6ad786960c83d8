//go:build darwin

package process

import "os/exec"

func openCommand(dir string) *exec.Cmd {
	return exec.Command("open", dir) // #nosec G204 -- dir is the configured output directory
}
