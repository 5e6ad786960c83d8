//go:build !windows && !darwin

package process

import "os/exec"

func openCommand(dir string) *exec.Cmd {
	return exec.Command("xdg-open", dir) // #nosec G204 -- dir is the configured output directory
}
