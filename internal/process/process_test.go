package process

// Notes:
// - OpenDir: the real file manager is never launched; Start is replaced with
//   a recorder. Which binary is chosen depends on the build platform, so the
//   test only checks that the directory is passed as the last argument.

import (
	"errors"
	"os/exec"
	"testing"
)

func TestOpener_OpenDir(t *testing.T) {
	t.Parallel()

	var got *exec.Cmd
	o := Opener{Start: func(cmd *exec.Cmd) error {
		got = cmd
		return nil
	}}

	if err := o.OpenDir("/tmp/output"); err != nil {
		t.Fatalf("OpenDir() error = %v", err)
	}
	if got == nil {
		t.Fatal("Start was not called")
	}
	if last := got.Args[len(got.Args)-1]; last != "/tmp/output" {
		t.Errorf("last arg = %q, want %q", last, "/tmp/output")
	}
}

func TestOpener_OpenDir_StartFailure(t *testing.T) {
	t.Parallel()

	o := Opener{Start: func(*exec.Cmd) error { return errors.New("not found") }}

	err := o.OpenDir("/tmp/output")
	if !errors.Is(err, ErrOpen) {
		t.Errorf("OpenDir() error = %v, want ErrOpen", err)
	}
}
