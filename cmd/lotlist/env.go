package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-lotlist/internal/process"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Opener DirOpener // used by --open
}

// DirOpener opens a directory in the platform file manager.
type DirOpener interface {
	OpenDir(dir string) error
}

// Compile-time interface implementation check.
var _ DirOpener = process.Opener{}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Opener: process.Opener{},
	}
}
