package main

// Notes:
// - This file contains test helpers shared by the command tests.
// - These are not functions under test themselves, but supporting infrastructure.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

const testInventory = "LotNo,ModelNo,Description,ContactPhone\n" +
	"1601,Dexter 417167,Heavy Duty Axle,555-0100\n" +
	",,orphan row,\n" +
	"1602,,Trailer jack,\n"

const testTemplate = "{Description} ({ModelNo})\nLot {LotNo}\nCall {ContactPhone}\n"

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// ---------------------------------------------------------------------------
// Environment
// ---------------------------------------------------------------------------

// fakeOpener records the directories it was asked to open.
type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) OpenDir(dir string) error {
	f.opened = append(f.opened, dir)
	return f.err
}

// testEnv returns an Environment writing to buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer, *fakeOpener) {
	var stdout, stderr bytes.Buffer
	opener := &fakeOpener{}
	env := &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: &stdout,
		Stderr: &stderr,
		Opener: opener,
	}
	return env, &stdout, &stderr, opener
}

// ---------------------------------------------------------------------------
// Filesystem
// ---------------------------------------------------------------------------

// newWorkspace creates root/input populated with files and returns root.
func newWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	input := filepath.Join(root, "input")
	if err := os.MkdirAll(input, 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	writeFiles(t, input, files)
	return root
}

// writeFiles creates each name under dir with its content.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
}

// listDir returns the sorted file names in dir, or nil if it does not exist.
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", path, err)
	}
	return string(data)
}

// ioArgs returns the input and output flags for a workspace root.
func ioArgs(root string) []string {
	return []string{
		"--input", filepath.Join(root, "input"),
		"--output", filepath.Join(root, "output"),
	}
}
