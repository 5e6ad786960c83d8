package main

import (
	"errors"
	"os"

	lotlist "github.com/alnah/go-lotlist"
	"github.com/alnah/go-lotlist/internal/assets"
	"github.com/alnah/go-lotlist/internal/config"
	"github.com/alnah/go-lotlist/internal/logging"
	"github.com/alnah/go-lotlist/internal/process"
)

// Exit codes for the lotlist CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All listings generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Input directory, template, or output not accessible
	ExitData    = 4 // Data file missing, empty, unreadable, or inconsistent
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Data errors (exit 4)
	if errors.Is(err, lotlist.ErrMissingDataFile) ||
		errors.Is(err, lotlist.ErrEmptyDataFile) ||
		errors.Is(err, lotlist.ErrUnsupportedDataFormat) ||
		errors.Is(err, lotlist.ErrReadDataFile) ||
		errors.Is(err, lotlist.ErrIdentifierCollision) {
		return ExitData
	}

	// I/O errors (exit 3)
	if errors.Is(err, lotlist.ErrMissingInputDir) ||
		errors.Is(err, lotlist.ErrUnreadableTemplate) ||
		errors.Is(err, lotlist.ErrWriteListing) ||
		errors.Is(err, lotlist.ErrCopyPhoto) ||
		errors.Is(err, lotlist.ErrOutputDir) ||
		errors.Is(err, lotlist.ErrPreviewRender) ||
		errors.Is(err, process.ErrOpen) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, lotlist.ErrInvalidCollisionPolicy) ||
		errors.Is(err, lotlist.ErrInvalidPreviewFormat) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, logging.ErrInvalidFormat) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, ErrTooManyArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
