package lotlist

import "errors"

// Sentinel errors for library operations.
var (
	// Input layout errors.
	ErrMissingInputDir       = errors.New("input directory not found")
	ErrUnreadableTemplate    = errors.New("template file cannot be read")
	ErrMissingDataFile       = errors.New("data file not found")
	ErrEmptyDataFile         = errors.New("data file has no rows")
	ErrUnsupportedDataFormat = errors.New("unsupported data file format")
	ErrReadDataFile          = errors.New("failed to read data file")

	// Processing errors.
	ErrIdentifierCollision = errors.New("identifier collision")
	ErrWriteListing        = errors.New("failed to write listing")
	ErrCopyPhoto           = errors.New("failed to copy photo")
	ErrOutputDir           = errors.New("failed to create output directory")

	// Preview errors.
	ErrPreviewRender = errors.New("preview rendering failed")

	// Option validation errors.
	ErrInvalidCollisionPolicy = errors.New("invalid collision policy")
	ErrInvalidPreviewFormat   = errors.New("invalid preview format")
)
