package lotlist

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DefaultExtension is the listing file extension.
const DefaultExtension = ".txt"

// CollisionPolicy decides what happens when two rows map to the same
// identifier within one run.
type CollisionPolicy string

const (
	// CollisionOverwrite lets the last row win and logs a warning.
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionError aborts the run.
	CollisionError CollisionPolicy = "error"
	// CollisionSuffix writes the later row as Lot_<id>_2, Lot_<id>_3, ...
	CollisionSuffix CollisionPolicy = "suffix"
)

// ParseCollisionPolicy parses a policy name. Empty means overwrite.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch p := CollisionPolicy(strings.ToLower(s)); p {
	case "":
		return CollisionOverwrite, nil
	case CollisionOverwrite, CollisionError, CollisionSuffix:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCollisionPolicy, s)
	}
}

// PreviewFormat selects how listing text appears in the preview.
type PreviewFormat string

const (
	// PreviewText shows listing text verbatim.
	PreviewText PreviewFormat = "text"
	// PreviewMarkdown renders listing text as Markdown.
	PreviewMarkdown PreviewFormat = "markdown"
)

// ParsePreviewFormat parses a format name. Empty means text.
func ParsePreviewFormat(s string) (PreviewFormat, error) {
	switch f := PreviewFormat(strings.ToLower(s)); f {
	case "":
		return PreviewText, nil
	case PreviewText, PreviewMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPreviewFormat, s)
	}
}

// RowResult reports the outcome of one row to an observer.
type RowResult struct {
	Line        int
	LotNo       string
	Identifier  string
	Skipped     bool
	ListingPath string
	PhotoPath   string // copied photo in the output directory, "" if none
	Collision   bool
}

// settings is shared by Processor and Generator.
type settings struct {
	extension string
	policy    CollisionPolicy
	logger    *zap.Logger
	observer  func(RowResult)
}

func defaultSettings() settings {
	return settings{
		extension: DefaultExtension,
		policy:    CollisionOverwrite,
		logger:    zap.NewNop(),
	}
}

// Option configures a Processor or Generator.
type Option func(*settings)

// WithExtension sets the listing file extension, including the dot.
// Panics if ext does not start with a dot (programmer error).
func WithExtension(ext string) Option {
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
		panic("lotlist: WithExtension requires a leading dot and a name")
	}
	return func(s *settings) {
		s.extension = ext
	}
}

// WithCollisionPolicy sets the identifier collision policy.
func WithCollisionPolicy(p CollisionPolicy) Option {
	return func(s *settings) {
		s.policy = p
	}
}

// WithLogger sets the diagnostic logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver registers a callback invoked once per processed row.
func WithObserver(fn func(RowResult)) Option {
	return func(s *settings) {
		s.observer = fn
	}
}
