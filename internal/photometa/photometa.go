// Package photometa reads the capture date embedded in listing photos and
// formats it for display.
package photometa

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

var (
	ErrNoCaptureTime     = errors.New("no capture time in photo metadata")
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when no format is configured.
const DefaultDateFormat = "YYYY-MM-DD"

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// dateTokens is ordered longest first so YYYY wins over YY and MMMM over MM.
var dateTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// CaptureTime returns the EXIF DateTimeOriginal of the image at path.
// PNG, GIF and BMP files carry no EXIF block and report ErrNoCaptureTime.
func CaptureTime(path string) (time.Time, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from a directory scan
	if err != nil {
		return time.Time{}, err
	}
	defer func() { _ = f.Close() }()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrNoCaptureTime, err)
	}
	t, err := x.DateTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrNoCaptureTime, err)
	}
	return t, nil
}

// ParseDateFormat converts a user format such as "DD/MM/YYYY" or a preset
// name such as "long" to a Go time layout. Text inside [brackets] is kept
// literally; any other non-token character passes through.
func ParseDateFormat(format string) (string, error) {
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}
		if layout, n := matchToken(rest); n > 0 {
			b.WriteString(layout)
			rest = rest[n:]
			continue
		}
		b.WriteByte(rest[0])
		rest = rest[1:]
	}
	return b.String(), nil
}

func matchToken(s string) (string, int) {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			return t.layout, len(t.token)
		}
	}
	return "", 0
}

// Describe returns the capture date of the photo at path rendered with
// layout, or "" when the photo has no readable capture date.
func Describe(path, layout string) string {
	t, err := CaptureTime(path)
	if err != nil {
		return ""
	}
	return t.Format(layout)
}
