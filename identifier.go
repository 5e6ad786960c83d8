package lotlist

import (
	"regexp"
	"strings"
)

// ListingPrefix starts every listing and copied photo file name.
const ListingPrefix = "Lot_"

var unsafeIdentifierChars = regexp.MustCompile(`[^\p{L}\p{N}_-]`)

// Identifier derives a file-name-safe identifier from a lot number.
// Surrounding whitespace is removed, then every character other than a
// letter, digit, underscore or hyphen becomes an underscore. Letters and
// digits are matched in any script.
func Identifier(lotNo string) string {
	return unsafeIdentifierChars.ReplaceAllLiteralString(strings.TrimSpace(lotNo), "_")
}

// ListingName returns the artifact file name for an identifier.
func ListingName(identifier, ext string) string {
	return ListingPrefix + identifier + ext
}
