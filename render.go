package lotlist

import (
	"regexp"
	"strings"
)

// FallbackText replaces empty values and placeholders with no column.
const FallbackText = "Not specified"

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Render fills template with the values of row.
//
// Each field replaces every literal {Name} occurrence, in column order.
// Values are trimmed; blank values become FallbackText. Any placeholder left
// afterwards, including ones produced by substituted values, also becomes
// FallbackText. Template text is never escaped.
func Render(template string, row Row) string {
	out := template
	for _, f := range row.Fields {
		out = strings.ReplaceAll(out, "{"+f.Name+"}", fieldValue(f.Value))
	}
	return placeholderPattern.ReplaceAllLiteralString(out, FallbackText)
}

func fieldValue(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return FallbackText
	}
	return v
}

// Placeholders returns the distinct placeholder names in template, in order
// of first appearance.
func Placeholders(template string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if name := m[1]; !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
