// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForMissingInputDir returns hints when the input directory does not exist.
func ForMissingInputDir(dir string) string {
	return format("create " + dir + " or run 'lotlist init " + dir + "'")
}

// ForMissingDataFile returns hints when the inventory data file is missing.
// samplePath is where an example file was written, if any.
func ForMissingDataFile(samplePath string) string {
	if samplePath == "" {
		return format("add a CSV with a header row: LotNo,ModelNo,Description,ContactPhone")
	}
	return format("an example was written to " + samplePath + "; fill it in and rename it")
}

// ForEmptyDataFile returns hints when the data file has a header but no rows.
func ForEmptyDataFile() string {
	return format("add at least one row below the header line")
}

// ForUnreadableTemplate returns hints when the template file exists but cannot be read.
func ForUnreadableTemplate() string {
	return format("check file permissions, or delete it to regenerate the default template")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-lotlist/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-lotlist") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForCollision returns hints when two lot numbers map to the same file name.
func ForCollision() string {
	return formatHints([]string{
		"make lot numbers unique",
		"or set listing.collision to \"suffix\" to keep both listings",
	})
}

// ForMissingColumns returns hints for recommended columns absent from the header.
func ForMissingColumns(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return format("templates will show \"Not specified\" for: " + strings.Join(missing, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, " "))
}
