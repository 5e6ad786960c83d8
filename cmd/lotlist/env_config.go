package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-lotlist/internal/config"
)

// dotEnvFile is loaded from the working directory before flags are parsed.
// Variables already set in the process environment are not overridden.
const dotEnvFile = ".env"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string // LOTLIST_CONFIG: config file name or path
	InputDir   string // LOTLIST_INPUT_DIR: input directory
	OutputDir  string // LOTLIST_OUTPUT_DIR: output directory

	// Tier 2 - Input layout and listing policy
	DataFile  string // LOTLIST_DATA_FILE: data file relative to the input directory
	Template  string // LOTLIST_TEMPLATE: template file relative to the input directory
	PhotosDir string // LOTLIST_PHOTOS_DIR: photos directory relative to the input directory
	Extension string // LOTLIST_EXTENSION: listing file extension
	Collision string // LOTLIST_COLLISION: overwrite, error, suffix
	Builtin   string // LOTLIST_BUILTIN: built-in listing template name

	// Tier 3 - Preview, assets and logging
	Preview       *bool  // LOTLIST_PREVIEW: enable or disable preview.html
	PreviewTitle  string // LOTLIST_PREVIEW_TITLE: preview page title
	PreviewFormat string // LOTLIST_PREVIEW_FORMAT: text, markdown
	DateFormat    string // LOTLIST_DATE_FORMAT: photo date format, "none" hides dates
	AssetPath     string // LOTLIST_ASSET_PATH: custom asset directory
	LogLevel      string // LOTLIST_LOG_LEVEL: debug, info, warn, error
	LogFormat     string // LOTLIST_LOG_FORMAT: console, json
}

// knownEnvVars lists valid LOTLIST_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"LOTLIST_CONFIG":     true,
	"LOTLIST_INPUT_DIR":  true,
	"LOTLIST_OUTPUT_DIR": true,
	// Tier 2 - Input layout and listing policy
	"LOTLIST_DATA_FILE":  true,
	"LOTLIST_TEMPLATE":   true,
	"LOTLIST_PHOTOS_DIR": true,
	"LOTLIST_EXTENSION":  true,
	"LOTLIST_COLLISION":  true,
	"LOTLIST_BUILTIN":    true,
	// Tier 3 - Preview, assets and logging
	"LOTLIST_PREVIEW":        true,
	"LOTLIST_PREVIEW_TITLE":  true,
	"LOTLIST_PREVIEW_FORMAT": true,
	"LOTLIST_DATE_FORMAT":    true,
	"LOTLIST_ASSET_PATH":     true,
	"LOTLIST_LOG_LEVEL":      true,
	"LOTLIST_LOG_FORMAT":     true,
}

// loadDotEnv loads dotEnvFile into the process environment if it exists.
func loadDotEnv(w io.Writer) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "warning: ignoring %s: %v\n", dotEnvFile, err)
	}
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized LOTLIST_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		// Tier 1
		ConfigPath: os.Getenv("LOTLIST_CONFIG"),
		InputDir:   os.Getenv("LOTLIST_INPUT_DIR"),
		OutputDir:  os.Getenv("LOTLIST_OUTPUT_DIR"),
		// Tier 2
		DataFile:  os.Getenv("LOTLIST_DATA_FILE"),
		Template:  os.Getenv("LOTLIST_TEMPLATE"),
		PhotosDir: os.Getenv("LOTLIST_PHOTOS_DIR"),
		Extension: os.Getenv("LOTLIST_EXTENSION"),
		Collision: os.Getenv("LOTLIST_COLLISION"),
		Builtin:   os.Getenv("LOTLIST_BUILTIN"),
		// Tier 3
		PreviewTitle:  os.Getenv("LOTLIST_PREVIEW_TITLE"),
		PreviewFormat: os.Getenv("LOTLIST_PREVIEW_FORMAT"),
		DateFormat:    os.Getenv("LOTLIST_DATE_FORMAT"),
		AssetPath:     os.Getenv("LOTLIST_ASSET_PATH"),
		LogLevel:      os.Getenv("LOTLIST_LOG_LEVEL"),
		LogFormat:     os.Getenv("LOTLIST_LOG_FORMAT"),
	}

	// Parse bool for preview; unparsable values are ignored
	if v := os.Getenv("LOTLIST_PREVIEW"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Preview = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized LOTLIST_* variables.
// Helps catch typos like LOTLIST_OUTPUT instead of LOTLIST_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "LOTLIST_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A set variable replaces the config file value (or its default).
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeGenerateFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1 - I/O
	setIfNotEmpty(&cfg.Input.Dir, env.InputDir)
	setIfNotEmpty(&cfg.Output.Dir, env.OutputDir)

	// Tier 2 - Input layout and listing policy
	setIfNotEmpty(&cfg.Input.DataFile, env.DataFile)
	setIfNotEmpty(&cfg.Input.Template, env.Template)
	setIfNotEmpty(&cfg.Input.PhotosDir, env.PhotosDir)
	setIfNotEmpty(&cfg.Output.Extension, env.Extension)
	setIfNotEmpty(&cfg.Listing.Collision, env.Collision)
	setIfNotEmpty(&cfg.Listing.Builtin, env.Builtin)

	// Tier 3 - Preview
	if env.Preview != nil {
		cfg.Preview.Enabled = *env.Preview
	}
	setIfNotEmpty(&cfg.Preview.Title, env.PreviewTitle)
	setIfNotEmpty(&cfg.Preview.Format, env.PreviewFormat)
	if env.DateFormat != "" {
		cfg.Preview.DateFormat = dateFormatValue(env.DateFormat)
	}

	// Tier 3 - Assets and logging
	setIfNotEmpty(&cfg.Assets.BasePath, env.AssetPath)
	setIfNotEmpty(&cfg.Log.Level, env.LogLevel)
	setIfNotEmpty(&cfg.Log.Format, env.LogFormat)
}

// setIfNotEmpty assigns v to dst unless v is empty.
func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// dateFormatValue maps the "none" keyword to an empty format, which hides
// photo dates in the preview.
func dateFormatValue(v string) string {
	if strings.EqualFold(v, "none") {
		return ""
	}
	return v
}
