package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-lotlist"
	"github.com/alnah/go-lotlist/internal/fileutil"
	"github.com/alnah/go-lotlist/internal/photometa"
	"github.com/alnah/go-lotlist/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxFileNameLength = 255
	MaxTitleLength    = 200
	MaxExtLength      = 16
)

// Defaults applied by DefaultConfig.
const (
	DefaultInputDir     = "input"
	DefaultDataFile     = "inventory.csv"
	DefaultTemplateFile = "template.txt"
	DefaultPhotosDir    = "photos"
	DefaultOutputDir    = "output"
	DefaultExtension    = ".txt"
	DefaultPreviewTitle = "Listing Preview"
	DefaultCollision    = "overwrite"
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "console"
)

// Allowed enum values.
var (
	CollisionPolicies = []string{"overwrite", "error", "suffix"}
	PreviewFormats    = []string{"text", "markdown"}
	LogLevels         = []string{"debug", "info", "warn", "error"}
	LogFormats        = []string{"console", "json"}
)

// Config holds all configuration for a lotlist run.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Listing ListingConfig `yaml:"listing"`
	Preview PreviewConfig `yaml:"preview"`
	Assets  AssetsConfig  `yaml:"assets"`
	Log     LogConfig     `yaml:"log"`
}

// InputConfig locates the inventory, template and photos.
type InputConfig struct {
	Dir       string `yaml:"dir"`
	DataFile  string `yaml:"dataFile"`  // .csv or .xlsx, relative to Dir
	Template  string `yaml:"template"`  // relative to Dir, created if missing
	PhotosDir string `yaml:"photosDir"` // relative to Dir; falls back to Dir if missing
}

// OutputConfig defines where listings are written.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Extension string `yaml:"extension"` // listing file extension, with dot
}

// ListingConfig defines listing generation policy.
type ListingConfig struct {
	Collision string `yaml:"collision"` // overwrite, error, suffix
	Builtin   string `yaml:"builtin"`   // built-in template used when the template file is missing
}

// PreviewConfig defines the HTML gallery preview.
type PreviewConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Title      string `yaml:"title"`
	Format     string `yaml:"format"`     // text (verbatim) or markdown
	Template   string `yaml:"template"`   // preview template name
	DateFormat string `yaml:"dateFormat"` // photo capture date, e.g. "DD/MM/YYYY" or "long"
	Open       bool   `yaml:"open"`       // open the output directory afterwards
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Dir:       DefaultInputDir,
			DataFile:  DefaultDataFile,
			Template:  DefaultTemplateFile,
			PhotosDir: DefaultPhotosDir,
		},
		Output: OutputConfig{
			Dir:       DefaultOutputDir,
			Extension: DefaultExtension,
		},
		Listing: ListingConfig{
			Collision: DefaultCollision,
			Builtin:   "default",
		},
		Preview: PreviewConfig{
			Enabled:    true,
			Title:      DefaultPreviewTitle,
			Format:     "text",
			Template:   "default",
			DateFormat: photometa.DefaultDateFormat,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Validate checks field lengths and enum values.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually or merge flags into it.
func (c *Config) Validate() error {
	paths := []struct {
		name  string
		value string
		max   int
	}{
		{"input.dir", c.Input.Dir, MaxPathLength},
		{"input.dataFile", c.Input.DataFile, MaxFileNameLength},
		{"input.template", c.Input.Template, MaxFileNameLength},
		{"input.photosDir", c.Input.PhotosDir, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"output.extension", c.Output.Extension, MaxExtLength},
		{"preview.title", c.Preview.Title, MaxTitleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.name, p.value, p.max); err != nil {
			return err
		}
	}

	if c.Output.Extension != "" {
		if err := fileutil.ValidateExtension(c.Output.Extension); err != nil {
			return fmt.Errorf("%w: output.extension: %v", ErrInvalidValue, err)
		}
		if strings.EqualFold(c.Output.Extension, ".html") {
			return fmt.Errorf("%w: output.extension: .html is reserved for the preview", ErrInvalidValue)
		}
		for _, ext := range lotlist.PhotoExtensions {
			if strings.EqualFold(c.Output.Extension, ext) {
				return fmt.Errorf("%w: output.extension: %s is reserved for photos", ErrInvalidValue, c.Output.Extension)
			}
		}
	}

	enums := []struct {
		name    string
		value   string
		allowed []string
	}{
		{"listing.collision", c.Listing.Collision, CollisionPolicies},
		{"preview.format", c.Preview.Format, PreviewFormats},
		{"log.level", c.Log.Level, LogLevels},
		{"log.format", c.Log.Format, LogFormats},
	}
	for _, e := range enums {
		if err := validateEnum(e.name, e.value, e.allowed); err != nil {
			return err
		}
	}

	if c.Preview.DateFormat != "" {
		if _, err := photometa.ParseDateFormat(c.Preview.DateFormat); err != nil {
			return fmt.Errorf("%w: preview.dateFormat: %v", ErrInvalidValue, err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum accepts an empty value (meaning default) or one of allowed.
func validateEnum(fieldName, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order:
// current directory (.yaml, .yml), then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-lotlist", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
