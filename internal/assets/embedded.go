package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed templates
var templates embed.FS

//go:embed samples
var samples embed.FS

// EmbeddedLoader loads assets from embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadListingTemplate loads a listing template from embedded assets by name.
func (e *EmbeddedLoader) LoadListingTemplate(name string) (string, error) {
	return readEmbedded("templates/listing/", name, ".txt")
}

// LoadPreviewTemplate loads a preview template from embedded assets by name.
func (e *EmbeddedLoader) LoadPreviewTemplate(name string) (string, error) {
	return readEmbedded("templates/preview/", name, ".html")
}

// ListingTemplateNames returns the names of the built-in listing templates, sorted.
func (e *EmbeddedLoader) ListingTemplateNames() []string {
	entries, err := fs.ReadDir(templates, "templates/listing")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

func readEmbedded(dir, name, ext string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile(dir + name + ext)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// Sample returns an embedded sample file ("inventory.csv", "lotlist.yaml").
func Sample(filename string) ([]byte, error) {
	if filename == "" || strings.ContainsAny(filename, "/\\") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAssetName, filename)
	}
	content, err := samples.ReadFile("samples/" + filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSampleNotFound, filename)
	}
	return content, nil
}

// DefaultListingTemplate returns the built-in listing template.
// The embedded asset is always present, so this never fails at runtime.
func DefaultListingTemplate() string {
	content, err := NewEmbeddedLoader().LoadListingTemplate(DefaultName)
	if err != nil {
		panic("assets: default listing template missing from build: " + err.Error())
	}
	return content
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
