package assets

// DefaultName is the name of the built-in listing and preview templates.
const DefaultName = "default"

// AssetLoader defines the contract for loading listing and preview templates.
type AssetLoader interface {
	// LoadListingTemplate loads a listing template by name (without .txt extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadListingTemplate(name string) (string, error)

	// LoadPreviewTemplate loads an HTML preview template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadPreviewTemplate(name string) (string, error)
}
