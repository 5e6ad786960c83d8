// Package assets provides listing templates, preview templates and sample
// input files.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the generator. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the asset is
// not found, so a user can override the preview page while keeping the
// built-in listing templates.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    ├── listing/
//	    │   └── {name}.txt       # listing templates with {Field} placeholders
//	    └── preview/
//	        └── {name}.html      # html/template for the gallery preview
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
