package lotlist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alnah/go-lotlist/internal/assets"
	"github.com/alnah/go-lotlist/internal/fileutil"
	"github.com/alnah/go-lotlist/internal/tabular"
)

// Default input layout, relative to the working directory.
const (
	DefaultInputDir     = "input"
	DefaultDataFile     = "inventory.csv"
	DefaultTemplateFile = "template.txt"
	DefaultPhotosDir    = "photos"
	DefaultOutputDir    = "output"
)

// SampleDataFileName is written next to a missing data file.
const SampleDataFileName = "inventory_sample.csv"

// Layout locates the inputs and outputs of a run. Relative DataFile,
// TemplateFile and PhotosDir are resolved against InputDir. Empty fields
// take the package defaults.
type Layout struct {
	InputDir     string
	DataFile     string
	TemplateFile string
	PhotosDir    string
	OutputDir    string
}

// Resolved returns the layout with defaults applied and paths joined.
func (l Layout) Resolved() Layout {
	r := Layout{
		InputDir:     orDefault(l.InputDir, DefaultInputDir),
		DataFile:     orDefault(l.DataFile, DefaultDataFile),
		TemplateFile: orDefault(l.TemplateFile, DefaultTemplateFile),
		PhotosDir:    orDefault(l.PhotosDir, DefaultPhotosDir),
		OutputDir:    orDefault(l.OutputDir, DefaultOutputDir),
	}
	r.DataFile = underDir(r.InputDir, r.DataFile)
	r.TemplateFile = underDir(r.InputDir, r.TemplateFile)
	r.PhotosDir = underDir(r.InputDir, r.PhotosDir)
	return r
}

// PhotoSource returns the directory searched for photos: PhotosDir when it
// exists, otherwise InputDir. The layout must be resolved.
func (l Layout) PhotoSource() (dir string, fallback bool) {
	if fileutil.DirExists(l.PhotosDir) {
		return l.PhotosDir, false
	}
	return l.InputDir, true
}

// SampleDataPath returns where the example data file is written when
// dataFile is missing.
func SampleDataPath(dataFile string) string {
	return filepath.Join(filepath.Dir(dataFile), SampleDataFileName)
}

// GeneratorOptions holds run settings that are not per-row.
type GeneratorOptions struct {
	BuiltinTemplate string // listing template used when the template file is missing
	Preview         *PreviewOptions
	Assets          *assets.AssetResolver // nil uses embedded assets only
}

// Generator runs the whole pipeline over an input layout.
type Generator struct {
	layout Layout
	gen    GeneratorOptions
	cfg    settings
	opts   []Option
}

// NewGenerator creates a Generator for layout. A nil Preview in gen
// disables the preview.
func NewGenerator(layout Layout, gen GeneratorOptions, opts ...Option) *Generator {
	g := &Generator{
		layout: layout.Resolved(),
		gen:    gen,
		cfg:    defaultSettings(),
		opts:   opts,
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}
	return g
}

// Result describes a completed run.
type Result struct {
	RunID           string
	Layout          Layout
	PhotoSource     string
	TemplateCreated bool
	Summary         *Summary
	Preview         *Preview // nil when the preview is disabled
	PreviewPath     string
}

// Run validates the input layout, renders every row and writes the
// preview. Errors caused by the input layout are returned before the
// output directory is created.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	log := g.cfg.logger.With(zap.String("run_id", runID))
	l := g.layout

	res := &Result{RunID: runID, Layout: l}

	if !fileutil.DirExists(l.InputDir) {
		return nil, fmt.Errorf("%w: %s", ErrMissingInputDir, l.InputDir)
	}

	tmpl, created, err := g.loadTemplate()
	if err != nil {
		return nil, err
	}
	res.TemplateCreated = created
	if created {
		log.Info("default template written", zap.String("path", l.TemplateFile))
	}

	rows, err := LoadRows(l.DataFile)
	if err != nil {
		return nil, err
	}
	log.Debug("data file loaded", zap.String("path", l.DataFile), zap.Int("rows", len(rows)))

	photos, fallback := l.PhotoSource()
	res.PhotoSource = photos
	if fallback {
		log.Info("photos directory not found, using input directory",
			zap.String("photos_dir", l.PhotosDir))
	}

	if err := os.MkdirAll(l.OutputDir, fileutil.DirPermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputDir, err)
	}

	opts := append(append([]Option(nil), g.opts...), WithLogger(log))
	proc := NewProcessor(l.OutputDir, photos, opts...)
	sum, err := proc.Process(ctx, tmpl, rows)
	res.Summary = sum
	if err != nil {
		return res, err
	}
	log.Info("listings generated",
		zap.Int("rows", sum.RowsTotal),
		zap.Int("created", sum.ListingsCreated),
		zap.Int("skipped", sum.RowsSkipped),
		zap.Int("photos", sum.PhotosMatched),
		zap.Int("collisions", sum.Collisions))

	if g.gen.Preview != nil {
		popts, err := g.previewOptions()
		if err != nil {
			return res, err
		}
		p, err := WritePreview(l.OutputDir, popts)
		if err != nil {
			return res, err
		}
		res.Preview = p
		res.PreviewPath = filepath.Join(l.OutputDir, PreviewFileName)
		log.Info("preview written", zap.String("path", res.PreviewPath), zap.Int("listings", p.Total))
	}

	return res, nil
}

// loadTemplate reads the template file, writing the built-in template
// first when the file does not exist.
func (g *Generator) loadTemplate() (string, bool, error) {
	path := g.layout.TemplateFile
	data, err := os.ReadFile(path) // #nosec G304 -- template path is user-provided
	if err == nil {
		return string(data), false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", false, fmt.Errorf("%w: %s: %v", ErrUnreadableTemplate, path, err)
	}

	builtin, err := g.builtinTemplate()
	if err != nil {
		return "", false, err
	}
	if err := fileutil.WriteFile(path, []byte(builtin)); err != nil {
		return "", false, fmt.Errorf("%w: writing default %s: %v", ErrUnreadableTemplate, path, err)
	}
	return builtin, true, nil
}

func (g *Generator) builtinTemplate() (string, error) {
	name := orDefault(g.gen.BuiltinTemplate, assets.DefaultName)
	if g.gen.Assets != nil {
		src, err := g.gen.Assets.LoadListingTemplate(name)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnreadableTemplate, err)
		}
		return src, nil
	}
	src, err := assets.NewEmbeddedLoader().LoadListingTemplate(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableTemplate, err)
	}
	return src, nil
}

func (g *Generator) previewOptions() (PreviewOptions, error) {
	popts := *g.gen.Preview
	popts.Extension = g.cfg.extension
	if popts.Template == "" && g.gen.Assets != nil {
		src, err := g.gen.Assets.LoadPreviewTemplate(assets.DefaultName)
		if err != nil {
			return PreviewOptions{}, fmt.Errorf("%w: %v", ErrPreviewRender, err)
		}
		popts.Template = src
	}
	return popts, nil
}

// LoadRows reads a data file into rows. A missing file gets an example
// written next to it and fails with ErrMissingDataFile. A file with a
// header but no records fails with ErrEmptyDataFile.
func LoadRows(dataFile string) ([]Row, error) {
	if !fileutil.FileExists(dataFile) {
		sample := SampleDataPath(dataFile)
		if content, err := assets.Sample("inventory.csv"); err == nil {
			if _, werr := fileutil.WriteFileIfMissing(sample, content); werr != nil {
				return nil, fmt.Errorf("%w: %s (could not write example: %v)", ErrMissingDataFile, dataFile, werr)
			}
		}
		return nil, fmt.Errorf("%w: %s (example written to %s)", ErrMissingDataFile, dataFile, sample)
	}

	table, err := tabular.ReadFile(dataFile)
	switch {
	case errors.Is(err, tabular.ErrUnsupportedFormat):
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedDataFormat, err)
	case errors.Is(err, tabular.ErrNoHeader):
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataFile, dataFile)
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %v", ErrReadDataFile, dataFile, err)
	}
	if len(table.Records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDataFile, dataFile)
	}
	return rowsFromTable(table), nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func underDir(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
