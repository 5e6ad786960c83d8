package lotlist

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-lotlist/internal/assets"
	"github.com/alnah/go-lotlist/internal/fileutil"
	"github.com/alnah/go-lotlist/internal/markup"
	"github.com/alnah/go-lotlist/internal/photometa"
)

// PreviewFileName is the aggregate preview written into the output directory.
const PreviewFileName = "preview.html"

// DefaultPreviewTitle heads the preview when no title is configured.
const DefaultPreviewTitle = "Listing Preview"

// PreviewOptions configures preview assembly.
type PreviewOptions struct {
	Title      string        // default DefaultPreviewTitle
	Extension  string        // listing extension, default DefaultExtension
	Format     PreviewFormat // default PreviewText
	Template   string        // html/template source, default built-in
	DateFormat string        // photo capture date format, "" hides dates
}

// PreviewEntry is one listing section of the preview.
type PreviewEntry struct {
	Identifier string        // file name without extension, e.g. "Lot_1601"
	Name       string        // listing file name
	Text       string        // listing content as written
	HTML       template.HTML // rendered body when Format is markdown
	Photo      string        // image file name relative to the preview, "" if none
	PhotoTaken string        // formatted capture date, "" if unknown
}

// Preview is the data behind preview.html.
type Preview struct {
	Title        string
	Total        int
	WithPhoto    int
	WithoutPhoto int
	Entries      []PreviewEntry
}

// AssemblePreview scans dir for listing files and pairs each with an image
// named after it. Counts always come from the scan, never from a run
// summary, so the preview reflects what is on disk.
func AssemblePreview(dir string, opts PreviewOptions) (*Preview, error) {
	opts = opts.withDefaults()

	var dateLayout string
	if opts.DateFormat != "" {
		layout, err := photometa.ParseDateFormat(opts.DateFormat)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPreviewRender, err)
		}
		dateLayout = layout
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreviewRender, err)
	}

	var listings []string
	images := make(map[string][]string) // base name -> image file names
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		base := strings.TrimSuffix(name, ext)
		switch {
		case name == PreviewFileName:
		case strings.EqualFold(ext, opts.Extension):
			listings = append(listings, name)
		case photoPriority(ext) >= 0:
			images[base] = append(images[base], name)
		}
	}
	sort.Strings(listings)

	var md *markup.Renderer
	if opts.Format == PreviewMarkdown {
		md = markup.NewRenderer()
	}

	p := &Preview{Title: opts.Title, Entries: make([]PreviewEntry, 0, len(listings))}
	for _, name := range listings {
		content, err := os.ReadFile(filepath.Join(dir, name)) // #nosec G304 -- name comes from ReadDir
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPreviewRender, err)
		}
		entry := PreviewEntry{
			Identifier: strings.TrimSuffix(name, filepath.Ext(name)),
			Name:       name,
			Text:       string(content),
		}
		if md != nil {
			frag, err := md.Fragment(entry.Text)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrPreviewRender, name, err)
			}
			entry.HTML = template.HTML(frag) // #nosec G203 -- goldmark output with raw HTML disabled
		}
		if photo := pickImage(images[entry.Identifier]); photo != "" {
			entry.Photo = photo
			if dateLayout != "" {
				entry.PhotoTaken = photometa.Describe(filepath.Join(dir, photo), dateLayout)
			}
			p.WithPhoto++
		}
		p.Entries = append(p.Entries, entry)
	}
	p.Total = len(p.Entries)
	p.WithoutPhoto = p.Total - p.WithPhoto
	return p, nil
}

// pickImage returns the candidate with the highest-priority extension,
// breaking ties by name.
func pickImage(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	sorted := append([]string(nil), candidates...)
	sort.Slice(sorted, func(i, j int) bool {
		pi, pj := photoPriority(filepath.Ext(sorted[i])), photoPriority(filepath.Ext(sorted[j]))
		if pi != pj {
			return pi < pj
		}
		return sorted[i] < sorted[j]
	})
	return sorted[0]
}

// Render executes the preview template.
func (p *Preview) Render(tmplSource string) ([]byte, error) {
	if tmplSource == "" {
		src, err := assets.NewEmbeddedLoader().LoadPreviewTemplate(assets.DefaultName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPreviewRender, err)
		}
		tmplSource = src
	}
	tmpl, err := template.New("preview").Parse(tmplSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreviewRender, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreviewRender, err)
	}
	return buf.Bytes(), nil
}

// WritePreview assembles the preview for dir and writes it to
// dir/preview.html, replacing any previous preview.
func WritePreview(dir string, opts PreviewOptions) (*Preview, error) {
	p, err := AssemblePreview(dir, opts)
	if err != nil {
		return nil, err
	}
	out, err := p.Render(opts.Template)
	if err != nil {
		return nil, err
	}
	if err := fileutil.WriteFile(filepath.Join(dir, PreviewFileName), out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreviewRender, err)
	}
	return p, nil
}

func (o PreviewOptions) withDefaults() PreviewOptions {
	if o.Title == "" {
		o.Title = DefaultPreviewTitle
	}
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
	if o.Format == "" {
		o.Format = PreviewText
	}
	return o
}
