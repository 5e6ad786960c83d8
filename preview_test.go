package lotlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ---------------------------------------------------------------------------
// AssemblePreview
// ---------------------------------------------------------------------------

func TestAssemblePreview(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"Lot_1602.txt":  "Trailer jack",
		"Lot_1601.txt":  "Heavy Duty Axle",
		"Lot_1601.PNG":  "png",
		"Lot_1601.jpg":  "jpg",
		"Lot_1603.txt":  "Hitch pins",
		"notes.txt":     "stray notes",
		"preview.html":  "<old>",
		"Lot_9999.jpg":  "orphan photo",
		"Lot_1602.webp": "unsupported",
		"sub/Lot_1.txt": "nested",
	})

	p, err := AssemblePreview(dir, PreviewOptions{})
	if err != nil {
		t.Fatalf("AssemblePreview() error = %v", err)
	}

	want := &Preview{
		Title:        DefaultPreviewTitle,
		Total:        4,
		WithPhoto:    1,
		WithoutPhoto: 3,
		Entries: []PreviewEntry{
			{Identifier: "Lot_1601", Name: "Lot_1601.txt", Text: "Heavy Duty Axle", Photo: "Lot_1601.jpg"},
			{Identifier: "Lot_1602", Name: "Lot_1602.txt", Text: "Trailer jack"},
			{Identifier: "Lot_1603", Name: "Lot_1603.txt", Text: "Hitch pins"},
			{Identifier: "notes", Name: "notes.txt", Text: "stray notes"},
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("AssemblePreview() mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemblePreview_ImageExtensionCaseInsensitive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"Lot_7.txt":  "tiller",
		"Lot_7.JPEG": "img",
		"Lot_7.gif":  "img",
	})

	p, err := AssemblePreview(dir, PreviewOptions{})
	if err != nil {
		t.Fatalf("AssemblePreview() error = %v", err)
	}
	if got := p.Entries[0].Photo; got != "Lot_7.JPEG" {
		t.Errorf("Photo = %q, want %q", got, "Lot_7.JPEG")
	}
}

func TestAssemblePreview_EmptyDir(t *testing.T) {
	t.Parallel()

	p, err := AssemblePreview(t.TempDir(), PreviewOptions{Title: "Nothing yet"})
	if err != nil {
		t.Fatalf("AssemblePreview() error = %v", err)
	}
	if p.Total != 0 || p.WithPhoto != 0 || p.WithoutPhoto != 0 || len(p.Entries) != 0 {
		t.Errorf("AssemblePreview() = %+v, want empty preview", p)
	}
}

func TestAssemblePreview_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := AssemblePreview(filepath.Join(t.TempDir(), "absent"), PreviewOptions{})
	if !errors.Is(err, ErrPreviewRender) {
		t.Errorf("AssemblePreview() error = %v, want ErrPreviewRender", err)
	}
}

func TestAssemblePreview_CustomExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"Lot_1.md": "**bold**", "Lot_2.txt": "ignored"})

	p, err := AssemblePreview(dir, PreviewOptions{Extension: ".md", Format: PreviewMarkdown})
	if err != nil {
		t.Fatalf("AssemblePreview() error = %v", err)
	}
	if p.Total != 1 {
		t.Fatalf("Total = %d, want 1", p.Total)
	}
	if got := string(p.Entries[0].HTML); !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("HTML = %q, want rendered markdown", got)
	}
}

func TestAssemblePreview_InvalidDateFormat(t *testing.T) {
	t.Parallel()

	_, err := AssemblePreview(t.TempDir(), PreviewOptions{DateFormat: "[YYYY"})
	if !errors.Is(err, ErrPreviewRender) {
		t.Errorf("AssemblePreview() error = %v, want ErrPreviewRender", err)
	}
}

func TestPickImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{name: "none", candidates: nil, want: ""},
		{name: "priority order", candidates: []string{"a.bmp", "a.png", "a.jpeg"}, want: "a.jpeg"},
		{name: "ties broken by name", candidates: []string{"a.jpg", "a.JPG"}, want: "a.JPG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pickImage(tt.candidates); got != tt.want {
				t.Errorf("pickImage(%v) = %q, want %q", tt.candidates, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// WritePreview / Render
// ---------------------------------------------------------------------------

func TestWritePreview(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"Lot_1601.txt": "FOR SALE: Axle & Hub <heavy>\n  Model: X7",
		"Lot_1601.jpg": "jpg",
		"Lot_1602.txt": "Trailer jack",
	})

	p, err := WritePreview(dir, PreviewOptions{Title: "Spring <Auction>"})
	if err != nil {
		t.Fatalf("WritePreview() error = %v", err)
	}
	if p.Total != 2 {
		t.Errorf("Total = %d, want 2", p.Total)
	}

	html := readFile(t, filepath.Join(dir, PreviewFileName))
	for _, want := range []string{
		"<title>Spring &lt;Auction&gt;</title>",
		"Total listings: 2 | With photo: 1 | Without photo: 1",
		`<img src="Lot_1601.jpg" alt="Photo for Lot_1601">`,
		"<pre>FOR SALE: Axle &amp; Hub &lt;heavy&gt;\n  Model: X7</pre>",
		"No photo available",
		"<pre>Trailer jack</pre>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("preview.html missing %q:\n%s", want, html)
		}
	}
	if strings.Index(html, "Lot_1601") > strings.Index(html, "Lot_1602") {
		t.Error("sections are not in lexicographic order")
	}
}

func TestWritePreview_RescansOnEveryCall(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"Lot_1.txt": "one"})
	if _, err := WritePreview(dir, PreviewOptions{}); err != nil {
		t.Fatalf("WritePreview() error = %v", err)
	}

	writeFiles(t, dir, map[string]string{"Lot_2.txt": "two", "Lot_2.png": "img"})
	p, err := WritePreview(dir, PreviewOptions{})
	if err != nil {
		t.Fatalf("WritePreview() error = %v", err)
	}
	if p.Total != 2 || p.WithPhoto != 1 {
		t.Errorf("second preview = %d total, %d with photo; want 2 and 1", p.Total, p.WithPhoto)
	}
}

func TestWritePreview_CustomTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"Lot_1.txt": "one", "Lot_2.txt": "two"})

	tmpl := `{{.Title}}:{{range .Entries}} {{.Identifier}}{{end}}`
	if _, err := WritePreview(dir, PreviewOptions{Title: "T", Template: tmpl}); err != nil {
		t.Fatalf("WritePreview() error = %v", err)
	}
	if got := readFile(t, filepath.Join(dir, PreviewFileName)); got != "T: Lot_1 Lot_2" {
		t.Errorf("preview.html = %q, want %q", got, "T: Lot_1 Lot_2")
	}
}

func TestPreview_Render_BadTemplate(t *testing.T) {
	t.Parallel()

	p := &Preview{}
	if _, err := p.Render("{{.Missing"); !errors.Is(err, ErrPreviewRender) {
		t.Errorf("Render() error = %v, want ErrPreviewRender", err)
	}
	if _, err := p.Render("{{.NoSuchField}}"); !errors.Is(err, ErrPreviewRender) {
		t.Errorf("Render() error = %v, want ErrPreviewRender", err)
	}
}

func TestWritePreview_Deterministic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"Lot_1.txt": "one", "Lot_1.gif": "g"})

	var outputs []string
	for range 2 {
		if _, err := WritePreview(dir, PreviewOptions{}); err != nil {
			t.Fatalf("WritePreview() error = %v", err)
		}
		outputs = append(outputs, readFile(t, filepath.Join(dir, PreviewFileName)))
	}
	if diff := cmp.Diff(outputs[0], outputs[1]); diff != "" {
		t.Errorf("preview differs between runs (-first +second):\n%s", diff)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{"Lot_1.gif", "Lot_1.txt", PreviewFileName}
	if diff := cmp.Diff(want, names, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("directory contents mismatch (-want +got):\n%s", diff)
	}
}
