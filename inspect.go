package lotlist

import (
	"os"
	"strings"

	"github.com/alnah/go-lotlist/internal/assets"
	"github.com/alnah/go-lotlist/internal/fileutil"
	"github.com/alnah/go-lotlist/internal/tabular"
)

// Inspection describes an input layout without writing anything.
type Inspection struct {
	Layout              Layout
	InputDirExists      bool
	TemplateExists      bool
	Placeholders        []string
	UnknownPlaceholders []string
	DataFileExists      bool
	DataError           string
	Columns             []string
	MissingColumns      []string
	Rows                int
	RowsWithoutLotNo    int
	PhotoSource         string
	PhotosFallback      bool
	RowsWithPhoto       int
}

// Ready reports whether a run over the layout would get past input
// validation.
func (in *Inspection) Ready() bool {
	return in.InputDirExists && in.DataFileExists && in.DataError == "" && in.Rows > 0
}

// Inspect examines layout. When the template file does not exist the
// built-in default template is inspected instead, since that is what a
// run would write and use.
func Inspect(layout Layout) *Inspection {
	l := layout.Resolved()
	in := &Inspection{Layout: l, InputDirExists: fileutil.DirExists(l.InputDir)}
	if !in.InputDirExists {
		return in
	}

	tmpl := assets.DefaultListingTemplate()
	if data, err := os.ReadFile(l.TemplateFile); err == nil { // #nosec G304 -- template path is user-provided
		in.TemplateExists = true
		tmpl = string(data)
	}
	in.Placeholders = Placeholders(tmpl)

	in.PhotoSource, in.PhotosFallback = l.PhotoSource()

	in.DataFileExists = fileutil.FileExists(l.DataFile)
	if !in.DataFileExists {
		return in
	}
	table, err := tabular.ReadFile(l.DataFile)
	if err != nil {
		in.DataError = err.Error()
		return in
	}
	in.Columns = table.Header
	in.MissingColumns = table.Missing(RecommendedColumns...)
	in.UnknownPlaceholders = table.Missing(in.Placeholders...)
	in.Rows = len(table.Records)

	for _, row := range rowsFromTable(table) {
		lotNo := strings.TrimSpace(row.LotNo())
		if lotNo == "" {
			in.RowsWithoutLotNo++
			continue
		}
		if _, ok := FindPhoto(in.PhotoSource, lotNo); ok {
			in.RowsWithPhoto++
		}
	}
	return in
}
