package lotlist

import "github.com/alnah/go-lotlist/internal/tabular"

// Conventional column names.
const (
	ColumnLotNo        = "LotNo"
	ColumnModelNo      = "ModelNo"
	ColumnDescription  = "Description"
	ColumnContactPhone = "ContactPhone"
)

// RecommendedColumns are the columns a data file is expected to carry.
// Only LotNo is required for a row to produce a listing.
var RecommendedColumns = []string{ColumnLotNo, ColumnModelNo, ColumnDescription, ColumnContactPhone}

// Field is one column of a row.
type Field struct {
	Name  string
	Value string
}

// Row is an ordered column-to-value mapping read from the data file.
type Row struct {
	Line   int // 1-based source line, 0 when built by hand
	Fields []Field
}

// NewRow pairs header names with values. Columns with an empty name are
// dropped. When a name repeats, the later value wins but the column keeps
// its first position.
func NewRow(line int, header, values []string) Row {
	r := Row{Line: line, Fields: make([]Field, 0, len(header))}
	index := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		var v string
		if i < len(values) {
			v = values[i]
		}
		if at, ok := index[name]; ok {
			r.Fields[at].Value = v
			continue
		}
		index[name] = len(r.Fields)
		r.Fields = append(r.Fields, Field{Name: name, Value: v})
	}
	return r
}

// Value returns the raw value of the named column.
func (r Row) Value(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// LotNo returns the raw lot number, or "" when the column is absent.
func (r Row) LotNo() string {
	v, _ := r.Value(ColumnLotNo)
	return v
}

func rowsFromTable(t *tabular.Table) []Row {
	rows := make([]Row, len(t.Records))
	for i, rec := range t.Records {
		rows[i] = NewRow(rec.Line, t.Header, rec.Values)
	}
	return rows
}
