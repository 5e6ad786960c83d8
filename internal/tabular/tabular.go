// Package tabular reads inventory spreadsheets into a header and records.
//
// CSV files are read with encoding/csv; .xlsx workbooks with excelize, using
// the first sheet. Both produce the same Table so callers never branch on
// the source format.
package tabular

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sentinel errors for table reading.
var (
	ErrUnsupportedFormat = errors.New("unsupported data file format")
	ErrNoHeader          = errors.New("data file has no header row")
	ErrParse             = errors.New("failed to parse data file")
)

const utf8BOM = "\ufeff"

// Table is a header plus the records that follow it.
type Table struct {
	Header  []string
	Records []Record
}

// Record is one data row. Values is aligned with Table.Header: short rows
// are padded with empty strings and extra cells are dropped.
type Record struct {
	Line   int // 1-based line (CSV) or row (XLSX) in the source
	Values []string
}

// Formats returns the supported data file extensions.
func Formats() []string {
	return []string{".csv", ".xlsx"}
}

// ReadFile reads path, choosing the parser from its extension.
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path) // #nosec G304 -- data file path is user-provided
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, filepath.Ext(path), strings.Join(Formats(), ", "))
	}
}

// ReadCSV parses comma-separated input. A leading UTF-8 byte order mark is
// stripped from the header. Empty lines are skipped; a record of empty
// cells is kept so the caller can count it.
func ReadCSV(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && string(head) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	t := &Table{Header: normalizeHeader(header)}
	for {
		values, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		line, _ := cr.FieldPos(0)
		t.Records = append(t.Records, Record{Line: line, Values: align(values, len(t.Header))})
	}
	return t, nil
}

// ReadXLSX reads the first sheet of a workbook. Leading empty rows before
// the header and rows with no cells are skipped the same way CSV empty lines
// are. Rows whose cells hold only whitespace are kept.
func ReadXLSX(path string) (t *Table, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrParse, cerr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrParse, sheets[0], err)
	}

	i := 0
	for i < len(rows) && isBlank(rows[i]) {
		i++
	}
	if i == len(rows) {
		return nil, ErrNoHeader
	}

	t = &Table{Header: normalizeHeader(rows[i])}
	for j := i + 1; j < len(rows); j++ {
		if len(rows[j]) == 0 {
			continue
		}
		t.Records = append(t.Records, Record{Line: j + 1, Values: align(rows[j], len(t.Header))})
	}
	return t, nil
}

// Missing returns the names from want that are absent from the header.
func (t *Table) Missing(want ...string) []string {
	have := make(map[string]bool, len(t.Header))
	for _, h := range t.Header {
		have[h] = true
	}
	var missing []string
	for _, w := range want {
		if !have[w] {
			missing = append(missing, w)
		}
	}
	return missing
}

// normalizeHeader trims column names. Spreadsheet exports often pad them.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(strings.TrimPrefix(h, utf8BOM))
	}
	return out
}

func align(values []string, n int) []string {
	out := make([]string, n)
	copy(out, values)
	return out
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
