package roster

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Table is a parsed CSV document: its header and one Row per record.
type Table struct {
	Header []string
	Rows   []Row
}

// ReadTable reads a CSV document with a header row. Header names are used
// verbatim. Blank lines are skipped, extra columns are kept, and short
// records simply lack the trailing keys.
func ReadTable(r io.Reader) (Table, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return Table{}, nil
	}
	if err != nil {
		return Table{}, errors.Mark(errors.Wrap(err, "read header"), ErrParseFailure)
	}

	t := Table{Header: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, errors.Mark(errors.Wrap(err, "read row"), ErrParseFailure)
		}
		row := make(Row, len(header))
		for i, value := range record {
			if i >= len(header) {
				break
			}
			row[header[i]] = value
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Parse reads a roster CSV and returns its rows.
func Parse(r io.Reader) ([]Row, error) {
	t, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	return t.Rows, nil
}

// ParseFile opens path and parses it as a roster CSV.
func ParseFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, errors.WithStack(err)
	}
	defer f.Close()
	return ReadTable(f)
}

// Validate rejects tables missing any required column and tables without
// data rows. Missing columns are reported first.
func (t Table) Validate(required ...string) error {
	present := make(map[string]bool, len(t.Header))
	for _, col := range t.Header {
		present[col] = true
	}
	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return errors.Mark(&MissingColumnsError{Columns: missing}, ErrMissingColumns)
	}
	if len(t.Rows) == 0 {
		return errors.WithStack(ErrNoRows)
	}
	return nil
}
