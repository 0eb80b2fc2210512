// Package csvutil reads comma-separated data published by sources that
// are sloppy about encoding and row shape: a UTF-8 BOM may or may not be
// present, rows may have differing field counts, and quoting is not
// guaranteed to be well-formed.
package csvutil

import (
	"bytes"
	"encoding/csv"
	"io"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// ReadRows decodes every well-formed row of `raw`, dropping rows the
// csv reader rejects instead of failing the whole document.
func ReadRows(raw []byte) [][]string {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		rows = append(rows, record)
	}
	return rows
}
