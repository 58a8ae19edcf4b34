// Package sheet decodes uploaded spreadsheet files into the raw tabular
// shape the ingestor consumes. Multiple decode engines are tried in an
// explicit order with first-success-wins semantics, because uploads
// arrive in whatever format the HR export tool of the day produced:
// modern xlsx workbooks, legacy .xls binaries, or plain CSV.
package sheet

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/paylens/paylens/pkg/errors"
	"github.com/paylens/paylens/pkg/ingest"
	"github.com/paylens/paylens/pkg/logging"
)

// maxLegacyRows bounds how many rows the legacy .xls engine reads.
const maxLegacyRows = 100000

// engine is one spreadsheet decode strategy.
type engine struct {
	name   string
	decode func(data []byte) ([][]string, error)
}

var (
	xlsxEngine = engine{name: "xlsx", decode: decodeXLSX}
	xlsEngine  = engine{name: "xls", decode: decodeXLS}
	csvEngine  = engine{name: "csv", decode: decodeCSV}
)

// enginesFor orders the decode engines by how likely they are to handle
// the given filename. Every engine still runs on mismatch, so a
// mislabeled upload decodes as long as any engine can read it.
func enginesFor(filename string) []engine {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		return []engine{xlsEngine, xlsxEngine, csvEngine}
	case ".csv", ".txt":
		return []engine{csvEngine, xlsxEngine, xlsEngine}
	default:
		return []engine{xlsxEngine, xlsEngine, csvEngine}
	}
}

// Decode reads an uploaded spreadsheet and returns its first worksheet
// as a raw table: the first row becomes the header, the rest the data
// rows. Engines run in order; the first that succeeds wins. If every
// engine fails, the per-engine failures are collected into the returned
// error.
func Decode(r io.Reader, filename string) (*ingest.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", filename, err)
	}

	failures := make(map[string]error)
	for _, eng := range enginesFor(filename) {
		rows, decodeErr := eng.decode(data)
		if decodeErr != nil {
			failures[eng.name] = decodeErr
			continue
		}
		logging.Default().Debug().
			Str("file", filename).
			Str("engine", eng.name).
			Int("rows", len(rows)).
			Msg("spreadsheet decoded")
		return tableFromRows(rows, filename)
	}
	return nil, errors.NewDecodeError(filename, failures)
}

// tableFromRows splits raw rows into header and data.
func tableFromRows(rows [][]string, filename string) (*ingest.Table, error) {
	if len(rows) == 0 {
		return nil, errors.NewParseError("spreadsheet", filename, "worksheet is empty", nil)
	}
	return ingest.NewTable(rows[0], rows[1:]), nil
}

// decodeXLSX reads modern Excel workbooks via excelize.
func decodeXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("no worksheet found")
	}
	return file.GetRows(sheetName)
}

// decodeXLS reads legacy binary Excel workbooks.
func decodeXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if workbook.NumSheets() == 0 {
		return nil, errors.New("no worksheet found")
	}
	return workbook.ReadAllCells(maxLegacyRows), nil
}

// decodeCSV reads comma-separated text with variable-width rows.
func decodeCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}
