package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/covidmx/serendipia/internal/dataset"
	"github.com/covidmx/serendipia/internal/report"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatCSV  OutputFormat = "csv"
	FormatJSON OutputFormat = "json"
)

// dateLayout renders time.Time cells in output.
const dateLayout = "2006-01-02"

// WriteOutput writes the result in the specified format. A cleaned result
// writes the single combined table; a raw result writes each per-request
// table in order.
func WriteOutput(w io.Writer, result *dataset.Result, format OutputFormat) error {
	tables := result.Raw
	if result.Combined != nil {
		tables = []*report.Table{result.Combined}
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, tables, result.Combined != nil)
	case FormatCSV:
		return writeCSV(w, tables)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeCSV outputs tables as CSV, blank-line separated when there is more
// than one.
func writeCSV(w io.Writer, tables []*report.Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		cw := csv.NewWriter(w)
		if err := cw.Write(t.Columns); err != nil {
			return err
		}
		record := make([]string, len(t.Columns))
		for _, row := range t.Rows {
			for j, col := range t.Columns {
				record[j] = cellString(row[col])
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON outputs a cleaned table as an array of row objects, or raw
// tables as an array of such arrays.
func writeJSON(w io.Writer, tables []*report.Table, combined bool) error {
	encode := func(t *report.Table) []map[string]any {
		rows := make([]map[string]any, 0, len(t.Rows))
		for _, row := range t.Rows {
			obj := make(map[string]any, len(t.Columns))
			for _, col := range t.Columns {
				obj[col] = cellValue(row[col])
			}
			rows = append(rows, obj)
		}
		return rows
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if combined {
		return encoder.Encode(encode(tables[0]))
	}
	out := make([][]map[string]any, 0, len(tables))
	for _, t := range tables {
		out = append(out, encode(t))
	}
	return encoder.Encode(out)
}

// cellString renders a cell for CSV: dates as 2006-01-02, nulls empty.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case time.Time:
		return val.Format(dateLayout)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// cellValue renders a cell for JSON: dates as 2006-01-02 strings, missing
// cells as null.
func cellValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format(dateLayout)
	}
	return v
}
