package cli

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/covidmx/serendipia/internal/dataset"
	"github.com/covidmx/serendipia/internal/report"
)

func combinedResult() *dataset.Result {
	return &dataset.Result{
		Combined: &report.Table{
			Columns: []string{"n_caso", "fecha_busqueda", "estado"},
			Rows: []report.Row{
				{"n_caso": "1", "fecha_busqueda": time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC), "estado": "Jalisco"},
				{"n_caso": "2", "fecha_busqueda": time.Date(2020, time.May, 2, 0, 0, 0, 0, time.UTC)},
			},
		},
	}
}

func TestWriteOutputCSV(t *testing.T) {
	var sb strings.Builder
	if err := WriteOutput(&sb, combinedResult(), FormatCSV); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines: %q", len(lines), sb.String())
	}
	if lines[0] != "n_caso,fecha_busqueda,estado" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "1,2020-05-01,Jalisco" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	// Null cells render empty.
	if lines[2] != "2,2020-05-02," {
		t.Errorf("unexpected second row: %q", lines[2])
	}
}

func TestWriteOutputJSON(t *testing.T) {
	var sb strings.Builder
	if err := WriteOutput(&sb, combinedResult(), FormatJSON); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal([]byte(sb.String()), &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["fecha_busqueda"] != "2020-05-01" {
		t.Errorf("expected formatted date, got %v", rows[0]["fecha_busqueda"])
	}
	if v, ok := rows[1]["estado"]; !ok || v != nil {
		t.Errorf("expected null estado, got %v (present=%v)", v, ok)
	}
}

func TestWriteOutputRawTables(t *testing.T) {
	result := &dataset.Result{
		Raw: []*report.Table{
			{Columns: []string{"a"}, Rows: []report.Row{{"a": "1"}}},
			{Columns: []string{"b"}, Rows: []report.Row{{"b": "2"}}},
		},
	}

	var sb strings.Builder
	if err := WriteOutput(&sb, result, FormatCSV); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	// Two tables, blank-line separated.
	if !strings.Contains(sb.String(), "a\n1\n\nb\n2\n") {
		t.Errorf("unexpected raw output: %q", sb.String())
	}

	sb.Reset()
	if err := WriteOutput(&sb, result, FormatJSON); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	var tables [][]map[string]any
	if err := json.Unmarshal([]byte(sb.String()), &tables); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(tables) != 2 {
		t.Errorf("expected 2 tables, got %d", len(tables))
	}
}

func TestWriteOutputUnknownFormat(t *testing.T) {
	var sb strings.Builder
	if err := WriteOutput(&sb, combinedResult(), OutputFormat("xml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
