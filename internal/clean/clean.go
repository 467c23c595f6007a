package clean

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/covidmx/serendipia/internal/report"
)

const (
	// ColumnCase is the case-number column; published tables embed footer
	// rows ("Fuente: ...", "Corte ...") in it.
	ColumnCase = "n_caso"
	// ColumnSearchDate is the injected search/report date column.
	ColumnSearchDate = "fecha_busqueda"
	// ColumnOnsetDate is the symptom-onset date column, always published
	// with day/month/year slash formatting.
	ColumnOnsetDate = "fecha_de_inicio_de_sintomas"

	onsetLayout = "02/01/2006"
)

// ErrMissingColumn is wrapped by Error when an expected column is absent
// after renaming.
var ErrMissingColumn = errors.New("expected column is missing")

// Error reports a failed normalization of a published table.
type Error struct {
	Column string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cleaning column %q: %v", e.Column, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// The publisher sometimes tags the identification column with trailing
// suffixes; they collapse to the bare name.
var identSuffix = regexp.MustCompile(`identificacion\w+`)

// asciiFold decomposes accented characters, strips the combining marks,
// and drops anything still outside ASCII.
var asciiFold = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// Normalizer cleans raw tables in place.
type Normalizer struct {
	// Layout parses the injected fecha_busqueda column.
	Layout string
	// WithSearchDate marks that fecha_busqueda was injected and must be
	// present and parseable.
	WithSearchDate bool
}

// Clean standardizes column names, drops footer rows, and parses the date
// columns. The table is mutated in place; on error no partial cleaning is
// kept usable.
func (n *Normalizer) Clean(t *report.Table) error {
	renameColumns(t)

	if !t.HasColumn(ColumnCase) {
		return &Error{Column: ColumnCase, Err: ErrMissingColumn}
	}
	dropFooterRows(t)
	if err := parseDateColumn(t, ColumnOnsetDate, onsetLayout); err != nil {
		return err
	}
	if n.WithSearchDate {
		if err := parseDateColumn(t, ColumnSearchDate, n.Layout); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeName rewrites a published column name into its canonical form:
// lower case, spaces and hyphens as underscores, degree signs removed,
// remaining non-ASCII transliterated, identification suffixes collapsed.
func NormalizeName(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "°", "")
	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}
	return identSuffix.ReplaceAllString(s, "identificacion")
}

func renameColumns(t *report.Table) {
	renamed := make(map[string]string, len(t.Columns))
	for i, col := range t.Columns {
		name := NormalizeName(col)
		renamed[col] = name
		t.Columns[i] = name
	}
	for i, row := range t.Rows {
		next := make(report.Row, len(row))
		for col, val := range row {
			next[renamed[col]] = val
		}
		t.Rows[i] = next
	}
}

// dropFooterRows removes the source/cutoff metadata rows the publisher
// appends to the data.
func dropFooterRows(t *report.Table) {
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		s, _ := row[ColumnCase].(string)
		if strings.Contains(s, "Fuente") || strings.Contains(s, "Corte") {
			continue
		}
		kept = append(kept, row)
	}
	t.Rows = kept
}

func parseDateColumn(t *report.Table, column, layout string) error {
	if !t.HasColumn(column) {
		return &Error{Column: column, Err: ErrMissingColumn}
	}
	for _, row := range t.Rows {
		val, ok := row[column]
		if !ok {
			continue
		}
		if _, ok := val.(time.Time); ok {
			continue
		}
		s, _ := val.(string)
		parsed, err := time.Parse(layout, s)
		if err != nil {
			return &Error{Column: column, Err: err}
		}
		row[column] = parsed
	}
	return nil
}
