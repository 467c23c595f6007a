package source

import (
	"fmt"
	"time"

	"github.com/covidmx/serendipia/internal/report"
)

// BaseURL is the root of the publisher's upload directory.
const BaseURL = "https://serendipia.digital/wp-content/uploads"

// buildURL maps a (date, kind) pair to the publisher's download URL. The
// date is parsed with the given layout; the path embeds the year, the
// zero-padded month, and a YYYY.MM.DD token. The positivos report carries a
// "_resultado_InDRE" infix that the sospechosos report does not.
func buildURL(base, date, layout string, kind report.Kind) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", date, err)
	}

	year := t.Format("2006")
	month := t.Format("01")
	token := t.Format("2006.01.02")

	switch kind {
	case report.KindPositivos:
		return fmt.Sprintf("%s/%s/%s/Tabla_casos_%s_COVID-19_resultado_InDRE_%s-Table-1.csv",
			base, year, month, kind, token), nil
	case report.KindSospechosos:
		return fmt.Sprintf("%s/%s/%s/Tabla_casos_%s_COVID-19_%s-Table-1.csv",
			base, year, month, kind, token), nil
	}
	return "", fmt.Errorf("%w: %q", report.ErrInvalidKind, kind)
}

// BuildURL maps a (date, kind) pair to the publisher's download URL.
func BuildURL(date, layout string, kind report.Kind) (string, error) {
	return buildURL(BaseURL, date, layout, kind)
}
