package source

import (
	"errors"
	"testing"

	"github.com/covidmx/serendipia/internal/report"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		layout  string
		kind    report.Kind
		want    string
		wantErr bool
	}{
		{
			name:   "positivos uses InDRE template",
			date:   "01-05-2020",
			layout: "02-01-2006",
			kind:   report.KindPositivos,
			want:   "https://serendipia.digital/wp-content/uploads/2020/05/Tabla_casos_positivos_COVID-19_resultado_InDRE_2020.05.01-Table-1.csv",
		},
		{
			name:   "sospechosos uses plain template",
			date:   "01-05-2020",
			layout: "02-01-2006",
			kind:   report.KindSospechosos,
			want:   "https://serendipia.digital/wp-content/uploads/2020/05/Tabla_casos_sospechosos_COVID-19_2020.05.01-Table-1.csv",
		},
		{
			name:   "month is zero padded",
			date:   "15-01-2021",
			layout: "02-01-2006",
			kind:   report.KindSospechosos,
			want:   "https://serendipia.digital/wp-content/uploads/2021/01/Tabla_casos_sospechosos_COVID-19_2021.01.15-Table-1.csv",
		},
		{
			name:   "alternate layout",
			date:   "2020/05/02",
			layout: "2006/01/02",
			kind:   report.KindPositivos,
			want:   "https://serendipia.digital/wp-content/uploads/2020/05/Tabla_casos_positivos_COVID-19_resultado_InDRE_2020.05.02-Table-1.csv",
		},
		{
			name:    "unknown kind",
			date:    "01-05-2020",
			layout:  "02-01-2006",
			kind:    report.Kind("defunciones"),
			wantErr: true,
		},
		{
			name:    "unparseable date",
			date:    "2020-05-01",
			layout:  "02-01-2006",
			kind:    report.KindPositivos,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildURL(tt.date, tt.layout, tt.kind)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("BuildURL(%q, %q, %q) expected error, got %q", tt.date, tt.layout, tt.kind, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildURL(%q, %q, %q) unexpected error: %v", tt.date, tt.layout, tt.kind, err)
			}
			if got != tt.want {
				t.Errorf("BuildURL(%q, %q, %q) = %q, expected %q", tt.date, tt.layout, tt.kind, got, tt.want)
			}
		})
	}
}

func TestBuildURLDeterministic(t *testing.T) {
	first, err := BuildURL("01-05-2020", "02-01-2006", report.KindPositivos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildURL("01-05-2020", "02-01-2006", report.KindPositivos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("BuildURL not deterministic: %q vs %q", first, second)
	}
}

func TestBuildURLInvalidKindError(t *testing.T) {
	_, err := BuildURL("01-05-2020", "02-01-2006", report.Kind("negativos"))
	if !errors.Is(err, report.ErrInvalidKind) {
		t.Errorf("expected ErrInvalidKind, got %v", err)
	}
}
