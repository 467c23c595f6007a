package report

import (
	"errors"
	"fmt"
)

// Kind identifies a published report category.
type Kind string

const (
	// KindPositivos is the confirmed-cases report (results confirmed by InDRE).
	KindPositivos Kind = "positivos"
	// KindSospechosos is the suspected-cases report.
	KindSospechosos Kind = "sospechosos"
)

// ErrInvalidKind is returned when a kind is not one of the published
// report categories.
var ErrInvalidKind = errors.New("invalid report kind")

// AllKinds returns every published kind, in publication order.
func AllKinds() []Kind {
	return []Kind{KindPositivos, KindSospechosos}
}

// ParseKind validates a kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPositivos, KindSospechosos:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q (allowed: %s, %s)", ErrInvalidKind, s, KindPositivos, KindSospechosos)
}

// ParseKinds validates a list of kind strings. An empty list defaults to
// all published kinds.
func ParseKinds(values []string) ([]Kind, error) {
	if len(values) == 0 {
		return AllKinds(), nil
	}
	kinds := make([]Kind, 0, len(values))
	for _, v := range values {
		k, err := ParseKind(v)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
