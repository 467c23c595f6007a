// Package report provides types for serendipia COVID-19 case reports.
//
// The report package defines the two published report kinds (confirmed and
// suspected cases), the in-memory table representation shared by the fetch
// and cleaning stages, and the concatenation used to fold a batch of tables
// into a single dataset.
package report
