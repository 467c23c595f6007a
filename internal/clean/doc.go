// Package clean normalizes raw published report tables.
//
// The clean package standardizes column names across the publisher's
// inconsistently formatted CSVs (casing, separators, diacritics, suffixed
// identification columns), drops the footer rows embedded in the published
// tables, and parses date-valued columns into time.Time cells.
package clean
