// Package cli implements the command-line interface for serendipia.
//
// The cli package provides the Cobra-based CLI for fetching case-report
// datasets: date and kind selection, cleaning toggles, and csv/json output
// to stdout or a file. It coordinates the dataset, source, and report
// packages.
package cli
