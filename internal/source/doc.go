// Package source retrieves published case-report CSVs from serendipia.digital.
//
// The source package builds download URLs from a (date, kind) pair following
// the publisher's fixed path template, fetches and decodes a single CSV
// resource, and searches backward from today for the most recent date with a
// retrievable report when no explicit date is requested.
package source
