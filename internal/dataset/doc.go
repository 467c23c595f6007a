// Package dataset assembles serendipia case-report datasets.
//
// The dataset package validates a request (dates, kinds, formatting
// options) into an immutable client and runs the sequential fetch pipeline:
// one (date, kind) combination at a time in Cartesian-product order, with
// optional latest-date discovery, cleaning, and concatenation into a single
// table. Any failure aborts the whole request; there is no partial-success
// mode.
package dataset
