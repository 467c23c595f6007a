package dataset

import (
	"github.com/sirupsen/logrus"

	"github.com/covidmx/serendipia/internal/clean"
	"github.com/covidmx/serendipia/internal/report"
	"github.com/covidmx/serendipia/internal/source"
)

const (
	// DefaultDateFormat is the reference layout for request dates (day,
	// month, year with hyphens).
	DefaultDateFormat = "02-01-2006"
	// DefaultMaxAttempts bounds the backward search for the latest
	// published report.
	DefaultMaxAttempts = 5
)

// DateSelection selects the report dates for a request: either an explicit
// list or the latest published date. The zero value means latest.
type DateSelection struct {
	dates []string
}

// Latest selects the most recent published report, discovered by probing
// backward from today.
func Latest() DateSelection {
	return DateSelection{}
}

// Dates selects an explicit list of report dates.
func Dates(values ...string) DateSelection {
	return DateSelection{dates: values}
}

// IsLatest reports whether the selection means "find the latest report".
func (d DateSelection) IsLatest() bool {
	return len(d.dates) == 0
}

// Options configures a dataset request.
type Options struct {
	// Dates to fetch; the zero value searches for the latest report.
	Dates DateSelection
	// Kinds to fetch; empty defaults to [positivos, sospechosos].
	Kinds []string
	// Clean enables column/date normalization and concatenation.
	Clean bool
	// AddSearchDate injects a fecha_busqueda column holding each table's
	// report date.
	AddSearchDate bool
	// DateFormat is the reference layout for request dates.
	DateFormat string
	// MaxAttempts bounds the latest-report search.
	MaxAttempts int
	// Log receives progress messages; nil uses the standard logger.
	Log logrus.FieldLogger
}

// Result holds the outcome of a request. Raw carries one table per
// (date, kind) combination in request order; Combined is the cleaned
// concatenation, nil when cleaning was not requested.
type Result struct {
	Raw      []*report.Table
	Combined *report.Table
}

// fetcher is the source surface the pipeline needs; tests stub it.
type fetcher interface {
	Get(date string, kind report.Kind) (*report.Table, error)
	SearchLatest(maxAttempts int, kind report.Kind) (*report.Table, string, error)
}

// Client runs validated dataset requests. Immutable after New.
type Client struct {
	dates         []string // one empty string means "search latest"
	kinds         []report.Kind
	clean         bool
	addSearchDate bool
	layout        string
	maxAttempts   int
	src           fetcher
	log           logrus.FieldLogger
}

// New validates opts into a Client. Unknown kinds are rejected; absent
// kinds, date format, and attempt bound take their defaults.
func New(opts Options) (*Client, error) {
	kinds, err := report.ParseKinds(opts.Kinds)
	if err != nil {
		return nil, err
	}

	layout := opts.DateFormat
	if layout == "" {
		layout = DefaultDateFormat
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	dates := opts.Dates.dates
	if opts.Dates.IsLatest() {
		dates = []string{""}
	}

	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Client{
		dates:         dates,
		kinds:         kinds,
		clean:         opts.Clean,
		addSearchDate: opts.AddSearchDate,
		layout:        layout,
		maxAttempts:   maxAttempts,
		src:           source.New(layout),
		log:           log,
	}, nil
}

// GetData fetches every (date, kind) combination sequentially, injects the
// search date when requested, and, when cleaning is enabled, normalizes
// each table and concatenates the batch into Result.Combined.
func (c *Client) GetData() (*Result, error) {
	c.log.Info("reading data")

	tables := make([]*report.Table, 0, len(c.dates)*len(c.kinds))
	for _, date := range c.dates {
		for _, kind := range c.kinds {
			table, err := c.read(date, kind)
			if err != nil {
				return nil, err
			}
			tables = append(tables, table)
		}
	}

	result := &Result{Raw: tables}
	if !c.clean {
		return result, nil
	}

	c.log.Info("cleaning data")
	normalizer := &clean.Normalizer{Layout: c.layout, WithSearchDate: c.addSearchDate}
	for _, table := range tables {
		if err := normalizer.Clean(table); err != nil {
			return nil, err
		}
	}
	result.Combined = report.Concat(tables...)
	return result, nil
}

// read fetches one combination: explicit dates go straight to the URL,
// while an empty date discovers the latest published report for the kind.
func (c *Client) read(date string, kind report.Kind) (*report.Table, error) {
	if date == "" {
		c.log.WithField("kind", kind).Info("searching latest available report")
		table, found, err := c.src.SearchLatest(c.maxAttempts, kind)
		if err != nil {
			return nil, err
		}
		c.log.WithFields(logrus.Fields{"kind": kind, "date": found}).Info("latest report found")
		if c.addSearchDate {
			table.SetColumn(clean.ColumnSearchDate, found)
		}
		return table, nil
	}

	c.log.WithFields(logrus.Fields{"kind": kind, "date": date}).Debug("fetching report")
	table, err := c.src.Get(date, kind)
	if err != nil {
		return nil, err
	}
	if c.addSearchDate {
		table.SetColumn(clean.ColumnSearchDate, date)
	}
	return table, nil
}
