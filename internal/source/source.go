package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/covidmx/serendipia/internal/report"
)

const (
	UserAgent = "covidmx/1.0 (github.com/covidmx/serendipia)"
	Timeout   = 30 * time.Second
)

// Client fetches published report CSVs.
type Client struct {
	client *http.Client
	base   string
	layout string
	now    func() time.Time
}

// New creates a Client that formats and parses dates with the given
// reference layout.
func New(layout string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: Timeout,
		},
		base:   BaseURL,
		layout: layout,
		now:    time.Now,
	}
}

// URL returns the download URL for a (date, kind) pair.
func (c *Client) URL(date string, kind report.Kind) (string, error) {
	return buildURL(c.base, date, c.layout, kind)
}

// Fetch retrieves a single CSV resource and decodes it into a raw table
// with columns exactly as published. There is no retry here; searching
// older dates on failure is SearchLatest's responsibility.
func (c *Client) Fetch(url string) (*report.Table, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return decodeCSV(resp.Body)
}

// Get fetches the report for an explicit (date, kind) pair, wrapping any
// failure in an UnavailableError.
func (c *Client) Get(date string, kind report.Kind) (*report.Table, error) {
	url, err := c.URL(date, kind)
	if err != nil {
		return nil, err
	}
	table, err := c.Fetch(url)
	if err != nil {
		return nil, &UnavailableError{Kind: kind, Date: date, Err: err}
	}
	return table, nil
}

// SearchLatest probes up to maxAttempts consecutive calendar dates ending
// today, most recent first, and returns the first report that fetches
// successfully along with its formatted date. Per-candidate failures mean
// "not yet published" and the search moves to the next older date. When
// every candidate fails it returns a NotFoundError.
func (c *Client) SearchLatest(maxAttempts int, kind report.Kind) (*report.Table, string, error) {
	today := c.now()
	for i := 0; i < maxAttempts; i++ {
		date := today.AddDate(0, 0, -i).Format(c.layout)

		url, err := c.URL(date, kind)
		if err != nil {
			return nil, "", err
		}

		table, err := c.Fetch(url)
		if err != nil {
			continue
		}
		return table, date, nil
	}
	return nil, "", &NotFoundError{Kind: kind, Attempts: maxAttempts}
}

// decodeCSV reads a published table: the first record is the header, and
// records may be ragged. Fields beyond the header are dropped; missing
// fields are left as null cells.
func decodeCSV(r io.Reader) (*report.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	table := report.NewTable(header)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}

		row := make(report.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
