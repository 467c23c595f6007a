package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/covidmx/serendipia/internal/dataset"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDates         []string
	flagKinds         []string
	flagRaw           bool
	flagAddSearchDate bool
	flagDateFormat    string
	flagMaxAttempts   int
	flagFormat        string
	flagOutput        string
	flagVerbose       bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serendipia",
		Short: "Fetch COVID-19 case-report tables published by serendipia.digital",
		Long: `A CLI tool to fetch Mexican COVID-19 case-report tables published as
dated CSV files by serendipia.digital. Without --date it searches backward
from today for the most recent published report.`,
		RunE: runFetch,
	}

	// Define flags
	cmd.Flags().StringSliceVar(&flagDates, "date", nil, "Report date(s), repeatable (default: search for the latest)")
	cmd.Flags().StringSliceVar(&flagKinds, "kind", nil, "Report kind(s): positivos, sospechosos (default: both)")
	cmd.Flags().BoolVar(&flagRaw, "raw", false, "Skip cleaning; output per-request tables as published")
	cmd.Flags().BoolVar(&flagAddSearchDate, "add-search-date", true, "Inject a fecha_busqueda column with each table's report date")
	cmd.Flags().StringVar(&flagDateFormat, "date-format", dataset.DefaultDateFormat, "Reference layout for request dates")
	cmd.Flags().IntVar(&flagMaxAttempts, "max-attempts", dataset.DefaultMaxAttempts, "Days to search backward for the latest report")
	cmd.Flags().StringVar(&flagFormat, "format", "csv", "Output format: csv or json")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runFetch is the main command logic
func runFetch(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatCSV && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'csv' or 'json')", flagFormat)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	dates := dataset.Latest()
	if len(flagDates) > 0 {
		dates = dataset.Dates(flagDates...)
	}

	client, err := dataset.New(dataset.Options{
		Dates:         dates,
		Kinds:         flagKinds,
		Clean:         !flagRaw,
		AddSearchDate: flagAddSearchDate,
		DateFormat:    flagDateFormat,
		MaxAttempts:   flagMaxAttempts,
		Log:           log,
	})
	if err != nil {
		return err
	}

	result, err := client.GetData()
	if err != nil {
		return fmt.Errorf("fetching data: %w", err)
	}

	out := os.Stdout
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := WriteOutput(out, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
