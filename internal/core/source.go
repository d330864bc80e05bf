package core

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SourceOptions carries the settings OpenSource needs for each source kind.
type SourceOptions struct {
	Sheet string // xlsx: sheet to read, first sheet when empty
	Table string // postgres: table to select from
}

// OpenSource picks a Source for a location:
//   - postgres:// or postgresql:// URLs read the table named in opts.Table
//   - *.xlsx paths read a workbook sheet
//   - *.csv paths read a comma-separated file
func OpenSource(location string, opts SourceOptions) (Source, error) {
	lower := strings.ToLower(location)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return NewPostgresSource(location, opts.Table), nil
	case filepath.Ext(lower) == ".xlsx":
		return &XLSXSource{Path: location, Sheet: opts.Sheet}, nil
	case filepath.Ext(lower) == ".csv":
		return &CSVSource{Path: location}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, location)
	}
}

// RowsSource serves rows held in memory.
type RowsSource struct {
	Label string
	Rows  [][]string
}

func (s *RowsSource) Name() string { return s.Label }

func (s *RowsSource) ReadRows(ctx context.Context) ([][]string, error) {
	return s.Rows, nil
}

// CSVSource reads a comma-separated file. Rows may have differing lengths.
type CSVSource struct {
	Path string
}

func (s *CSVSource) Name() string { return s.Path }

func (s *CSVSource) ReadRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV reads every record from r.
func ReadCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
