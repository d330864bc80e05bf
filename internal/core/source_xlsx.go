package core

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads one sheet of an Excel workbook.
type XLSXSource struct {
	Path  string
	Sheet string // First sheet when empty
}

func (s *XLSXSource) Name() string {
	if s.Sheet == "" {
		return s.Path
	}
	return s.Path + "#" + s.Sheet
}

func (s *XLSXSource) ReadRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	return ReadXLSX(f, s.Sheet)
}

// ReadXLSX reads every row of a sheet from a workbook stream.
// An empty sheet name selects the first sheet.
func ReadXLSX(r io.Reader, sheet string) ([][]string, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("sheet not found: workbook has no sheets")
	}

	if sheet == "" {
		sheet = sheets[0]
	} else if idx, err := wb.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet not found: %q", sheet)
	}

	// Raw values keep the stored precision; number formats are display only.
	rows, err := wb.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
