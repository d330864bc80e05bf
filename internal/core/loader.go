package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Source yields the raw rows of a composition table, header included.
type Source interface {
	// Name identifies the source. Loader caches tables by this value.
	Name() string
	// ReadRows returns every row of the table as text cells.
	ReadRows(ctx context.Context) ([][]string, error)
}

// Loader reads tables once and hands out the cached result afterwards.
// The zero value is not usable; call NewLoader.
type Loader struct {
	mu     sync.RWMutex
	tables map[string]*Table
	group  singleflight.Group
	logger *slog.Logger
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{
		tables: make(map[string]*Table),
		logger: slog.Default(),
	}
}

// Load returns the table for src, reading it on first use.
// Repeated calls with the same source name return the same *Table.
// Failed loads are not cached.
func (l *Loader) Load(ctx context.Context, src Source) (*Table, error) {
	name := src.Name()

	l.mu.RLock()
	t, ok := l.tables[name]
	l.mu.RUnlock()
	if ok {
		return t, nil
	}

	v, err, _ := l.group.Do(name, func() (any, error) {
		l.mu.RLock()
		cached, ok := l.tables[name]
		l.mu.RUnlock()
		if ok {
			return cached, nil
		}

		table, err := LoadTable(ctx, src)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.tables[name] = table
		l.mu.Unlock()

		l.logger.Info("table loaded",
			"source", name,
			"load_id", table.LoadID,
			"records", table.Len(),
			"rows_read", table.Stats.RowsRead,
			"missing_name", table.Stats.MissingName,
			"missing_code", table.Stats.MissingCode,
			"duplicate_codes", table.Stats.DuplicateCodes,
		)
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Table), nil
}

// LoadTable reads src without caching and builds a table from its rows.
func LoadTable(ctx context.Context, src Source) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Name(), err)
	}

	rows, err := src.ReadRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Name(), err)
	}

	return BuildTable(src.Name(), rows)
}

// BuildTable validates the header and converts rows into a Table.
// Rows with an empty Food Name or Food Code are dropped. When a code repeats,
// the first row wins and later ones are counted in Stats.DuplicateCodes.
func BuildTable(source string, rows [][]string) (*Table, error) {
	headerPos, idx, err := findHeaderRow(source, rows)
	if err != nil {
		return nil, err
	}

	data := rows[headerPos+1:]
	t := &Table{
		LoadID:  uuid.New(),
		Source:  source,
		records: make([]FoodRecord, 0, len(data)),
		byCode:  make(map[string]int, len(data)),
	}

	for i, row := range data {
		if isBlankRow(row) {
			continue
		}
		t.Stats.RowsRead++

		name := idx.Cell(row, ColFoodName)
		if name == "" {
			t.Stats.MissingName++
			continue
		}

		code := idx.Cell(row, ColFoodCode)
		if code == "" {
			t.Stats.MissingCode++
			continue
		}

		if _, dup := t.byCode[code]; dup {
			t.Stats.DuplicateCodes++
			slog.Warn("duplicate food code skipped",
				"source", source,
				"code", code,
				"line", headerPos+i+2,
			)
			continue
		}

		rec := FoodRecord{Code: code, Name: name}
		for j, n := range Nutrients {
			rec.Raw[j] = idx.Cell(row, string(n))
		}

		t.byCode[code] = len(t.records)
		t.records = append(t.records, rec)
	}

	return t, nil
}
