package core

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultPostgresTable is read when no table name is configured.
const DefaultPostgresTable = "food_composition"

// Querier is the read-only subset of a pgx connection the source needs.
// Satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(context.Context, string, ...any) (pgx.Rows, error)
}

// PostgresSource reads a composition table with SELECT *. Column names
// become the header row, so the usual header validation applies.
type PostgresSource struct {
	URL   string
	Table string
}

// NewPostgresSource creates a source for a table, using DefaultPostgresTable
// when table is empty.
func NewPostgresSource(dsn, table string) *PostgresSource {
	if table == "" {
		table = DefaultPostgresTable
	}
	return &PostgresSource{URL: dsn, Table: table}
}

// Name returns the URL with any password redacted, plus the table name.
func (s *PostgresSource) Name() string {
	name := s.URL
	if u, err := url.Parse(s.URL); err == nil {
		name = u.Redacted()
	}
	return name + "#" + s.Table
}

func (s *PostgresSource) ReadRows(ctx context.Context) ([][]string, error) {
	pool, err := pgxpool.New(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("query table: connect: %w", err)
	}
	defer pool.Close()

	return QueryRows(ctx, pool, s.Table)
}

// QueryRows selects every row of table through q and returns them as text,
// header first.
func QueryRows(ctx context.Context, q Querier, table string) ([][]string, error) {
	sql := "SELECT * FROM " + tableIdentifier(table).Sanitize()

	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query table %s: %w", table, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	header := make([]string, len(fields))
	for i, fd := range fields {
		header[i] = fd.Name
	}

	out := [][]string{header}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("query table %s: %w", table, err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = cellText(v)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query table %s: %w", table, err)
	}

	return out, nil
}

// tableIdentifier splits an optionally schema-qualified name.
func tableIdentifier(table string) pgx.Identifier {
	parts := strings.Split(strings.TrimSpace(table), ".")
	id := make(pgx.Identifier, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			id = append(id, p)
		}
	}
	return id
}

// cellText renders a decoded column value the way a spreadsheet cell would read.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	case pgtype.Numeric:
		if !x.Valid || x.NaN {
			return ""
		}
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return ""
		}
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
