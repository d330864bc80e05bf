// Package core provides the lookup and scaling logic for the nutrient calculator.
//
// This package contains all domain logic independent of any UI or transport
// layer. It can be used by web handlers, CLI tools, or tests without
// modification.
//
// # Architecture
//
// The package is organized around two components:
//
//   - Table Loader: reads a nutrient-composition table from a [Source]
//     (xlsx workbook, csv file, Postgres table, or in-memory rows), locates
//     the header row, validates required columns and builds an immutable
//     [Table]. A [Loader] memoizes tables by source name.
//   - Nutrient Calculator: [Compute] selects a record by food code, resolves
//     each nutrient cell with [ParseValue] and scales it by quantity/100.
//
// # Loading
//
//	loader := core.NewLoader()
//	src, err := core.OpenSource(cfg.Table.Source, core.SourceOptions{Sheet: "Sheet1"})
//	table, err := loader.Load(ctx, src)
//
// The returned table is never mutated and may be shared across goroutines.
//
// # Computing
//
//	res, err := core.Compute(table, "A001", 200)
//	if errors.Is(err, core.ErrNotFound) {
//	    // show a warning, no computation was performed
//	}
//	for _, a := range res.Amounts {
//	    fmt.Println(core.FormatAmount(a)) // "Protein: 5.00 g"
//	}
//
// Cells that cannot be resolved to a number are left out of Amounts and
// reported in Result.Unresolved, so "absent" is never confused with zero.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - SCH001-SCH002: Schema errors (missing columns, no header row)
//   - FOOD001: Unknown food code
//   - QTY001: Invalid quantity
//   - QTY002: Quantity too large (scaled values overflow)
//   - FILE001-FILE003: File errors (unsupported type, unreadable, missing sheet)
//   - SRC001: Database source errors
package core
