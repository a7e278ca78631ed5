package sink

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plainsdata/licenseprep/internal/frame"
	"github.com/plainsdata/licenseprep/internal/prep"
)

// corpusDBColumns maps the corpus column order onto database column names.
// run_id is prepended so each batch load can be identified and, if need
// be, deleted as a unit.
var corpusDBColumns = []string{
	"run_id",
	"first_name", "middle_name", "last_name", "suffix",
	"street", "city", "state", "zip", "hunt", "fish",
}

// LoadPostgres bulk-loads the corpus into table using the COPY protocol,
// tagging every row with runID. The corpus must be in the standard
// ten-column shape. Returns the number of rows loaded.
func LoadPostgres(ctx context.Context, url, table string, corpus *frame.Frame, runID string) (int64, error) {
	cols := corpus.Columns()
	if len(cols) != len(prep.StandardColumns) {
		return 0, fmt.Errorf("corpus has %d columns, want %d", len(cols), len(prep.StandardColumns))
	}
	for i, c := range prep.StandardColumns {
		if cols[i] != c {
			return 0, fmt.Errorf("corpus column %d is %q, want %q", i+1, cols[i], c)
		}
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return 0, fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return 0, fmt.Errorf("pinging database: %w", err)
	}

	n, err := pool.CopyFrom(ctx,
		pgx.Identifier{table},
		corpusDBColumns,
		pgx.CopyFromSlice(corpus.Len(), func(i int) ([]any, error) {
			row := corpus.Row(i)
			values := make([]any, 0, len(row)+1)
			values = append(values, runID)
			for _, v := range row {
				values = append(values, v)
			}
			return values, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copying corpus into %s: %w", table, err)
	}
	return n, nil
}
