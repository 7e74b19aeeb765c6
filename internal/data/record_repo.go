package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/target/chroniker-go/internal/data/database"
	"github.com/target/chroniker-go/internal/domain/model"
	apperrors "github.com/target/chroniker-go/internal/errors"
)

// RecordRepo counts rows of arbitrary monitored tables.
type RecordRepo struct {
	DB *sql.DB
}

// NewRecordRepo creates a new RecordRepo.
func NewRecordRepo(db *sql.DB) *RecordRepo {
	return &RecordRepo{DB: db}
}

// Count returns the number of rows in table matching every filter (AND of equalities).
// An empty filter counts the whole table.
func (r *RecordRepo) Count(ctx context.Context, table string, filters []model.FieldFilter) (int64, error) {
	if strings.TrimSpace(table) == "" {
		return 0, ErrTableRequired
	}

	conds := make([]database.Condition, 0, len(filters))
	for _, f := range filters {
		conds = append(conds, database.WhereCond(f.Field, database.Equal, f.Value))
	}

	query, args := database.BuildListQuery(database.NewListQueryOptions(table,
		database.WithCountOnly(),
		database.WithConditions(conds...),
	))

	var count int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, apperrors.MapDBError(err))
	}
	return count, nil
}
