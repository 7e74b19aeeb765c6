package errors

import (
	"context"
	"errors"
	"regexp"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres reports unknown identifiers only in the message text.
var (
	reUndefinedColumn = regexp.MustCompile(`column "?([^" ]+)"? does not exist`)
	reUndefinedTable  = regexp.MustCompile(`relation "?([^" ]+)"? does not exist`)
)

// MapDBError maps database errors to AppError instances:
//   - context deadline/cancel → Timeout/Canceled
//   - pgx.ErrNoRows → NotFound
//   - undefined column → Validation (unknown filter field)
//   - undefined table → NotFound (model table missing)
//   - bad literal / type mismatch → Validation (filter value of the wrong type)
//
// Anything else is returned unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Code: ErrCodeTimeout, Message: "query timed out", Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{Code: ErrCodeCanceled, Message: "query was canceled", Cause: err}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &AppError{Code: ErrCodeNotFound, Message: "record not found", Cause: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	return err
}

func mapPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UndefinedColumn:
		field := pgErr.ColumnName
		if field == "" {
			field = submatch(reUndefinedColumn, pgErr.Message)
		}
		return &AppError{Code: ErrCodeValidation, Message: "unknown field", Field: field, Cause: pgErr}
	case pgerrcode.UndefinedTable:
		table := pgErr.TableName
		if table == "" {
			table = submatch(reUndefinedTable, pgErr.Message)
		}
		return &AppError{Code: ErrCodeNotFound, Message: "model table does not exist", Field: table, Cause: pgErr}
	case pgerrcode.InvalidTextRepresentation,
		pgerrcode.DatatypeMismatch,
		pgerrcode.UndefinedFunction,
		pgerrcode.NumericValueOutOfRange,
		pgerrcode.InvalidDatetimeFormat:
		return &AppError{Code: ErrCodeValidation, Message: "filter value does not match field type", Cause: pgErr}
	case pgerrcode.QueryCanceled:
		return &AppError{Code: ErrCodeTimeout, Message: "query timed out", Cause: pgErr}
	default:
		return &AppError{Code: ErrCodeInternal, Message: "database error", Cause: pgErr}
	}
}

func submatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); len(m) == 2 {
		return m[1]
	}
	return ""
}
