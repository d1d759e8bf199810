package query

import (
	"errors"
	"fmt"
)

// Validation constants to bound the work a single query can ask for
const (
	// MaxQueryLength is the maximum allowed query string length (1MB)
	MaxQueryLength = 1024 * 1024

	// MaxColumns is the maximum number of columns in a SELECT list
	MaxColumns = 1000

	// MaxColumnNameLength is the maximum length for a column path
	MaxColumnNameLength = 256
)

var (
	// ErrInvalidQuery is returned when a query does not match
	// SELECT <columns> FROM <source> [WHERE <condition>]
	ErrInvalidQuery = errors.New("invalid query")

	// ErrUnboundParameter is returned when a :name placeholder has no value
	ErrUnboundParameter = errors.New("unbound parameter")

	// ErrInvalidNumber is returned when a numeric-looking operand does not parse
	ErrInvalidNumber = errors.New("invalid number format")

	// ErrQueryTooLong is returned when query exceeds MaxQueryLength
	ErrQueryTooLong = errors.New("query too long")

	// ErrTooManyColumns is returned when the SELECT list exceeds MaxColumns
	ErrTooManyColumns = errors.New("too many columns in query")

	// ErrColumnNameTooLong is returned when column name is too long
	ErrColumnNameTooLong = errors.New("column name too long")
)

// ValidateQuery checks the query length
func ValidateQuery(query string) error {
	if len(query) > MaxQueryLength {
		return fmt.Errorf("%w: %w: %d bytes (max %d)", ErrInvalidQuery, ErrQueryTooLong, len(query), MaxQueryLength)
	}
	return nil
}

// ValidateColumns checks the column count and the length of every column
func ValidateColumns(columns []string) error {
	if len(columns) > MaxColumns {
		return fmt.Errorf("%w: %w: %d columns (max %d)", ErrInvalidQuery, ErrTooManyColumns, len(columns), MaxColumns)
	}
	for _, column := range columns {
		if len(column) > MaxColumnNameLength {
			return fmt.Errorf("%w: %w: %d chars (max %d)", ErrInvalidQuery, ErrColumnNameTooLong, len(column), MaxColumnNameLength)
		}
	}
	return nil
}
