package game

import (
	"errors"

	"github.com/iamasit07/align4/internal/domain"
)

var (
	ErrTableNotFound = errors.New("table not found")
	ErrTableClosed   = errors.New("table closed")
	ErrTooManyTables = errors.New("too many open tables")
)

// ErrorCode returns the stable machine-readable code renderers switch on.
// Unknown errors map to "internal_error".
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidColumn):
		return "invalid_column"
	case errors.Is(err, domain.ErrColumnFull):
		return "column_full"
	case errors.Is(err, domain.ErrGameOver):
		return "game_over"
	case errors.Is(err, ErrTableNotFound):
		return "table_not_found"
	case errors.Is(err, ErrTableClosed):
		return "table_closed"
	case errors.Is(err, ErrTooManyTables):
		return "too_many_tables"
	default:
		return "internal_error"
	}
}
