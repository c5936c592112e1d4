package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/iamasit07/align4/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrInvalidColumn, "invalid_column"},
		{fmt.Errorf("drop: %w", domain.ErrColumnFull), "column_full"},
		{domain.ErrGameOver, "game_over"},
		{ErrTableNotFound, "table_not_found"},
		{ErrTableClosed, "table_closed"},
		{ErrTooManyTables, "too_many_tables"},
		{errors.New("boom"), "internal_error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorCode(tt.err), tt.err.Error())
	}
}
