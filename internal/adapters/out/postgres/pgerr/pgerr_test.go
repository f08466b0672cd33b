package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"rental/internal/adapters/out/postgres/pgerr"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Constraint: "idx_rental_orders_active_quotation"})

	assert.True(t, pgerr.IsUniqueViolation(wrapped))
	assert.True(t, pgerr.IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.False(t, pgerr.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, pgerr.IsUniqueViolation(errors.New("boom")))
	assert.Equal(t, "idx_rental_orders_active_quotation", pgerr.Constraint(wrapped))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, pgerr.IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, pgerr.IsForeignKeyViolation(fmt.Errorf("delete: %w", gorm.ErrForeignKeyViolated)))
	assert.False(t, pgerr.IsForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.Empty(t, pgerr.Constraint(errors.New("boom")))
}
