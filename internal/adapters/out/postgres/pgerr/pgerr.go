// Package pgerr classifies PostgreSQL errors returned through GORM.
//
// The production connection uses the lib/pq driver, so constraint violations
// arrive as *pq.Error. GORM's translated sentinels are recognised as well for
// connections opened with TranslateError on the pgx driver.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SQLSTATE codes from the integrity constraint violation class.
const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
)

// IsUniqueViolation reports whether err was caused by a unique index.
func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation) || errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyViolation reports whether err was caused by a foreign key constraint.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolation) || errors.Is(err, gorm.ErrForeignKeyViolated)
}

// Constraint returns the name of the violated constraint, or "" when unknown.
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
