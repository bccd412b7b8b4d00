package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isInvalidJSONValue reports a value the jsonb column refused to parse
func isInvalidJSONValue(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "invalid input syntax for type json") ||
		strings.Contains(errMsg, "22p02") // PostgreSQL invalid_text_representation error code
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
