package Controllers

import "strings"

// isUniqueViolation recognizes a unique-index failure across the drivers
// gorm may sit on.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "Duplicate entry")
}
