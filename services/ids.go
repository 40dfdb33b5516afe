package services

import (
	"strconv"

	"blog-api/models"
)

// parseID accepts positive base-10 integers only.
func parseID(raw, field string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, &models.ErrorInvalidInput{
			Message: "Invalid " + field,
			Fields:  map[string][]string{field: {field + " must be a positive integer"}},
			Inner:   err,
		}
	}
	return uint(id), nil
}
