package services

import (
	"errors"

	"blog-api/models"
)

func isNotFound(err error) bool {
	var notFound *models.ErrorNotFound
	return errors.As(err, &notFound)
}
