package api

import (
	"github.com/go-playground/validator/v10"

	internal_errors "github.com/lifeforge-dev/lifeforge/shared/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request DTO's validate tags before it goes on the wire,
// so obviously malformed payloads fail locally instead of round-tripping.
func Validate(body any) error {
	if err := validate.Struct(body); err != nil {
		return &internal_errors.Error{
			Kind:       internal_errors.HTTPStatus,
			Message:    "required fields missing or invalid: " + err.Error(),
			StatusCode: 400,
			Err:        err,
		}
	}
	return nil
}
