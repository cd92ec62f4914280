package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/hoard/internal/models"
)

// validate checks the `validate` tags on the input models. Field names in
// errors are the JSON names clients send.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateForCreate fails with a ValidationError naming every required
// field that is absent or empty. Only presence is checked.
func validateForCreate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields, Reason: "required"}
}

// requireID fails unless the input carries an identity.
func requireID(id models.ID, op string) (int64, error) {
	v, ok := id.Get()
	if !ok {
		return 0, &ValidationError{Fields: []string{"id"}, Reason: "this operation requires an id (" + op + ")"}
	}
	return v, nil
}

func validateUserForCreate(in models.UserInput) error {
	return validateForCreate(in)
}

func validateItemForCreate(in models.ItemInput) error {
	return validateForCreate(in)
}

func validateCollectionForCreate(in models.CollectionInput) error {
	return validateForCreate(in)
}
