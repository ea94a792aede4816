package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator. It holds no per-run state, so one
// instance can serve concurrent requests; callers flatten the returned error
// with FieldErrors and friends.
type Validator struct {
	validate *validator.Validate
}

func GetDefaultValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	registerCustomValidations(validate)

	return &Validator{validate: validate}
}

// Passes validates the given struct and reports whether it is valid. The
// returned error carries the field rejections.
func (v *Validator) Passes(abstract any) (bool, error) {
	if err := v.validate.Struct(abstract); err != nil {
		return false, err
	}

	return true, nil
}

// Rejects is the negated convenience form of Passes.
func (v *Validator) Rejects(abstract any) (bool, error) {
	ok, err := v.Passes(abstract)

	return !ok, err
}

// FieldErrors flattens a validation error into field -> rule messages.
func FieldErrors(err error) map[string]string {
	flattened := map[string]string{}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return flattened
	}

	for _, item := range fieldErrors {
		key := strings.ToLower(item.Field())
		flattened[key] = fmt.Sprintf("failed on the [%s] rule", item.Tag())
	}

	return flattened
}

func FieldErrorsAsJson(err error) string {
	flattened := FieldErrors(err)
	if len(flattened) == 0 {
		return ""
	}

	seed, marshalErr := json.Marshal(flattened)
	if marshalErr != nil {
		return ""
	}

	return string(seed)
}

// FieldErrorsAsData shapes a validation error for API error payloads.
func FieldErrorsAsData(err error) map[string]any {
	flattened := FieldErrors(err)
	data := make(map[string]any, len(flattened))

	for key, message := range flattened {
		data[key] = message
	}

	return data
}
