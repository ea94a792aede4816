package gorm

import (
	"errors"

	stdgorm "gorm.io/gorm"
)

// IsNotFound reports whether the given error is gorm's record-not-found.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, stdgorm.ErrRecordNotFound)
}

// IsFoundButHasErrors reports whether the error is a real database failure,
// as opposed to a plain empty result.
func IsFoundButHasErrors(err error) bool {
	if err == nil {
		return false
	}

	return !errors.Is(err, stdgorm.ErrRecordNotFound)
}

// HasDbIssues reports whether the given error needs handling of any kind.
func HasDbIssues(err error) bool {
	return IsNotFound(err) || IsFoundButHasErrors(err)
}
