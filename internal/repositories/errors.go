package repositories

import (
	"github.com/KirkDiggler/skirmish/internal"
)

// RecordError reports a storage failure for a single record
type RecordError struct {
	internal.ErrorWrapper
	ID string
}

func newRecordError(kind internal.BaseError, id string) error {
	return &RecordError{
		ErrorWrapper: internal.ErrorWrapper{
			Err:     kind,
			Message: "record " + id,
		},
		ID: id,
	}
}

// NewRecordNotFoundError is returned when no record has id
func NewRecordNotFoundError(id string) error {
	return newRecordError(internal.ErrNotFound, id)
}

// NewRecordExistsError is returned when creating a record whose id is taken
func NewRecordExistsError(id string) error {
	return newRecordError(internal.ErrExists, id)
}
