package todo

import "errors"

var (
	// ErrEmptyInput rejects an add whose text is blank after trimming.
	ErrEmptyInput = errors.New("A to-do item cannot be empty.")
	// ErrDuplicateItem rejects an add whose text matches an existing item, ignoring case.
	ErrDuplicateItem = errors.New("This to-do item already exists.")
	// ErrStorageUnavailable wraps any failure reading or writing the persisted list.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
