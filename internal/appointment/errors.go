package appointment

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedTime = errors.New("invalid string for appointment time")
	ErrOutOfRange    = errors.New("appointment time out of range")
	ErrNotFound      = errors.New("appointment not found")
	ErrAlreadyPast   = errors.New("appointment already passed")
	ErrNotEmpty      = errors.New("there are appointments already added for this day")
	ErrSourceMissing = errors.New("there were no appointments added in the source day")
	ErrMultiline     = errors.New("description must be a single line")
)

// RangeError reports which field of a time was outside its range
type RangeError struct {
	Field string // "hour" or "minutes"
	Value int
}

func (e *RangeError) Error() string {
	if e.Field == "hour" {
		return "hour should be between 0 and 23"
	}
	return "minutes should be between 0 and 59"
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NotFoundError is returned when no appointment is stored at Time
type NotFoundError struct {
	Time Time
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("there is no appointment at %s", e.Time)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PastError is returned when a past appointment is about to be changed
type PastError struct {
	Time Time
}

func (e *PastError) Error() string {
	return fmt.Sprintf("appointment at %s already passed", e.Time)
}

func (e *PastError) Is(target error) bool {
	return target == ErrAlreadyPast
}

// SourceMissingError is returned by CopyFrom when the source file does not exist
type SourceMissingError struct {
	Path string
}

func (e *SourceMissingError) Error() string {
	return fmt.Sprintf("no appointments file at %s", e.Path)
}

func (e *SourceMissingError) Is(target error) bool {
	return target == ErrSourceMissing
}

// PersistError wraps an I/O failure while syncing a list with disk
type PersistError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
