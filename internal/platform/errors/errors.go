package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotTracking     = errors.New("no sleep session is being tracked")
	ErrAlreadyTracking = errors.New("sleep session already being tracked")
)

type StorageOp string

const (
	OpRead  StorageOp = "read"
	OpWrite StorageOp = "write"
)

// StorageError reports a fault of the persisted key-value state. Callers
// recover from it locally; it never blocks the tracking flow.
type StorageError struct {
	Op  StorageOp
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageReadError(key string, err error) error {
	return &StorageError{Op: OpRead, Key: key, Err: err}
}

func NewStorageWriteError(key string, err error) error {
	return &StorageError{Op: OpWrite, Key: key, Err: err}
}

func IsStorageRead(err error) bool {
	return isStorageOp(err, OpRead)
}

func IsStorageWrite(err error) bool {
	return isStorageOp(err, OpWrite)
}

func isStorageOp(err error, op StorageOp) bool {
	var se *StorageError
	if !errors.As(err, &se) {
		return false
	}
	return se.Op == op
}
