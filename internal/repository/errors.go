package repository

import "errors"

// ErrNotFound is returned when a row addressed by id or key does not exist.
var ErrNotFound = errors.New("record not found")
