package instance

import "github.com/sectrean/di-builder/internal/errors"

// ErrInvalidArgument is returned when a required argument to a builder function is nil.
var ErrInvalidArgument = errors.New("invalid argument")
