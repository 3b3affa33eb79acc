package application

import "errors"

// ErrUnsupportedFormat is returned when an export format other than JSON or
// CSV is requested.
var ErrUnsupportedFormat = errors.New("application: unsupported export format")
