package ports

import "errors"

// ErrNotFound is returned by stores for absent keys or rows.
var ErrNotFound = errors.New("not found")
