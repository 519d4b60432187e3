package repository

import "errors"

// ErrNotFound is returned by every repository when the referenced row
// does not exist. Handlers map it to 404.
var ErrNotFound = errors.New("not found")
