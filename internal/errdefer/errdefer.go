// Package errdefer runs deferred cleanup whose errors
// must be reported from the enclosing function.
//
// Use the functions inside a defer statement with a named error return.
package errdefer

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// Close closes closer and joins its error into *err.
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, closer.Close())
}

// Remove deletes the file at path if *err is non-nil,
// joining any failure to delete it into *err.
// A file that is already gone is not a failure.
func Remove(err *error, path string) {
	if *err == nil {
		return
	}
	if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		*err = errors.Join(*err, rmErr)
	}
}
