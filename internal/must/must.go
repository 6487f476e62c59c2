// Package must asserts invariants of the built-in data.
// Violations are programming errors and panic.
package must

import "fmt"

// NotErrorf panics if err is non-nil,
// adding the printf-style message to the panic.
func NotErrorf(err error, format string, args ...any) {
	if err != nil {
		panic(fmt.Sprintf("%v: %v", fmt.Sprintf(format, args...), err))
	}
}
