// Package iotest provides IO helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"

	"github.com/mystic-pages/sitefix/internal/linebuf"
)

// Writer builds an io.Writer that logs each line written to it
// with t.Logf.
//
// Partial lines are held until a newline arrives
// or the test finishes.
func Writer(t testing.TB) io.Writer {
	w, flush := linebuf.Writer(func(line []byte) {
		t.Logf("%s", bytes.TrimSuffix(line, []byte{'\n'}))
	})
	t.Cleanup(flush)
	return w
}
