package iotest

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeT struct {
	testing.TB

	Buffer   bytes.Buffer
	cleanups []func()
}

func (t *fakeT) Logf(msg string, args ...interface{}) {
	fmt.Fprintln(&t.Buffer, fmt.Sprintf(msg, args...))
}

func (t *fakeT) Cleanup(fn func()) {
	t.cleanups = append(t.cleanups, fn)
}

func (t *fakeT) runCleanups() {
	for _, fn := range t.cleanups {
		fn()
	}
}

func TestWriter(t *testing.T) {
	t.Parallel()

	fakeT := fakeT{TB: t}
	w := Writer(&fakeT)

	io.WriteString(w, "  ✓ tarot-reading.html - updated: CSS\n")
	io.WriteString(w, "partial ")
	assert.Equal(t, "  ✓ tarot-reading.html - updated: CSS\n", fakeT.Buffer.String())

	io.WriteString(w, "line\ntrailing")
	assert.Equal(t, "  ✓ tarot-reading.html - updated: CSS\npartial line\n", fakeT.Buffer.String())

	fakeT.runCleanups()
	assert.Equal(t, "  ✓ tarot-reading.html - updated: CSS\npartial line\ntrailing\n", fakeT.Buffer.String())
}
