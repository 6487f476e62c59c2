package must

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotErrorf(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			NotErrorf(nil, "parse %v", "rules")
		})
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, "parse default rules: bad indent", func() {
			NotErrorf(errors.New("bad indent"), "parse %v rules", "default")
		})
	})
}
