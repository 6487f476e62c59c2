package jscheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAudit(t *testing.T) {
	t.Parallel()

	const handler = `<form onsubmit="go()"></form>`

	tests := []struct {
		desc string
		give string
		want []string
	}{
		{
			desc: "clean",
			give: handler + "<script>function go() { return 1; }</script>",
		},
		{
			desc: "listener handler",
			give: `<script>f.addEventListener("submit", go);</script>`,
		},
		{
			desc: "single quoted listener handler",
			give: `<script>f.addEventListener('submit', go);</script>`,
		},
		{
			desc: "escaped quotes",
			give: handler + `<script>document.getElementById(\'name\');</script>`,
			want: []string{"Escaped quotes in getElementById"},
		},
		{
			desc: "braces",
			give: handler + "<script>if (a) { if (b) { go(); }</script>",
			want: []string{"Mismatched braces: 2 open, 1 close"},
		},
		{
			desc: "no handler",
			give: "<form></form>",
			want: []string{"No form submit handler found"},
		},
		{
			desc: "script tags",
			give: handler + `<script>a()</script><script>b()`,
			want: []string{"Mismatched script tags: 2 open, 1 close"},
		},
		{
			desc: "script tags with attributes are not counted as opening",
			give: handler + `<script type="module">a()</script>`,
			want: []string{"Mismatched script tags: 0 open, 1 close"},
		},
		{
			desc: "version comments",
			give: handler + "<script>// Version: 1\n// Version: 2\n// Version: 3\n</script>",
			want: []string{"Multiple version comments (3) - may clutter code"},
		},
		{
			desc: "everything",
			give: strings.Join([]string{
				`<script>getElementById(\'x\') {`,
				"// Version: 1",
				"// Version: 2",
			}, "\n"),
			want: []string{
				"Escaped quotes in getElementById",
				"Mismatched braces: 1 open, 0 close",
				"No form submit handler found",
				"Mismatched script tags: 1 open, 0 close",
				"Multiple version comments (2) - may clutter code",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Audit(tt.give))
		})
	}
}
