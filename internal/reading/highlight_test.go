package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightReading(t *testing.T) {
	t.Parallel()

	labels := []string{"Your Mission", "Your Gift"}

	tests := []struct {
		desc        string
		give        string
		want        string
		wantChanges int
	}{
		{
			desc: "name paragraph",
			give: "<p>Sarah, your path is one of service.</p>",
			want: `<p><span class="highlight">Sarah</span>, your path is one of service.</p>`,

			wantChanges: 1,
		},
		{
			desc: "name paragraphs count separately",
			give: "<p>Sarah, your gift is clear.</p>\n<p>Sarah, your road is long!</p>",
			want: `<p><span class="highlight">Sarah</span>, your gift is clear.</p>` + "\n" +
				`<p><span class="highlight">Sarah</span>, your road is long!</p>`,

			wantChanges: 2,
		},
		{
			desc: "paragraph with nested tags is not a name paragraph",
			give: "<p>Sarah, your <em>path</em> is wide.</p>",
			want: "<p>Sarah, your <em>path</em> is wide.</p>",
		},
		{
			desc: "label text",
			give: "<p><strong>Your Mission:</strong> To teach others. </p>",
			want: `<p><strong>Your Mission:</strong> <span class="highlight">To teach others.</span> </p>`,

			wantChanges: 1,
		},
		{
			desc: "label used twice counts once",
			give: "<p><strong>Your Gift:</strong> Insight</p><p><strong>Your Gift:</strong>Empathy</p>",
			want: `<p><strong>Your Gift:</strong> <span class="highlight">Insight</span></p>` +
				`<p><strong>Your Gift:</strong><span class="highlight">Empathy</span></p>`,

			wantChanges: 1,
		},
		{
			desc: "label is not a prefix match",
			give: "<p><strong>Your Gifts:</strong> Many</p>",
			want: "<p><strong>Your Gifts:</strong> Many</p>",
		},
		{
			desc: "label followed directly by a tag",
			give: "<p><strong>Your Mission:</strong> <em>Teach</em></p>",
			want: "<p><strong>Your Mission:</strong> <em>Teach</em></p>",
		},
		{
			desc: "already highlighted",
			give: `<p><strong>Your Mission:</strong> Teach <span class="highlight">x</span></p>`,
			want: `<p><strong>Your Mission:</strong> Teach <span class="highlight">x</span></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, changes := HighlightReading(tt.give, labels)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantChanges, changes)
		})
	}
}

func TestHighlightReading_idempotent(t *testing.T) {
	t.Parallel()

	give := "<p>Maya, your calling is art.</p><p><strong>Your Mission:</strong> Create.</p>"
	once, n := HighlightReading(give, []string{"Your Mission"})
	assert.Equal(t, 2, n)

	twice, n := HighlightReading(once, []string{"Your Mission"})
	assert.Zero(t, n)
	assert.Equal(t, once, twice)
}

func TestHighlightLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc        string
		give        string
		want        string
		wantChanges int
	}{
		{
			desc: "single",
			give: "<p><strong>Soul Purpose:</strong> To heal.</p>",
			want: `<p><span class="highlight">Soul Purpose:</span> To heal.</p>`,

			wantChanges: 1,
		},
		{
			desc: "every occurrence, one change",
			give: "<p><strong>Life Lesson:</strong> a</p><p><strong>Life Lesson:</strong> b</p>",
			want: `<p><span class="highlight">Life Lesson:</span> a</p>` +
				`<p><span class="highlight">Life Lesson:</span> b</p>`,

			wantChanges: 1,
		},
		{
			desc: "several labels",
			give: "<p><strong>Soul Purpose:</strong> a</p><p><strong>Life Lesson:</strong> b</p>",
			want: `<p><span class="highlight">Soul Purpose:</span> a</p>` +
				`<p><span class="highlight">Life Lesson:</span> b</p>`,

			wantChanges: 2,
		},
		{
			desc: "strong outside a paragraph start",
			give: "<li><strong>Soul Purpose:</strong> a</li>",
			want: "<li><strong>Soul Purpose:</strong> a</li>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, changes := HighlightLabels(tt.give, []string{"Soul Purpose", "Life Lesson"})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantChanges, changes)
		})
	}
}

func TestHighlightPowerWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc        string
		words       []string
		give        string
		want        string
		wantChanges int
	}{
		{
			desc:  "after a period",
			words: []string{"destiny"},
			give:  "<p>It begins. Destiny calls. Destiny waits.</p>",
			want:  `<p>It begins. <span class="highlight">Destiny</span> calls. Destiny waits.</p>`,

			wantChanges: 1,
		},
		{
			desc:  "after a tag",
			words: []string{"wisdom"},
			give:  "<p>\n  wisdom grows</p>",
			want:  "<p>\n  " + `<span class="highlight">wisdom</span>` + " grows</p>",

			wantChanges: 1,
		},
		{
			desc:  "needs whitespace",
			words: []string{"healing"},
			give:  "<p>Healing comes.</p>",
			want:  "<p>Healing comes.</p>",
		},
		{
			desc:  "whole words only",
			words: []string{"purpose"},
			give:  "<p>Done. Purposeful work. Purpose found.</p>",
			want:  `<p>Done. Purposeful work. <span class="highlight">Purpose</span> found.</p>`,

			wantChanges: 1,
		},
		{
			desc:  "already highlighted",
			words: []string{"mission"},
			give:  `<p>Go. <span class="highlight">Mission</span> first. Mission second.</p>`,
			want:  `<p>Go. <span class="highlight">Mission</span> first. Mission second.</p>`,
		},
		{
			desc:  "several words",
			words: []string{"teacher", "guide", "pioneer"},
			give:  "<p>Be bold. Teacher and guide. Guide others.</p>",
			want: `<p>Be bold. <span class="highlight">Teacher</span> and guide. ` +
				`<span class="highlight">Guide</span> others.</p>`,

			wantChanges: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, changes := HighlightPowerWords(tt.give, tt.words)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantChanges, changes)
		})
	}
}
