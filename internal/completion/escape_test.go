package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeDescriptionBash(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`plain text`, `plain text`},
		{`with "quotes"`, `with \"quotes\"`},
		{`cost $5`, `cost \$5`},
		{"run `ls`", "run \\`ls\\`"},
		{`back\slash`, `back\\slash`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, EscapeDescription(ShellBash, tc.in))
	}
}

func TestEscapeDescriptionZsh(t *testing.T) {
	// The quote uses the close-quote, escaped-quote, open-quote sequence;
	// the colon is escaped since it separates name from description.
	assert.Equal(t, `It'\''s a test\: value`,
		EscapeDescription(ShellZsh, `It's a test: value`))
}

func TestEscapeDescriptionFish(t *testing.T) {
	assert.Equal(t, `It\'s fine`, EscapeDescription(ShellFish, `It's fine`))
}

func TestEscapeDescriptionUnknownShellPassesThrough(t *testing.T) {
	assert.Equal(t, `raw 'text': $x`, EscapeDescription(Shell("powershell"), `raw 'text': $x`))
}

func TestFormatCompletionItem(t *testing.T) {
	t.Run("bash is name-only", func(t *testing.T) {
		assert.Equal(t, "list", FormatCompletionItem(ShellBash, "list", "List resources"))
	})

	t.Run("zsh wraps name and description", func(t *testing.T) {
		assert.Equal(t, "'list:List resources'",
			FormatCompletionItem(ShellZsh, "list", "List resources"))
		assert.Equal(t, `'name:It'\''s a test\: value'`,
			FormatCompletionItem(ShellZsh, "name", `It's a test: value`))
	})

	t.Run("fish emits argument and description flags", func(t *testing.T) {
		assert.Equal(t, `-a "list" -d 'List resources'`,
			FormatCompletionItem(ShellFish, "list", "List resources"))
		assert.Equal(t, `-a "x" -d 'It\'s'`,
			FormatCompletionItem(ShellFish, "x", "It's"))
	})

	t.Run("unknown shell falls back to the bare name", func(t *testing.T) {
		assert.Equal(t, "list", FormatCompletionItem(Shell("tcsh"), "list", "desc"))
	})
}
