package completion

import (
	"fmt"
	"strings"
)

// Escaping applies to description text only. Names come from domain and
// action identifiers restricted to alphanumerics, dash and underscore, so
// they are already safe in every target shell.

// EscapeDescription escapes description text for embedding in the given
// shell's completion syntax. An unrecognized shell passes the text through
// unchanged; callers that want to fail closed instead go through Script,
// which rejects unknown shells before any escaping happens.
func EscapeDescription(shell Shell, desc string) string {
	switch shell {
	case ShellBash:
		return escapeBash(desc)
	case ShellZsh:
		return escapeZsh(desc)
	case ShellFish:
		return escapeFish(desc)
	default:
		return desc
	}
}

// FormatCompletionItem renders one name/description pair in the item shape
// the given shell's completion script consumes. Bash items are name-only
// since the bash completion format has no per-item help text. Unrecognized
// shells fall back to the bare name.
func FormatCompletionItem(shell Shell, name, desc string) string {
	switch shell {
	case ShellBash:
		return name
	case ShellZsh:
		return fmt.Sprintf("'%s:%s'", name, escapeZsh(desc))
	case ShellFish:
		return fmt.Sprintf("-a \"%s\" -d '%s'", name, escapeFish(desc))
	default:
		return name
	}
}

func escapeBash(desc string) string {
	desc = strings.ReplaceAll(desc, `\`, `\\`)
	desc = strings.ReplaceAll(desc, `"`, `\"`)
	desc = strings.ReplaceAll(desc, `$`, `\$`)
	desc = strings.ReplaceAll(desc, "`", "\\`")
	return desc
}

// escapeZsh escapes for zsh's 'name:description' item syntax: the quote
// itself via the close-quote, escaped-quote, open-quote sequence, and the
// colon that separates name from description.
func escapeZsh(desc string) string {
	desc = strings.ReplaceAll(desc, `'`, `'\''`)
	desc = strings.ReplaceAll(desc, `:`, `\:`)
	return desc
}

func escapeFish(desc string) string {
	return strings.ReplaceAll(desc, `'`, `\'`)
}
