// SPDX-License-Identifier: MPL-2.0

package toolexec

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// CommandLine renders cmd as a single shell-quoted line for logs and dry runs.
// The result is for display only; tools are never run through a shell.
func CommandLine(cmd Command) string {
	words := make([]string, 0, len(cmd.Args)+1)
	words = append(words, quoteWord(cmd.Path))
	for _, arg := range cmd.Args {
		words = append(words, quoteWord(arg))
	}
	return strings.Join(words, " ")
}

func quoteWord(s string) string {
	quoted, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		// only strings with invalid UTF-8 or NUL bytes end up here
		return strings.ToValidUTF8(strings.ReplaceAll(s, "\x00", ""), "?")
	}
	return quoted
}
