// SPDX-License-Identifier: MPL-2.0

package toolexec

import (
	"regexp"
	"strings"
)

// errorMarker matches the "error:" marker the SDK tools prefix diagnostics with,
// e.g. "MakeAppx : error: Package creation failed." or "ERROR: PRI175: ...".
var errorMarker = regexp.MustCompile(`(?i)error:\s*(.*)`)

// ToolErrors returns the diagnostics found in a tool's standard output: the
// text after the "error:" marker on every line that carries one.
func ToolErrors(stdout string) []string {
	var msgs []string
	for _, line := range strings.Split(stdout, "\n") {
		m := errorMarker.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		if msg := strings.TrimSpace(m[1]); msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// ErrorMessage joins the diagnostics in stdout, one per line, or returns
// fallback when there are none.
func ErrorMessage(stdout, fallback string) string {
	if msgs := ToolErrors(stdout); len(msgs) > 0 {
		return strings.Join(msgs, "\n")
	}
	return fallback
}
