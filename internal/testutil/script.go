package testutil

import (
	"io"
	"strings"
)

// Script builds a console input stream from one line per prompt. The
// returned reader yields each line terminated by a newline, then EOF.
func Script(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
