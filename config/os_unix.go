//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

func reservedRune(rune) bool {
	return false
}

// leading dots would make file hidden or refer to parent directory
func trimName(name string) string {
	return strings.TrimLeft(name, ".")
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
