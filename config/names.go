package config

import (
	"os"
	"strings"
)

const badFileName = "_bad_file_name_"

// CleanFileName turns user supplied name into a plain file name: path and
// list separators and characters not allowed by the platform are removed,
// so the result always stays inside the directory it is joined with.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if sym == 0 || sym == os.PathSeparator || sym == os.PathListSeparator || sym == '/' || reservedRune(sym) {
			return -1
		}
		return sym
	}, in)
	out = trimName(out)
	if len(out) == 0 {
		return badFileName
	}
	return out
}
