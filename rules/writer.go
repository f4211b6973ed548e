package rules

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputName is the name of produced file unless configured otherwise.
const DefaultOutputName = "shared_rules.css"

const header = "/* Shared CSS Rules */\n\n"

// ErrNothingToWrite is returned by WriteShared when there are no groups.
var ErrNothingToWrite = errors.New("no shared rules to write")

// Render writes groups to w. File paths in provenance comments are made
// relative to dir and always use forward slashes.
func Render(w io.Writer, groups []Group, dir string) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(header)
	for _, g := range groups {
		files := make([]string, 0, len(g.Files))
		for _, f := range g.Files {
			files = append(files, commentSafe(relative(dir, f)))
		}
		fmt.Fprintf(bw, "/* Used in: %s */\n", strings.Join(files, ", "))
		fmt.Fprintf(bw, "%s {\n", g.Selector)
		for p := range g.Properties.All() {
			fmt.Fprintf(bw, "    %s\n", p)
		}
		bw.WriteString("}\n\n")
	}
	return bw.Flush()
}

// WriteShared renders groups into dir/name replacing existing file. Content
// is written to a temporary file first and renamed into place, so readers
// never see partial output. Returns full path of written file.
func WriteShared(groups []Group, dir, name string) (string, error) {
	if len(groups) == 0 {
		return "", ErrNothingToWrite
	}
	if len(name) == 0 {
		name = DefaultOutputName
	}
	dst := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return dst, fmt.Errorf("unable to create temporary file for '%s': %w", dst, err)
	}
	// cleanup in case of failure, after successful rename file is gone
	defer os.Remove(tmp.Name())

	if err := Render(tmp, groups, dir); err != nil {
		tmp.Close()
		return dst, fmt.Errorf("unable to write '%s': %w", dst, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return dst, fmt.Errorf("unable to write '%s': %w", dst, err)
	}
	if err := tmp.Close(); err != nil {
		return dst, fmt.Errorf("unable to write '%s': %w", dst, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return dst, fmt.Errorf("unable to set permissions for '%s': %w", dst, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return dst, fmt.Errorf("unable to replace '%s': %w", dst, err)
	}
	return dst, nil
}

func relative(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil {
		path = rel
	}
	return filepath.ToSlash(path)
}

// commentSafe makes sure file name cannot close provenance comment.
func commentSafe(s string) string {
	return strings.ReplaceAll(s, "*/", "*\\/")
}
