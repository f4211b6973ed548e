package css

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}

	charsetPrefix = []byte(`@charset "`)
)

// ErrInvalidUTF8 is returned when stylesheet does not decode to valid UTF-8.
var ErrInvalidUTF8 = errors.New("stylesheet is not valid UTF-8")

// Decode converts raw stylesheet bytes to UTF-8 following CSS rules: byte
// order mark wins, then @charset rule at the very beginning of the data,
// otherwise UTF-8 is assumed.
func Decode(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8), bytes.HasPrefix(data, bomUTF16BE), bytes.HasPrefix(data, bomUTF16LE):
		out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
		if err != nil {
			return nil, fmt.Errorf("unable to decode using byte order mark: %w", err)
		}
		data = out
	case bytes.HasPrefix(data, charsetPrefix):
		name, _, found := bytes.Cut(data[len(charsetPrefix):], []byte{'"'})
		if !found {
			return nil, errors.New("malformed @charset rule")
		}
		enc, err := ianaindex.IANA.Encoding(string(name))
		if err != nil {
			return nil, fmt.Errorf("unknown charset %q: %w", name, err)
		}
		if enc == nil {
			return nil, fmt.Errorf("unsupported charset %q", name)
		}
		if data, err = enc.NewDecoder().Bytes(data); err != nil {
			return nil, fmt.Errorf("unable to decode from %q: %w", name, err)
		}
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	return data, nil
}
