// Package charset converts text to and from the byte encodings TreeTagger
// models communicate in.
package charset

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"treetag/internal/language"
)

// Codec encodes adapter input and decodes tagger output for one of the
// supported charsets.
type Codec struct {
	name string
}

// ForEncoding returns the codec for a canonical or aliased encoding name.
func ForEncoding(name string) (Codec, error) {
	enc, err := language.NormalizeEncoding(name)
	if err != nil {
		return Codec{}, err
	}
	return Codec{name: enc}, nil
}

// Name returns the canonical encoding name.
func (c Codec) Name() string { return c.name }

// Encode converts text to the wire bytes the tagger expects. UTF-8 passes
// through; Latin-1 fails on runes outside ISO-8859-1.
func (c Codec) Encode(text string) ([]byte, error) {
	switch c.name {
	case language.EncodingLatin1:
		raw, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("encode latin-1: %w", err)
		}
		return raw, nil
	default:
		return []byte(text), nil
	}
}

// Decode converts tagger output bytes to text. The decode is permissive:
// Latin-1 maps every byte, and invalid UTF-8 sequences become replacement
// runes rather than errors. A model/charset mismatch therefore yields
// garbled text, never a failure.
func (c Codec) Decode(raw []byte) (string, error) {
	switch c.name {
	case language.EncodingLatin1:
		text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("decode latin-1: %w", err)
		}
		return string(text), nil
	default:
		if utf8.Valid(raw) {
			return string(raw), nil
		}
		return strings.ToValidUTF8(string(raw), string(utf8.RuneError)), nil
	}
}
