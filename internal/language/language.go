package language

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Supported character encodings. Each TreeTagger parameter file is trained
// on a corpus in exactly one of these charsets.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin-1"
)

// Defaults applied when the caller leaves language or encoding empty.
const (
	DefaultLanguage = "german"
	DefaultEncoding = EncodingUTF8
)

// ErrUnsupportedPair reports a language/encoding combination with no known
// TreeTagger model.
var ErrUnsupportedPair = errors.New("unsupported language/encoding pair")

// table maps each encoding to the languages whose models use it. The names
// match the suffixes of the distributed tagger binaries.
var table = map[string][]string{
	EncodingLatin1: {"latin", "latinIT", "mongolian", "swahili"},
	EncodingUTF8: {
		"bulgarian", "dutch", "english", "estonian", "finnish", "french",
		"galician", "german", "italian", "polish", "russian", "slovak",
		"slovak2", "spanish",
	},
}

// encodingAliases maps common spellings onto the canonical encoding names.
var encodingAliases = map[string]string{
	"utf-8":      EncodingUTF8,
	"utf8":       EncodingUTF8,
	"latin-1":    EncodingLatin1,
	"latin1":     EncodingLatin1,
	"iso-8859-1": EncodingLatin1,
}

// canonical maps lowercased language names to their table spelling
// (some names, like latinIT, are mixed case).
var canonical map[string]string

func init() {
	canonical = make(map[string]string)
	for _, names := range table {
		for _, name := range names {
			canonical[strings.ToLower(name)] = name
		}
	}
}

// Profile is an immutable, validated language/encoding pairing.
type Profile struct {
	language string
	encoding string
}

// NewProfile validates the pair against the model table. Empty values take
// the package defaults.
func NewProfile(lang, encoding string) (Profile, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = DefaultLanguage
	}
	enc, err := NormalizeEncoding(encoding)
	if err != nil {
		return Profile{}, err
	}
	name, ok := canonical[strings.ToLower(lang)]
	if !ok || !listed(table[enc], name) {
		return Profile{}, fmt.Errorf("%w: no %s model for language %q", ErrUnsupportedPair, enc, lang)
	}
	return Profile{language: name, encoding: enc}, nil
}

// NormalizeEncoding resolves aliases like "utf8" or "iso-8859-1" to the
// canonical encoding name. An empty value yields the default encoding.
func NormalizeEncoding(encoding string) (string, error) {
	encoding = strings.ToLower(strings.TrimSpace(encoding))
	if encoding == "" {
		return DefaultEncoding, nil
	}
	enc, ok := encodingAliases[encoding]
	if !ok {
		return "", fmt.Errorf("%w: unknown encoding %q", ErrUnsupportedPair, encoding)
	}
	return enc, nil
}

// Language returns the canonical language name.
func (p Profile) Language() string { return p.language }

// Encoding returns the canonical encoding name.
func (p Profile) Encoding() string { return p.encoding }

// BinaryName returns the name of the tagger executable for this language.
func (p Profile) BinaryName() string { return "tree-tagger-" + p.language }

func (p Profile) String() string {
	return p.language + " (" + p.encoding + ")"
}

// Encodings returns the supported encodings in stable order.
func Encodings() []string {
	return []string{EncodingUTF8, EncodingLatin1}
}

// Languages returns a sorted copy of the languages registered under the
// given canonical encoding.
func Languages(encoding string) []string {
	names := table[encoding]
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}

// All returns every supported profile, grouped by encoding in stable order.
func All() []Profile {
	var profiles []Profile
	for _, enc := range Encodings() {
		for _, name := range Languages(enc) {
			profiles = append(profiles, Profile{language: name, encoding: enc})
		}
	}
	return profiles
}

func listed(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
