package treetagger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"treetag/internal/charset"
	"treetag/internal/language"
)

var commandContext = exec.CommandContext

// Option configures adapter construction.
type Option func(*settings)

type settings struct {
	path     string
	language string
	encoding string
	abbrev   string
	logger   *slog.Logger
}

// WithPath supplies the tagger binary or its installation directory,
// overriding the environment and search-path lookup.
func WithPath(path string) Option {
	return func(s *settings) { s.path = strings.TrimSpace(path) }
}

// WithLanguage selects the model language (default german).
func WithLanguage(lang string) Option {
	return func(s *settings) { s.language = lang }
}

// WithEncoding selects the model charset (default utf-8).
func WithEncoding(encoding string) Option {
	return func(s *settings) { s.encoding = encoding }
}

// WithAbbreviationList passes a custom abbreviation file to the binary via
// its -a flag.
func WithAbbreviationList(path string) Option {
	return func(s *settings) { s.abbrev = strings.TrimSpace(path) }
}

// WithLogger attaches a logger; the binary search and each invocation are
// reported at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Tagger shells out to a resolved TreeTagger binary. All fields are fixed
// at construction; concurrent calls each spawn their own child process.
type Tagger struct {
	profile language.Profile
	codec   charset.Codec
	binary  string
	abbrev  string
	logger  *slog.Logger
}

// New validates the language/encoding pair and resolves the tagger binary.
// Both failures surface as *LookupError before any subprocess is spawned.
func New(opts ...Option) (*Tagger, error) {
	s := settings{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&s)
	}

	profile, err := language.NewProfile(s.language, s.encoding)
	if err != nil {
		return nil, &LookupError{Language: s.language, Encoding: s.encoding, Err: err}
	}
	codec, err := charset.ForEncoding(profile.Encoding())
	if err != nil {
		return nil, &LookupError{Language: profile.Language(), Encoding: profile.Encoding(), Err: err}
	}
	binary, err := resolveBinary(profile.BinaryName(), s.path, s.logger)
	if err != nil {
		return nil, &LookupError{Language: profile.Language(), Encoding: profile.Encoding(), Err: err}
	}

	return &Tagger{
		profile: profile,
		codec:   codec,
		binary:  binary,
		abbrev:  s.abbrev,
		logger:  s.logger,
	}, nil
}

// Locate resolves the tagger binary for a profile without constructing an
// adapter. Availability checks use it to share the adapter's search rules.
func Locate(profile language.Profile, explicit string) (string, error) {
	return resolveBinary(profile.BinaryName(), explicit, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Profile returns the validated language/encoding pair.
func (t *Tagger) Profile() language.Profile { return t.profile }

// Binary returns the resolved executable path.
func (t *Tagger) Binary() string { return t.binary }

// Tag runs the tagger over a sequence of tokens. Tokens must not contain
// newlines; each becomes one input line for the binary.
func (t *Tagger) Tag(ctx context.Context, tokens []string) ([]TaggedToken, error) {
	return t.TagText(ctx, strings.Join(tokens, "\n"))
}

// TagText runs the tagger over pre-formatted text, encoding it in the
// model's charset first.
func (t *Tagger) TagText(ctx context.Context, text string) ([]TaggedToken, error) {
	raw, err := t.codec.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("encode input as %s: %w", t.codec.Name(), err)
	}
	return t.TagBytes(ctx, raw)
}

// TagBytes runs the tagger over input already encoded in the model's
// charset. The bytes are written to the child unchanged.
func (t *Tagger) TagBytes(ctx context.Context, raw []byte) ([]TaggedToken, error) {
	out, err := t.run(ctx, raw)
	if err != nil {
		return nil, err
	}
	text, err := t.codec.Decode(out)
	if err != nil {
		return nil, fmt.Errorf("decode output as %s: %w", t.codec.Name(), err)
	}
	return parseOutput(text), nil
}

// TagSents tags each sentence in its own subprocess round-trip, preserving
// sentence order.
func (t *Tagger) TagSents(ctx context.Context, sentences [][]string) ([][]TaggedToken, error) {
	tagged := make([][]TaggedToken, 0, len(sentences))
	for i, sentence := range sentences {
		records, err := t.Tag(ctx, sentence)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i, err)
		}
		tagged = append(tagged, records)
	}
	return tagged, nil
}

// run performs the single blocking round-trip: write all input, wait for
// exit, collect all output. A non-zero exit is an *ExecError carrying the
// captured stderr; there is no partial-result path.
func (t *Tagger) run(ctx context.Context, input []byte) ([]byte, error) {
	var args []string
	if t.abbrev != "" {
		args = append(args, "-a", t.abbrev)
	}

	cmd := commandContext(ctx, t.binary, args...) //nolint:gosec
	cmd.Stdin = bytes.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, &ExecError{
			Binary:   t.binary,
			ExitCode: exitCode,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}

	t.logger.Debug("tagger run complete",
		"binary", t.binary,
		"input_bytes", len(input),
		"output_bytes", stdout.Len(),
		"duration", time.Since(start))
	return stdout.Bytes(), nil
}
