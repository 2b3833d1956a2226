// Package testsupport provides shared fixtures for exercising the adapter
// against stub tagger binaries.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// EchoScript mimics a tagger: every stdin line comes back as
// "<token>\tXX\t<token>".
const EchoScript = `#!/bin/sh
while IFS= read -r line || [ -n "$line" ]; do
	printf '%s\tXX\t%s\n' "$line" "$line"
done
`

// FailScript mimics a tagger that cannot load its parameter file.
const FailScript = `#!/bin/sh
echo "parameter file not found" >&2
exit 1
`

// ArgsScript reports the arguments it was invoked with, one per line,
// ignoring stdin. Used to verify flag plumbing.
const ArgsScript = `#!/bin/sh
cat >/dev/null
for arg in "$@"; do
	printf '%s\n' "$arg"
done
`

// WriteStubTagger writes an executable script named like a tagger binary
// and returns its path. An empty script defaults to EchoScript.
func WriteStubTagger(t testing.TB, dir, name, script string) string {
	t.Helper()
	if script == "" {
		script = EchoScript
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub tagger %s: %v", name, err)
	}
	return path
}
