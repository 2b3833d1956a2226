// Package deps reports which per-language tagger binaries are installed.
package deps

import (
	"fmt"

	"treetag/internal/language"
	"treetag/internal/treetagger"
)

// Status reports the availability of one language's tagger binary.
type Status struct {
	Language  string
	Encoding  string
	Binary    string
	Available bool
	Path      string
	Detail    string
}

// Check resolves the tagger binary for every supported language using the
// adapter's own search rules. An explicit path (binary directory or install
// root) takes priority, exactly as it does at adapter construction.
func Check(explicitPath string) []Status {
	profiles := language.All()
	results := make([]Status, 0, len(profiles))
	for _, profile := range profiles {
		status := Status{
			Language: profile.Language(),
			Encoding: profile.Encoding(),
			Binary:   profile.BinaryName(),
		}
		path, err := treetagger.Locate(profile, explicitPath)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", status.Binary)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = path
		results = append(results, status)
	}
	return results
}
