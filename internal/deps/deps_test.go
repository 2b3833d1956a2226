package deps

import (
	"testing"

	"treetag/internal/language"
	"treetag/internal/testsupport"
	"treetag/internal/treetagger"
)

func TestCheckReportsEveryLanguage(t *testing.T) {
	t.Setenv(treetagger.EnvBinary, "")
	t.Setenv(treetagger.EnvHome, "")
	t.Setenv("PATH", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	binDir := t.TempDir()
	englishPath := testsupport.WriteStubTagger(t, binDir, "tree-tagger-english", "")
	testsupport.WriteStubTagger(t, binDir, "tree-tagger-latin", "")

	results := Check(binDir)
	if len(results) != len(language.All()) {
		t.Fatalf("expected %d results, got %d", len(language.All()), len(results))
	}

	byLanguage := make(map[string]Status, len(results))
	for _, st := range results {
		byLanguage[st.Language] = st
	}

	english := byLanguage["english"]
	if !english.Available {
		t.Fatalf("expected english to be available: %#v", english)
	}
	if english.Path != englishPath {
		t.Fatalf("expected path %s, got %s", englishPath, english.Path)
	}

	latin := byLanguage["latin"]
	if !latin.Available || latin.Encoding != language.EncodingLatin1 {
		t.Fatalf("expected available latin-1 latin entry: %#v", latin)
	}

	german := byLanguage["german"]
	if german.Available {
		t.Fatalf("expected german to be missing: %#v", german)
	}
	if german.Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
	if german.Binary != "tree-tagger-german" {
		t.Fatalf("unexpected binary name %q", german.Binary)
	}
}
