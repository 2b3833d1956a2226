package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"treetag/internal/testsupport"
	"treetag/internal/treetagger"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(treetagger.EnvBinary, "")
	t.Setenv(treetagger.EnvHome, "")
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTagCommandRawOutput(t *testing.T) {
	isolateEnv(t)
	binDir := t.TempDir()
	testsupport.WriteStubTagger(t, binDir, "tree-tagger-english", "")

	out, err := runCommand(t, "",
		"tag", "--raw", "--language", "english", "--path", binDir,
		"What", "is", "the", "answer")
	if err != nil {
		t.Fatalf("tag: %v", err)
	}

	want := "What\tXX\tWhat\nis\tXX\tis\nthe\tXX\tthe\nanswer\tXX\tanswer\n"
	if out != want {
		t.Fatalf("unexpected output:\n got %q\nwant %q", out, want)
	}
}

func TestTagCommandReadsStdin(t *testing.T) {
	isolateEnv(t)
	binDir := t.TempDir()
	testsupport.WriteStubTagger(t, binDir, "tree-tagger-english", "")

	out, err := runCommand(t, "hello world\n",
		"tag", "--raw", "-l", "english", "-p", binDir, "-i", "-")
	if err != nil {
		t.Fatalf("tag: %v", err)
	}
	if out != "hello\tXX\thello\nworld\tXX\tworld\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestTagCommandTableOutput(t *testing.T) {
	isolateEnv(t)
	binDir := t.TempDir()
	testsupport.WriteStubTagger(t, binDir, "tree-tagger-english", "")

	out, err := runCommand(t, "",
		"tag", "--table", "-l", "english", "-p", binDir, "word")
	if err != nil {
		t.Fatalf("tag: %v", err)
	}
	if !strings.Contains(out, "TOKEN") || !strings.Contains(out, "LEMMA") {
		t.Fatalf("expected table headers in output: %q", out)
	}
	if !strings.Contains(out, "word") {
		t.Fatalf("expected token in table output: %q", out)
	}
}

func TestTagCommandUnknownLanguage(t *testing.T) {
	isolateEnv(t)

	_, err := runCommand(t, "", "tag", "--raw", "-l", "klingon", "token")
	if err == nil {
		t.Fatalf("expected error for unsupported language")
	}
	if !strings.Contains(err.Error(), "unsupported language/encoding pair") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTagCommandSurfacesTaggerFailure(t *testing.T) {
	isolateEnv(t)
	binDir := t.TempDir()
	testsupport.WriteStubTagger(t, binDir, "tree-tagger-english", testsupport.FailScript)

	_, err := runCommand(t, "", "tag", "--raw", "-l", "english", "-p", binDir, "boom")
	if err == nil {
		t.Fatalf("expected error from failing tagger")
	}
	if !strings.Contains(err.Error(), "tagger command failed") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "parameter file not found") {
		t.Fatalf("expected stderr diagnostics in error: %v", err)
	}
}

func TestLanguagesCommandListsTable(t *testing.T) {
	isolateEnv(t)

	out, err := runCommand(t, "", "languages")
	if err != nil {
		t.Fatalf("languages: %v", err)
	}
	for _, want := range []string{"german", "latin", "latin-1", "utf-8", "tree-tagger-english", "default"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCheckCommandReportsAvailability(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PATH", t.TempDir())
	binDir := t.TempDir()
	testsupport.WriteStubTagger(t, binDir, "tree-tagger-english", "")

	out, err := runCommand(t, "", "check", "--path", binDir)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "1 of 18 tagger binaries available") {
		t.Fatalf("expected summary line in output:\n%s", out)
	}
	if !strings.Contains(out, "ok") || !strings.Contains(out, "missing") {
		t.Fatalf("expected mixed statuses in output:\n%s", out)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	isolateEnv(t)
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected target path in output: %q", out)
	}

	if _, err := runCommand(t, "", "config", "init", "--path", target); err == nil {
		t.Fatalf("expected error when config already exists")
	}

	out, err = runCommand(t, "", "--config", target, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "language") || !strings.Contains(out, "german") {
		t.Fatalf("expected resolved config in output:\n%s", out)
	}
}
