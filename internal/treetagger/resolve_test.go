package treetagger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"treetag/internal/testsupport"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func clearLookupEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvBinary, "")
	t.Setenv(EnvHome, "")
	t.Setenv("PATH", t.TempDir())
	// Keep ~/bin and friends out of the search.
	t.Setenv("HOME", t.TempDir())
}

func TestResolveExplicitPathWinsOverEnv(t *testing.T) {
	clearLookupEnv(t)
	explicitDir := t.TempDir()
	envDir := t.TempDir()
	want := testsupport.WriteStubTagger(t, explicitDir, "tree-tagger-english", "")
	testsupport.WriteStubTagger(t, envDir, "tree-tagger-english", "")
	t.Setenv(EnvBinary, envDir)

	got, err := resolveBinary("tree-tagger-english", explicitDir, discardLogger())
	if err != nil {
		t.Fatalf("resolveBinary: %v", err)
	}
	if got != want {
		t.Fatalf("expected explicit path %s, got %s", want, got)
	}
}

func TestResolveEnvBinaryWinsOverEnvHome(t *testing.T) {
	clearLookupEnv(t)
	binDir := t.TempDir()
	homeDir := t.TempDir()
	want := testsupport.WriteStubTagger(t, binDir, "tree-tagger-english", "")
	testsupport.WriteStubTagger(t, homeDir, "tree-tagger-english", "")
	t.Setenv(EnvBinary, want)
	t.Setenv(EnvHome, homeDir)

	got, err := resolveBinary("tree-tagger-english", "", discardLogger())
	if err != nil {
		t.Fatalf("resolveBinary: %v", err)
	}
	if got != want {
		t.Fatalf("expected $%s binary %s, got %s", EnvBinary, want, got)
	}
}

func TestResolveEnvHomeSearchesInstallSubdirs(t *testing.T) {
	clearLookupEnv(t)
	home := t.TempDir()
	cmdDir := filepath.Join(home, "cmd")
	if err := os.MkdirAll(cmdDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := testsupport.WriteStubTagger(t, cmdDir, "tree-tagger-english", "")
	t.Setenv(EnvHome, home)

	got, err := resolveBinary("tree-tagger-english", "", discardLogger())
	if err != nil {
		t.Fatalf("resolveBinary: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestResolveFallsBackToPathLookup(t *testing.T) {
	clearLookupEnv(t)
	binDir := t.TempDir()
	want := testsupport.WriteStubTagger(t, binDir, "tree-tagger-english", "")
	t.Setenv("PATH", binDir)

	got, err := resolveBinary("tree-tagger-english", "", discardLogger())
	if err != nil {
		t.Fatalf("resolveBinary: %v", err)
	}
	if got != want {
		t.Fatalf("expected $PATH hit %s, got %s", want, got)
	}
}

func TestResolveMissingBinaryNamesDownloadURL(t *testing.T) {
	clearLookupEnv(t)

	_, err := resolveBinary("tree-tagger-nosuchlang", "", discardLogger())
	if !errors.Is(err, ErrBinaryNotFound) {
		t.Fatalf("expected ErrBinaryNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), DownloadURL) {
		t.Fatalf("expected download URL in error, got %q", err)
	}
}

func TestProbeSkipsNonExecutableFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree-tagger-english")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, ok := probeDir(dir, "tree-tagger-english"); ok {
		t.Fatalf("probeDir must skip files without an executable bit")
	}
}

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := expandUser("~/bin")
	if err != nil {
		t.Fatalf("expandUser: %v", err)
	}
	if got != filepath.Join(home, "bin") {
		t.Fatalf("expected %s, got %s", filepath.Join(home, "bin"), got)
	}
	plain, err := expandUser("/usr/bin")
	if err != nil {
		t.Fatalf("expandUser: %v", err)
	}
	if plain != "/usr/bin" {
		t.Fatalf("non-tilde paths must pass through, got %s", plain)
	}
}
