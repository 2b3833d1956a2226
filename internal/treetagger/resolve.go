package treetagger

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// DownloadURL is where TreeTagger binaries and parameter files live; it is
// included in lookup failures so the remedy is in the error itself.
const DownloadURL = "https://www.cis.uni-muenchen.de/~schmid/tools/TreeTagger/"

// Environment variables consulted when no explicit path is supplied. Either
// may name the binary itself or the installation directory.
const (
	EnvBinary = "TREETAGGER"
	EnvHome   = "TREETAGGER_HOME"
)

// Conventional installation directories, checked after the explicit path
// and environment variables.
var searchDirs = []string{
	".",
	"/usr/bin",
	"/usr/local/bin",
	"/opt/local/bin",
	"/Applications/bin",
	"~/bin",
	"~/Applications/bin",
	"~/work/TreeTagger/cmd",
	"~/tree-tagger/cmd",
}

// resolveBinary locates the tagger executable. Resolution order: explicit
// path, $TREETAGGER, $TREETAGGER_HOME, conventional install directories,
// then $PATH. First match wins.
func resolveBinary(name, explicit string, logger *slog.Logger) (string, error) {
	name = executableName(name)

	if explicit != "" {
		if found, ok := probe(explicit, name); ok {
			logger.Debug("tagger binary resolved", "source", "explicit path", "path", found)
			return found, nil
		}
		logger.Debug("tagger binary not at explicit path", "path", explicit, "binary", name)
	}

	for _, env := range []string{EnvBinary, EnvHome} {
		value := strings.TrimSpace(os.Getenv(env))
		if value == "" {
			continue
		}
		if found, ok := probe(value, name); ok {
			logger.Debug("tagger binary resolved", "source", "$"+env, "path", found)
			return found, nil
		}
		logger.Debug("tagger binary not under env var", "var", env, "value", value, "binary", name)
	}

	for _, dir := range searchDirs {
		expanded, err := expandUser(dir)
		if err != nil {
			continue
		}
		if found, ok := probeDir(expanded, name); ok {
			logger.Debug("tagger binary resolved", "source", "search path", "path", found)
			return found, nil
		}
	}

	if found, err := exec.LookPath(name); err == nil {
		logger.Debug("tagger binary resolved", "source", "$PATH", "path", found)
		return found, nil
	}

	return "", fmt.Errorf("%w: %q not in explicit path, $%s, $%s, standard install directories, or $PATH; download TreeTagger from %s",
		ErrBinaryNotFound, name, EnvBinary, EnvHome, DownloadURL)
}

// probe accepts either the binary itself or a directory containing it.
func probe(path, name string) (string, bool) {
	expanded, err := expandUser(path)
	if err != nil {
		return "", false
	}
	info, err := os.Stat(expanded)
	if err != nil {
		return "", false
	}
	if !info.IsDir() {
		return expanded, isExecutable(info)
	}
	return probeDir(expanded, name)
}

// probeDir looks for the binary directly in dir and in the bin/ and cmd/
// subdirectories a TreeTagger installation uses.
func probeDir(dir, name string) (string, bool) {
	for _, sub := range []string{"", "bin", "cmd"} {
		candidate := filepath.Join(dir, sub, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() && isExecutable(info) {
			return candidate, true
		}
	}
	return "", false
}

func isExecutable(info os.FileInfo) bool {
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode()&0o111 != 0
}

func executableName(name string) string {
	if runtime.GOOS == "windows" && !strings.HasSuffix(name, ".exe") {
		return name + ".exe"
	}
	return name
}

func expandUser(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	if len(path) > 1 && (path[1] == '/' || path[1] == '\\') {
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
