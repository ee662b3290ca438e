// Package scanner finds CLAP bundles on disk and loads their modules.
package scanner

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/justyntemme/clapinfo/pkg/debug"
)

// Extension is the bundle suffix.
const Extension = ".clap"

// DefaultSearchPaths returns the platform's standard CLAP directories,
// expanded.
func DefaultSearchPaths() []string {
	paths := defaultSearchPaths()
	for i, p := range paths {
		paths[i] = ExpandPath(p)
	}
	return paths
}

var percentVar = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_()]*)%`)

// ExpandPath expands a leading ~, $VAR and ${VAR} references and %VAR%
// references. Unset variables expand to the empty string.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	path = percentVar.ReplaceAllStringFunc(path, func(m string) string {
		return os.Getenv(m[1 : len(m)-1])
	})
	return os.ExpandEnv(path)
}

// Locator lists candidate bundles in a fixed set of directories.
type Locator struct {
	// Paths replaces DefaultSearchPaths when non-nil.
	Paths []string
	// Extra directories are searched after Paths.
	Extra  []string
	Logger hclog.Logger
}

// SearchPaths returns the directories searched, in order.
func (l *Locator) SearchPaths() []string {
	paths := l.Paths
	if paths == nil {
		paths = DefaultSearchPaths()
	}
	out := make([]string, 0, len(paths)+len(l.Extra))
	for _, p := range paths {
		out = append(out, ExpandPath(p))
	}
	for _, p := range l.Extra {
		out = append(out, ExpandPath(p))
	}
	return out
}

// InstalledBundles lists the .clap entries of every search path, directories
// on platforms where bundles are directories and plain files elsewhere.
// Search paths that cannot be read are skipped. There is no recursion.
func (l *Locator) InstalledBundles() []string {
	logger := debug.OrNull(l.Logger)

	var bundles []string
	for _, dir := range l.SearchPaths() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Debug("skipping search path", "path", dir, "error", err)
			continue
		}
		for _, entry := range entries {
			if filepath.Ext(entry.Name()) != Extension {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if isDir(path) != BundlesAreDirectories {
				continue
			}
			bundles = append(bundles, path)
		}
	}
	return bundles
}

// isDir follows symlinks, so a link to a bundle directory counts as one.
func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
