package scanner

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/justyntemme/clapinfo/pkg/clap"
	"github.com/justyntemme/clapinfo/pkg/debug"
)

// OpenFunc loads one module file.
type OpenFunc func(path string) (*clap.Bundle, error)

// Loader resolves bundle paths to loaded modules.
type Loader struct {
	// Open defaults to clap.Open.
	Open   OpenFunc
	Logger hclog.Logger
}

// Resolve loads path. A file is opened directly; a directory is searched
// depth-first in directory order and the first entry that loads wins. Every
// failure collapses to ok=false. On success the caller owns the bundle and
// file is the module that was loaded.
func (l *Loader) Resolve(path string) (bundle *clap.Bundle, file string, ok bool) {
	open := l.Open
	if open == nil {
		open = clap.Open
	}
	return resolve(path, open, debug.OrNull(l.Logger), nil)
}

// ancestors holds the directories on the current descent; a directory that
// is one of them is a link cycle and is not entered again.
func resolve(path string, open OpenFunc, logger hclog.Logger, ancestors []os.FileInfo) (*clap.Bundle, string, bool) {
	fi, err := os.Stat(path)
	if err != nil {
		logger.Debug("bundle not found", "path", path, "error", err)
		return nil, "", false
	}

	if fi.IsDir() {
		for _, a := range ancestors {
			if os.SameFile(a, fi) {
				logger.Debug("skipping directory cycle", "path", path)
				return nil, "", false
			}
		}
		ancestors = append(ancestors, fi)

		entries, err := os.ReadDir(path)
		if err != nil {
			logger.Debug("cannot read bundle directory", "path", path, "error", err)
			return nil, "", false
		}
		for _, entry := range entries {
			if b, file, ok := resolve(filepath.Join(path, entry.Name()), open, logger, ancestors); ok {
				return b, file, true
			}
		}
		return nil, "", false
	}

	if !fi.Mode().IsRegular() {
		return nil, "", false
	}
	b, err := open(path)
	if err != nil {
		logger.Debug("load failed", "path", path, "error", err)
		return nil, "", false
	}
	return b, path, true
}
