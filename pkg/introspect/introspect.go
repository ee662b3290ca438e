// Package introspect ties the scanner, host and probes together.
//
// Every exported operation runs to completion on the calling goroutine,
// locked to its OS thread, and keeps at most one module loaded at a time.
package introspect

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-hclog"

	"github.com/justyntemme/clapinfo/pkg/clap"
	"github.com/justyntemme/clapinfo/pkg/debug"
	"github.com/justyntemme/clapinfo/pkg/ext"
	"github.com/justyntemme/clapinfo/pkg/host"
	"github.com/justyntemme/clapinfo/pkg/info"
	"github.com/justyntemme/clapinfo/pkg/scanner"
)

// Options configures an Engine.
type Options struct {
	// SearchPaths replaces the platform defaults when non-nil.
	SearchPaths []string
	// ExtraPaths are searched after SearchPaths.
	ExtraPaths []string
	// Open defaults to clap.Open.
	Open   scanner.OpenFunc
	Logger hclog.Logger
}

// Engine runs scans and targeted introspection.
type Engine struct {
	locator *scanner.Locator
	loader  *scanner.Loader
	logger  hclog.Logger
}

// New returns an Engine for opts.
func New(opts Options) *Engine {
	logger := debug.OrNull(opts.Logger)
	return &Engine{
		locator: &scanner.Locator{
			Paths:  opts.SearchPaths,
			Extra:  opts.ExtraPaths,
			Logger: logger.Named("scanner"),
		},
		loader: &scanner.Loader{
			Open:   opts.Open,
			Logger: logger.Named("loader"),
		},
		logger: logger,
	}
}

// SearchPaths returns the directories searched for bundles.
func (e *Engine) SearchPaths() []string {
	return e.locator.SearchPaths()
}

// ListBundles returns the candidate bundles found in the search paths,
// without loading them.
func (e *Engine) ListBundles() []string {
	return e.locator.InstalledBundles()
}

// Scan loads every installed bundle and records its descriptors.
func (e *Engine) Scan() []*info.Bundle {
	return e.ScanPaths(e.ListBundles())
}

// ScanPaths records the descriptors of each path that loads. Paths that do
// not resolve are left out. No plugin is instantiated.
func (e *Engine) ScanPaths(paths []string) []*info.Bundle {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	records := []*info.Bundle{}
	for _, path := range paths {
		if rec, ok := e.describe(path); ok {
			records = append(records, rec)
		}
	}
	e.logger.Debug("scan complete", "candidates", len(paths), "loaded", len(records))
	return records
}

func (e *Engine) describe(path string) (*info.Bundle, bool) {
	b, file, ok := e.loader.Resolve(path)
	if !ok {
		return nil, false
	}
	defer b.Close()
	return e.record(path, file, b), true
}

// Inspect loads the bundle at path, instantiates the plugin at index and
// runs every probe against it. The record lists all of the bundle's
// descriptors; only the plugin at index carries extension payloads.
func (e *Engine) Inspect(path string, index int) (*info.Bundle, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	b, file, ok := e.loader.Resolve(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", clap.ErrNotFound, path)
	}
	defer b.Close()

	rec := e.record(path, file, b)

	session := host.New(b, e.logger)
	defer session.Close()

	p, err := session.Instantiate(index)
	if err != nil {
		return nil, err
	}
	for _, r := range ext.RunAll(p, session.Logger()) {
		if err := rec.SetExtension(index, r.ID, r.Payload); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// record lists b's descriptors. A bundle without a factory has none.
func (e *Engine) record(path, file string, b *clap.Bundle) *info.Bundle {
	var descriptors []info.Descriptor
	f, err := b.Factory()
	if err != nil {
		e.logger.Debug("bundle has no descriptors", "path", path, "error", err)
	} else {
		for d := range f.Descriptors() {
			descriptors = append(descriptors, descriptor(d))
		}
	}
	return info.New(b.Version().String(), path, file, descriptors)
}

func descriptor(d clap.Descriptor) info.Descriptor {
	features := d.Features
	if features == nil {
		features = []string{}
	}
	return info.Descriptor{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Vendor:      d.Vendor,
		Version:     d.Version,
		Features:    features,
		URL:         d.URL,
		ManualURL:   d.ManualURL,
		SupportURL:  d.SupportURL,
	}
}
