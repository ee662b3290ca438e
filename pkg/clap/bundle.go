package clap

// #cgo CFLAGS: -I${SRCDIR} -I${SRCDIR}/../../include
// #cgo linux LDFLAGS: -ldl
// #include <stdlib.h>
// #include "bridge.h"
import "C"
import (
	"fmt"
	"os"
	"unsafe"
)

// Bundle is a loaded CLAP module. It owns the native library handle and the
// initialized entry; descriptors, factories and plugins derived from it are
// only valid until Close.
type Bundle struct {
	lib     unsafe.Pointer
	entry   *C.clap_plugin_entry_t
	factory *C.clap_plugin_factory_t
	path    string
	version Version
	plugins map[*Plugin]struct{}
	closed  bool
}

// Open loads the module file at path, validates its clap_entry and calls
// entry.init. Directories are rejected; resolving a bundle directory to its
// module file is the caller's job.
func Open(path string) (*Bundle, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrLoadFailure, path)
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	lib := C.clapinfo_lib_open(cPath)
	if lib == nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrLoadFailure, path, C.GoString(C.clapinfo_lib_error()))
	}

	cSymbol := C.CString("clap_entry")
	defer C.free(unsafe.Pointer(cSymbol))

	sym := C.clapinfo_lib_symbol(lib, cSymbol)
	if sym == nil {
		C.clapinfo_lib_close(lib)
		return nil, fmt.Errorf("%w: %s", ErrNoEntry, path)
	}

	b, err := open(lib, (*C.clap_plugin_entry_t)(sym), path)
	if err != nil {
		C.clapinfo_lib_close(lib)
		return nil, err
	}
	return b, nil
}

// OpenEntry wraps an entry that is already mapped into the process, such as
// a statically linked plugin. entry must point to a clap_plugin_entry_t.
// Close calls deinit but never unloads anything.
func OpenEntry(entry unsafe.Pointer, path string) (*Bundle, error) {
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoEntry, path)
	}
	return open(nil, (*C.clap_plugin_entry_t)(entry), path)
}

func open(lib unsafe.Pointer, entry *C.clap_plugin_entry_t, path string) (*Bundle, error) {
	version := Version{
		Major:    uint32(entry.clap_version.major),
		Minor:    uint32(entry.clap_version.minor),
		Revision: uint32(entry.clap_version.revision),
	}
	if !version.Compatible() {
		return nil, fmt.Errorf("%w: %s declares %s", ErrIncompatibleVersion, path, version)
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	if !C.clapinfo_entry_init(entry, cPath) {
		return nil, fmt.Errorf("%w: %s", ErrEntryInit, path)
	}

	return &Bundle{
		lib:     lib,
		entry:   entry,
		path:    path,
		version: version,
		plugins: make(map[*Plugin]struct{}),
	}, nil
}

// Path returns the module path the bundle was opened from.
func (b *Bundle) Path() string {
	return b.path
}

// Version returns the CLAP version declared by clap_entry.
func (b *Bundle) Version() Version {
	return b.version
}

// Factory returns the bundle's plugin factory.
func (b *Bundle) Factory() (*Factory, error) {
	if b.closed {
		return nil, ErrClosed
	}
	if b.factory == nil {
		b.factory = C.clapinfo_entry_plugin_factory(b.entry)
		if b.factory == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoFactory, b.path)
		}
	}
	return &Factory{bundle: b, ptr: b.factory}, nil
}

// Close destroys any plugin still alive, deinitializes the entry and unloads
// the module. Close is idempotent.
func (b *Bundle) Close() error {
	if b.closed {
		return nil
	}
	for p := range b.plugins {
		p.Destroy()
	}
	b.closed = true
	b.factory = nil
	C.clapinfo_entry_deinit(b.entry)
	if b.lib != nil {
		C.clapinfo_lib_close(b.lib)
		b.lib = nil
	}
	return nil
}
