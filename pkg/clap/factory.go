package clap

// #include <stdlib.h>
// #include "bridge.h"
import "C"
import (
	"fmt"
	"iter"
	"unsafe"
)

// Descriptor is the static identity of one plugin in a bundle, copied out of
// the module. Absent strings are empty; features keep native order and
// duplicates.
type Descriptor struct {
	ClapVersion Version
	ID          string
	Name        string
	Vendor      string
	URL         string
	ManualURL   string
	SupportURL  string
	Version     string
	Description string
	Features    []string
}

// Factory is a bundle's clap.plugin-factory.
type Factory struct {
	bundle *Bundle
	ptr    *C.clap_plugin_factory_t
}

// Count returns the number of plugins the factory declares.
func (f *Factory) Count() uint32 {
	if f.bundle.closed {
		return 0
	}
	return uint32(C.clapinfo_factory_count(f.ptr))
}

// Descriptor reads the descriptor at index. ok is false when the index is
// out of range or the factory returns NULL.
func (f *Factory) Descriptor(index uint32) (Descriptor, bool) {
	if f.bundle.closed || index >= f.Count() {
		return Descriptor{}, false
	}
	desc := C.clapinfo_factory_descriptor(f.ptr, C.uint32_t(index))
	if desc == nil {
		return Descriptor{}, false
	}
	return readDescriptor(desc), true
}

// Descriptors yields one descriptor per factory index, in order. A NULL
// native descriptor yields a zero Descriptor so positions keep matching
// factory indices.
func (f *Factory) Descriptors() iter.Seq[Descriptor] {
	return func(yield func(Descriptor) bool) {
		count := min(f.Count(), MaxEntries)
		for i := uint32(0); i < count; i++ {
			d, _ := f.Descriptor(i)
			if !yield(d) {
				return
			}
		}
	}
}

// CreatePlugin instantiates and initializes the plugin with the given id.
// On failure nothing is left alive.
func (f *Factory) CreatePlugin(host *Host, id string) (*Plugin, error) {
	if f.bundle.closed {
		return nil, ErrClosed
	}
	if host == nil || host.ptr == nil {
		return nil, fmt.Errorf("%w: %s: no host", ErrCreateFailed, id)
	}

	cID := C.CString(id)
	defer C.free(unsafe.Pointer(cID))

	ptr := C.clapinfo_factory_create(f.ptr, host.ptr, cID)
	if ptr == nil {
		return nil, fmt.Errorf("%w: %s", ErrCreateFailed, id)
	}
	if !C.clapinfo_plugin_init(ptr) {
		C.clapinfo_plugin_destroy(ptr)
		return nil, fmt.Errorf("%w: %s", ErrInitFailed, id)
	}

	p := &Plugin{
		bundle:  f.bundle,
		ptr:     ptr,
		id:      id,
		scratch: C.calloc(1, C.size_t(scratchSize)),
	}
	f.bundle.plugins[p] = struct{}{}
	return p, nil
}

func readDescriptor(desc *C.clap_plugin_descriptor_t) Descriptor {
	d := Descriptor{
		ClapVersion: Version{
			Major:    uint32(desc.clap_version.major),
			Minor:    uint32(desc.clap_version.minor),
			Revision: uint32(desc.clap_version.revision),
		},
		ID:          goString(desc.id),
		Name:        goString(desc.name),
		Vendor:      goString(desc.vendor),
		URL:         goString(desc.url),
		ManualURL:   goString(desc.manual_url),
		SupportURL:  goString(desc.support_url),
		Version:     goString(desc.version),
		Description: goString(desc.description),
		Features:    []string{},
	}
	for i := 0; i < maxFeatures; i++ {
		feature := C.clapinfo_descriptor_feature(desc, C.uint32_t(i))
		if feature == nil {
			break
		}
		d.Features = append(d.Features, goString(feature))
	}
	return d
}
