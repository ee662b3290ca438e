package clap

// #include <stdlib.h>
// #include "bridge.h"
import "C"
import (
	"fmt"
	"unsafe"
)

// scratchSize covers the largest info struct an extension writes into.
var scratchSize = maxSize(
	int(C.sizeof_clap_param_info_t),
	int(C.sizeof_clap_audio_port_info_t),
	int(C.sizeof_clap_audio_ports_config_t),
	int(C.sizeof_clap_note_port_info_t),
	int(C.sizeof_clap_note_name_t),
)

func maxSize(sizes ...int) int {
	m := 0
	for _, s := range sizes {
		if s > m {
			m = s
		}
	}
	return m
}

// Plugin is a live plugin instance. All calls must happen on the thread that
// created it.
type Plugin struct {
	bundle    *Bundle
	ptr       *C.clap_plugin_t
	id        string
	scratch   unsafe.Pointer
	activated bool
	destroyed bool
}

// ID returns the descriptor id the plugin was created from.
func (p *Plugin) ID() string {
	return p.id
}

// Activate activates the plugin with the given audio configuration.
func (p *Plugin) Activate(sampleRate float64, minFrames, maxFrames uint32) error {
	if p.destroyed {
		return ErrClosed
	}
	if p.activated {
		return nil
	}
	if !C.clapinfo_plugin_activate(p.ptr, C.double(sampleRate), C.uint32_t(minFrames), C.uint32_t(maxFrames)) {
		return fmt.Errorf("%w: %s", ErrActivateFailed, p.id)
	}
	p.activated = true
	return nil
}

// Activated reports whether Activate succeeded.
func (p *Plugin) Activated() bool {
	return p.activated
}

// Destroy deactivates the plugin if needed and destroys it. Destroy is
// idempotent.
func (p *Plugin) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	if p.activated {
		C.clapinfo_plugin_deactivate(p.ptr)
		p.activated = false
	}
	C.clapinfo_plugin_destroy(p.ptr)
	C.free(p.scratch)
	p.scratch = nil
	delete(p.bundle.plugins, p)
}

// HasExtension reports whether the plugin exposes the extension id.
func (p *Plugin) HasExtension(id string) bool {
	return p.extension(id) != nil
}

func (p *Plugin) extension(id string) unsafe.Pointer {
	if p.destroyed {
		return nil
	}
	cID := C.CString(id)
	defer C.free(unsafe.Pointer(cID))
	return unsafe.Pointer(C.clapinfo_plugin_extension(p.ptr, cID))
}
