// Package claptest provides an in-process CLAP entry for tests. Only one fake
// is installed at a time; Install replaces the previous configuration.
package claptest

// #cgo CFLAGS: -I${SRCDIR}/../../../include
// #include "fake.h"
import "C"
import (
	"strconv"
	"unsafe"
)

// Extension ids understood by Config.Extensions.
var extensionBits = map[string]uint32{
	"clap.params":             uint32(C.CLAPTEST_EXT_PARAMS),
	"clap.audio-ports":        uint32(C.CLAPTEST_EXT_AUDIO_PORTS),
	"clap.audio-ports-config": uint32(C.CLAPTEST_EXT_AUDIO_PORTS_CONFIG),
	"clap.note-ports":         uint32(C.CLAPTEST_EXT_NOTE_PORTS),
	"clap.latency":            uint32(C.CLAPTEST_EXT_LATENCY),
	"clap.tail":               uint32(C.CLAPTEST_EXT_TAIL),
	"clap.gui":                uint32(C.CLAPTEST_EXT_GUI),
	"clap.state":              uint32(C.CLAPTEST_EXT_STATE),
	"clap.note-name":          uint32(C.CLAPTEST_EXT_NOTE_NAME),
}

// AllExtensions lists every extension the fake can expose.
var AllExtensions = []string{
	"clap.params",
	"clap.audio-ports",
	"clap.audio-ports-config",
	"clap.note-ports",
	"clap.latency",
	"clap.tail",
	"clap.gui",
	"clap.state",
	"clap.note-name",
}

// Config shapes the fake entry.
//
// Descriptor i has id "org.clapinfo.fake.<i>" and name "Fake <i>". With
// NullStrings set, descriptor 1 has NULL vendor, description, version and
// features. NullDescriptor, when non-zero, is the 1-based index whose
// descriptor the factory reports as NULL.
type Config struct {
	Plugins        uint32
	NullStrings    bool
	NullDescriptor int
	FailEntryInit  bool
	NoFactory      bool
	Incompatible   bool
	FailCreate     bool
	FailInit       bool
	FailActivate   bool
	Extensions     []string
	Latency        uint32
	Tail           uint32
}

// Counters records calls made into the fake since the last Install.
type Counters struct {
	EntryInits    uint32
	EntryDeinits  uint32
	Creates       uint32
	Inits         uint32
	Activations   uint32
	Deactivations uint32
	Destroys      uint32
	ProcessCalls  uint32
	Live          int32
}

// Install configures the fake and returns its clap_plugin_entry_t, suitable
// for clap.OpenEntry.
func Install(cfg Config) unsafe.Pointer {
	var bits uint32
	for _, id := range cfg.Extensions {
		bits |= extensionBits[id]
	}
	c := C.claptest_config{
		plugins:         C.uint32_t(cfg.Plugins),
		null_strings:    C.bool(cfg.NullStrings),
		null_descriptor: C.int32_t(cfg.NullDescriptor - 1),
		fail_entry_init: C.bool(cfg.FailEntryInit),
		no_factory:      C.bool(cfg.NoFactory),
		incompatible:    C.bool(cfg.Incompatible),
		fail_create:     C.bool(cfg.FailCreate),
		fail_init:       C.bool(cfg.FailInit),
		fail_activate:   C.bool(cfg.FailActivate),
		extensions:      C.uint32_t(bits),
		latency:         C.uint32_t(cfg.Latency),
		tail:            C.uint32_t(cfg.Tail),
	}
	return unsafe.Pointer(C.claptest_install(c))
}

// Counts returns the call counters.
func Counts() Counters {
	c := C.claptest_counts()
	return Counters{
		EntryInits:    uint32(c.entry_inits),
		EntryDeinits:  uint32(c.entry_deinits),
		Creates:       uint32(c.creates),
		Inits:         uint32(c.inits),
		Activations:   uint32(c.activations),
		Deactivations: uint32(c.deactivations),
		Destroys:      uint32(c.destroys),
		ProcessCalls:  uint32(c.process_calls),
		Live:          int32(c.live),
	}
}

// InitPath returns the path the last entry.init received.
func InitPath() string {
	return C.GoString(C.claptest_init_path())
}

// PluginID returns the id of descriptor i.
func PluginID(i int) string {
	return "org.clapinfo.fake." + strconv.Itoa(i)
}
