package clap

// #include <stdlib.h>
// #include "bridge.h"
import "C"
import "unsafe"

// Extension ids.
const (
	ExtParams           = "clap.params"
	ExtAudioPorts       = "clap.audio-ports"
	ExtAudioPortsConfig = "clap.audio-ports-config"
	ExtNotePorts        = "clap.note-ports"
	ExtLatency          = "clap.latency"
	ExtTail             = "clap.tail"
	ExtGUI              = "clap.gui"
	ExtState            = "clap.state"
	ExtNoteName         = "clap.note-name"
)

// Port types
const (
	PortMono   = "mono"
	PortStereo = "stereo"
)

// InvalidID marks an absent id, such as a port with no in-place pair.
const InvalidID uint32 = 0xFFFFFFFF

// Parameter flags
const (
	ParamIsStepped               uint32 = 1 << 0
	ParamIsPeriodic              uint32 = 1 << 1
	ParamIsHidden                uint32 = 1 << 2
	ParamIsReadonly              uint32 = 1 << 3
	ParamIsBypass                uint32 = 1 << 4
	ParamIsAutomatable           uint32 = 1 << 5
	ParamIsAutomatablePerNoteID  uint32 = 1 << 6
	ParamIsAutomatablePerKey     uint32 = 1 << 7
	ParamIsAutomatablePerChannel uint32 = 1 << 8
	ParamIsAutomatablePerPort    uint32 = 1 << 9
	ParamIsModulatable           uint32 = 1 << 10
	ParamIsModulatablePerNoteID  uint32 = 1 << 11
	ParamIsModulatablePerKey     uint32 = 1 << 12
	ParamIsModulatablePerChannel uint32 = 1 << 13
	ParamIsModulatablePerPort    uint32 = 1 << 14
	ParamRequiresProcess         uint32 = 1 << 15
)

// Audio port flags
const (
	AudioPortIsMain                   uint32 = 1 << 0
	AudioPortSupports64Bits           uint32 = 1 << 1
	AudioPortPrefers64Bits            uint32 = 1 << 2
	AudioPortRequiresCommonSampleSize uint32 = 1 << 3
)

// Note dialects
const (
	NoteDialectCLAP    uint32 = 1 << 0
	NoteDialectMIDI    uint32 = 1 << 1
	NoteDialectMIDIMPE uint32 = 1 << 2
	NoteDialectMIDI2   uint32 = 1 << 3
)

// Window APIs
const (
	WindowAPIWin32   = "win32"
	WindowAPICocoa   = "cocoa"
	WindowAPIX11     = "x11"
	WindowAPIWayland = "wayland"
)

// ParamInfo mirrors clap_param_info_t without the cookie.
type ParamInfo struct {
	ID      uint32
	Flags   uint32
	Name    string
	Module  string
	Min     float64
	Max     float64
	Default float64
}

// AudioPortInfo mirrors clap_audio_port_info_t.
type AudioPortInfo struct {
	ID           uint32
	Name         string
	Flags        uint32
	ChannelCount uint32
	PortType     string
	InPlacePair  uint32
}

// AudioPortsConfig mirrors clap_audio_ports_config_t.
type AudioPortsConfig struct {
	ID                     uint32
	Name                   string
	InputPortCount         uint32
	OutputPortCount        uint32
	HasMainInput           bool
	MainInputChannelCount  uint32
	MainInputPortType      string
	HasMainOutput          bool
	MainOutputChannelCount uint32
	MainOutputPortType     string
}

// NotePortInfo mirrors clap_note_port_info_t.
type NotePortInfo struct {
	ID                uint32
	SupportedDialects uint32
	PreferredDialect  uint32
	Name              string
}

// NoteName mirrors clap_note_name_t. -1 means any.
type NoteName struct {
	Name    string
	Port    int16
	Key     int16
	Channel int16
}

// Params wraps clap.params.
type Params struct {
	p   *Plugin
	ext *C.clap_plugin_params_t
}

// Params returns the plugin's clap.params table.
func (p *Plugin) Params() (*Params, bool) {
	ext := p.extension(ExtParams)
	if ext == nil {
		return nil, false
	}
	return &Params{p: p, ext: (*C.clap_plugin_params_t)(ext)}, true
}

// Count returns the number of parameters.
func (e *Params) Count() uint32 {
	return uint32(C.clapinfo_params_count(e.ext, e.p.ptr))
}

// Info reads the parameter at index.
func (e *Params) Info(index uint32) (ParamInfo, bool) {
	out := (*C.clap_param_info_t)(e.p.scratch)
	if out == nil || !C.clapinfo_params_info(e.ext, e.p.ptr, C.uint32_t(index), out) {
		return ParamInfo{}, false
	}
	return ParamInfo{
		ID:      uint32(out.id),
		Flags:   uint32(out.flags),
		Name:    goStringN(&out.name[0], len(out.name)),
		Module:  goStringN(&out.module[0], len(out.module)),
		Min:     float64(out.min_value),
		Max:     float64(out.max_value),
		Default: float64(out.default_value),
	}, true
}

// AudioPorts wraps clap.audio-ports.
type AudioPorts struct {
	p   *Plugin
	ext *C.clap_plugin_audio_ports_t
}

// AudioPorts returns the plugin's clap.audio-ports table.
func (p *Plugin) AudioPorts() (*AudioPorts, bool) {
	ext := p.extension(ExtAudioPorts)
	if ext == nil {
		return nil, false
	}
	return &AudioPorts{p: p, ext: (*C.clap_plugin_audio_ports_t)(ext)}, true
}

// Count returns the number of input or output ports.
func (e *AudioPorts) Count(isInput bool) uint32 {
	return uint32(C.clapinfo_audio_ports_count(e.ext, e.p.ptr, C.bool(isInput)))
}

// Get reads one port.
func (e *AudioPorts) Get(index uint32, isInput bool) (AudioPortInfo, bool) {
	out := (*C.clap_audio_port_info_t)(e.p.scratch)
	if out == nil || !C.clapinfo_audio_ports_get(e.ext, e.p.ptr, C.uint32_t(index), C.bool(isInput), out) {
		return AudioPortInfo{}, false
	}
	return AudioPortInfo{
		ID:           uint32(out.id),
		Name:         goStringN(&out.name[0], len(out.name)),
		Flags:        uint32(out.flags),
		ChannelCount: uint32(out.channel_count),
		PortType:     goString(out.port_type),
		InPlacePair:  uint32(out.in_place_pair),
	}, true
}

// AudioPortsConfigs wraps clap.audio-ports-config.
type AudioPortsConfigs struct {
	p   *Plugin
	ext *C.clap_plugin_audio_ports_config_t
}

// AudioPortsConfig returns the plugin's clap.audio-ports-config table.
func (p *Plugin) AudioPortsConfig() (*AudioPortsConfigs, bool) {
	ext := p.extension(ExtAudioPortsConfig)
	if ext == nil {
		return nil, false
	}
	return &AudioPortsConfigs{p: p, ext: (*C.clap_plugin_audio_ports_config_t)(ext)}, true
}

// Count returns the number of configurations.
func (e *AudioPortsConfigs) Count() uint32 {
	return uint32(C.clapinfo_audio_ports_config_count(e.ext, e.p.ptr))
}

// Get reads one configuration.
func (e *AudioPortsConfigs) Get(index uint32) (AudioPortsConfig, bool) {
	out := (*C.clap_audio_ports_config_t)(e.p.scratch)
	if out == nil || !C.clapinfo_audio_ports_config_get(e.ext, e.p.ptr, C.uint32_t(index), out) {
		return AudioPortsConfig{}, false
	}
	return AudioPortsConfig{
		ID:                     uint32(out.id),
		Name:                   goStringN(&out.name[0], len(out.name)),
		InputPortCount:         uint32(out.input_port_count),
		OutputPortCount:        uint32(out.output_port_count),
		HasMainInput:           bool(out.has_main_input),
		MainInputChannelCount:  uint32(out.main_input_channel_count),
		MainInputPortType:      goString(out.main_input_port_type),
		HasMainOutput:          bool(out.has_main_output),
		MainOutputChannelCount: uint32(out.main_output_channel_count),
		MainOutputPortType:     goString(out.main_output_port_type),
	}, true
}

// NotePorts wraps clap.note-ports.
type NotePorts struct {
	p   *Plugin
	ext *C.clap_plugin_note_ports_t
}

// NotePorts returns the plugin's clap.note-ports table.
func (p *Plugin) NotePorts() (*NotePorts, bool) {
	ext := p.extension(ExtNotePorts)
	if ext == nil {
		return nil, false
	}
	return &NotePorts{p: p, ext: (*C.clap_plugin_note_ports_t)(ext)}, true
}

// Count returns the number of input or output note ports.
func (e *NotePorts) Count(isInput bool) uint32 {
	return uint32(C.clapinfo_note_ports_count(e.ext, e.p.ptr, C.bool(isInput)))
}

// Get reads one note port.
func (e *NotePorts) Get(index uint32, isInput bool) (NotePortInfo, bool) {
	out := (*C.clap_note_port_info_t)(e.p.scratch)
	if out == nil || !C.clapinfo_note_ports_get(e.ext, e.p.ptr, C.uint32_t(index), C.bool(isInput), out) {
		return NotePortInfo{}, false
	}
	return NotePortInfo{
		ID:                uint32(out.id),
		SupportedDialects: uint32(out.supported_dialects),
		PreferredDialect:  uint32(out.preferred_dialect),
		Name:              goStringN(&out.name[0], len(out.name)),
	}, true
}

// Latency wraps clap.latency.
type Latency struct {
	p   *Plugin
	ext *C.clap_plugin_latency_t
}

// Latency returns the plugin's clap.latency table.
func (p *Plugin) Latency() (*Latency, bool) {
	ext := p.extension(ExtLatency)
	if ext == nil {
		return nil, false
	}
	return &Latency{p: p, ext: (*C.clap_plugin_latency_t)(ext)}, true
}

// Get returns the latency in samples.
func (e *Latency) Get() uint32 {
	return uint32(C.clapinfo_latency_get(e.ext, e.p.ptr))
}

// Tail wraps clap.tail.
type Tail struct {
	p   *Plugin
	ext *C.clap_plugin_tail_t
}

// Tail returns the plugin's clap.tail table.
func (p *Plugin) Tail() (*Tail, bool) {
	ext := p.extension(ExtTail)
	if ext == nil {
		return nil, false
	}
	return &Tail{p: p, ext: (*C.clap_plugin_tail_t)(ext)}, true
}

// Get returns the tail length in samples.
func (e *Tail) Get() uint32 {
	return uint32(C.clapinfo_tail_get(e.ext, e.p.ptr))
}

// GUI wraps the query half of clap.gui.
type GUI struct {
	p   *Plugin
	ext *C.clap_plugin_gui_t
}

// GUI returns the plugin's clap.gui table.
func (p *Plugin) GUI() (*GUI, bool) {
	ext := p.extension(ExtGUI)
	if ext == nil {
		return nil, false
	}
	return &GUI{p: p, ext: (*C.clap_plugin_gui_t)(ext)}, true
}

// IsAPISupported reports whether the window api is supported.
func (e *GUI) IsAPISupported(api string, floating bool) bool {
	cAPI := C.CString(api)
	defer C.free(unsafe.Pointer(cAPI))
	return bool(C.clapinfo_gui_is_api_supported(e.ext, e.p.ptr, cAPI, C.bool(floating)))
}

// PreferredAPI returns the plugin's preferred window api. ok is false when
// the plugin has no preference.
func (e *GUI) PreferredAPI() (api string, floating bool, ok bool) {
	var cAPI *C.char
	var cFloating C.bool
	if !C.clapinfo_gui_preferred_api(e.ext, e.p.ptr, &cAPI, &cFloating) {
		return "", false, false
	}
	return goString(cAPI), bool(cFloating), true
}

// State wraps the save half of clap.state.
type State struct {
	p   *Plugin
	ext *C.clap_plugin_state_t
}

// State returns the plugin's clap.state table.
func (p *Plugin) State() (*State, bool) {
	ext := p.extension(ExtState)
	if ext == nil {
		return nil, false
	}
	return &State{p: p, ext: (*C.clap_plugin_state_t)(ext)}, true
}

// SaveSize asks the plugin to save into a counting stream and returns the
// number of bytes written. The bytes themselves are discarded.
func (e *State) SaveSize() (uint64, bool) {
	var size C.uint64_t
	if !C.clapinfo_state_save_size(e.ext, e.p.ptr, &size) {
		return 0, false
	}
	return uint64(size), true
}

// NoteNames wraps clap.note-name.
type NoteNames struct {
	p   *Plugin
	ext *C.clap_plugin_note_name_t
}

// NoteName returns the plugin's clap.note-name table.
func (p *Plugin) NoteName() (*NoteNames, bool) {
	ext := p.extension(ExtNoteName)
	if ext == nil {
		return nil, false
	}
	return &NoteNames{p: p, ext: (*C.clap_plugin_note_name_t)(ext)}, true
}

// Count returns the number of note names.
func (e *NoteNames) Count() uint32 {
	return uint32(C.clapinfo_note_name_count(e.ext, e.p.ptr))
}

// Get reads one note name.
func (e *NoteNames) Get(index uint32) (NoteName, bool) {
	out := (*C.clap_note_name_t)(e.p.scratch)
	if out == nil || !C.clapinfo_note_name_get(e.ext, e.p.ptr, C.uint32_t(index), out) {
		return NoteName{}, false
	}
	return NoteName{
		Name:    goStringN(&out.name[0], len(out.name)),
		Port:    int16(out.port),
		Key:     int16(out.key),
		Channel: int16(out.channel),
	}, true
}
