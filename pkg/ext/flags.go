package ext

import "github.com/justyntemme/clapinfo/pkg/clap"

// flagToken pairs a native bit with its output token.
type flagToken struct {
	bit   uint32
	token string
}

var paramFlags = []flagToken{
	{clap.ParamIsStepped, "stepped"},
	{clap.ParamIsPeriodic, "periodic"},
	{clap.ParamIsReadonly, "readonly"},
	{clap.ParamIsBypass, "bypass"},
	{clap.ParamIsAutomatable, "automatable"},
	{clap.ParamIsAutomatablePerChannel, "automatable-per-channel"},
	{clap.ParamIsAutomatablePerKey, "automatable-per-key"},
	{clap.ParamIsAutomatablePerNoteID, "automatable-per-note-id"},
	{clap.ParamIsAutomatablePerPort, "automatable-per-port"},
	{clap.ParamIsModulatable, "modulatable"},
	{clap.ParamIsModulatablePerChannel, "modulatable-per-channel"},
	{clap.ParamIsModulatablePerKey, "modulatable-per-key"},
	{clap.ParamIsModulatablePerNoteID, "modulatable-per-note-id"},
	{clap.ParamIsModulatablePerPort, "modulatable-per-port"},
	{clap.ParamRequiresProcess, "requires-process"},
}

var audioPortFlags = []flagToken{
	{clap.AudioPortIsMain, "is-main"},
	{clap.AudioPortSupports64Bits, "supports-64-bit"},
	{clap.AudioPortRequiresCommonSampleSize, "requires-common-sample-size"},
	{clap.AudioPortPrefers64Bits, "prefers-64-bit"},
}

var noteDialects = []flagToken{
	{clap.NoteDialectCLAP, "clap"},
	{clap.NoteDialectMIDI, "midi"},
	{clap.NoteDialectMIDIMPE, "midi-mpe"},
	{clap.NoteDialectMIDI2, "midi2"},
}

// decodeFlags walks table in order and returns the tokens whose bit is set.
// Bits missing from the table are dropped.
func decodeFlags(table []flagToken, value uint32) []string {
	tokens := []string{}
	for _, f := range table {
		if value&f.bit != 0 {
			tokens = append(tokens, f.token)
		}
	}
	return tokens
}

// ParamFlags decodes clap_param_info.flags.
func ParamFlags(value uint32) []string {
	return decodeFlags(paramFlags, value)
}

// AudioPortFlags decodes clap_audio_port_info.flags.
func AudioPortFlags(value uint32) []string {
	return decodeFlags(audioPortFlags, value)
}

// NoteDialects decodes a supported-dialects bitset.
func NoteDialects(value uint32) []string {
	return decodeFlags(noteDialects, value)
}

// PreferredDialect names a single-dialect value, or "unknown".
func PreferredDialect(value uint32) string {
	for _, d := range noteDialects {
		if value == d.bit {
			return d.token
		}
	}
	return "unknown"
}

// PortType restricts a native port type to mono, stereo or unknown.
func PortType(t string) string {
	switch t {
	case clap.PortMono, clap.PortStereo:
		return t
	default:
		return "unknown"
	}
}
