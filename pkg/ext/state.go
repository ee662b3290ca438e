package ext

// StateSource is the save half of clap.state.
type StateSource interface {
	SaveSize() (uint64, bool)
}

// StatePayload is the clap.state report.
type StatePayload struct {
	IsImplemented bool    `json:"implemented" yaml:"implemented"`
	BytesWritten  *uint64 `json:"bytes-written,omitempty" yaml:"bytes-written,omitempty"`
}

func (p StatePayload) Implemented() bool { return p.IsImplemented }

// State reports how many bytes a save produces. A failed save leaves
// BytesWritten unset.
func State(src StateSource) StatePayload {
	var out StatePayload
	if src == nil {
		return out
	}
	out.IsImplemented = true
	if n, ok := src.SaveSize(); ok {
		out.BytesWritten = &n
	}
	return out
}
