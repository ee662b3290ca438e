package ext

import (
	"github.com/hashicorp/go-hclog"

	"github.com/justyntemme/clapinfo/pkg/clap"
	"github.com/justyntemme/clapinfo/pkg/debug"
)

// NotePortSource is the subset of clap.note-ports a probe reads.
type NotePortSource interface {
	Count(isInput bool) uint32
	Get(index uint32, isInput bool) (clap.NotePortInfo, bool)
}

// NotePort is one note port.
type NotePort struct {
	ID                uint32   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	SupportedDialects []string `json:"supported-dialects" yaml:"supported-dialects"`
	PreferredDialect  string   `json:"preferred-dialect" yaml:"preferred-dialect"`
}

// NotePortsPayload is the clap.note-ports report. A direction with no ports
// is left out entirely.
type NotePortsPayload struct {
	IsImplemented bool       `json:"implemented" yaml:"implemented"`
	InputCount    *uint32    `json:"input-count,omitempty" yaml:"input-count,omitempty"`
	OutputCount   *uint32    `json:"output-count,omitempty" yaml:"output-count,omitempty"`
	InputPorts    []NotePort `json:"input-ports,omitempty" yaml:"input-ports,omitempty"`
	OutputPorts   []NotePort `json:"output-ports,omitempty" yaml:"output-ports,omitempty"`
}

func (p NotePortsPayload) Implemented() bool { return p.IsImplemented }

// NotePorts reads both note port directions.
func NotePorts(src NotePortSource, logger hclog.Logger) NotePortsPayload {
	var out NotePortsPayload
	if src == nil {
		return out
	}
	logger = debug.OrNull(logger)

	out.IsImplemented = true
	out.InputCount, out.InputPorts = readNotePorts(src, true, logger)
	out.OutputCount, out.OutputPorts = readNotePorts(src, false, logger)
	return out
}

func readNotePorts(src NotePortSource, isInput bool, logger hclog.Logger) (*uint32, []NotePort) {
	count := src.Count(isInput)
	if count == 0 {
		return nil, nil
	}
	var ports []NotePort
	limit := readable(count, logger, "note ports")
	for i := uint32(0); i < limit; i++ {
		info, ok := src.Get(i, isInput)
		if !ok {
			logger.Trace("skipping note port", "index", i, "input", isInput)
			continue
		}
		ports = append(ports, NotePort{
			ID:                info.ID,
			Name:              info.Name,
			SupportedDialects: NoteDialects(info.SupportedDialects),
			PreferredDialect:  PreferredDialect(info.PreferredDialect),
		})
	}
	return &count, ports
}
