package ext

import (
	"github.com/hashicorp/go-hclog"

	"github.com/justyntemme/clapinfo/pkg/clap"
	"github.com/justyntemme/clapinfo/pkg/debug"
)

// NoteNameSource is clap.note-name.
type NoteNameSource interface {
	Count() uint32
	Get(index uint32) (clap.NoteName, bool)
}

// NoteNameEntry is one named note. Port, key and channel use -1 for "all".
type NoteNameEntry struct {
	Name    string `json:"name" yaml:"name"`
	Port    int16  `json:"port" yaml:"port"`
	Key     int16  `json:"key" yaml:"key"`
	Channel int16  `json:"channel" yaml:"channel"`
}

// NoteNamePayload is the clap.note-name report.
type NoteNamePayload struct {
	IsImplemented bool            `json:"implemented" yaml:"implemented"`
	Count         uint32          `json:"count" yaml:"count"`
	NoteNames     []NoteNameEntry `json:"note-names,omitempty" yaml:"note-names,omitempty"`
}

func (p NoteNamePayload) Implemented() bool { return p.IsImplemented }

// NoteName reads every note name src reports.
func NoteName(src NoteNameSource, logger hclog.Logger) NoteNamePayload {
	var out NoteNamePayload
	if src == nil {
		return out
	}
	logger = debug.OrNull(logger)

	out.IsImplemented = true
	out.Count = src.Count()
	limit := readable(out.Count, logger, "note names")
	for i := uint32(0); i < limit; i++ {
		n, ok := src.Get(i)
		if !ok {
			logger.Trace("skipping note name", "index", i)
			continue
		}
		out.NoteNames = append(out.NoteNames, NoteNameEntry{
			Name:    n.Name,
			Port:    Wildcard(n.Port),
			Key:     Wildcard(n.Key),
			Channel: Wildcard(n.Channel),
		})
	}
	return out
}

// Wildcard folds every negative value into -1, the "all" match.
func Wildcard(v int16) int16 {
	if v < 0 {
		return -1
	}
	return v
}
