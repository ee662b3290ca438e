package ext

import (
	"github.com/hashicorp/go-hclog"

	"github.com/justyntemme/clapinfo/pkg/clap"
	"github.com/justyntemme/clapinfo/pkg/debug"
)

// AudioPortSource is the subset of clap.audio-ports a probe reads.
type AudioPortSource interface {
	Count(isInput bool) uint32
	Get(index uint32, isInput bool) (clap.AudioPortInfo, bool)
}

// PortFlags carries decoded tokens next to the raw value.
type PortFlags struct {
	Fields []string `json:"fields,omitempty" yaml:"fields,omitempty"`
	Value  uint32   `json:"value" yaml:"value"`
}

// AudioPort is one audio port.
type AudioPort struct {
	ID           uint32    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	PortType     string    `json:"port-type" yaml:"port-type"`
	ChannelCount uint32    `json:"channel-count" yaml:"channel-count"`
	Flags        PortFlags `json:"flags" yaml:"flags"`
	InPlacePair  *uint32   `json:"in-place-pair,omitempty" yaml:"in-place-pair,omitempty"`
}

// AudioPortsPayload is the clap.audio-ports report.
type AudioPortsPayload struct {
	IsImplemented   bool        `json:"implemented" yaml:"implemented"`
	InputPortCount  uint32      `json:"input-port-count" yaml:"input-port-count"`
	OutputPortCount uint32      `json:"output-port-count" yaml:"output-port-count"`
	InputPorts      []AudioPort `json:"input-ports" yaml:"input-ports"`
	OutputPorts     []AudioPort `json:"output-ports" yaml:"output-ports"`
}

func (p AudioPortsPayload) Implemented() bool { return p.IsImplemented }

// AudioPorts reads both port directions.
func AudioPorts(src AudioPortSource, logger hclog.Logger) AudioPortsPayload {
	out := AudioPortsPayload{InputPorts: []AudioPort{}, OutputPorts: []AudioPort{}}
	if src == nil {
		return out
	}
	logger = debug.OrNull(logger)

	out.IsImplemented = true
	out.InputPortCount = src.Count(true)
	out.OutputPortCount = src.Count(false)
	out.InputPorts = readAudioPorts(src, true, out.InputPortCount, logger)
	out.OutputPorts = readAudioPorts(src, false, out.OutputPortCount, logger)
	return out
}

func readAudioPorts(src AudioPortSource, isInput bool, count uint32, logger hclog.Logger) []AudioPort {
	ports := []AudioPort{}
	count = readable(count, logger, "audio ports")
	for i := uint32(0); i < count; i++ {
		info, ok := src.Get(i, isInput)
		if !ok {
			logger.Trace("skipping audio port", "index", i, "input", isInput)
			continue
		}
		port := AudioPort{
			ID:           info.ID,
			Name:         info.Name,
			PortType:     PortType(info.PortType),
			ChannelCount: info.ChannelCount,
			Flags: PortFlags{
				Fields: AudioPortFlags(info.Flags),
				Value:  info.Flags,
			},
		}
		if len(port.Flags.Fields) == 0 {
			port.Flags.Fields = nil
		}
		if info.InPlacePair != clap.InvalidID {
			pair := info.InPlacePair
			port.InPlacePair = &pair
		}
		ports = append(ports, port)
	}
	return ports
}
