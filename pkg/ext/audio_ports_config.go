package ext

import (
	"github.com/hashicorp/go-hclog"

	"github.com/justyntemme/clapinfo/pkg/clap"
	"github.com/justyntemme/clapinfo/pkg/debug"
)

// AudioPortsConfigSource is the subset of clap.audio-ports-config a probe
// reads.
type AudioPortsConfigSource interface {
	Count() uint32
	Get(index uint32) (clap.AudioPortsConfig, bool)
}

// PortsConfig is one audio port configuration. A missing main port reports
// channel count 0 and port type "none".
type PortsConfig struct {
	ID                     uint32 `json:"id" yaml:"id"`
	Name                   string `json:"name" yaml:"name"`
	InputPortCount         uint32 `json:"input-port-count" yaml:"input-port-count"`
	OutputPortCount        uint32 `json:"output-port-count" yaml:"output-port-count"`
	HasMainInput           bool   `json:"has-main-input" yaml:"has-main-input"`
	HasMainOutput          bool   `json:"has-main-output" yaml:"has-main-output"`
	MainInputChannelCount  uint32 `json:"main-input-channel-count" yaml:"main-input-channel-count"`
	MainInputPortType      string `json:"main-input-port-type" yaml:"main-input-port-type"`
	MainOutputChannelCount uint32 `json:"main-output-channel-count" yaml:"main-output-channel-count"`
	MainOutputPortType     string `json:"main-output-port-type" yaml:"main-output-port-type"`
}

// AudioPortsConfigPayload is the clap.audio-ports-config report.
type AudioPortsConfigPayload struct {
	IsImplemented bool          `json:"implemented" yaml:"implemented"`
	Count         uint32        `json:"count" yaml:"count"`
	Configs       []PortsConfig `json:"configs" yaml:"configs"`
}

func (p AudioPortsConfigPayload) Implemented() bool { return p.IsImplemented }

// AudioPortsConfig reads every configuration src reports.
func AudioPortsConfig(src AudioPortsConfigSource, logger hclog.Logger) AudioPortsConfigPayload {
	out := AudioPortsConfigPayload{Configs: []PortsConfig{}}
	if src == nil {
		return out
	}
	logger = debug.OrNull(logger)

	out.IsImplemented = true
	out.Count = src.Count()
	limit := readable(out.Count, logger, "audio ports configs")
	for i := uint32(0); i < limit; i++ {
		c, ok := src.Get(i)
		if !ok {
			logger.Trace("skipping audio ports config", "index", i)
			continue
		}
		cfg := PortsConfig{
			ID:                 c.ID,
			Name:               c.Name,
			InputPortCount:     c.InputPortCount,
			OutputPortCount:    c.OutputPortCount,
			HasMainInput:       c.HasMainInput,
			HasMainOutput:      c.HasMainOutput,
			MainInputPortType:  "none",
			MainOutputPortType: "none",
		}
		if c.HasMainInput {
			cfg.MainInputChannelCount = c.MainInputChannelCount
			cfg.MainInputPortType = PortType(c.MainInputPortType)
		}
		if c.HasMainOutput {
			cfg.MainOutputChannelCount = c.MainOutputChannelCount
			cfg.MainOutputPortType = PortType(c.MainOutputPortType)
		}
		out.Configs = append(out.Configs, cfg)
	}
	return out
}
