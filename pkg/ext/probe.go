// Package ext probes the optional CLAP extensions of a live plugin.
//
// Every probe follows one contract: an absent extension yields the zero
// payload with implemented=false, and an entry the plugin fails to describe
// is skipped. Probes never return errors.
package ext

import (
	"github.com/hashicorp/go-hclog"
	"github.com/sourcegraph/conc/panics"

	"github.com/justyntemme/clapinfo/pkg/clap"
	"github.com/justyntemme/clapinfo/pkg/debug"
	"github.com/justyntemme/clapinfo/pkg/info"
)

// Probe extracts one extension's payload from a plugin.
type Probe struct {
	ID   string
	run  func(p *clap.Plugin, logger hclog.Logger) info.Extension
	zero func() info.Extension
}

// Result pairs an extension id with its payload.
type Result struct {
	ID      string
	Payload info.Extension
}

var probes = []Probe{
	{
		ID: clap.ExtParams,
		run: func(p *clap.Plugin, logger hclog.Logger) info.Extension {
			if src, ok := p.Params(); ok {
				return Params(src, logger)
			}
			return Params(nil, logger)
		},
		zero: func() info.Extension { return Params(nil, nil) },
	},
	{
		ID: clap.ExtAudioPorts,
		run: func(p *clap.Plugin, logger hclog.Logger) info.Extension {
			if src, ok := p.AudioPorts(); ok {
				return AudioPorts(src, logger)
			}
			return AudioPorts(nil, logger)
		},
		zero: func() info.Extension { return AudioPorts(nil, nil) },
	},
	{
		ID: clap.ExtAudioPortsConfig,
		run: func(p *clap.Plugin, logger hclog.Logger) info.Extension {
			if src, ok := p.AudioPortsConfig(); ok {
				return AudioPortsConfig(src, logger)
			}
			return AudioPortsConfig(nil, logger)
		},
		zero: func() info.Extension { return AudioPortsConfig(nil, nil) },
	},
	{
		ID: clap.ExtNotePorts,
		run: func(p *clap.Plugin, logger hclog.Logger) info.Extension {
			if src, ok := p.NotePorts(); ok {
				return NotePorts(src, logger)
			}
			return NotePorts(nil, logger)
		},
		zero: func() info.Extension { return NotePorts(nil, nil) },
	},
	{
		ID: clap.ExtLatency,
		run: func(p *clap.Plugin, _ hclog.Logger) info.Extension {
			if src, ok := p.Latency(); ok {
				return Latency(src, p.Activated())
			}
			return Latency(nil, false)
		},
		zero: func() info.Extension { return Latency(nil, false) },
	},
	{
		ID: clap.ExtTail,
		run: func(p *clap.Plugin, _ hclog.Logger) info.Extension {
			if src, ok := p.Tail(); ok {
				return Tail(src)
			}
			return Tail(nil)
		},
		zero: func() info.Extension { return Tail(nil) },
	},
	{
		ID: clap.ExtGUI,
		run: func(p *clap.Plugin, _ hclog.Logger) info.Extension {
			if src, ok := p.GUI(); ok {
				return GUI(src)
			}
			return GUI(nil)
		},
		zero: func() info.Extension { return GUI(nil) },
	},
	{
		ID: clap.ExtState,
		run: func(p *clap.Plugin, _ hclog.Logger) info.Extension {
			if src, ok := p.State(); ok {
				return State(src)
			}
			return State(nil)
		},
		zero: func() info.Extension { return State(nil) },
	},
	{
		ID: clap.ExtNoteName,
		run: func(p *clap.Plugin, logger hclog.Logger) info.Extension {
			if src, ok := p.NoteName(); ok {
				return NoteName(src, logger)
			}
			return NoteName(nil, logger)
		},
		zero: func() info.Extension { return NoteName(nil, nil) },
	},
}

// IDs returns the probed extension ids in report order.
func IDs() []string {
	ids := make([]string, len(probes))
	for i, p := range probes {
		ids[i] = p.ID
	}
	return ids
}

// Run executes probe against p. A panic on the Go side of the probe is
// logged and reported as the zero payload.
func (probe Probe) Run(p *clap.Plugin, logger hclog.Logger) (payload info.Extension) {
	logger = debug.OrNull(logger)

	var pc panics.Catcher
	pc.Try(func() { payload = probe.run(p, logger) })
	if r := pc.Recovered(); r != nil {
		logger.Warn("probe panicked", "extension", probe.ID, "error", r.AsError())
		return probe.zero()
	}
	return payload
}

// readable clamps a plugin-reported count to clap.MaxEntries.
func readable(count uint32, logger hclog.Logger, what string) uint32 {
	if count > clap.MaxEntries {
		logger.Warn("count exceeds read limit", "entries", what, "count", count, "limit", clap.MaxEntries)
		return clap.MaxEntries
	}
	return count
}

// RunAll runs every probe against p in order.
func RunAll(p *clap.Plugin, logger hclog.Logger) []Result {
	logger = debug.OrNull(logger)
	results := make([]Result, 0, len(probes))
	for _, probe := range probes {
		payload := probe.Run(p, logger.With("extension", probe.ID))
		results = append(results, Result{ID: probe.ID, Payload: payload})
	}
	return results
}
