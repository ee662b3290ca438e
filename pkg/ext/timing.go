package ext

import "math"

// LatencySource is clap.latency.
type LatencySource interface {
	Get() uint32
}

// TailSource is clap.tail.
type TailSource interface {
	Get() uint32
}

// LatencyPayload is the clap.latency report.
type LatencyPayload struct {
	IsImplemented bool   `json:"implemented" yaml:"implemented"`
	Latency       uint32 `json:"latency" yaml:"latency"`
}

func (p LatencyPayload) Implemented() bool { return p.IsImplemented }

// Latency reports the plugin latency. CLAP only defines latency for an
// activated plugin, so an inactive one reports 0.
func Latency(src LatencySource, activated bool) LatencyPayload {
	var out LatencyPayload
	if src == nil {
		return out
	}
	out.IsImplemented = true
	if activated {
		out.Latency = src.Get()
	}
	return out
}

// TailPayload is the clap.tail report.
type TailPayload struct {
	IsImplemented bool   `json:"implemented" yaml:"implemented"`
	Tail          uint32 `json:"tail" yaml:"tail"`
	Infinite      bool   `json:"infinite,omitempty" yaml:"infinite,omitempty"`
}

func (p TailPayload) Implemented() bool { return p.IsImplemented }

// Tail reports the tail length in samples. Values at or above INT32_MAX
// mean an infinite tail.
func Tail(src TailSource) TailPayload {
	var out TailPayload
	if src == nil {
		return out
	}
	out.IsImplemented = true
	out.Tail = src.Get()
	out.Infinite = out.Tail >= math.MaxInt32
	return out
}
