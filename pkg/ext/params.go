package ext

import (
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/justyntemme/clapinfo/pkg/clap"
	"github.com/justyntemme/clapinfo/pkg/debug"
)

// ParamSource is the subset of clap.params a probe reads.
type ParamSource interface {
	Count() uint32
	Info(index uint32) (clap.ParamInfo, bool)
}

// ParamValues holds a parameter's bounds. Current repeats Default since
// nothing is ever processed.
type ParamValues struct {
	Current float64 `json:"current" yaml:"current"`
	Default float64 `json:"default" yaml:"default"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
}

// Param is one readable parameter.
type Param struct {
	ID         uint32      `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Module     string      `json:"module,omitempty" yaml:"module,omitempty"`
	Flags      []string    `json:"flags" yaml:"flags"`
	FlagsValue uint32      `json:"flags-value" yaml:"flags-value"`
	Values     ParamValues `json:"values" yaml:"values"`
}

// ParamsPayload is the clap.params report.
type ParamsPayload struct {
	IsImplemented bool    `json:"implemented" yaml:"implemented"`
	ParamCount    uint32  `json:"param-count" yaml:"param-count"`
	Params        []Param `json:"params" yaml:"params"`
}

func (p ParamsPayload) Implemented() bool { return p.IsImplemented }

// Params reads every parameter src reports. Entries the plugin fails to
// describe are skipped.
func Params(src ParamSource, logger hclog.Logger) ParamsPayload {
	out := ParamsPayload{Params: []Param{}}
	if src == nil {
		return out
	}
	logger = debug.OrNull(logger)

	out.IsImplemented = true
	out.ParamCount = src.Count()
	limit := readable(out.ParamCount, logger, "params")
	for i := uint32(0); i < limit; i++ {
		info, ok := src.Info(i)
		if !ok {
			logger.Trace("skipping parameter", "index", i)
			continue
		}
		out.Params = append(out.Params, Param{
			ID:         info.ID,
			Name:       info.Name,
			Module:     info.Module,
			Flags:      ParamFlags(info.Flags),
			FlagsValue: info.Flags,
			Values: ParamValues{
				Current: finite(info.Default),
				Default: finite(info.Default),
				Min:     finite(info.Min),
				Max:     finite(info.Max),
			},
		})
	}
	return out
}

// finite maps NaN and infinities to 0; JSON has no encoding for them.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
