package ext

import "github.com/justyntemme/clapinfo/pkg/clap"

// GUISource is the query half of clap.gui.
type GUISource interface {
	IsAPISupported(api string, floating bool) bool
	PreferredAPI() (api string, floating bool, ok bool)
}

// PreferredAPI is the window api a plugin asks for.
type PreferredAPI struct {
	API      string `json:"api" yaml:"api"`
	Floating bool   `json:"floating" yaml:"floating"`
}

// GUIPayload is the clap.gui report.
type GUIPayload struct {
	IsImplemented bool          `json:"implemented" yaml:"implemented"`
	APISupported  []string      `json:"api-supported,omitempty" yaml:"api-supported,omitempty"`
	PreferredAPI  *PreferredAPI `json:"preferred-api,omitempty" yaml:"preferred-api,omitempty"`
}

func (p GUIPayload) Implemented() bool { return p.IsImplemented }

var windowAPIs = []string{
	clap.WindowAPICocoa,
	clap.WindowAPIWin32,
	clap.WindowAPIX11,
	clap.WindowAPIWayland,
}

// GUI tests every known window api embedded and floating. No window is ever
// created.
func GUI(src GUISource) GUIPayload {
	var out GUIPayload
	if src == nil {
		return out
	}
	out.IsImplemented = true
	for _, api := range windowAPIs {
		if src.IsAPISupported(api, false) {
			out.APISupported = append(out.APISupported, api)
		}
		if src.IsAPISupported(api, true) {
			out.APISupported = append(out.APISupported, api+".floating")
		}
	}
	if api, floating, ok := src.PreferredAPI(); ok {
		out.PreferredAPI = &PreferredAPI{API: api, Floating: floating}
	}
	return out
}
