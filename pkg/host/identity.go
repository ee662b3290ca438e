package host

import (
	"sync"

	"github.com/Masterminds/semver/v3"

	"github.com/justyntemme/clapinfo/pkg/clap"
)

// Identity presented to every plugin. Not configurable.
const (
	Name    = "clap-info"
	Vendor  = "clap-info"
	URL     = "https://github.com/justyntemme/clapinfo"
	Version = "0.3.0"
)

// Audio configuration applied before probing.
const (
	SampleRate = 48000.0
	MinFrames  = 32
	MaxFrames  = 4096
)

var (
	sharedHost     *clap.Host
	sharedHostOnce sync.Once
)

// Identity returns the host identity.
func Identity() clap.HostInfo {
	return clap.HostInfo{
		Name:    Name,
		Vendor:  Vendor,
		URL:     URL,
		Version: semver.MustParse(Version).String(),
	}
}

// shared returns the process-wide native host record. It is built once and
// never freed, since plugins may keep the pointer until they are destroyed.
func shared() *clap.Host {
	sharedHostOnce.Do(func() {
		sharedHost = clap.NewHost(Identity())
	})
	return sharedHost
}
