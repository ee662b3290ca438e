// Package info holds the introspection record produced for one bundle.
//
// A plugin entry serializes in one of two shapes. Without extension payloads
// it is the bare descriptor; with at least one payload it becomes
// {"descriptor": ..., "extensions": {...}}.
package info

import (
	"encoding/json"
	"fmt"
)

// Extension is a capability payload keyed by its extension id.
type Extension interface {
	Implemented() bool
}

// Descriptor is the serialized identity of one plugin.
type Descriptor struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Vendor      string   `json:"vendor" yaml:"vendor"`
	Version     string   `json:"version" yaml:"version"`
	Features    []string `json:"features" yaml:"features"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	ManualURL   string   `json:"manual-url,omitempty" yaml:"manual-url,omitempty"`
	SupportURL  string   `json:"support-url,omitempty" yaml:"support-url,omitempty"`
}

// Plugin is one entry of Bundle.Plugins.
type Plugin struct {
	Descriptor Descriptor
	Extensions map[string]Extension
}

// Bundle is the record for one bundle.
type Bundle struct {
	ClapVersion string    `json:"clap-version" yaml:"clap-version"`
	Path        string    `json:"path" yaml:"path"`
	BundleFile  *string   `json:"bundle-file,omitempty" yaml:"bundle-file,omitempty"`
	Plugins     []*Plugin `json:"plugins" yaml:"plugins"`
}

// New builds a record with one plugin entry per descriptor, in order.
// bundleFile may be empty when the concrete module file is unknown.
func New(clapVersion, path, bundleFile string, descriptors []Descriptor) *Bundle {
	b := &Bundle{
		ClapVersion: clapVersion,
		Path:        path,
		Plugins:     make([]*Plugin, 0, len(descriptors)),
	}
	if bundleFile != "" {
		b.BundleFile = &bundleFile
	}
	for _, d := range descriptors {
		b.Plugins = append(b.Plugins, &Plugin{Descriptor: d})
	}
	return b
}

// SetExtension stores payload under name for the plugin at index. A second
// call with the same name replaces the first.
func (b *Bundle) SetExtension(index int, name string, payload Extension) error {
	if index < 0 || index >= len(b.Plugins) {
		return fmt.Errorf("plugin index %d out of range [0, %d)", index, len(b.Plugins))
	}
	p := b.Plugins[index]
	if p.Extensions == nil {
		p.Extensions = make(map[string]Extension)
	}
	p.Extensions[name] = payload
	return nil
}

// Nested reports whether the plugin serializes in the descriptor+extensions
// shape.
func (p *Plugin) Nested() bool {
	return len(p.Extensions) > 0
}

type nestedPlugin struct {
	Descriptor Descriptor           `json:"descriptor" yaml:"descriptor"`
	Extensions map[string]Extension `json:"extensions" yaml:"extensions"`
}

func (p *Plugin) shape() any {
	d := p.Descriptor
	if d.Features == nil {
		d.Features = []string{}
	}
	if !p.Nested() {
		return d
	}
	return nestedPlugin{Descriptor: d, Extensions: p.Extensions}
}

// MarshalJSON implements json.Marshaler.
func (p *Plugin) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.shape())
}

// MarshalYAML implements yaml.Marshaler.
func (p *Plugin) MarshalYAML() (any, error) {
	return p.shape(), nil
}
