// Package render writes introspection results for people and scripts.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Actions name what an Envelope's result holds.
const (
	ActionInspect     = "display info for a CLAP plugin"
	ActionSearchPaths = "display the CLAP plugin search path"
	ActionList        = "display paths for installed claps"
	ActionScan        = "display descriptions for installed claps"
)

// Envelope wraps every result.
type Envelope struct {
	Action string `json:"action" yaml:"action"`
	Result any    `json:"result" yaml:"result"`
}

// Options controls Write.
type Options struct {
	Format string
	Indent int
	// Styled enables colors in text output.
	Styled bool
}

// Write renders env in opts.Format: json, yaml or text.
func Write(w io.Writer, env Envelope, opts Options) error {
	switch opts.Format {
	case "", "json":
		return JSON(w, env, opts.Indent)
	case "yaml":
		return YAML(w, env, opts.Indent)
	case "text":
		return Text(w, env, opts.Styled)
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

// JSON writes env as JSON followed by a newline. indent <= 0 writes a
// compact document.
func JSON(w io.Writer, env Envelope, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	return enc.Encode(env)
}

// YAML writes env as a YAML document.
func YAML(w io.Writer, env Envelope, indent int) error {
	enc := yaml.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent(indent)
	}
	if err := enc.Encode(env); err != nil {
		return err
	}
	return enc.Close()
}
