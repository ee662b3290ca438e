package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/justyntemme/clapinfo/pkg/ext"
	"github.com/justyntemme/clapinfo/pkg/info"
)

type styles struct {
	title  lipgloss.Style
	id     lipgloss.Style
	label  lipgloss.Style
	yes    lipgloss.Style
	no     lipgloss.Style
	subtle lipgloss.Style
}

func newStyles(styled bool) styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain}
	}
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		id:     lipgloss.NewStyle().Bold(true),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		yes:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		no:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		subtle: lipgloss.NewStyle().Faint(true),
	}
}

// Text writes a human-readable rendering of env.
func Text(w io.Writer, env Envelope, styled bool) error {
	s := newStyles(styled)
	var b strings.Builder

	switch r := env.Result.(type) {
	case []string:
		if len(r) == 0 {
			b.WriteString(s.subtle.Render("(none)") + "\n")
		}
		for _, p := range r {
			b.WriteString(p + "\n")
		}
	case *info.Bundle:
		writeBundle(&b, s, r)
	case []*info.Bundle:
		if len(r) == 0 {
			b.WriteString(s.subtle.Render("(no bundles loaded)") + "\n")
		}
		for i, bundle := range r {
			if i > 0 {
				b.WriteString("\n")
			}
			writeBundle(&b, s, bundle)
		}
	default:
		return fmt.Errorf("cannot render %T as text", env.Result)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeBundle(b *strings.Builder, s styles, bundle *info.Bundle) {
	fmt.Fprintf(b, "%s %s\n", s.title.Render(bundle.Path), s.subtle.Render("(CLAP "+bundle.ClapVersion+")"))
	if bundle.BundleFile != nil && *bundle.BundleFile != bundle.Path {
		fmt.Fprintf(b, "  %s %s\n", s.label.Render("module:"), *bundle.BundleFile)
	}
	for _, p := range bundle.Plugins {
		d := p.Descriptor
		fmt.Fprintf(b, "  %s  %s  %s\n", s.id.Render(d.ID), d.Name, s.subtle.Render(d.Version))
		field(b, s, "vendor", d.Vendor)
		field(b, s, "description", d.Description)
		field(b, s, "features", strings.Join(d.Features, ", "))
		field(b, s, "url", d.URL)
		if p.Nested() {
			writeExtensions(b, s, p.Extensions)
		}
	}
}

func field(b *strings.Builder, s styles, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "    %s %s\n", s.label.Render(label+":"), value)
}

func writeExtensions(b *strings.Builder, s styles, exts map[string]info.Extension) {
	ids := make([]string, 0, len(exts))
	width := 0
	for id := range exts {
		ids = append(ids, id)
		width = max(width, len(id))
	}
	sort.Strings(ids)

	fmt.Fprintf(b, "    %s\n", s.label.Render("extensions:"))
	for _, id := range ids {
		payload := exts[id]
		name := fmt.Sprintf("%-*s", width, id)
		if !payload.Implemented() {
			fmt.Fprintf(b, "      %s  %s\n", name, s.no.Render("no"))
			continue
		}
		line := fmt.Sprintf("      %s  %s", name, s.yes.Render("yes"))
		if summary := summarize(payload); summary != "" {
			line += "  " + summary
		}
		b.WriteString(line + "\n")
	}
}

// summarize condenses a payload to one line.
func summarize(payload info.Extension) string {
	switch p := payload.(type) {
	case ext.ParamsPayload:
		return plural(int(p.ParamCount), "parameter")
	case ext.AudioPortsPayload:
		return fmt.Sprintf("%d in, %d out", p.InputPortCount, p.OutputPortCount)
	case ext.AudioPortsConfigPayload:
		return plural(int(p.Count), "configuration")
	case ext.NotePortsPayload:
		var in, out uint32
		if p.InputCount != nil {
			in = *p.InputCount
		}
		if p.OutputCount != nil {
			out = *p.OutputCount
		}
		return fmt.Sprintf("%d in, %d out", in, out)
	case ext.LatencyPayload:
		return plural(int(p.Latency), "sample")
	case ext.TailPayload:
		if p.Infinite {
			return "infinite"
		}
		return plural(int(p.Tail), "sample")
	case ext.GUIPayload:
		parts := append([]string(nil), p.APISupported...)
		if p.PreferredAPI != nil {
			pref := p.PreferredAPI.API
			if p.PreferredAPI.Floating {
				pref += ".floating"
			}
			parts = append(parts, "preferred "+pref)
		}
		return strings.Join(parts, ", ")
	case ext.StatePayload:
		if p.BytesWritten == nil {
			return "save failed"
		}
		return humanize.Bytes(*p.BytesWritten)
	case ext.NoteNamePayload:
		return plural(int(p.Count), "note name")
	default:
		return ""
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}
