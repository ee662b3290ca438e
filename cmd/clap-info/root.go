package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/justyntemme/clapinfo/pkg/config"
	"github.com/justyntemme/clapinfo/pkg/debug"
	"github.com/justyntemme/clapinfo/pkg/host"
	"github.com/justyntemme/clapinfo/pkg/introspect"
	"github.com/justyntemme/clapinfo/pkg/render"
	"github.com/justyntemme/clapinfo/pkg/scanner"
)

var (
	version = host.Version
	commit  = "none"
	date    = "unknown"

	// openBundle overrides module loading in tests.
	openBundle scanner.OpenFunc
)

func versionString() string {
	return fmt.Sprintf("clap-info %s (commit: %s, built: %s)", version, commit, date)
}

type rootOptions struct {
	which      int
	list       bool
	scan       bool
	searchPath bool
	format     string
	configPath string
	logLevel   string
	extraPaths []string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "clap-info [path]",
		Short: "Display information about CLAP plugins",
		Long: "clap-info loads CLAP plugin bundles and reports their descriptors and\n" +
			"the extensions a plugin implements, without ever processing audio.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.which, "which", "w", 0, "choose which plugin to create, if the bundle has more than one")
	flags.BoolVarP(&opts.list, "list-clap-files", "l", false, "show all CLAP files in the search path then exit")
	flags.BoolVarP(&opts.scan, "scan-clap-files", "s", false, "show all descriptions in all CLAP files in the search path then exit")
	flags.BoolVar(&opts.searchPath, "search-path", false, "show the CLAP plugin search paths then exit")
	flags.StringSliceVar(&opts.extraPaths, "extra-path", nil, "additional directory to search (repeatable)")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "", "output format: json, yaml, text (default from config, else json)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, off")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	})

	return cmd
}

func run(cmd *cobra.Command, args []string, opts rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	cfg.Scan.ExtraPaths = append(cfg.Scan.ExtraPaths, opts.extraPaths...)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	engine := introspect.New(introspect.Options{
		ExtraPaths: cfg.SearchPaths(),
		Open:       openBundle,
		Logger:     logger,
	})

	var env render.Envelope
	switch {
	case len(args) == 1:
		rec, err := engine.Inspect(args[0], opts.which)
		if err != nil {
			return fmt.Errorf("failed to get bundle info for %s: %w", args[0], err)
		}
		env = render.Envelope{Action: render.ActionInspect, Result: rec}
	case opts.searchPath:
		env = render.Envelope{Action: render.ActionSearchPaths, Result: engine.SearchPaths()}
	case opts.list:
		paths := engine.ListBundles()
		if paths == nil {
			paths = []string{}
		}
		env = render.Envelope{Action: render.ActionList, Result: paths}
	case opts.scan:
		env = render.Envelope{Action: render.ActionScan, Result: engine.Scan()}
	default:
		return cmd.Help()
	}

	out := cmd.OutOrStdout()
	return render.Write(out, env, render.Options{
		Format: cfg.Output.Format,
		Indent: cfg.Output.Indent,
		Styled: isTerminal(out),
	})
}

func newLogger(cfg *config.Config, w io.Writer) (hclog.Logger, error) {
	level, err := debug.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return debug.New(debug.Options{Level: level, Output: w, JSON: cfg.Log.JSON}), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
