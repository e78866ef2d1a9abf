package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/pomdot/internal/config"
	"github.com/raphi011/pomdot/internal/countdown"
	"github.com/raphi011/pomdot/internal/log"
	"github.com/raphi011/pomdot/internal/output"
	"github.com/raphi011/pomdot/internal/parse"
	"github.com/raphi011/pomdot/internal/settings"
)

// rootOptions holds the raw values of every command-line flag.
type rootOptions struct {
	time       string
	compact    *bool
	noBell     *bool
	barWidth   string
	configPath string

	writeConfig bool
	saveConfig  bool
	status      bool
	force       bool

	verbose bool
	quiet   bool

	order *flagOrder
}

// newRootCmd builds the pomdot command. clock drives the countdown.
func newRootCmd(clock countdown.Clock) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pomdot [-t FOCUS REST REPEAT | -t FOCUS,REST,REPEAT] [flags]",
		Short: "Terminal pomodoro timer",
		Long: `pomdot runs focus and rest intervals in the terminal.

Durations are N (minutes), Ns (seconds) or Nm (minutes). REPEAT is the
number of extra focus/rest cycles after the first one.

Settings resolve per field: command line, then config file, then defaults.
The config file defaults to ~/.config/pomdot/config.toml and can be moved
with --config or the ` + config.EnvPath + ` environment variable.`,
		Example: `  pomdot                        # Run with config/default settings
  pomdot -t 25m 5m 3            # 25 minute focus, 5 minute rest, 3 repeats
  pomdot -t 90s,30s,0 --compact # One short cycle without stage headers
  pomdot --status               # Show resolved settings and their sources
  pomdot --save-config -t 50 10 1
  pomdot --write-config --force # Reset the config file`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			ctx := log.WithLogger(cmd.Context(), log.New(cmd.ErrOrStderr(), opts.verbose, opts.quiet))
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args, clock)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.time, "time", "t", "", "Timer values as FOCUS REST REPEAT or FOCUS,REST,REPEAT")
	toggleVar(f, &opts.compact, "compact", true, "Hide the per-stage header")
	toggleVar(f, &opts.compact, "no-compact", false, "Show the per-stage header")
	toggleVar(f, &opts.noBell, "no-bell", true, "Disable the bell between stages and at the end")
	toggleVar(f, &opts.noBell, "bell", false, "Enable the bell between stages and at the end")
	f.StringVar(&opts.barWidth, "bar-width", "", fmt.Sprintf("Progress bar width in characters (default %d, minimum 10)", config.DefaultBarWidth))
	f.StringVar(&opts.configPath, "config", "", "Config file path (default ~/.config/pomdot/config.toml)")
	f.BoolVar(&opts.writeConfig, "write-config", false, "Write the default config file and exit")
	f.BoolVar(&opts.force, "force", false, "Overwrite an existing config file (with --write-config)")
	f.BoolVar(&opts.status, "status", false, "Show resolved settings and exit")
	f.BoolVar(&opts.saveConfig, "save-config", false, "Save the command-line settings over defaults to the config file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log how settings were resolved")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	opts.order = recordFlagOrder(f)

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usage(err)
	})

	return cmd
}

// Execute runs pomdot with the process arguments and returns the exit code.
func Execute() int {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(countdown.SystemClock())
	cmd.SetContext(ctx)

	err := cmd.Execute()
	code := exitCode(err)
	if err != nil && code != exitCancelled {
		fmt.Fprintf(os.Stderr, "pomdot: %v\n", err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'pomdot -h' for help")
	}
	return code
}

// runRoot validates the flags, resolves settings and dispatches to the
// selected mode.
func runRoot(cmd *cobra.Command, opts *rootOptions, args []string, clock countdown.Clock) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)

	flags, err := opts.settingsFlags(cmd, args)
	if err != nil {
		return usage(err)
	}

	mode, err := flags.Mode()
	if err != nil {
		return usage(err)
	}

	path, err := opts.resolveConfigPath()
	if err != nil {
		return err
	}
	l.Debug("selected mode", "mode", mode, "config", path)

	if mode == settings.ModeWriteConfig {
		return writeConfig(ctx, path, flags.Force)
	}

	raw, err := config.Load(path)
	if err != nil {
		return usage(err)
	}
	if raw.IsEmpty() {
		l.Debug("no config values loaded", "path", path)
	}
	if opts.configPath != "" && mode != settings.ModeSaveConfig {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			l.Printf("pomdot: config file %s not found, using defaults\n", path)
		}
	}

	resolved := settings.Resolve(flags, raw)
	if mode == settings.ModeSaveConfig {
		resolved = settings.ResolveForSave(flags)
	}
	for _, ks := range resolved.Sources() {
		l.Debug("resolved setting", "key", ks.Key, "source", ks.Source)
	}

	s, err := resolved.Validate()
	if err != nil {
		return usage(err)
	}

	switch mode {
	case settings.ModeStatus:
		return showStatus(ctx, path, s, resolved)
	case settings.ModeSaveConfig:
		return saveConfig(ctx, path, s)
	default:
		return runTimer(ctx, s, clock)
	}
}

// settingsFlags converts the parsed flags to settings.Flags. Positional
// arguments are only accepted as the continuation of --time.
func (o *rootOptions) settingsFlags(cmd *cobra.Command, args []string) (settings.Flags, error) {
	f := settings.Flags{
		Compact:     o.compact,
		NoBell:      o.noBell,
		WriteConfig: o.writeConfig,
		SaveConfig:  o.saveConfig,
		Status:      o.status,
		Force:       o.force,
	}

	if cmd.Flags().Changed("time") {
		if !o.order.continues("time", len(args)) {
			return f, fmt.Errorf("%w: values must directly follow -t/--time, got extra arguments %q", settings.ErrInvalidTimeArgs, args)
		}
		t, err := settings.NormalizeTime(append([]string{o.time}, args...))
		if err != nil {
			return f, err
		}
		f.Time = t
	} else if len(args) > 0 {
		return f, fmt.Errorf("unexpected arguments %q: timer values must follow -t/--time", args)
	}

	if cmd.Flags().Changed("bar-width") {
		w, err := parse.BarWidth(o.barWidth)
		if err != nil {
			return f, err
		}
		f.BarWidth = &w
	}

	return f, nil
}

// resolveConfigPath returns --config with ~ expanded, or the default path.
func (o *rootOptions) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return config.ExpandPath(o.configPath)
	}
	return config.DefaultPath()
}
