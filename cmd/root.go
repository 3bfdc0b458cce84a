package cmd

import (
	"fmt"
	"os"

	"github.com/mordilloSan/alignlog/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options holds the flag state of one command tree. Loggers created by the
// subcommands share its registry so their names align.
type options struct {
	settings  logger.Settings
	noColor   bool
	noConsole bool
	noFile    bool

	registry *logger.Registry
}

func newOptions() *options {
	return &options{
		settings: logger.DefaultSettings(),
		registry: logger.NewRegistry(),
	}
}

// bindSettingsFlags maps the Settings fields onto persistent flags.
func bindSettingsFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.settings.Name, "name", "n", o.settings.Name, "logger name")
	fs.VarP(&o.settings.VisibleDepth, "depth", "d", "lowest severity shown: trace, debug, info, warning, error, critical or none")
	fs.StringVar(&o.settings.DateTimeFormat, "time-format", o.settings.DateTimeFormat, "strftime pattern for file timestamps")
	fs.IntVar(&o.settings.ConsoleSeparatorLength, "console-width", o.settings.ConsoleSeparatorLength, "width of character separators on the console")
	fs.IntVar(&o.settings.FileSeparatorLength, "file-width", o.settings.FileSeparatorLength, "width of character separators in the log file")
	fs.StringVar(&o.settings.FileDirectory, "dir", o.settings.FileDirectory, "directory of the log file")
	fs.StringVar(&o.settings.FileName, "file", o.settings.FileName, "name of the log file")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colored severity labels")
	fs.BoolVar(&o.noConsole, "no-console", false, "disable console output")
	fs.BoolVar(&o.noFile, "no-file", false, "disable file output")
}

// resolved returns the Settings described by the flags.
func (o *options) resolved() logger.Settings {
	s := o.settings
	s.ConsoleColorEnabled = !o.noColor
	s.ConsoleEnabled = !o.noConsole
	s.FileEnabled = !o.noFile
	return s
}

// newLogger returns a logger for cmd with the flag settings and the given
// name, writing console output to cmd's output stream.
func (o *options) newLogger(cmd *cobra.Command, name string) *logger.Logger {
	s := o.registry.Defaults()
	if name != "" {
		s.Name = name
	}
	return o.registry.New(s, logger.WithConsole(logger.NewConsole(cmd.OutOrStdout())))
}

// NewRootCmd builds the alignlog command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	o := newOptions()

	root := &cobra.Command{
		Use:   "alignlog",
		Short: "alignlog - write aligned log lines to the console and a log file",
		Long: `alignlog writes log lines with a bracketed logger name, a severity label and
an optional timestamp. Lines from every logger are aligned on the " | " column.

Examples:
  # Log a warning to the console and logs/output
  alignlog log --severity warning "disk almost full"

  # Show everything from DEBUG up, without a log file
  alignlog log --depth debug --no-file -s debug "cache miss"

  # Draw a 40 character rule
  alignlog separator --char - --console-width 40

  # Run the built-in demonstration
  alignlog demo --dir /tmp/alignlog`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			o.registry.SetDefaults(o.resolved())
		},
	}

	bindSettingsFlags(root.PersistentFlags(), o)

	root.AddCommand(newLogCmd(o))
	root.AddCommand(newSeparatorCmd(o))
	root.AddCommand(newDemoCmd(o))
	return root
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
