package cmd

import (
	"fmt"

	"github.com/mordilloSan/alignlog/logger"
	"github.com/spf13/cobra"
)

func newDemoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show the output of several differently configured loggers",
		Long: `Runs a fixed session against four loggers with different settings, resets
the name alignment, then logs a short example session from two loggers.

Log files are written below --dir unless --no-file is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runDemo(cmd, o)
			return nil
		},
	}
}

func runDemo(cmd *cobra.Command, o *options) {
	one := o.newLogger(cmd, "TEST ONE")
	two := o.newLogger(cmd, "TEST TWO")
	three := o.newLogger(cmd, "TEST THREE")
	four := o.newLogger(cmd, "TEST FOUR")

	configure(one, func(s *logger.Settings) {
		s.FileName = "test_one.log"
	})
	configure(two, func(s *logger.Settings) {
		s.VisibleDepth = logger.TraceLevel
		s.FileName = "test_two.log"
	})
	configure(three, func(s *logger.Settings) {
		s.FileEnabled = false
		s.ConsoleColorEnabled = false
	})
	configure(four, func(s *logger.Settings) {
		s.ConsoleEnabled = false
		s.FileName = "test_four.log"
	})

	one.LogSeparatorChar('=', logger.NoneLevel)
	fmt.Fprintln(cmd.OutOrStdout(), "LOGGER TESTS")
	one.LogSeparatorChar('=', logger.NoneLevel)

	one.Print(`name: "TEST ONE"`)
	exerciseSeverities(one)

	two.Print(`name: "TEST TWO", visible depth: TRACE`)
	exerciseSeverities(two)

	three.Print(`name: "TEST THREE", file disabled, color disabled`)
	exerciseSeverities(three)

	four.Print(`name: "TEST FOUR", console disabled`)
	exerciseSeverities(four)

	o.registry.Reset()

	example := o.newLogger(cmd, "")
	module := o.newLogger(cmd, "MODULE")
	configure(example, func(s *logger.Settings) { s.FileName = "example.log" })
	configure(module, func(s *logger.Settings) { s.FileName = "example.log" })

	example.LogSeparator("==== EXAMPLE", logger.NoneLevel)
	example.LogSeparatorChar('-', logger.NoneLevel)

	example.Print("Time to do some stuff")
	example.Print("Generating example messages")
	example.Log("Scary warning, you can probably ignore it", logger.WarningLevel)
	example.Log("Another scary warning, you can probably ignore it", logger.WarningLevel)
	example.Log("That's a lot of warnings", logger.WarningLevel)
	example.Log("AH! An error!", logger.ErrorLevel)
	module.Log("Stuff's breaking over here too!", logger.ErrorLevel)
	module.Log("We have warnings too", logger.WarningLevel)
	example.Log("Something's not right", logger.WarningLevel)
	example.Log("Oops.", logger.CriticalLevel)
	example.Print("Successful!")

	example.LogSeparatorChar('=', logger.NoneLevel)
}

// configure edits a copy of l's settings and applies it.
func configure(l *logger.Logger, edit func(*logger.Settings)) {
	s := l.Settings()
	edit(&s)
	l.SetSettings(s)
}

// exerciseSeverities logs one line per severity between separators.
func exerciseSeverities(l *logger.Logger) {
	l.LogSeparatorChar('=', logger.NoneLevel)
	for _, s := range logger.Severities() {
		l.Log("depth: "+s.String(), s)
	}
	l.LogSeparator("====== String Separator =======", logger.NoneLevel)
	l.LogSeparatorChar('=', logger.NoneLevel)
}
