package cmd

import (
	"strings"

	"github.com/mordilloSan/alignlog/logger"
	"github.com/spf13/cobra"
)

func newLogCmd(o *options) *cobra.Command {
	severity := logger.NoneLevel
	var indent int

	cmd := &cobra.Command{
		Use:   "log [flags] message...",
		Short: "Write each argument as a log message",
		Long: `Writes every argument as one log message. Arguments containing newlines are
split and every line gets the full prefix.

Messages below --depth are dropped. Severity none is always shown and has
no severity label.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := o.newLogger(cmd, "")
			for _, msg := range args {
				l.LogIndent(msg, severity, indent)
			}
			return nil
		},
	}

	cmd.Flags().VarP(&severity, "severity", "s", "severity of the messages: "+strings.ToLower(severityList()))
	cmd.Flags().IntVarP(&indent, "indent", "i", 0, "spaces inserted before each message line")
	return cmd
}

func severityList() string {
	names := make([]string, 0, len(logger.Severities())+1)
	for _, s := range logger.Severities() {
		names = append(names, s.String())
	}
	names = append(names, logger.NoneLevel.String())
	return strings.Join(names, ", ")
}
