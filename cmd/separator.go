package cmd

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/mordilloSan/alignlog/logger"
	"github.com/spf13/cobra"
)

var errSeparatorChar = errors.New("--char must be exactly one character")

func newSeparatorCmd(o *options) *cobra.Command {
	severity := logger.NoneLevel
	fill := "="

	cmd := &cobra.Command{
		Use:   "separator [flags] [text]",
		Short: "Write a separator line",
		Long: `Writes a separator line. With text the arguments are written verbatim.
Without text, --char is repeated --console-width times on the console and
--file-width times in the log file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := o.newLogger(cmd, "")
			if len(args) > 0 {
				l.LogSeparator(strings.Join(args, " "), severity)
				return nil
			}
			if utf8.RuneCountInString(fill) != 1 {
				return errSeparatorChar
			}
			r, _ := utf8.DecodeRuneInString(fill)
			l.LogSeparatorChar(r, severity)
			return nil
		},
	}

	cmd.Flags().VarP(&severity, "severity", "s", "severity used to color the separator")
	cmd.Flags().StringVarP(&fill, "char", "c", fill, "character repeated for the separator")
	return cmd
}
