package logger

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lestrrat-go/strftime"
)

// Destination selects the formatting rules applied to a line.
type Destination int

const (
	// ConsoleDestination lines may carry color and have no timestamp.
	ConsoleDestination Destination = iota
	// FileDestination lines are plain and start with a timestamp.
	FileDestination
)

// Format renders message for dest using settings and the registry's name
// alignment. Every physical line of message becomes one formatted line.
// Nil is returned when severity is hidden by settings.VisibleDepth.
//
// Layout, with the timestamp only present for FileDestination:
//
//	2024-01-02-15:04:05 - [NAME]<pad> | ERROR - <indent>message
func (r *Registry) Format(message string, severity Severity, settings Settings, indent int, dest Destination, t time.Time) []string {
	if !settings.visible(severity) {
		return nil
	}

	longest := r.LongestName()
	var stamp string
	if dest == FileDestination {
		stamp = timestamp(settings.DateTimeFormat, t)
	}

	lines := splitLines(message)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, formatLine(line, severity, settings, indent, dest, longest, stamp))
	}
	return out
}

func formatLine(line string, severity Severity, settings Settings, indent int, dest Destination, longest int, stamp string) string {
	var b strings.Builder
	b.Grow(len(stamp) + len(settings.Name) + len(line) + longest + 32)

	if dest == FileDestination {
		b.WriteString(stamp)
		b.WriteString(" - ")
	}

	field := "[" + settings.Name + "]"
	b.WriteString(field)
	b.WriteString(spaces(namePadding(field, longest)))
	b.WriteString(" | ")

	if severity != NoneLevel {
		b.WriteString(label(severity, dest == ConsoleDestination && settings.ConsoleColorEnabled))
		b.WriteString(" - ")
	}

	b.WriteString(spaces(indent))
	b.WriteString(line)
	return b.String()
}

// namePadding returns how many spaces follow the bracketed name field so
// that it spans longest + LongestSeverityNameLength() + 2 columns. A field
// wider than that, e.g. from a name registered before a Reset, gets none.
func namePadding(field string, longest int) int {
	n := longest + LongestSeverityNameLength() + 2 - utf8.RuneCountInString(field)
	if n < 0 {
		return 0
	}
	return n
}

func label(severity Severity, colored bool) string {
	name := severity.String()
	if !colored {
		return name
	}
	return paint(name, severity)
}

// paint wraps text in the color of severity regardless of whether stdout
// is a terminal. NoneLevel text is returned unchanged.
func paint(text string, severity Severity) string {
	c := severity.Color()
	if c == nil {
		return text
	}
	c.EnableColor()
	return c.Sprint(text)
}

// timestamp renders t with a strftime pattern. An empty or invalid
// pattern falls back to DefaultDateTimeFormat.
func timestamp(pattern string, t time.Time) string {
	if pattern != "" {
		if s, err := strftime.Format(pattern, t); err == nil {
			return s
		}
	}
	s, _ := strftime.Format(DefaultDateTimeFormat, t)
	return s
}

// splitLines splits message on newlines. A single trailing newline does
// not produce an empty final line and carriage returns are dropped.
// The empty message is one empty line.
func splitLines(message string) []string {
	lines := strings.Split(message, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func spaces(n int) string {
	return repeat(' ', n)
}

func repeat(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(r), n)
}
