package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Severity orders log lines. Lower values are more verbose.
type Severity int

const (
	// TraceLevel is for almost too much information.
	TraceLevel Severity = iota
	// DebugLevel is for information relevant while actively debugging.
	DebugLevel
	// InfoLevel is for processes which don't require attention.
	InfoLevel
	// WarningLevel is for potential issues which may be ignored.
	WarningLevel
	// ErrorLevel is for issues which prevent or affect core functionality.
	ErrorLevel
	// CriticalLevel means the process is about to crash.
	CriticalLevel
	// NoneLevel is always displayed and carries no severity label.
	NoneLevel
)

var (
	// ErrInvalidSeverity is returned for values outside the Severity enumeration.
	ErrInvalidSeverity = errors.New("invalid severity")

	// ErrUnknownSeverity is returned when a severity name cannot be parsed.
	ErrUnknownSeverity = errors.New("unknown severity name")
)

// Severities returns every labelled severity in ascending order.
// NoneLevel is not included.
func Severities() []Severity {
	return []Severity{
		TraceLevel,
		DebugLevel,
		InfoLevel,
		WarningLevel,
		ErrorLevel,
		CriticalLevel,
	}
}

// Name returns the canonical upper-case name of s.
func (s Severity) Name() (string, error) {
	switch s {
	case TraceLevel:
		return "TRACE", nil
	case DebugLevel:
		return "DEBUG", nil
	case InfoLevel:
		return "INFO", nil
	case WarningLevel:
		return "WARNING", nil
	case ErrorLevel:
		return "ERROR", nil
	case CriticalLevel:
		return "CRITICAL", nil
	case NoneLevel:
		return "NONE", nil
	}
	return "", errors.Wrapf(ErrInvalidSeverity, "severity %d", int(s))
}

func (s Severity) String() string {
	name, err := s.Name()
	if err != nil {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return name
}

// Color returns the display color for s, or nil for NoneLevel and
// invalid values (terminal default).
//
// A fresh *color.Color is returned on every call so callers may force
// or disable it without affecting anyone else.
func (s Severity) Color() *color.Color {
	switch s {
	case TraceLevel:
		return color.New(color.FgHiBlue)
	case DebugLevel:
		return color.New(color.FgHiGreen)
	case InfoLevel:
		return color.New(color.FgHiCyan)
	case WarningLevel:
		return color.New(color.FgHiYellow)
	case ErrorLevel:
		return color.New(color.FgHiRed)
	case CriticalLevel:
		return color.New(color.FgBlack, color.BgHiRed)
	}
	return nil
}

// LongestSeverityNameLength returns the length of the longest labelled
// severity name. The name column is padded against it.
func LongestSeverityNameLength() int {
	longest := 0
	for _, s := range Severities() {
		name, _ := s.Name()
		if len(name) > longest {
			longest = len(name)
		}
	}
	return longest
}

// ParseSeverity parses a severity name, ignoring case and surrounding
// space. WARN and CRIT are accepted as aliases.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL", "CRIT":
		return CriticalLevel, nil
	case "NONE":
		return NoneLevel, nil
	}
	return NoneLevel, errors.Wrapf(ErrUnknownSeverity, "%q", name)
}

// Set implements pflag.Value.
func (s *Severity) Set(name string) error {
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Severity) Type() string {
	return "severity"
}
