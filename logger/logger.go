package logger

import (
	"fmt"
	"sync"
	"time"
)

// Logger formats lines with its Settings and writes them to the console
// and file sinks. Loggers created from the same Registry share the width
// of the name column.
//
// A Logger must not be copied after first use. It is safe for concurrent
// use; lines from concurrent calls never interleave within a line.
type Logger struct {
	registry *Registry
	console  ConsoleSink
	files    FileSink
	now      func() time.Time

	mu       sync.RWMutex
	settings Settings
}

// Option configures a Logger during construction.
type Option func(*Logger)

// WithConsole replaces the console sink. The default writes to stdout.
func WithConsole(sink ConsoleSink) Option {
	return func(l *Logger) {
		if sink != nil {
			l.console = sink
		}
	}
}

// WithFiles replaces the file sink. The default appends to files on disk.
func WithFiles(sink FileSink) Option {
	return func(l *Logger) {
		if sink != nil {
			l.files = sink
		}
	}
}

// WithClock replaces the clock used for file timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

var timeNow = time.Now

// Settings returns a copy of the Logger's settings.
func (l *Logger) Settings() Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.settings
}

// SetSettings replaces the Logger's settings and registers the new name
// with the Logger's Registry.
func (l *Logger) SetSettings(s Settings) {
	l.mu.Lock()
	l.settings = s
	l.mu.Unlock()
	l.registry.RegisterName(s.Name)
}

// Name returns the Logger's name.
func (l *Logger) Name() string {
	return l.Settings().Name
}

// Enabled reports whether lines of the given severity would be written.
// Use it to skip building expensive messages.
func (l *Logger) Enabled(severity Severity) bool {
	return l.Settings().visible(severity)
}

// Log writes message at severity. Every line of a multi-line message is
// written separately with its own prefix.
func (l *Logger) Log(message string, severity Severity) {
	l.LogIndent(message, severity, 0)
}

// LogIndent is Log with indent spaces inserted before each line of the
// message.
func (l *Logger) LogIndent(message string, severity Severity, indent int) {
	s := l.Settings()
	if !s.visible(severity) {
		return
	}

	var console, file []string
	if s.ConsoleEnabled {
		console = l.registry.Format(message, severity, s, indent, ConsoleDestination, time.Time{})
	}
	if s.FileEnabled {
		file = l.registry.Format(message, severity, s, indent, FileDestination, l.now())
	}

	for i := 0; i < max(len(console), len(file)); i++ {
		if i < len(console) {
			l.writeConsole(console[i])
		}
		if i < len(file) {
			l.writeFile(s, file[i])
		}
	}
}

// Print writes message with no severity label. It is never filtered.
func (l *Logger) Print(message string) {
	l.Log(message, NoneLevel)
}

// LogSeparator writes text as-is as a visual rule. On the console it is
// colored by severity when color is enabled.
func (l *Logger) LogSeparator(text string, severity Severity) {
	s := l.Settings()
	if !s.visible(severity) {
		return
	}

	if s.ConsoleEnabled {
		line := text
		if s.ConsoleColorEnabled {
			line = paint(text, severity)
		}
		l.writeConsole(line)
	}
	if s.FileEnabled {
		l.writeFile(s, text)
	}
}

// LogSeparatorChar writes fill repeated ConsoleSeparatorLength times to the
// console and FileSeparatorLength times to the file.
func (l *Logger) LogSeparatorChar(fill rune, severity Severity) {
	s := l.Settings()
	if !s.visible(severity) {
		return
	}

	if s.ConsoleEnabled {
		line := repeat(fill, s.ConsoleSeparatorLength)
		if s.ConsoleColorEnabled {
			line = paint(line, severity)
		}
		l.writeConsole(line)
	}
	if s.FileEnabled {
		l.writeFile(s, repeat(fill, s.FileSeparatorLength))
	}
}

// Tracef logs a trace message formatted with fmt.Sprintf.
func (l *Logger) Tracef(format string, v ...any) {
	l.logf(TraceLevel, format, v...)
}

// Debugf logs a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) {
	l.logf(DebugLevel, format, v...)
}

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) {
	l.logf(InfoLevel, format, v...)
}

// Warnf logs a warning message formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) {
	l.logf(WarningLevel, format, v...)
}

// Errorf logs an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) {
	l.logf(ErrorLevel, format, v...)
}

// Critf logs a critical message formatted with fmt.Sprintf. Unlike a
// fatal log it does not exit.
func (l *Logger) Critf(format string, v ...any) {
	l.logf(CriticalLevel, format, v...)
}

func (l *Logger) logf(severity Severity, format string, v ...any) {
	if !l.Enabled(severity) {
		return
	}
	l.Log(fmt.Sprintf(format, v...), severity)
}

// writeConsole drops console errors: there is nowhere left to report them.
func (l *Logger) writeConsole(text string) {
	_ = l.console.WriteLine(text)
}

// writeFile reports a failed file write on the console and carries on.
// The warning is printed even when console output is disabled.
func (l *Logger) writeFile(s Settings, text string) {
	err := l.files.WriteLine(text, s.FileDirectory, s.FileName)
	if err == nil {
		return
	}
	l.writeConsole(fmt.Sprintf("WARNING - logger: cannot write log file '%s': %v",
		logPath(s.FileDirectory, s.FileName), err))
}
