package logger

// DefaultDateTimeFormat is the strftime pattern used for file timestamps
// when Settings.DateTimeFormat is empty or cannot be compiled.
const DefaultDateTimeFormat = "%Y-%m-%d-%H:%M:%S"

// Settings controls formatting and destinations of a Logger.
// Loggers keep their own copy; changing a Settings value after passing it
// on has no effect on the Logger.
type Settings struct {
	// Name is printed in brackets at the start of every line.
	// Default: "CORE"
	Name string
	// VisibleDepth suppresses severities below it. NoneLevel is always shown.
	// Default: WarningLevel
	VisibleDepth Severity

	// DateTimeFormat is the strftime pattern for file timestamps.
	// Default: "%Y-%m-%d-%H:%M:%S"
	DateTimeFormat string

	// ConsoleColorEnabled colors the severity label on the console.
	// Default: true
	ConsoleColorEnabled bool
	// ConsoleSeparatorLength is the width of LogSeparatorChar on the console.
	// Default: 32
	ConsoleSeparatorLength int
	// ConsoleEnabled writes lines to the console sink.
	// Default: true
	ConsoleEnabled bool

	// FileDirectory is created on demand; relative paths resolve against
	// the working directory.
	// Default: "logs"
	FileDirectory string
	// FileName is the file inside FileDirectory lines are appended to.
	// Default: "output"
	FileName string
	// FileSeparatorLength is the width of LogSeparatorChar in the file.
	// Default: 32
	FileSeparatorLength int
	// FileEnabled writes lines to the file sink.
	// Default: true
	FileEnabled bool
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Name:                   "CORE",
		VisibleDepth:           WarningLevel,
		DateTimeFormat:         DefaultDateTimeFormat,
		ConsoleColorEnabled:    true,
		ConsoleSeparatorLength: 32,
		ConsoleEnabled:         true,
		FileDirectory:          "logs",
		FileName:               "output",
		FileSeparatorLength:    32,
		FileEnabled:            true,
	}
}

// visible reports whether s passes the VisibleDepth filter.
func (st Settings) visible(s Severity) bool {
	return s == NoneLevel || s >= st.VisibleDepth
}
