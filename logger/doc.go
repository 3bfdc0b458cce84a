// Package logger provides named, column-aligned loggers that write to the
// console and to a file.
//
// # Output
//
// Every line starts with the logger's name in brackets, padded so that the
// " | " delimiter lines up across all loggers of a Registry, followed by the
// severity label and the message:
//
//	[CORE]         | WARNING - disk almost full
//	[NET]          | ERROR - connection refused
//	[CORE]         | plain message with NoneLevel
//
// File lines carry a strftime timestamp in front and never contain color:
//
//	2024-01-02-15:04:05 - [CORE]         | WARNING - disk almost full
//
// Multi-line messages are split and every line gets the full prefix.
//
// # Usage
//
// Create loggers from the package defaults or from explicit Settings:
//
//	core := logger.NewDefault()
//	net := logger.Named("NET")
//	core.Log("disk almost full", logger.WarningLevel)
//	net.Errorf("connection refused: %v", err)
//	core.LogSeparatorChar('=', logger.NoneLevel)
//
// # Registries
//
// The package-level functions share one process-wide Registry. Libraries
// and tests that want isolated alignment and defaults create their own:
//
//	reg := logger.NewRegistry()
//	l := reg.New(settings, logger.WithConsole(logger.NewConsole(&buf)))
//
// # Files
//
// File output is appended to FileDirectory/FileName, relative to the working
// directory unless absolute. Directories are created as needed. A file that
// cannot be written is reported on the console and never stops logging.
package logger
