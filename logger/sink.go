package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// ConsoleSink receives console-formatted lines. Text may contain ANSI
// escapes which must be written verbatim.
type ConsoleSink interface {
	WriteLine(text string) error
}

// FileSink receives file-formatted lines together with the destination
// configured in the Logger's Settings.
type FileSink interface {
	WriteLine(text, directory, filename string) error
}

// Console writes lines to an io.Writer, one Write per line.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// WriteLine writes text followed by a newline.
func (c *Console) WriteLine(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := io.WriteString(c.w, text+"\n")
	return err
}

// Files appends lines to files on disk. Each call opens, writes and closes
// the target so no handle outlives a log call.
type Files struct {
	mu sync.Mutex
}

// NewFiles returns a FileSink backed by the filesystem.
func NewFiles() *Files {
	return &Files{}
}

// WriteLine appends text and a newline to directory/filename, creating
// missing directories. A relative directory resolves against the working
// directory.
func (f *Files) WriteLine(text, directory, filename string) error {
	path := logPath(directory, filename)

	f.mu.Lock()
	defer f.mu.Unlock()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating log directory %s", dir)
		}
	}

	fh, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrapf(err, "opening log file %s", path)
	}
	if _, err := io.WriteString(fh, text+"\n"); err != nil {
		fh.Close()
		return errors.Wrapf(err, "writing log file %s", path)
	}
	return errors.Wrapf(fh.Close(), "closing log file %s", path)
}

// logPath joins directory and filename the way Files resolves them.
func logPath(directory, filename string) string {
	return filepath.Join(directory, filename)
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = color.Output

	defaultConsole ConsoleSink = stdoutConsole{}
	defaultFiles   FileSink    = NewFiles()
)

// stdoutConsole resolves outStdout on every write so tests can swap it.
type stdoutConsole struct{}

var stdoutMu sync.Mutex

func (stdoutConsole) WriteLine(text string) error {
	stdoutMu.Lock()
	defer stdoutMu.Unlock()

	_, err := io.WriteString(outStdout, text+"\n")
	return err
}
