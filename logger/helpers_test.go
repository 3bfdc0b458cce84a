package logger

import (
	"errors"
	"sync"
	"time"
)

// recordingConsole keeps every line written to it.
type recordingConsole struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingConsole) WriteLine(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, text)
	return nil
}

func (r *recordingConsole) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// recordingFiles keeps every line and its destination; err, if set, is
// returned from every write.
type recordingFiles struct {
	mu    sync.Mutex
	lines []string
	paths []string
	err   error
}

func (r *recordingFiles) WriteLine(text, directory, filename string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.lines = append(r.lines, text)
	r.paths = append(r.paths, logPath(directory, filename))
	return nil
}

func (r *recordingFiles) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

var errDiskFull = errors.New("disk full")

var fixedTime = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

func fixedClock() time.Time {
	return fixedTime
}

// plainSettings is DefaultSettings without color, so expected lines can be
// spelled out literally.
func plainSettings(name string) Settings {
	s := DefaultSettings()
	s.Name = name
	s.ConsoleColorEnabled = false
	return s
}

// newRecorded returns a Logger on reg whose sinks are recorders.
func newRecorded(reg *Registry, s Settings) (*Logger, *recordingConsole, *recordingFiles) {
	console := &recordingConsole{}
	files := &recordingFiles{}
	l := reg.New(s, WithConsole(console), WithFiles(files), WithClock(fixedClock))
	return l, console, files
}
