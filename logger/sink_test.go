package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestFiles_CreatesDirectoriesAndAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	f := NewFiles()

	if err := f.WriteLine("first", dir, "app.log"); err != nil {
		t.Fatalf("WriteLine() returned error: %v", err)
	}
	if err := f.WriteLine("second", dir, "app.log"); err != nil {
		t.Fatalf("WriteLine() returned error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "app.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if got := string(content); got != "first\nsecond\n" {
		t.Fatalf("file content = %q, want both lines appended", got)
	}
}

func TestFiles_RelativeToWorkingDirectory(t *testing.T) {
	tmp := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() returned error: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("Chdir() returned error: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})

	if err := NewFiles().WriteLine("hello", "logs", "output"); err != nil {
		t.Fatalf("WriteLine() returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "logs", "output")); err != nil {
		t.Fatalf("expected logs/output under the working directory: %v", err)
	}
}

func TestFiles_UnwritablePath(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create blocker: %v", err)
	}

	err := NewFiles().WriteLine("text", filepath.Join(blocker, "sub"), "app.log")
	if err == nil {
		t.Fatalf("expected an error when the directory is a regular file")
	}
	if !strings.Contains(err.Error(), "creating log directory") {
		t.Fatalf("error should describe the failed step, got %v", err)
	}
}

func TestConsole_WritesVerbatim(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	if err := c.WriteLine("\x1b[91mERROR\x1b[0m"); err != nil {
		t.Fatalf("WriteLine() returned error: %v", err)
	}
	if got := buf.String(); got != "\x1b[91mERROR\x1b[0m\n" {
		t.Fatalf("console output = %q", got)
	}
}

func TestLogger_FileLogging(t *testing.T) {
	var buf bytes.Buffer
	dir := t.TempDir()

	reg := NewRegistry()
	s := DefaultSettings()
	s.Name = "FILE"
	s.VisibleDepth = TraceLevel
	s.FileDirectory = dir
	s.FileName = "test.log"
	l := reg.New(s, WithConsole(NewConsole(&buf)))

	l.Log("first message", InfoLevel)
	l.Log("second message", ErrorLevel)
	l.LogSeparatorChar('-', NoneLevel)

	content, err := os.ReadFile(filepath.Join(dir, "test.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines in the file, got %q", lines)
	}

	tsPattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{2}:\d{2}:\d{2} - \[FILE\] +\| `)
	for i, line := range lines[:2] {
		if !tsPattern.MatchString(line) {
			t.Fatalf("file line %d should start with timestamp and name, got %q", i, line)
		}
	}
	if !strings.HasSuffix(lines[0], "INFO - first message") || !strings.HasSuffix(lines[1], "ERROR - second message") {
		t.Fatalf("unexpected file lines %q", lines)
	}
	if lines[2] != strings.Repeat("-", 32) {
		t.Fatalf("separator line = %q", lines[2])
	}
	if strings.Contains(string(content), "\x1b[") {
		t.Fatalf("log file should not contain ANSI color codes, got %q", content)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("console output should be colored, got %q", buf.String())
	}
}

func TestLogger_InvalidFilePathDoesNotStopLogging(t *testing.T) {
	var buf bytes.Buffer
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to create blocker: %v", err)
	}

	reg := NewRegistry()
	s := plainSettings("X")
	s.FileDirectory = blocker
	s.FileName = "test.log"
	l := reg.New(s, WithConsole(NewConsole(&buf)))

	l.Log("first", ErrorLevel)
	l.Log("second", ErrorLevel)

	out := buf.String()
	if !strings.Contains(out, "ERROR - first") || !strings.Contains(out, "ERROR - second") {
		t.Fatalf("console logging should continue, got %q", out)
	}
	if strings.Count(out, "WARNING - logger: cannot write log file") != 2 {
		t.Fatalf("expected a warning per failed write, got %q", out)
	}
}
