package logger

import (
	"sync"
	"unicode/utf8"
)

// Registry holds the state shared between Loggers: the longest logger name
// seen, used to align the name column, and the Settings handed to newly
// constructed Loggers.
//
// The zero value is not usable; call NewRegistry. A Registry is safe for
// concurrent use.
type Registry struct {
	mu       sync.Mutex
	longest  int
	defaults Settings
}

// NewRegistry returns a Registry with DefaultSettings and no names seen.
func NewRegistry() *Registry {
	return &Registry{defaults: DefaultSettings()}
}

// RegisterName widens the name column to fit name, if needed.
func (r *Registry) RegisterName(name string) {
	n := utf8.RuneCountInString(name)
	r.mu.Lock()
	if n > r.longest {
		r.longest = n
	}
	r.mu.Unlock()
}

// LongestName returns the length of the longest name registered since the
// last Reset.
func (r *Registry) LongestName() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.longest
}

// Reset forgets every registered name. Existing Loggers keep working but
// their names only count again once re-registered via SetSettings.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.longest = 0
	r.mu.Unlock()
}

// SetDefaults replaces the Settings used by NewDefault and Named.
func (r *Registry) SetDefaults(s Settings) {
	r.mu.Lock()
	r.defaults = s
	r.mu.Unlock()
}

// Defaults returns a copy of the current default Settings.
func (r *Registry) Defaults() Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.defaults
}

// New returns a Logger bound to r using a copy of settings.
func (r *Registry) New(settings Settings, opts ...Option) *Logger {
	l := &Logger{
		registry: r,
		console:  defaultConsole,
		files:    defaultFiles,
		now:      timeNow,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.SetSettings(settings)
	return l
}

// NewDefault returns a Logger using the registry's default Settings.
func (r *Registry) NewDefault(opts ...Option) *Logger {
	return r.New(r.Defaults(), opts...)
}

// Named returns a Logger using the registry's default Settings with Name
// replaced.
func (r *Registry) Named(name string, opts ...Option) *Logger {
	s := r.Defaults()
	s.Name = name
	return r.New(s, opts...)
}

// std backs the package-level functions.
var std = NewRegistry()

// StandardRegistry returns the process-wide Registry used by the
// package-level functions.
func StandardRegistry() *Registry {
	return std
}

// SetDefaults sets the default Settings of the standard registry.
func SetDefaults(s Settings) {
	std.SetDefaults(s)
}

// GetDefaults returns the default Settings of the standard registry.
func GetDefaults() Settings {
	return std.Defaults()
}

// Reset clears the name alignment of the standard registry.
func Reset() {
	std.Reset()
}

// New returns a Logger bound to the standard registry.
func New(settings Settings, opts ...Option) *Logger {
	return std.New(settings, opts...)
}

// NewDefault returns a Logger with the standard registry's defaults.
func NewDefault(opts ...Option) *Logger {
	return std.NewDefault(opts...)
}

// Named returns a Logger with the standard registry's defaults and the
// given name.
func Named(name string, opts ...Option) *Logger {
	return std.Named(name, opts...)
}
