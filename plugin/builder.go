package plugin

import (
	"log/slog"
	"time"

	"github.com/robbyt/go-gremlin-compiler/internal/helpers"
)

// options is the set of settings frozen into a Plugin.
type options struct {
	compilation                  Compilation
	compilerConfigurationOptions map[string]any
	extensions                   string
	interpreterMode              bool
	threadInterrupt              bool

	timedInterrupt    time.Duration
	timedInterruptSet bool

	classMapCacheSpecification    string
	classMapCacheSpecificationSet bool

	expectedCompilationTime    time.Duration
	expectedCompilationTimeSet bool
}

// Builder collects the settings for a Plugin. Every setter returns the
// builder for chaining; a setting called more than once keeps the last
// value. Nothing is validated here; invalid values surface when the
// resulting customizers are applied.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	opts       options
	logHandler slog.Handler
	logger     *slog.Logger
}

// Build returns a new Builder with no settings.
func Build() *Builder {
	return NewBuilder()
}

// NewBuilder returns a new Builder with no settings.
func NewBuilder() *Builder {
	return &Builder{opts: options{compilation: CompilationNone}}
}

// Compilation sets the static analysis mode.
func (b *Builder) Compilation(mode Compilation) *Builder {
	b.opts.compilation = mode
	return b
}

// CompilerConfigurationOptions sets keyed options applied as a unit to the
// compiler configuration. Keys name compiler.Configuration fields.
func (b *Builder) CompilerConfigurationOptions(conf map[string]any) *Builder {
	b.opts.compilerConfigurationOptions = conf
	return b
}

// Extensions sets the comma separated type checking extensions used with
// CompilationCompileStatic and CompilationTypeChecked.
func (b *Builder) Extensions(extensions string) *Builder {
	b.opts.extensions = extensions
	return b
}

// EnableInterpreterMode makes the engine interpret scripts instead of
// compiling them into classes.
func (b *Builder) EnableInterpreterMode(enabled bool) *Builder {
	b.opts.interpreterMode = enabled
	return b
}

// EnableThreadInterrupt inserts interrupt checks into compiled scripts.
func (b *Builder) EnableThreadInterrupt(enabled bool) *Builder {
	b.opts.threadInterrupt = enabled
	return b
}

// TimedInterrupt sets how long a script may run before it is interrupted.
func (b *Builder) TimedInterrupt(timeout time.Duration) *Builder {
	b.opts.timedInterrupt = timeout
	b.opts.timedInterruptSet = true
	return b
}

// ClassMapCacheSpecification sets the cache specification for compiled
// classes. The string is passed through unparsed.
func (b *Builder) ClassMapCacheSpecification(spec string) *Builder {
	b.opts.classMapCacheSpecification = spec
	b.opts.classMapCacheSpecificationSet = true
	return b
}

// ExpectedCompilationTime sets the compile time after which the engine
// warns about a slow script.
func (b *Builder) ExpectedCompilationTime(expected time.Duration) *Builder {
	b.opts.expectedCompilationTime = expected
	b.opts.expectedCompilationTimeSet = true
	return b
}

// WithLogHandler sets the log handler for the plugin. A nil handler selects
// the default handler.
func (b *Builder) WithLogHandler(handler slog.Handler) *Builder {
	b.logHandler = handler
	// Clear logger if handler is explicitly set
	b.logger = nil
	return b
}

// WithLogger sets a specific logger for the plugin. A nil logger selects
// the default handler.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	// Clear handler if logger is explicitly set
	b.logHandler = nil
	return b
}

// Create freezes a deep copy of the current settings into a Plugin. The
// builder may be reused afterwards without affecting the returned Plugin.
func (b *Builder) Create() *Plugin {
	frozen := b.opts
	frozen.compilerConfigurationOptions = helpers.CloneOptions(b.opts.compilerConfigurationOptions)
	return newPlugin(frozen, b.logHandler, b.logger)
}
