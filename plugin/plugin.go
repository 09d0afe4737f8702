// Package plugin builds the compiler customizers for the gremlin-groovy
// script engine.
package plugin

import (
	"log/slog"

	"github.com/robbyt/go-gremlin-compiler/customizer"
	"github.com/robbyt/go-gremlin-compiler/internal/helpers"
)

const (
	// Name identifies the plugin to a host.
	Name = "tinkerpop.groovy"

	// EngineName is the only script engine the plugin applies to.
	EngineName = "gremlin-groovy"
)

// Plugin is an immutable set of compiler settings. It is safe for
// concurrent use.
type Plugin struct {
	opts       options
	logHandler slog.Handler
	logger     *slog.Logger
}

func newPlugin(opts options, handler slog.Handler, logger *slog.Logger) *Plugin {
	p := &Plugin{opts: opts}
	if logger != nil {
		p.logger = logger
		p.logHandler = logger.Handler()
	} else {
		p.logHandler, p.logger = helpers.SetupLogger(handler, "groovy", "Plugin")
	}
	return p
}

func (p *Plugin) String() string {
	return "plugin.Plugin"
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return Name
}

// Compilation returns the static analysis mode.
func (p *Plugin) Compilation() Compilation {
	return p.opts.compilation
}

// AppliesTo reports whether the plugin customizes the named engine. The
// match is exact and case-sensitive.
func (p *Plugin) AppliesTo(engineName string) bool {
	return engineName == EngineName
}

// Customizers returns the customizers for the named engine. The bool is
// false when the plugin does not apply to the engine. When it does apply the
// slice is never nil, though it is empty if no settings were made.
//
// The order is fixed: compilation mode, keyed configuration options,
// interpreter mode, thread interrupt, timed interrupt, compilation options.
// Each call returns freshly constructed customizers.
func (p *Plugin) Customizers(engineName string) ([]customizer.Customizer, bool) {
	logger := p.logger.WithGroup("customizers")
	if !p.AppliesTo(engineName) {
		logger.Debug("Engine not supported", "engine", engineName, "supported", EngineName)
		return nil, false
	}

	o := p.opts
	customizers := []customizer.Customizer{}

	switch o.compilation {
	case CompilationCompileStatic:
		customizers = append(customizers, customizer.NewCompileStatic(o.extensions))
	case CompilationTypeChecked:
		customizers = append(customizers, customizer.NewTypeChecked(o.extensions))
	}

	if len(o.compilerConfigurationOptions) > 0 {
		customizers = append(customizers, customizer.NewConfiguration(o.compilerConfigurationOptions))
	}

	if o.interpreterMode {
		customizers = append(customizers, customizer.NewInterpreterMode(true))
	}

	if o.threadInterrupt {
		customizers = append(customizers, customizer.NewThreadInterrupt(true))
	}

	if o.timedInterruptSet {
		customizers = append(customizers, customizer.NewTimedInterrupt(o.timedInterrupt))
	}

	if o.classMapCacheSpecificationSet || o.expectedCompilationTimeSet {
		customizers = append(customizers, customizer.NewCompilationOptions(
			o.classMapCacheSpecification,
			o.expectedCompilationTime,
		))
	}

	logger.Debug("Customizers assembled", "engine", engineName, "count", len(customizers))
	return customizers, true
}
