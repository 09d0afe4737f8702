// Package compiler holds the Groovy compiler configuration that customizers
// mutate before the script engine compiles anything.
package compiler

import (
	"slices"
	"time"
)

// Defaults taken from the Groovy compiler.
const (
	DefaultWarningLevel                 = 1
	DefaultTolerance                    = 10
	DefaultSourceEncoding               = "UTF-8"
	DefaultScriptExtension              = "groovy"
	DefaultTargetBytecode               = "1.8"
	DefaultMinimumRecompilationInterval = 100 * time.Millisecond
)

// Transformation is an AST transformation recorded on the configuration.
// The compiler integration decides how each named transformation is
// installed.
type Transformation struct {
	Name   string
	Params map[string]any
}

// CompilationOptions are the engine-level compilation settings that are not
// part of the compiler itself: the class map cache and the compile time
// after which a warning is logged.
type CompilationOptions struct {
	ClassMapCacheSpecification string
	ExpectedCompilationTime    time.Duration
}

// Configuration is a mutable compiler configuration. The exported scalar
// fields can be addressed by name through keyed options; Transformations and
// CompilationOptions are only set by their dedicated customizers.
type Configuration struct {
	Debug                        bool
	Verbose                      bool
	Parameters                   bool
	PreviewFeatures              bool
	RecompileSource              bool
	WarningLevel                 int
	Tolerance                    int
	MinimumRecompilationInterval time.Duration
	SourceEncoding               string
	TargetDirectory              string
	TargetBytecode               string
	ScriptBaseClass              string
	DefaultScriptExtension       string
	OptimizationOptions          map[string]bool

	Transformations    []Transformation   `mapstructure:"-"`
	CompilationOptions CompilationOptions `mapstructure:"-"`
}

// NewConfiguration returns a configuration populated with the compiler defaults.
func NewConfiguration() *Configuration {
	return &Configuration{
		WarningLevel:                 DefaultWarningLevel,
		Tolerance:                    DefaultTolerance,
		MinimumRecompilationInterval: DefaultMinimumRecompilationInterval,
		SourceEncoding:               DefaultSourceEncoding,
		TargetBytecode:               DefaultTargetBytecode,
		DefaultScriptExtension:       DefaultScriptExtension,
		OptimizationOptions:          map[string]bool{},
	}
}

// AddTransformation records t, replacing an earlier transformation with the
// same name in place so repeated application does not stack duplicates.
func (c *Configuration) AddTransformation(t Transformation) {
	idx := slices.IndexFunc(c.Transformations, func(existing Transformation) bool {
		return existing.Name == t.Name
	})
	if idx >= 0 {
		c.Transformations[idx] = t
		return
	}
	c.Transformations = append(c.Transformations, t)
}

// Transformation returns the recorded transformation with the given name.
func (c *Configuration) Transformation(name string) (Transformation, bool) {
	for _, t := range c.Transformations {
		if t.Name == name {
			return t, true
		}
	}
	return Transformation{}, false
}

// HasTransformation reports whether a transformation with the given name was recorded.
func (c *Configuration) HasTransformation(name string) bool {
	_, ok := c.Transformation(name)
	return ok
}
