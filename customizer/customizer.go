// Package customizer provides the fixed set of compiler customizers. Each
// customizer mutates a compiler.Configuration in exactly one way.
package customizer

import (
	"fmt"

	"github.com/robbyt/go-gremlin-compiler/compiler"
)

// Names of the transformations recorded by the transformation customizers.
const (
	TransformCompileStatic   = "CompileStatic"
	TransformTypeChecked     = "TypeChecked"
	TransformInterpreterMode = "InterpreterMode"
	TransformThreadInterrupt = "ThreadInterrupt"
	TransformTimedInterrupt  = "TimedInterrupt"
)

// Customizer is applied to a compiler configuration before compilation.
// Implementations are CompileStatic, TypeChecked, Configuration,
// InterpreterMode, ThreadInterrupt, TimedInterrupt and CompilationOptions.
type Customizer interface {
	Apply(cfg *compiler.Configuration) error
}

var (
	_ Customizer = (*CompileStatic)(nil)
	_ Customizer = (*TypeChecked)(nil)
	_ Customizer = (*Configuration)(nil)
	_ Customizer = (*InterpreterMode)(nil)
	_ Customizer = (*ThreadInterrupt)(nil)
	_ Customizer = (*TimedInterrupt)(nil)
	_ Customizer = (*CompilationOptions)(nil)
)

// ApplyAll applies the customizers to cfg in order and stops at the first failure.
func ApplyAll(cfg *compiler.Configuration, customizers ...Customizer) error {
	if cfg == nil {
		return ErrConfigurationNil
	}

	for i, c := range customizers {
		if c == nil {
			return fmt.Errorf("%w: index %d", ErrCustomizerNil, i)
		}
		if err := c.Apply(cfg); err != nil {
			return fmt.Errorf("customizer %d (%v) failed: %w", i, c, err)
		}
	}
	return nil
}
