package customizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/robbyt/go-gremlin-compiler/compiler"
)

// TimeUnitMilliseconds is the unit recorded with a TimedInterrupt transformation.
const TimeUnitMilliseconds = "MILLISECONDS"

// CompileStatic enables static compilation of scripts.
type CompileStatic struct {
	extensions string
}

// NewCompileStatic creates a CompileStatic customizer. extensions is a comma
// separated list of type checking extension scripts and may be empty.
func NewCompileStatic(extensions string) *CompileStatic {
	return &CompileStatic{extensions: extensions}
}

// Extensions returns the type checking extensions.
func (c *CompileStatic) Extensions() string {
	return c.extensions
}

func (c *CompileStatic) Apply(cfg *compiler.Configuration) error {
	return applyStaticAnalysis(cfg, TransformCompileStatic, c.extensions)
}

func (c *CompileStatic) String() string {
	return "customizer.CompileStatic"
}

// TypeChecked enables static type checking without static compilation.
type TypeChecked struct {
	extensions string
}

// NewTypeChecked creates a TypeChecked customizer. extensions is a comma
// separated list of type checking extension scripts and may be empty.
func NewTypeChecked(extensions string) *TypeChecked {
	return &TypeChecked{extensions: extensions}
}

// Extensions returns the type checking extensions.
func (c *TypeChecked) Extensions() string {
	return c.extensions
}

func (c *TypeChecked) Apply(cfg *compiler.Configuration) error {
	return applyStaticAnalysis(cfg, TransformTypeChecked, c.extensions)
}

func (c *TypeChecked) String() string {
	return "customizer.TypeChecked"
}

func applyStaticAnalysis(cfg *compiler.Configuration, name, extensions string) error {
	if cfg == nil {
		return ErrConfigurationNil
	}

	t := compiler.Transformation{Name: name}
	if list := splitExtensions(extensions); len(list) > 0 {
		t.Params = map[string]any{"extensions": list}
	}
	cfg.AddTransformation(t)
	return nil
}

func splitExtensions(extensions string) []string {
	var list []string
	for ext := range strings.SplitSeq(extensions, ",") {
		if ext = strings.TrimSpace(ext); ext != "" {
			list = append(list, ext)
		}
	}
	return list
}

// InterpreterMode makes the engine interpret scripts instead of compiling
// them into classes.
type InterpreterMode struct {
	enabled bool
}

// NewInterpreterMode creates an InterpreterMode customizer.
func NewInterpreterMode(enabled bool) *InterpreterMode {
	return &InterpreterMode{enabled: enabled}
}

// Enabled reports whether interpreter mode is switched on.
func (c *InterpreterMode) Enabled() bool {
	return c.enabled
}

func (c *InterpreterMode) Apply(cfg *compiler.Configuration) error {
	return applyFlag(cfg, TransformInterpreterMode, c.enabled)
}

func (c *InterpreterMode) String() string {
	return fmt.Sprintf("customizer.InterpreterMode(%t)", c.enabled)
}

// ThreadInterrupt inserts checks that stop a script when its goroutine's
// interrupt signal is raised.
type ThreadInterrupt struct {
	enabled bool
}

// NewThreadInterrupt creates a ThreadInterrupt customizer.
func NewThreadInterrupt(enabled bool) *ThreadInterrupt {
	return &ThreadInterrupt{enabled: enabled}
}

// Enabled reports whether thread interrupt checks are switched on.
func (c *ThreadInterrupt) Enabled() bool {
	return c.enabled
}

func (c *ThreadInterrupt) Apply(cfg *compiler.Configuration) error {
	return applyFlag(cfg, TransformThreadInterrupt, c.enabled)
}

func (c *ThreadInterrupt) String() string {
	return fmt.Sprintf("customizer.ThreadInterrupt(%t)", c.enabled)
}

// applyFlag records the named transformation when enabled; a disabled flag is a no-op.
func applyFlag(cfg *compiler.Configuration, name string, enabled bool) error {
	if cfg == nil {
		return ErrConfigurationNil
	}
	if enabled {
		cfg.AddTransformation(compiler.Transformation{Name: name})
	}
	return nil
}

// TimedInterrupt inserts checks that stop a script once it has run longer
// than the configured timeout.
type TimedInterrupt struct {
	timeout time.Duration
}

// NewTimedInterrupt creates a TimedInterrupt customizer for the given timeout.
func NewTimedInterrupt(timeout time.Duration) *TimedInterrupt {
	return &TimedInterrupt{timeout: timeout}
}

// Timeout returns the interrupt timeout.
func (c *TimedInterrupt) Timeout() time.Duration {
	return c.timeout
}

// Milliseconds returns the interrupt timeout in milliseconds.
func (c *TimedInterrupt) Milliseconds() int64 {
	return c.timeout.Milliseconds()
}

func (c *TimedInterrupt) Apply(cfg *compiler.Configuration) error {
	if cfg == nil {
		return ErrConfigurationNil
	}
	if c.timeout <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidTimeout, c.timeout)
	}

	cfg.AddTransformation(compiler.Transformation{
		Name: TransformTimedInterrupt,
		Params: map[string]any{
			"value": c.timeout.Milliseconds(),
			"unit":  TimeUnitMilliseconds,
		},
	})
	return nil
}

func (c *TimedInterrupt) String() string {
	return fmt.Sprintf("customizer.TimedInterrupt(%s)", c.timeout)
}
