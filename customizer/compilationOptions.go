package customizer

import (
	"fmt"
	"time"

	"github.com/robbyt/go-gremlin-compiler/compiler"
)

// CompilationOptions carries the engine-level compilation settings: the
// class map cache specification and the expected compilation time. Both
// values are passed through unparsed.
type CompilationOptions struct {
	classMapCacheSpecification string
	expectedCompilationTime    time.Duration
}

func NewCompilationOptions(classMapCacheSpecification string, expectedCompilationTime time.Duration) *CompilationOptions {
	return &CompilationOptions{
		classMapCacheSpecification: classMapCacheSpecification,
		expectedCompilationTime:    expectedCompilationTime,
	}
}

// ClassMapCacheSpecification returns the cache specification, or "" when unset.
func (c *CompilationOptions) ClassMapCacheSpecification() string {
	return c.classMapCacheSpecification
}

// ExpectedCompilationTime returns the expected compilation time, or 0 when unset.
func (c *CompilationOptions) ExpectedCompilationTime() time.Duration {
	return c.expectedCompilationTime
}

func (c *CompilationOptions) Apply(cfg *compiler.Configuration) error {
	if cfg == nil {
		return ErrConfigurationNil
	}
	cfg.CompilationOptions = compiler.CompilationOptions{
		ClassMapCacheSpecification: c.classMapCacheSpecification,
		ExpectedCompilationTime:    c.expectedCompilationTime,
	}
	return nil
}

func (c *CompilationOptions) String() string {
	return fmt.Sprintf(
		"customizer.CompilationOptions(cache=%q, expected=%s)",
		c.classMapCacheSpecification,
		c.expectedCompilationTime,
	)
}
