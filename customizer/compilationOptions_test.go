package customizer

import (
	"testing"
	"time"

	"github.com/robbyt/go-gremlin-compiler/compiler"
	"github.com/stretchr/testify/require"
)

func TestCompilationOptions(t *testing.T) {
	t.Parallel()

	const spec = "initialCapacity=1000,maximumSize=1000"

	t.Run("values pass through unchanged", func(t *testing.T) {
		c := NewCompilationOptions(spec, 30*time.Second)
		require.Equal(t, spec, c.ClassMapCacheSpecification())
		require.Equal(t, 30*time.Second, c.ExpectedCompilationTime())

		cfg := compiler.NewConfiguration()
		require.NoError(t, c.Apply(cfg))
		require.Equal(t, compiler.CompilationOptions{
			ClassMapCacheSpecification: spec,
			ExpectedCompilationTime:    30 * time.Second,
		}, cfg.CompilationOptions)
		require.Empty(t, cfg.Transformations)
	})

	t.Run("neutral values", func(t *testing.T) {
		c := NewCompilationOptions("", 0)

		cfg := compiler.NewConfiguration()
		cfg.CompilationOptions.ClassMapCacheSpecification = "maximumSize=1"
		require.NoError(t, c.Apply(cfg))
		require.Equal(t, compiler.CompilationOptions{}, cfg.CompilationOptions)
	})

	t.Run("nil configuration", func(t *testing.T) {
		require.ErrorIs(t, NewCompilationOptions(spec, 0).Apply(nil), ErrConfigurationNil)
	})

	t.Run("string", func(t *testing.T) {
		c := NewCompilationOptions("maximumSize=10", time.Second)
		require.Equal(t, `customizer.CompilationOptions(cache="maximumSize=10", expected=1s)`, c.String())
	})
}
