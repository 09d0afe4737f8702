package customizer

import (
	"testing"
	"time"

	"github.com/robbyt/go-gremlin-compiler/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAnalysisCustomizers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		customizer Customizer
		transform  string
		params     map[string]any
	}{
		{
			name:       "compile static",
			customizer: NewCompileStatic(""),
			transform:  TransformCompileStatic,
		},
		{
			name:       "type checked",
			customizer: NewTypeChecked(""),
			transform:  TransformTypeChecked,
		},
		{
			name:       "compile static with extensions",
			customizer: NewCompileStatic("a.groovy, b.groovy"),
			transform:  TransformCompileStatic,
			params:     map[string]any{"extensions": []string{"a.groovy", "b.groovy"}},
		},
		{
			name:       "type checked ignores blank extensions",
			customizer: NewTypeChecked(" , ext.groovy,"),
			transform:  TransformTypeChecked,
			params:     map[string]any{"extensions": []string{"ext.groovy"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := compiler.NewConfiguration()

			require.NoError(t, tt.customizer.Apply(cfg))
			got, ok := cfg.Transformation(tt.transform)
			require.True(t, ok)
			require.Equal(t, tt.params, got.Params)

			// a second application does not stack the transformation
			require.NoError(t, tt.customizer.Apply(cfg))
			require.Len(t, cfg.Transformations, 1)

			require.ErrorIs(t, tt.customizer.Apply(nil), ErrConfigurationNil)
		})
	}

	t.Run("accessors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "x.groovy", NewCompileStatic("x.groovy").Extensions())
		assert.Equal(t, "y.groovy", NewTypeChecked("y.groovy").Extensions())
	})
}

func TestFlagCustomizers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		enabled   Customizer
		disabled  Customizer
		transform string
	}{
		{
			name:      "interpreter mode",
			enabled:   NewInterpreterMode(true),
			disabled:  NewInterpreterMode(false),
			transform: TransformInterpreterMode,
		},
		{
			name:      "thread interrupt",
			enabled:   NewThreadInterrupt(true),
			disabled:  NewThreadInterrupt(false),
			transform: TransformThreadInterrupt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			t.Run("enabled", func(t *testing.T) {
				cfg := compiler.NewConfiguration()
				require.NoError(t, tt.enabled.Apply(cfg))
				require.NoError(t, tt.enabled.Apply(cfg))
				require.True(t, cfg.HasTransformation(tt.transform))
				require.Len(t, cfg.Transformations, 1)
			})

			t.Run("disabled", func(t *testing.T) {
				cfg := compiler.NewConfiguration()
				require.NoError(t, tt.disabled.Apply(cfg))
				require.Empty(t, cfg.Transformations)
			})

			t.Run("nil configuration", func(t *testing.T) {
				require.ErrorIs(t, tt.enabled.Apply(nil), ErrConfigurationNil)
				require.ErrorIs(t, tt.disabled.Apply(nil), ErrConfigurationNil)
			})
		})
	}

	t.Run("accessors", func(t *testing.T) {
		t.Parallel()
		assert.True(t, NewInterpreterMode(true).Enabled())
		assert.False(t, NewThreadInterrupt(false).Enabled())
		assert.Equal(t, "customizer.InterpreterMode(true)", NewInterpreterMode(true).String())
		assert.Equal(t, "customizer.ThreadInterrupt(false)", NewThreadInterrupt(false).String())
	})
}

func TestTimedInterrupt(t *testing.T) {
	t.Parallel()

	t.Run("records timeout in milliseconds", func(t *testing.T) {
		c := NewTimedInterrupt(60 * time.Second)
		require.Equal(t, 60*time.Second, c.Timeout())
		require.Equal(t, int64(60000), c.Milliseconds())

		cfg := compiler.NewConfiguration()
		require.NoError(t, c.Apply(cfg))

		got, ok := cfg.Transformation(TransformTimedInterrupt)
		require.True(t, ok)
		require.Equal(t, map[string]any{
			"value": int64(60000),
			"unit":  TimeUnitMilliseconds,
		}, got.Params)
	})

	t.Run("later timeout replaces earlier", func(t *testing.T) {
		cfg := compiler.NewConfiguration()
		require.NoError(t, NewTimedInterrupt(time.Second).Apply(cfg))
		require.NoError(t, NewTimedInterrupt(2*time.Second).Apply(cfg))

		require.Len(t, cfg.Transformations, 1)
		require.Equal(t, int64(2000), cfg.Transformations[0].Params["value"])
	})

	t.Run("non-positive timeout fails at apply time", func(t *testing.T) {
		for _, timeout := range []time.Duration{0, -time.Second} {
			cfg := compiler.NewConfiguration()
			err := NewTimedInterrupt(timeout).Apply(cfg)
			require.ErrorIs(t, err, ErrInvalidTimeout)
			require.Empty(t, cfg.Transformations)
		}
	})

	t.Run("nil configuration", func(t *testing.T) {
		require.ErrorIs(t, NewTimedInterrupt(time.Second).Apply(nil), ErrConfigurationNil)
	})

	t.Run("string", func(t *testing.T) {
		require.Equal(t, "customizer.TimedInterrupt(1m0s)", NewTimedInterrupt(time.Minute).String())
	})
}
