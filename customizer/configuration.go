package customizer

import (
	"fmt"
	"maps"
	"slices"

	"github.com/mitchellh/mapstructure"
	"github.com/robbyt/go-gremlin-compiler/compiler"
	"github.com/robbyt/go-gremlin-compiler/internal/helpers"
)

// Configuration sets compiler configuration fields by name. Keys match the
// exported field names of compiler.Configuration, case-insensitively.
// Duration fields take a duration string such as "250ms".
type Configuration struct {
	options map[string]any
}

// NewConfiguration creates a Configuration customizer from a deep copy of options.
func NewConfiguration(options map[string]any) *Configuration {
	return &Configuration{options: helpers.CloneOptions(options)}
}

// Options returns a deep copy of the keyed options.
func (c *Configuration) Options() map[string]any {
	return helpers.CloneOptions(c.options)
}

// Apply decodes the options onto cfg. Either every option is applied or,
// on error, cfg is left untouched.
func (c *Configuration) Apply(cfg *compiler.Configuration) error {
	if cfg == nil {
		return ErrConfigurationNil
	}

	next := *cfg
	next.OptimizationOptions = maps.Clone(cfg.OptimizationOptions)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused: true,
		Result:      &next,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if err := decoder.Decode(c.options); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	*cfg = next
	return nil
}

func (c *Configuration) String() string {
	return fmt.Sprintf("customizer.Configuration(%v)", slices.Sorted(maps.Keys(c.options)))
}
