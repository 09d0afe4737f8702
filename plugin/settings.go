package plugin

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a settings document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Settings is the keyed form of the builder, as found in a host's
// configuration file. Keys are the builder method names; durations are
// given in milliseconds. Nil fields were not present in the source.
type Settings struct {
	Compilation                  string         `mapstructure:"compilation"`
	CompilerConfigurationOptions map[string]any `mapstructure:"compilerConfigurationOptions"`
	EnableInterpreterMode        *bool          `mapstructure:"enableInterpreterMode"`
	EnableThreadInterrupt        *bool          `mapstructure:"enableThreadInterrupt"`
	TimedInterrupt               *int64         `mapstructure:"timedInterrupt"`
	ClassMapCacheSpecification   *string        `mapstructure:"classMapCacheSpecification"`
	ExpectedCompilationTime      *int64         `mapstructure:"expectedCompilationTime"`
	Extensions                   *string        `mapstructure:"extensions"`
}

// Builder returns a Builder carrying the settings that were present.
func (s *Settings) Builder() (*Builder, error) {
	mode, err := ParseCompilation(s.Compilation)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	b := NewBuilder().Compilation(mode)
	if len(s.CompilerConfigurationOptions) > 0 {
		b.CompilerConfigurationOptions(s.CompilerConfigurationOptions)
	}
	if s.EnableInterpreterMode != nil {
		b.EnableInterpreterMode(*s.EnableInterpreterMode)
	}
	if s.EnableThreadInterrupt != nil {
		b.EnableThreadInterrupt(*s.EnableThreadInterrupt)
	}
	if s.TimedInterrupt != nil {
		timeout, err := millisToDuration("timedInterrupt", *s.TimedInterrupt)
		if err != nil {
			return nil, err
		}
		b.TimedInterrupt(timeout)
	}
	if s.ClassMapCacheSpecification != nil {
		b.ClassMapCacheSpecification(*s.ClassMapCacheSpecification)
	}
	if s.ExpectedCompilationTime != nil {
		expected, err := millisToDuration("expectedCompilationTime", *s.ExpectedCompilationTime)
		if err != nil {
			return nil, err
		}
		b.ExpectedCompilationTime(expected)
	}
	if s.Extensions != nil {
		b.Extensions(*s.Extensions)
	}
	return b, nil
}

// maxDurationMillis is the largest millisecond count a time.Duration can hold.
const maxDurationMillis = math.MaxInt64 / int64(time.Millisecond)

func millisToDuration(key string, ms int64) (time.Duration, error) {
	if ms < 0 || ms > maxDurationMillis {
		return 0, fmt.Errorf("%w: %s must be between 0 and %d milliseconds, got %d",
			ErrInvalidSettings, key, maxDurationMillis, ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// FromMap decodes keyed settings into a Builder. Unknown keys are rejected.
func FromMap(raw map[string]any) (*Builder, error) {
	var s Settings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &s,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return s.Builder()
}

// Load reads a settings document in the given format.
func Load(r io.Reader, format Format) (*Builder, error) {
	if r == nil {
		return nil, ErrSettingsNil
	}

	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var raw map[string]any
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(source, &raw)
	case FormatTOML:
		err = toml.Unmarshal(source, &raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidSettings, format, err)
	}

	return FromMap(raw)
}

// LoadFile reads a settings file, choosing the format from its extension.
func LoadFile(path string) (*Builder, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".toml":
		format = FormatTOML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Load(f, format)
}
