package plugin

import "errors"

var (
	ErrUnknownCompilation = errors.New("unknown compilation mode")
	ErrInvalidSettings    = errors.New("invalid plugin settings")
	ErrUnsupportedFormat  = errors.New("unsupported settings format")
	ErrSettingsNil        = errors.New("settings reader is nil")
)
