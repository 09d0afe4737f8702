package helpers

import (
	"log/slog"
)

// SetupLogger creates a properly configured logger for a plugin component.
// If the provided handler is nil, the handler of slog.Default() is used,
// grouped under the plugin name.
//
// Parameters:
//   - handler: The slog.Handler to use, or nil for defaults
//   - pluginName: The name of the plugin (e.g., "groovy")
//   - groupName: Optional additional group name within the plugin
//
// Returns:
//   - The configured handler
//   - A logger created from the handler
func SetupLogger(handler slog.Handler, pluginName string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.Default().Handler().WithGroup(pluginName)
	}

	var logger *slog.Logger
	if groupName != "" {
		logger = slog.New(handler.WithGroup(groupName))
	} else {
		logger = slog.New(handler)
	}

	return handler, logger
}
