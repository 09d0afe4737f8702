package helpers

import (
	"github.com/huandu/go-clone"
)

// CloneOptions returns a deep copy of a keyed option map, including nested
// maps and slices, so the copy shares no mutable state with the original.
func CloneOptions(options map[string]any) map[string]any {
	if options == nil {
		return nil
	}
	return clone.Clone(options).(map[string]any)
}
