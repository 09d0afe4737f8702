package plugin

import (
	"fmt"
	"strings"
)

// Compilation selects the static analysis applied to scripts. The modes are
// mutually exclusive.
type Compilation string

const (
	// CompilationNone applies no static analysis.
	CompilationNone Compilation = "NONE"

	// CompilationCompileStatic compiles scripts statically, which implies
	// type checking.
	CompilationCompileStatic Compilation = "COMPILE_STATIC"

	// CompilationTypeChecked type checks scripts but compiles them dynamically.
	CompilationTypeChecked Compilation = "TYPE_CHECKED"
)

func (c Compilation) String() string {
	return string(c)
}

// ParseCompilation returns the Compilation named by s, ignoring case.
// An empty string is CompilationNone.
func ParseCompilation(s string) (Compilation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(CompilationNone):
		return CompilationNone, nil
	case string(CompilationCompileStatic):
		return CompilationCompileStatic, nil
	case string(CompilationTypeChecked):
		return CompilationTypeChecked, nil
	default:
		return CompilationNone, fmt.Errorf("%w: %q", ErrUnknownCompilation, s)
	}
}
