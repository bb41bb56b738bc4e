package registry

import (
	"fmt"
	"strings"
)

// Name builds the canonical symbolic name for an indexed variable, e.g.
// Name("G_pv", "plantA", 17) -> "G_pv[plantA,17]". All packages that
// declare or look up indexed variables go through this helper so that
// declaration and lookup sites can never drift apart on formatting.
func Name(base string, idx ...interface{}) string {
	if len(idx) == 0 {
		return base
	}
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return base + "[" + strings.Join(parts, ",") + "]"
}
