package typeexpr

import (
	"testing"
)

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"int", "[]tuple(bool, [2]uint16)", "map[string][]int", "tuple()",
		"[65536][65536]bool", "[65536][65536][65536][65536]int64",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, expr string) {
		typ, err := Parse(expr)
		if err == nil && typ == nil {
			t.Fatalf("Parse(%q) returned neither a type nor an error", expr)
		}
	})
}
