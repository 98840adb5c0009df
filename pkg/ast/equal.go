package ast

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Equal reports whether a and b are structurally identical: the same kind
// and every semantic attribute, compared recursively. Parent/children
// bookkeeping is excluded, matching the spec's equal(other) contract. This
// backs the round-trip and brace/indented-equivalence testable properties.
func Equal(a, b Node) bool {
	// Every node embeds the unexported base struct, which cmp refuses to
	// descend into unless an Exporter allows it.
	return cmp.Equal(a, b,
		cmp.FilterPath(isParentField, cmp.Ignore()),
		cmp.Exporter(func(reflect.Type) bool { return true }))
}

func isParentField(p cmp.Path) bool {
	step, ok := p.Last().(cmp.StructField)
	return ok && step.Name() == "Parent"
}
