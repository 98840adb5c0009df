package ast

import "reflect"

// Walk calls fn once for every direct Node-valued field reachable from n
// (through structs, slices, and interfaces), giving every node its
// possibly-empty ordered child list without a hand-written Children method
// per variant.
func Walk(n Node, fn func(child Node)) {
	if n == nil || isNilNode(n) {
		return
	}
	v := reflect.ValueOf(n).Elem()
	walkFields(v, fn)
}

func isNilNode(n Node) bool {
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

func walkFields(v reflect.Value, fn func(child Node)) {
	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).Name == "Parent" {
				continue
			}
			walkFields(v.Field(i), fn)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			walkFields(v.Index(i), fn)
		}
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			return
		}
		if child, ok := v.Interface().(Node); ok {
			fn(child)
			return
		}
		walkFields(v.Elem(), fn)
	}
}

// Children returns n's direct Node children in source order.
func Children(n Node) []Node {
	var out []Node
	Walk(n, func(child Node) { out = append(out, child) })
	return out
}

// SetParents walks the tree rooted at root, assigning every reachable
// node's non-owning Parent back-reference. Called once after a successful
// parse. Rendering decisions that need upward context (e.g. the nested-if
// formatting tweak) take that context as an explicit argument instead of
// reading Parent, per the design note on avoiding true cycles; Parent
// exists for tooling that needs upward traversal after the fact.
func SetParents(root Node) {
	var walk func(n, parent Node)
	walk = func(n, parent Node) {
		if n == nil || isNilNode(n) {
			return
		}
		if parent != nil {
			n.setParent(parent)
		}
		for _, child := range Children(n) {
			walk(child, n)
		}
	}
	walk(root, nil)
}
