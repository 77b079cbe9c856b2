package evaluator

import (
	"go-script/heap"
	"go-script/value"
)

// Environment is a lexical scope frame (spec.md §3.3): a name-to-slot
// map plus a link to the enclosing scope. Slots are pointers so a
// LeftValue handle obtained from getLeftValue keeps observing in-place
// writes made through a different reference to the same binding.
type Environment struct {
	vars   map[string]*value.Value
	outer  *Environment
	global *Environment
}

// NewGlobalEnvironment creates the root scope: its own global.
func NewGlobalEnvironment() *Environment {
	e := &Environment{vars: make(map[string]*value.Value)}
	e.global = e
	return e
}

// NewEnvironment creates a child scope of outer. Every block, loop
// iteration, and function call gets its own frame; none of them ever
// mutate outer's bindings directly.
func NewEnvironment(outer *Environment) *Environment {
	e := &Environment{vars: make(map[string]*value.Value), outer: outer}
	if outer != nil {
		e.global = outer.global
	} else {
		e.global = e
	}
	return e
}

// Get walks the scope chain innermost-first and returns the slot for
// name, or false if no frame declares it.
func (e *Environment) Get(name string) (*value.Value, bool) {
	for cur := e; cur != nil; cur = cur.outer {
		if slot, ok := cur.vars[name]; ok {
			return slot, true
		}
	}
	return nil, false
}

// Declare creates name in this exact frame, shadowing any outer
// binding of the same name for the lifetime of this scope.
func (e *Environment) Declare(name string, v value.Value) *value.Value {
	slot := new(value.Value)
	*slot = v
	e.vars[name] = slot
	return slot
}

// AssignSlot implements the auto-declare rule plain assignment follows
// (spec.md §3.3, §4.4): if name is bound anywhere in the chain its slot
// is returned as-is; otherwise a fresh UNDEFINED slot is created in the
// global environment, never in the current scope.
func (e *Environment) AssignSlot(name string) *value.Value {
	if slot, ok := e.Get(name); ok {
		return slot
	}
	return e.global.Declare(name, value.Undefined())
}

// MarkRoots implements heap.Rootable: every binding in this frame and
// every enclosing (outer) frame, plus the captured environment of any
// FUNCTION value found along the way.
func (e *Environment) MarkRoots(h *heap.Heap) {
	for cur := e; cur != nil; cur = cur.outer {
		for _, slot := range cur.vars {
			h.Mark(*slot)
			if slot.Kind == value.FUNCTION {
				if fn, ok := slot.Heap.(*value.Function); ok {
					if capEnv, ok := fn.CapturedEnv.(*Environment); ok && capEnv != nil {
						h.MarkEnvReachable(capEnv)
					}
				}
			}
		}
	}
}
