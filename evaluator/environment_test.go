package evaluator

import (
	"testing"

	"github.com/go-logr/logr"

	"go-script/heap"
	"go-script/value"
)

func TestEnvironmentGet(t *testing.T) {
	env := NewGlobalEnvironment()
	env.Declare("x", value.Int(42))

	slot, ok := env.Get("x")
	if !ok {
		t.Fatal("variable 'x' should exist")
	}
	if slot.Kind != value.INT || slot.Int != 42 {
		t.Errorf("expected 42, got %v", *slot)
	}

	if _, ok := env.Get("y"); ok {
		t.Error("variable 'y' should not exist")
	}
}

func TestEnvironmentDeclareShadowsOuter(t *testing.T) {
	outer := NewGlobalEnvironment()
	outer.Declare("x", value.Int(10))

	inner := NewEnvironment(outer)
	inner.Declare("x", value.Int(20))

	innerSlot, _ := inner.Get("x")
	if innerSlot.Int != 20 {
		t.Errorf("inner scope should see its own binding, got %v", *innerSlot)
	}

	outerSlot, _ := outer.Get("x")
	if outerSlot.Int != 10 {
		t.Errorf("declaring in inner scope should not touch outer binding, got %v", *outerSlot)
	}
}

func TestEnvironmentScoping(t *testing.T) {
	outer := NewGlobalEnvironment()
	outer.Declare("x", value.Int(10))

	inner := NewEnvironment(outer)
	inner.Declare("y", value.Int(20))

	if slot, ok := inner.Get("x"); !ok || slot.Int != 10 {
		t.Error("inner scope should see outer's binding")
	}
	if slot, ok := inner.Get("y"); !ok || slot.Int != 20 {
		t.Error("inner scope should see its own binding")
	}
	if _, ok := outer.Get("y"); ok {
		t.Error("outer scope should not see inner's binding")
	}
}

func TestEnvironmentAssignSlotReusesExistingBinding(t *testing.T) {
	outer := NewGlobalEnvironment()
	outer.Declare("x", value.Int(10))

	inner := NewEnvironment(outer)
	slot := inner.AssignSlot("x")
	*slot = value.Int(20)

	outerSlot, _ := outer.Get("x")
	if outerSlot.Int != 20 {
		t.Errorf("assigning through an existing binding should update it in place, got %v", *outerSlot)
	}
}

func TestEnvironmentAssignSlotAutoDeclaresInGlobal(t *testing.T) {
	global := NewGlobalEnvironment()
	inner := NewEnvironment(global)
	innerInner := NewEnvironment(inner)

	slot := innerInner.AssignSlot("z")
	*slot = value.Int(99)

	if _, ok := inner.vars["z"]; ok {
		t.Error("auto-declare must not create a binding in an intermediate scope")
	}
	globalSlot, ok := global.Get("z")
	if !ok {
		t.Fatal("auto-declare should create the binding in the global environment")
	}
	if globalSlot.Int != 99 {
		t.Errorf("expected 99, got %v", *globalSlot)
	}
}

func TestEnvironmentMarkRootsWalksOuterChain(t *testing.T) {
	h := heap.New(1, logr.Discard())
	outer := NewGlobalEnvironment()
	reachable := h.AllocString("reachable")
	outer.Declare("s", value.StringVal(reachable))

	inner := NewEnvironment(outer)
	inner.Declare("n", value.Int(1))

	unreachable := h.AllocString("unreachable")
	_ = unreachable

	if !h.CollectionDue() {
		t.Fatal("expected a threshold of 1 to make collection due immediately")
	}
	h.RunSafepoint(inner)

	if h.LiveObjectCount() != 1 {
		t.Errorf("expected only the outer scope's string to survive via inner.MarkRoots walking the outer chain, got %d live objects", h.LiveObjectCount())
	}
}
