// Package heap implements go-script's allocator and mark-and-sweep
// garbage collector (spec.md §3.2, §4.5, §5, §6). It tracks every
// heap-eligible object (STRING, ARRAY, OBJECT) and every call-frame
// environment the evaluator registers with TrackEnv, and runs collection
// only when invited to by the evaluator's single safepoint.
package heap

import (
	"github.com/go-logr/logr"

	"go-script/value"
)

// Rootable is implemented by anything the collector can mark roots
// through: the evaluator's Environment and its operand Stack. Kept as an
// interface (rather than importing the evaluator package directly) to
// avoid a heap<->evaluator import cycle — the evaluator owns the concrete
// types and hands the heap those values (its Environments and Stack) at
// safepoint time.
type Rootable interface {
	// MarkRoots is called once per collection; it must call heap.Mark on
	// every value reachable from this root.
	MarkRoots(h *Heap)
}

// object is the heap's bookkeeping record for one allocation: the mark
// bit and a back-link so Sweep can find it. The payload itself
// (*value.String, *value.Array, *value.Object) is stored separately so
// that callers keep using ordinary Go pointers to it.
type object struct {
	marked  bool
	payload interface{}
}

// managedEnv lets the heap track registered call frames without importing
// evaluator.Environment; once MarkEnvReachable has marked it, mark walks
// it through the same Rootable interface as the top-level roots.
type managedEnv struct {
	marked bool
	env    Rootable
}

// Heap is the single interpreter instance's allocator + collector state
// (§5 "Shared-resource policy" — not safe for concurrent use without
// external synchronization).
type Heap struct {
	objects []*object
	envs    []*managedEnv

	liveThreshold int
	dueForCollect bool

	log logr.Logger

	lastReclaimedObjects int
	lastReclaimedEnvs    int
}

// New creates a heap whose collection-due flag is set once live object
// count crosses threshold (§6 "GC flag... set by the allocator when live
// usage crosses a threshold"). log may be logr.Discard() if the caller
// doesn't want GC telemetry.
func New(threshold int, log logr.Logger) *Heap {
	if threshold <= 0 {
		threshold = 1024
	}
	return &Heap{liveThreshold: threshold, log: log}
}

// AllocString allocates and tracks a heap-owned string, copying the
// promoted STRING_LITERAL bytes (§3.1 invariant, §4.5/§4.4 promotion).
func (h *Heap) AllocString(bytes string) *value.String {
	s := &value.String{Bytes: bytes}
	h.track(s)
	return s
}

// AllocArray allocates an array with the given starting capacity (§4.9:
// array literals use 2n+1; push grows arithmetically on demand).
func (h *Heap) AllocArray(capacityHint int) *value.Array {
	a := &value.Array{Elements: make([]value.Value, 0, capacityHint)}
	h.track(a)
	return a
}

// AllocObject allocates an empty object.
func (h *Heap) AllocObject() *value.Object {
	o := value.NewObject()
	h.track(o)
	return o
}

func (h *Heap) track(payload interface{}) {
	h.objects = append(h.objects, &object{payload: payload})
	if len(h.objects) >= h.liveThreshold {
		h.dueForCollect = true
	}
}

// TrackEnv registers a call-frame environment as a collection participant.
// It is not a root: it survives a collection only if MarkEnvReachable
// marks it during that collection, and is dropped otherwise.
func (h *Heap) TrackEnv(env Rootable) {
	h.envs = append(h.envs, &managedEnv{env: env})
}

// CollectionDue reports whether the allocator has signalled that
// collection should run at the next safepoint.
func (h *Heap) CollectionDue() bool { return h.dueForCollect }

// Mark marks a single value reachable, recursing into arrays/objects.
// Called by the evaluator and by Rootable.MarkRoots implementations.
func (h *Heap) Mark(v value.Value) {
	switch v.Kind {
	case value.STRING:
		h.markPayload(v.Heap)
	case value.ARRAY:
		arr := v.Heap.(*value.Array)
		if h.markPayload(arr) {
			for _, e := range arr.Elements {
				h.Mark(e)
			}
		}
	case value.OBJECT:
		obj := v.Heap.(*value.Object)
		if h.markPayload(obj) {
			for _, k := range obj.Keys() {
				fv, _ := obj.OwnField(k)
				h.Mark(fv)
			}
			if obj.Proto != nil {
				h.Mark(value.ObjectVal(obj.Proto))
			}
		}
	case value.FUNCTION:
		// Function definitions are AST-owned, not heap-tracked; nothing
		// to mark beyond the closure environment, which is marked by
		// the evaluator via TrackEnv/MarkRoots, not through the value.
	}
}

// markPayload marks the bookkeeping record for payload and returns true
// the first time it is marked (so callers only recurse once per object).
func (h *Heap) markPayload(payload interface{}) bool {
	for _, o := range h.objects {
		if o.payload == payload {
			if o.marked {
				return false
			}
			o.marked = true
			return true
		}
	}
	return false
}

// RunSafepoint is the sole collection entry point (§4.5, §5): callers —
// the assignment path — call this after every successful assignment. It
// is a no-op unless CollectionDue() is true. roots are the live
// environments and operand stack to mark from; the GC does not discover
// roots on its own.
func (h *Heap) RunSafepoint(roots ...Rootable) {
	if !h.dueForCollect {
		return
	}
	h.mark(roots)
	h.sweep()
	h.dueForCollect = false
}

func (h *Heap) mark(roots []Rootable) {
	for _, o := range h.objects {
		o.marked = false
	}
	for _, e := range h.envs {
		e.marked = false
	}
	for _, r := range roots {
		r.MarkRoots(h)
	}
	for _, e := range h.envs {
		if e.marked {
			e.env.MarkRoots(h)
		}
	}
}

// MarkEnvReachable is called by an Environment's MarkRoots when it
// discovers, via a closure value, that one of the heap's tracked escaped
// environments is still reachable.
func (h *Heap) MarkEnvReachable(env Rootable) {
	for _, e := range h.envs {
		if e.env == env {
			e.marked = true
		}
	}
}

func (h *Heap) sweep() {
	kept := h.objects[:0]
	reclaimed := 0
	for _, o := range h.objects {
		if o.marked {
			kept = append(kept, o)
		} else {
			reclaimed++
		}
	}
	h.objects = kept

	keptEnvs := h.envs[:0]
	reclaimedEnvs := 0
	for _, e := range h.envs {
		if e.marked {
			keptEnvs = append(keptEnvs, e)
		} else {
			reclaimedEnvs++
		}
	}
	h.envs = keptEnvs

	h.lastReclaimedObjects = reclaimed
	h.lastReclaimedEnvs = reclaimedEnvs
	h.log.V(1).Info("gc collection complete",
		"reclaimedObjects", reclaimed,
		"reclaimedEnvs", reclaimedEnvs,
		"liveObjects", len(h.objects),
		"liveEnvs", len(h.envs),
	)
}

// Stats returns the object/env counts reclaimed by the most recent
// collection, for tests and diagnostics.
func (h *Heap) Stats() (reclaimedObjects, reclaimedEnvs int) {
	return h.lastReclaimedObjects, h.lastReclaimedEnvs
}

// LiveObjectCount reports the number of heap objects currently tracked.
func (h *Heap) LiveObjectCount() int { return len(h.objects) }
