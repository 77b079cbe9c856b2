// Package value implements the tagged-union runtime value of go-script:
// the dynamically typed values that flow through the operand stack,
// environment slots, array elements, and object fields.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the tag of a Value. Every Value carries exactly one.
type Kind int

const (
	NULL Kind = iota
	UNDEFINED
	BOOL
	INT
	FLOAT
	STRING_LITERAL
	STRING
	ARRAY
	OBJECT
	FUNCTION
)

func (k Kind) String() string {
	switch k {
	case NULL:
		return "null"
	case UNDEFINED:
		return "undefined"
	case BOOL:
		return "bool"
	case INT:
		return "int"
	case FLOAT:
		return "float"
	case STRING_LITERAL:
		return "string_literal"
	case STRING:
		return "string"
	case ARRAY:
		return "array"
	case OBJECT:
		return "object"
	case FUNCTION:
		return "function"
	}
	return "unknown"
}

// Value is the tagged union described in spec.md §3.1. Only the field
// matching Kind is meaningful; a Value is copied by value everywhere it
// crosses the operand stack, an assignment, or an array/object store —
// it never aliases the stack slot it was popped from.
type Value struct {
	Kind Kind

	Bool  bool
	Int   int64
	Float float64

	// Str holds either the borrowed STRING_LITERAL bytes (never owned,
	// never GC-managed) or, when Kind == STRING, the same bytes now owned
	// by the heap string referenced through Heap below.
	Str string

	// Heap is non-nil for STRING, ARRAY, OBJECT, and FUNCTION: the
	// payload. Its concrete type is *String, *Array, *Object, or *Function
	// respectively; the first three are allocator-tracked, a *Function is
	// not.
	Heap interface{}
}

func Null() Value      { return Value{Kind: NULL} }
func Undefined() Value { return Value{Kind: UNDEFINED} }
func Bool_(b bool) Value {
	return Value{Kind: BOOL, Bool: b}
}
func Int(i int64) Value     { return Value{Kind: INT, Int: i} }
func Float(f float64) Value { return Value{Kind: FLOAT, Float: f} }

// StringLiteral wraps a zero-copy borrow into the AST text. It must never
// be stored into a variable slot, array element, or object field without
// promotion to String first (see NeedsPromotion).
func StringLiteral(s string) Value {
	return Value{Kind: STRING_LITERAL, Str: s}
}

// String is a heap-owned string value.
type String struct {
	Bytes string
}

func StringVal(s *String) Value {
	return Value{Kind: STRING, Str: s.Bytes, Heap: s}
}

// Array is the heap-owned array payload. Capacity tracking is left to the
// backing Go slice's cap(); growth follows the "arithmetic-then-copy"
// amortized doubling spec.md §3.2 calls for, applied explicitly in Push
// rather than relying on append's own growth policy, so the observable
// capacity behavior matches the array-literal margin of §4.9.
type Array struct {
	Elements []Value
}

func (a *Array) Len() int { return len(a.Elements) }

func (a *Array) Get(i int) (Value, bool) {
	if i < 0 || i >= len(a.Elements) {
		return Value{}, false
	}
	return a.Elements[i], true
}

func (a *Array) Set(i int, v Value) bool {
	if i < 0 || i >= len(a.Elements) {
		return false
	}
	a.Elements[i] = v
	return true
}

// Push grows capacity (reallocate-and-copy) if necessary, then appends.
func (a *Array) Push(vs ...Value) int {
	needed := len(a.Elements) + len(vs)
	if needed > cap(a.Elements) {
		grown := make([]Value, len(a.Elements), needed*2+1)
		copy(grown, a.Elements)
		a.Elements = grown
	}
	a.Elements = append(a.Elements, vs...)
	return len(a.Elements)
}

// Pop removes and returns the last element, or (NULL, false) if empty.
func (a *Array) Pop() (Value, bool) {
	if len(a.Elements) == 0 {
		return Value{}, false
	}
	last := a.Elements[len(a.Elements)-1]
	a.Elements = a.Elements[:len(a.Elements)-1]
	return last, true
}

func ArrayVal(a *Array) Value {
	return Value{Kind: ARRAY, Heap: a}
}

// Object is the heap-owned object payload: an own-field list plus an
// optional prototype link. Own-fields are kept in insertion order, which
// Keys() and String() report.
type Object struct {
	keys   []string
	fields map[string]Value
	Proto  *Object
}

func NewObject() *Object {
	return &Object{fields: make(map[string]Value)}
}

// OwnField returns the object's own field, never consulting the
// prototype chain — used by the left-value resolver (§4.4) and by
// assignment, which must only ever shadow via own-properties.
func (o *Object) OwnField(name string) (Value, bool) {
	v, ok := o.fields[name]
	return v, ok
}

// SetOwnField creates-or-updates an own field.
func (o *Object) SetOwnField(name string, v Value) {
	if _, exists := o.fields[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.fields[name] = v
}

// Keys returns own-field names in insertion order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// FieldIncludingPrototype implements
// search_field_from_object_include_prototype (§4.10): own fields first,
// then walk the prototype chain.
func (o *Object) FieldIncludingPrototype(name string) (Value, bool) {
	for cur := o; cur != nil; cur = cur.Proto {
		if v, ok := cur.fields[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

func ObjectVal(o *Object) Value {
	return Value{Kind: OBJECT, Heap: o}
}

// FunctionKind distinguishes user-defined from native (builtin) functions.
type FunctionKind int

const (
	FUNCTION_KIND_USER FunctionKind = iota
	FUNCTION_KIND_BUILTIN
)

// Function is the shared definition referenced by a FUNCTION value
// (§3.4): a parameter list and body for user functions, or a native
// trampoline for builtins. CapturedEnv is a weak reference — a lookup
// path for closures, not a lifetime anchor (§3.1 invariant); its type is
// `interface{}` here to avoid an import cycle with the evaluator package,
// which defines the concrete Environment type.
type Function struct {
	Kind       FunctionKind
	Name       string
	Parameters []string
	Body       interface{} // *ast.BlockStatement for user functions
	CapturedEnv interface{}

	// Native is the trampoline for FUNCTION_KIND_BUILTIN. It receives the
	// fully evaluated argument values and returns a single result value
	// or an error.
	Native func(args []Value) (Value, error)
}

func FunctionVal(f *Function) Value {
	return Value{Kind: FUNCTION, Heap: f}
}

// NeedsPromotion reports whether v is a STRING_LITERAL, which must be
// promoted to a heap STRING before it is stored into a variable slot,
// object field, or array element. It only decides; the heap allocation is
// performed by the caller (which owns the *heap.Heap).
func (v Value) NeedsPromotion() bool {
	return v.Kind == STRING_LITERAL
}

// IsTruthy implements §4.7/§4.8's boolean coercion.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case NULL, UNDEFINED:
		return false
	case BOOL:
		return v.Bool
	case INT:
		return v.Int != 0
	case FLOAT:
		return v.Float != 0
	case STRING, STRING_LITERAL:
		return v.Str != ""
	default:
		return true
	}
}

func (v Value) numeric() (float64, bool) {
	switch v.Kind {
	case INT:
		return float64(v.Int), true
	case FLOAT:
		return v.Float, true
	case BOOL:
		if v.Bool {
			return 1, false
		}
		return 0, false
	default:
		return 0, false
	}
}

func (v Value) isInt() bool { return v.Kind == INT }

func bothInt(a, b Value) bool { return a.isInt() && b.isInt() }

// String renders a value for print()/string concatenation, matching the
// teacher's internal.ToString formatting rules (integers without a
// trailing ".0", booleans as "true"/"false", arrays/objects bracketed).
func (v Value) String() string {
	switch v.Kind {
	case NULL:
		return "null"
	case UNDEFINED:
		return "undefined"
	case BOOL:
		if v.Bool {
			return "true"
		}
		return "false"
	case INT:
		return strconv.FormatInt(v.Int, 10)
	case FLOAT:
		if v.Float == float64(int64(v.Float)) {
			return fmt.Sprintf("%d", int64(v.Float))
		}
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case STRING, STRING_LITERAL:
		return v.Str
	case ARRAY:
		arr := v.Heap.(*Array)
		parts := make([]string, len(arr.Elements))
		for i, e := range arr.Elements {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case OBJECT:
		obj := v.Heap.(*Object)
		parts := make([]string, 0, len(obj.keys))
		for _, k := range obj.keys {
			parts = append(parts, k+": "+obj.fields[k].String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case FUNCTION:
		return "function"
	}
	return "?"
}
