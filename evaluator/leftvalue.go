package evaluator

import (
	"go-script/ast"
	"go-script/rterror"
	"go-script/value"
)

// LeftValue is a resolved assignable location (spec.md §4.4): an
// environment slot, an array element, or an object field. Handles are
// short-lived — obtained, used, and discarded within a single
// assignment — never retained across statements.
type LeftValue interface {
	Get() value.Value
	Set(v value.Value)
}

type envSlot struct{ slot *value.Value }

func (s envSlot) Get() value.Value  { return *s.slot }
func (s envSlot) Set(v value.Value) { *s.slot = v }

type arrayElem struct {
	arr   *value.Array
	index int
}

func (a arrayElem) Get() value.Value {
	v, _ := a.arr.Get(a.index)
	return v
}
func (a arrayElem) Set(v value.Value) { a.arr.Set(a.index, v) }

type objectField struct {
	obj  *value.Object
	name string
}

func (f objectField) Get() value.Value {
	v, _ := f.obj.OwnField(f.name)
	return v
}
func (f objectField) Set(v value.Value) { f.obj.SetOwnField(f.name, v) }

// getLeftValue resolves expr to an assignable location (spec.md §4.4).
// Identifiers auto-declare into the global environment on first write;
// index and property targets resolve against an already-evaluated base
// value and never auto-create an array, only an object field.
func (ev *Evaluator) getLeftValue(env *Environment, expr ast.Expression) (LeftValue, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return envSlot{slot: env.AssignSlot(e.Name)}, nil

	case *ast.IndexExpression:
		base, err := ev.Eval(env, e.Left)
		if err != nil {
			return nil, err
		}
		ev.Stack.Pop()

		idx, err := ev.Eval(env, e.Index)
		if err != nil {
			return nil, err
		}
		ev.Stack.Pop()

		return ev.leftValueForIndex(base, idx, e.Line)

	case *ast.PropertyAccess:
		base, err := ev.Eval(env, e.Object)
		if err != nil {
			return nil, err
		}
		ev.Stack.Pop()

		return ev.leftValueForField(base, e.Property, e.Line)

	default:
		return nil, rterror.New(rterror.CanNotUseThisAsLeftValue, "", lineOf(expr))
	}
}

// getLeftValueForIncrementDecrement is stricter than getLeftValue for
// a bare identifier operand: spec.md §4.8 requires ++/-- to fail with
// VARIABLE_NOT_FOUND rather than silently auto-declaring, unlike plain
// assignment.
func (ev *Evaluator) getLeftValueForIncrementDecrement(env *Environment, expr ast.Expression) (LeftValue, error) {
	if ident, ok := expr.(*ast.Identifier); ok {
		slot, ok := env.Get(ident.Name)
		if !ok {
			return nil, rterror.New(rterror.VariableNotFound, ident.Name, ident.Line)
		}
		return envSlot{slot: slot}, nil
	}
	return ev.getLeftValue(env, expr)
}

func (ev *Evaluator) leftValueForIndex(base, idx value.Value, line int) (LeftValue, error) {
	switch base.Kind {
	case value.ARRAY:
		arr := base.Heap.(*value.Array)
		if idx.Kind != value.INT {
			return nil, rterror.New(rterror.IndexHasWrongType, "array index must be an integer", line)
		}
		i := int(idx.Int)
		if i < 0 || i >= arr.Len() {
			return nil, rterror.New(rterror.IndexOutOfRange, "", line)
		}
		return arrayElem{arr: arr, index: i}, nil

	case value.OBJECT:
		obj := base.Heap.(*value.Object)
		name, err := fieldNameOf(idx, line)
		if err != nil {
			return nil, err
		}
		return objectField{obj: obj, name: name}, nil

	default:
		return nil, rterror.New(rterror.CannotIndexThisType, "", line)
	}
}

func (ev *Evaluator) leftValueForField(base value.Value, name string, line int) (LeftValue, error) {
	switch base.Kind {
	case value.OBJECT:
		return objectField{obj: base.Heap.(*value.Object), name: name}, nil
	case value.ARRAY:
		return nil, rterror.New(rterror.IndexHasWrongType, "dot-property assignment on an array", line)
	default:
		return nil, rterror.New(rterror.CannotIndexThisType, "", line)
	}
}

// fieldNameOf resolves a computed key value (from `obj[key]`) to a
// field name: only strings are valid keys.
func fieldNameOf(key value.Value, line int) (string, error) {
	switch key.Kind {
	case value.STRING, value.STRING_LITERAL:
		return key.Str, nil
	default:
		return "", rterror.New(rterror.IndexHasWrongType, "object key must be a string", line)
	}
}

// lineOf extracts the source line from whichever expression node
// carries one, for error reporting when a node can't be resolved to a
// left-value.
func lineOf(expr ast.Expression) int {
	switch e := expr.(type) {
	case *ast.Identifier:
		return e.Line
	case *ast.IndexExpression:
		return e.Line
	case *ast.PropertyAccess:
		return e.Line
	case *ast.CallExpression:
		return e.Line
	case *ast.MethodCallExpression:
		return e.Line
	}
	return 0
}
