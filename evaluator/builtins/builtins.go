// Package builtins wires the standard library of go-script functions
// into an interpreter's global environment. Every builtin is declared
// as an ordinary FUNCTION value of kind FUNCTION_KIND_BUILTIN, so the
// call machinery in the evaluator package dispatches them through
// exactly the same path as user-defined functions — there is no
// separate bare-identifier builtin lookup.
package builtins

import (
	"fmt"

	"go-script/evaluator"
	"go-script/evaluator/builtins/fetch"
	"go-script/evaluator/builtins/json"
	"go-script/evaluator/builtins/print"
	"go-script/heap"
	"go-script/value"
)

// Register declares every builtin in env, the environment an
// interpreter treats as global. h is the allocator backing any
// builtin whose result must live on the heap (JSON.parse, fetch).
func Register(env *evaluator.Environment, h *heap.Heap) {
	env.Declare("print", nativeFunction("print", print.Print))
	env.Declare("len", nativeFunction("len", lenBuiltin))
	env.Declare("fetch", nativeFunction("fetch", fetch.NewFetch(h)))

	jsonNamespace := h.AllocObject()
	jsonNamespace.SetOwnField("stringify", nativeFunction("stringify", json.Stringify))
	jsonNamespace.SetOwnField("parse", nativeFunction("parse", json.NewParse(h)))
	env.Declare("JSON", value.ObjectVal(jsonNamespace))
}

func nativeFunction(name string, fn func(args []value.Value) (value.Value, error)) value.Value {
	return value.FunctionVal(&value.Function{
		Kind:   value.FUNCTION_KIND_BUILTIN,
		Name:   name,
		Native: fn,
	})
}

// lenBuiltin reports the size of a string, array, or object (own-field
// count only, matching every other own-fields-only view of objects).
//
// Syntax: len(x)
func lenBuiltin(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, fmt.Errorf("len requires exactly 1 argument")
	}

	switch args[0].Kind {
	case value.STRING, value.STRING_LITERAL:
		return value.Int(int64(len(args[0].Str))), nil
	case value.ARRAY:
		return value.Int(int64(args[0].Heap.(*value.Array).Len())), nil
	case value.OBJECT:
		return value.Int(int64(len(args[0].Heap.(*value.Object).Keys()))), nil
	default:
		return value.Value{}, fmt.Errorf("len: unsupported type %s", args[0].Kind)
	}
}
