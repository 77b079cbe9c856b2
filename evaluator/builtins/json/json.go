// Package json implements the JSON.stringify and JSON.parse builtins.
package json

import (
	encodingjson "encoding/json"
	"fmt"

	"go-script/heap"
	"go-script/value"
)

// Stringify converts a go-script value to a JSON string. Objects walk
// own-fields only, never the prototype chain, matching the object
// model's own read/write rules.
//
// Syntax: JSON.stringify(value)
func Stringify(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, fmt.Errorf("JSON.stringify requires exactly 1 argument")
	}

	native, err := toNative(args[0])
	if err != nil {
		return value.Value{}, err
	}

	jsonBytes, err := encodingjson.Marshal(native)
	if err != nil {
		return value.Value{}, fmt.Errorf("JSON.stringify: %w", err)
	}

	return value.StringLiteral(string(jsonBytes)), nil
}

func toNative(v value.Value) (interface{}, error) {
	switch v.Kind {
	case value.NULL, value.UNDEFINED:
		return nil, nil
	case value.BOOL:
		return v.Bool, nil
	case value.INT:
		return v.Int, nil
	case value.FLOAT:
		return v.Float, nil
	case value.STRING, value.STRING_LITERAL:
		return v.Str, nil
	case value.ARRAY:
		arr := v.Heap.(*value.Array)
		out := make([]interface{}, arr.Len())
		for i := 0; i < arr.Len(); i++ {
			elem, _ := arr.Get(i)
			native, err := toNative(elem)
			if err != nil {
				return nil, err
			}
			out[i] = native
		}
		return out, nil
	case value.OBJECT:
		obj := v.Heap.(*value.Object)
		out := make(map[string]interface{})
		for _, k := range obj.Keys() {
			fv, _ := obj.OwnField(k)
			native, err := toNative(fv)
			if err != nil {
				return nil, err
			}
			out[k] = native
		}
		return out, nil
	default:
		return nil, fmt.Errorf("JSON.stringify: cannot serialize a function value")
	}
}

// NewParse builds JSON.parse bound to h, the allocator that owns every
// string, array, and object the parsed structure allocates.
//
// Syntax: JSON.parse(jsonString)
func NewParse(h *heap.Heap) func(args []value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return value.Value{}, fmt.Errorf("JSON.parse requires exactly 1 argument")
		}
		if args[0].Kind != value.STRING && args[0].Kind != value.STRING_LITERAL {
			return value.Value{}, fmt.Errorf("JSON.parse requires a string argument, got %s", args[0].Kind)
		}

		var decoded interface{}
		if err := encodingjson.Unmarshal([]byte(args[0].Str), &decoded); err != nil {
			return value.Value{}, fmt.Errorf("JSON.parse: %w", err)
		}
		return fromNative(h, decoded), nil
	}
}

// fromNative allocates a go-script value for each node of a decoded
// JSON document. Numbers that round-trip through int64 become INT; every
// other number becomes FLOAT.
func fromNative(h *heap.Heap, v interface{}) value.Value {
	switch x := v.(type) {
	case nil:
		return value.Null()
	case bool:
		return value.Bool_(x)
	case float64:
		if i := int64(x); float64(i) == x {
			return value.Int(i)
		}
		return value.Float(x)
	case string:
		return value.StringVal(h.AllocString(x))
	case []interface{}:
		arr := h.AllocArray(len(x))
		for _, e := range x {
			arr.Push(fromNative(h, e))
		}
		return value.ArrayVal(arr)
	case map[string]interface{}:
		obj := h.AllocObject()
		for k, e := range x {
			obj.SetOwnField(k, fromNative(h, e))
		}
		return value.ObjectVal(obj)
	default:
		return value.Undefined()
	}
}
