package value

// This file holds the value-arithmetic primitives spec.md §1 calls out as
// external collaborators the evaluator "must not re-implement": add, sub,
// mul, div, mod, negate, equal, greater, greater_or_equal, increment_or_decrement.
// The evaluator's arithmetic/relational drivers (package evaluator) only
// decide operand order and dispatch; the actual operation lives here.

// Add implements js_value_add: numeric addition when both sides are
// numeric, string concatenation as soon as either side is a string.
func Add(left, right Value) Value {
	if left.Kind == STRING || left.Kind == STRING_LITERAL ||
		right.Kind == STRING || right.Kind == STRING_LITERAL {
		return StringLiteral(left.String() + right.String())
	}
	if bothInt(left, right) {
		return Int(left.Int + right.Int)
	}
	lf, _ := left.numeric()
	rf, _ := right.numeric()
	return Float(lf + rf)
}

func Sub(left, right Value) Value {
	if bothInt(left, right) {
		return Int(left.Int - right.Int)
	}
	lf, _ := left.numeric()
	rf, _ := right.numeric()
	return Float(lf - rf)
}

func Mul(left, right Value) Value {
	if bothInt(left, right) {
		return Int(left.Int * right.Int)
	}
	lf, _ := left.numeric()
	rf, _ := right.numeric()
	return Float(lf * rf)
}

func Div(left, right Value) Value {
	if bothInt(left, right) && right.Int != 0 && left.Int%right.Int == 0 {
		return Int(left.Int / right.Int)
	}
	lf, _ := left.numeric()
	rf, _ := right.numeric()
	if rf == 0 {
		return Float(0)
	}
	return Float(lf / rf)
}

func Mod(left, right Value) Value {
	if bothInt(left, right) {
		if right.Int == 0 {
			return Int(0)
		}
		return Int(left.Int % right.Int)
	}
	lf, _ := left.numeric()
	rf, _ := right.numeric()
	if rf == 0 {
		return Float(0)
	}
	return Float(float64(int64(lf) % int64(rf)))
}

// Negate implements js_negative (unary -).
func Negate(v Value) Value {
	if v.isInt() {
		return Int(-v.Int)
	}
	f, _ := v.numeric()
	return Float(-f)
}

// Equal implements js_value_equal: same-kind comparison with numeric
// cross-comparison between INT and FLOAT.
func Equal(left, right Value) bool {
	if (left.Kind == STRING || left.Kind == STRING_LITERAL) &&
		(right.Kind == STRING || right.Kind == STRING_LITERAL) {
		return left.Str == right.Str
	}
	if left.Kind == BOOL && right.Kind == BOOL {
		return left.Bool == right.Bool
	}
	if (left.Kind == INT || left.Kind == FLOAT) && (right.Kind == INT || right.Kind == FLOAT) {
		lf, _ := left.numeric()
		rf, _ := right.numeric()
		return lf == rf
	}
	if left.Kind == NULL && right.Kind == NULL {
		return true
	}
	if left.Kind == UNDEFINED && right.Kind == UNDEFINED {
		return true
	}
	if left.Kind == ARRAY && right.Kind == ARRAY {
		return left.Heap == right.Heap
	}
	if left.Kind == OBJECT && right.Kind == OBJECT {
		return left.Heap == right.Heap
	}
	return false
}

// Greater implements js_value_greater (strict >).
func Greater(left, right Value) bool {
	if (left.Kind == STRING || left.Kind == STRING_LITERAL) &&
		(right.Kind == STRING || right.Kind == STRING_LITERAL) {
		return left.Str > right.Str
	}
	lf, _ := left.numeric()
	rf, _ := right.numeric()
	return lf > rf
}

// GreaterOrEqual implements js_value_greater_or_equal (>=).
func GreaterOrEqual(left, right Value) bool {
	if (left.Kind == STRING || left.Kind == STRING_LITERAL) &&
		(right.Kind == STRING || right.Kind == STRING_LITERAL) {
		return left.Str >= right.Str
	}
	lf, _ := left.numeric()
	rf, _ := right.numeric()
	return lf >= rf
}

// ReverseBool implements js_reverse_bool.
func ReverseBool(b bool) bool { return !b }

// IncrementOrDecrement implements increment_or_decrement(slot, sign):
// sign > 0 for ++, sign < 0 for --. INT stays INT; anything else is
// coerced through the numeric() path and becomes FLOAT, matching the
// original's JsValue arithmetic which only special-cases int+int.
func IncrementOrDecrement(v Value, sign int) Value {
	if v.isInt() {
		return Int(v.Int + int64(sign))
	}
	f, _ := v.numeric()
	return Float(f + float64(sign))
}
