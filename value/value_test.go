package value

import "testing"

func TestArrayPushGrowsAndPop(t *testing.T) {
	arr := &Array{}
	arr.Push(Int(1), Int(2), Int(3))

	if arr.Len() != 3 {
		t.Fatalf("expected length 3, got %d", arr.Len())
	}

	v, ok := arr.Get(1)
	if !ok || v.Int != 2 {
		t.Errorf("expected element 1 to be 2, got %v", v)
	}

	last, ok := arr.Pop()
	if !ok || last.Int != 3 {
		t.Errorf("expected to pop 3, got %v", last)
	}
	if arr.Len() != 2 {
		t.Errorf("expected length 2 after pop, got %d", arr.Len())
	}
}

func TestArrayGetOutOfRange(t *testing.T) {
	arr := &Array{}
	arr.Push(Int(1))

	if _, ok := arr.Get(-1); ok {
		t.Error("expected Get(-1) to fail")
	}
	if _, ok := arr.Get(5); ok {
		t.Error("expected Get(5) to fail")
	}
}

func TestArrayPopEmpty(t *testing.T) {
	arr := &Array{}
	if _, ok := arr.Pop(); ok {
		t.Error("expected Pop on an empty array to fail")
	}
}

func TestObjectOwnFieldsOnly(t *testing.T) {
	proto := NewObject()
	proto.SetOwnField("inherited", StringLiteral("from proto"))

	obj := NewObject()
	obj.Proto = proto
	obj.SetOwnField("own", StringLiteral("mine"))

	if _, ok := obj.OwnField("inherited"); ok {
		t.Error("OwnField must not consult the prototype chain")
	}

	v, ok := obj.FieldIncludingPrototype("inherited")
	if !ok || v.Str != "from proto" {
		t.Errorf("expected to find inherited field via the prototype chain, got %v", v)
	}

	v, ok = obj.FieldIncludingPrototype("own")
	if !ok || v.Str != "mine" {
		t.Errorf("expected to find own field, got %v", v)
	}
}

func TestObjectKeysPreserveInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.SetOwnField("b", Int(2))
	obj.SetOwnField("a", Int(1))
	obj.SetOwnField("b", Int(20))

	keys := obj.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("expected insertion order [b a] with no duplicate on update, got %v", keys)
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"null", Null(), false},
		{"undefined", Undefined(), false},
		{"true", Bool_(true), true},
		{"false", Bool_(false), false},
		{"zero int", Int(0), false},
		{"nonzero int", Int(1), true},
		{"zero float", Float(0), false},
		{"empty string", StringLiteral(""), false},
		{"nonempty string", StringLiteral("x"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsTruthy(); got != tt.want {
				t.Errorf("IsTruthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNeedsPromotion(t *testing.T) {
	if !StringLiteral("x").NeedsPromotion() {
		t.Error("a STRING_LITERAL should need promotion")
	}
	if Int(1).NeedsPromotion() {
		t.Error("an INT should never need promotion")
	}
}

func TestStringRendering(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null(), "null"},
		{Undefined(), "undefined"},
		{Bool_(true), "true"},
		{Int(42), "42"},
		{Float(3.5), "3.5"},
		{Float(4.0), "4"},
		{StringLiteral("hi"), "hi"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestArrayStringRendering(t *testing.T) {
	arr := &Array{}
	arr.Push(Int(1), StringLiteral("two"), Bool_(true))

	got := ArrayVal(arr).String()
	want := "[1, two, true]"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestObjectStringRendering(t *testing.T) {
	obj := NewObject()
	obj.SetOwnField("name", StringLiteral("Alice"))

	got := ObjectVal(obj).String()
	want := "{name: Alice}"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
