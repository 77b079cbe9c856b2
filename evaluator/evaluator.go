// Package evaluator implements the expression evaluator described in
// spec.md §§3-5: a tagged-union value model, lexical environments with
// prototype-chain object dispatch, and a call machinery built on an
// immutable closure chain rather than the original's mutable scope
// splicing (spec.md §9 Design Notes).
//
// Statement-level control flow (blocks, loops, function bodies) is
// deliberately kept out of this package: it is invoked back through
// the StatementExecutor interface, which the sibling statement package
// implements. This keeps evaluator free of a dependency on statement
// while still letting statement depend on evaluator's concrete types.
package evaluator

import (
	"fmt"

	"github.com/go-logr/logr"

	"go-script/ast"
	"go-script/heap"
	"go-script/rterror"
	"go-script/value"
)

// StatementResultKind tags how a statement finished executing.
type StatementResultKind string

const (
	Normal   StatementResultKind = "NORMAL"
	Break    StatementResultKind = "BREAK"
	Continue StatementResultKind = "CONTINUE"
	Return   StatementResultKind = "RETURN"
)

// StatementResult is the outcome of executing one statement or block;
// Value holds the returned value when Kind is Return, and the value of
// the expression after a Normal expression statement.
type StatementResult struct {
	Kind  StatementResultKind
	Value value.Value
}

// StatementExecutor is the evaluator's external collaborator for
// statement-level control flow (spec.md §1, §6): it runs blocks, loops,
// and conditionals, calling back into Eval for every expression it
// meets along the way.
type StatementExecutor interface {
	Execute(ev *Evaluator, env *Environment, stmt ast.Statement) (StatementResult, error)
	ExecuteBlock(ev *Evaluator, env *Environment, block *ast.BlockStatement) (StatementResult, error)
}

// Evaluator bundles the state a single running program shares: the
// operand stack, the heap allocator/collector, the global environment,
// and the statement executor callback.
type Evaluator struct {
	Stack    *Stack
	Heap     *heap.Heap
	Global   *Environment
	Executor StatementExecutor
	Log      logr.Logger
}

// New wires up a fresh evaluator around an existing heap and statement
// executor. The caller (cmd/go-script) is responsible for registering
// builtins into the returned Global environment.
func New(h *heap.Heap, executor StatementExecutor, log logr.Logger) *Evaluator {
	return &Evaluator{
		Stack:    NewStack(),
		Heap:     h,
		Global:   NewGlobalEnvironment(),
		Executor: executor,
		Log:      log,
	}
}

// Eval evaluates node, pushes the resulting value onto the operand
// stack, and returns it. Every composite evaluation that needs a
// sub-expression's value calls Eval and then Pop()s it back off,
// matching the push/pop protocol of spec.md §3.5.
func (ev *Evaluator) Eval(env *Environment, node ast.Expression) (value.Value, error) {
	v, err := ev.evalNode(env, node)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Push(v)
	return v, nil
}

func (ev *Evaluator) evalNode(env *Environment, node ast.Expression) (value.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return value.Int(n.Value), nil
	case *ast.FloatLiteral:
		return value.Float(n.Value), nil
	case *ast.StringLiteral:
		return value.StringLiteral(n.Value), nil
	case *ast.BooleanLiteral:
		return value.Bool_(n.Value), nil
	case *ast.NullLiteral:
		return value.Null(), nil
	case *ast.UndefinedLiteral:
		return value.Undefined(), nil
	case *ast.Identifier:
		return ev.evalIdentifier(env, n)
	case *ast.PrefixExpression:
		return ev.evalPrefixExpression(env, n)
	case *ast.IncrementDecrementExpression:
		return ev.evalIncrementDecrement(env, n)
	case *ast.InfixExpression:
		return ev.evalInfixExpression(env, n)
	case *ast.LogicalExpression:
		return ev.evalLogicalExpression(env, n)
	case *ast.AssignExpression:
		return ev.evalAssignExpression(env, n)
	case *ast.CompoundAssignExpression:
		return ev.evalCompoundAssignExpression(env, n)
	case *ast.IndexAssignExpression:
		return ev.evalIndexAssignExpression(env, n)
	case *ast.PropertyAssignExpression:
		return ev.evalPropertyAssignExpression(env, n)
	case *ast.FunctionLiteral:
		return ev.evalFunctionLiteral(env, n)
	case *ast.CallExpression:
		return ev.evalCallExpression(env, n)
	case *ast.MethodCallExpression:
		return ev.evalMethodCallExpression(env, n)
	case *ast.NewExpression:
		return ev.evalNewExpression(env, n)
	case *ast.ObjectLiteral:
		return ev.evalObjectLiteral(env, n)
	case *ast.ArrayLiteral:
		return ev.evalArrayLiteral(env, n)
	case *ast.PropertyAccess:
		return ev.evalPropertyAccess(env, n)
	case *ast.IndexExpression:
		return ev.evalIndexExpression(env, n)
	default:
		return value.Value{}, fmt.Errorf("go-script: unhandled expression node %T", node)
	}
}

func (ev *Evaluator) evalIdentifier(env *Environment, n *ast.Identifier) (value.Value, error) {
	if slot, ok := env.Get(n.Name); ok {
		return *slot, nil
	}
	return value.Value{}, rterror.New(rterror.VariableNotFound, n.Name, n.Line)
}

func (ev *Evaluator) evalPrefixExpression(env *Environment, n *ast.PrefixExpression) (value.Value, error) {
	if _, err := ev.Eval(env, n.Right); err != nil {
		return value.Value{}, err
	}
	right := ev.Stack.Pop()

	switch n.Operator {
	case "!":
		return value.Bool_(!right.IsTruthy()), nil
	case "-":
		return value.Negate(right), nil
	default:
		return value.Value{}, fmt.Errorf("go-script: unknown prefix operator %q", n.Operator)
	}
}

// evalIncrementDecrement implements spec.md §4.8.
func (ev *Evaluator) evalIncrementDecrement(env *Environment, n *ast.IncrementDecrementExpression) (value.Value, error) {
	lv, err := ev.getLeftValueForIncrementDecrement(env, n.Operand)
	if err != nil {
		return value.Value{}, err
	}

	old := lv.Get()
	sign := 1
	if n.Operator == "--" {
		sign = -1
	}
	updated := value.IncrementOrDecrement(old, sign)
	lv.Set(updated)
	ev.runSafepoint(env)

	if n.Prefix {
		return updated, nil
	}
	return old, nil
}

// evalInfixExpression implements spec.md §4.6: arithmetic operators
// evaluate the right operand first, then the left (the stack ends up
// with left on top), while relational operators evaluate left-to-right.
func (ev *Evaluator) evalInfixExpression(env *Environment, n *ast.InfixExpression) (value.Value, error) {
	switch n.Operator {
	case "+", "-", "*", "/", "%":
		if _, err := ev.Eval(env, n.Right); err != nil {
			return value.Value{}, err
		}
		if _, err := ev.Eval(env, n.Left); err != nil {
			return value.Value{}, err
		}
		left := ev.Stack.Pop()
		right := ev.Stack.Pop()
		return applyArithmetic(n.Operator, left, right)

	default:
		if _, err := ev.Eval(env, n.Left); err != nil {
			return value.Value{}, err
		}
		if _, err := ev.Eval(env, n.Right); err != nil {
			return value.Value{}, err
		}
		right := ev.Stack.Pop()
		left := ev.Stack.Pop()
		return applyRelational(n.Operator, left, right)
	}
}

func applyArithmetic(op string, left, right value.Value) (value.Value, error) {
	switch op {
	case "+":
		return value.Add(left, right), nil
	case "-":
		return value.Sub(left, right), nil
	case "*":
		return value.Mul(left, right), nil
	case "/":
		return value.Div(left, right), nil
	case "%":
		return value.Mod(left, right), nil
	default:
		return value.Value{}, fmt.Errorf("go-script: unknown arithmetic operator %q", op)
	}
}

func applyRelational(op string, left, right value.Value) (value.Value, error) {
	switch op {
	case "==":
		return value.Bool_(value.Equal(left, right)), nil
	case "!=":
		return value.Bool_(value.ReverseBool(value.Equal(left, right))), nil
	case "<":
		return value.Bool_(value.Greater(right, left)), nil
	case ">":
		return value.Bool_(value.Greater(left, right)), nil
	case "<=":
		return value.Bool_(value.GreaterOrEqual(right, left)), nil
	case ">=":
		return value.Bool_(value.GreaterOrEqual(left, right)), nil
	default:
		return value.Value{}, fmt.Errorf("go-script: unknown relational operator %q", op)
	}
}

// evalLogicalExpression implements spec.md §4.7: && and || always
// produce a BOOL and short-circuit the right operand.
func (ev *Evaluator) evalLogicalExpression(env *Environment, n *ast.LogicalExpression) (value.Value, error) {
	left, err := ev.Eval(env, n.Left)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()

	leftTruthy := left.IsTruthy()
	if n.Operator == "&&" && !leftTruthy {
		return value.Bool_(false), nil
	}
	if n.Operator == "||" && leftTruthy {
		return value.Bool_(true), nil
	}

	right, err := ev.Eval(env, n.Right)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()

	return value.Bool_(right.IsTruthy()), nil
}

// evalAssignExpression implements plain `name = value` (spec.md §4.5):
// auto-declares into the global environment on first write, promotes a
// borrowed STRING_LITERAL into an owned STRING, stores, then consults
// the GC safepoint.
func (ev *Evaluator) evalAssignExpression(env *Environment, n *ast.AssignExpression) (value.Value, error) {
	val, err := ev.Eval(env, n.Value)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()

	val = ev.Promote(val)
	slot := env.AssignSlot(n.Name)
	*slot = val

	ev.runSafepoint(env)
	return val, nil
}

// evalCompoundAssignExpression implements +=, -=, *=, /=, %= against
// any left-value target (spec.md §4.5).
func (ev *Evaluator) evalCompoundAssignExpression(env *Environment, n *ast.CompoundAssignExpression) (value.Value, error) {
	rhs, err := ev.Eval(env, n.Value)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()

	lv, err := ev.getLeftValue(env, n.Target)
	if err != nil {
		return value.Value{}, err
	}
	current := lv.Get()

	op := n.Operator[:len(n.Operator)-1] // strip the trailing "="
	result, err := applyArithmetic(op, current, rhs)
	if err != nil {
		return value.Value{}, err
	}

	result = ev.Promote(result)
	lv.Set(result)
	ev.runSafepoint(env)
	return result, nil
}

// evalIndexAssignExpression implements `base[index] = value`.
func (ev *Evaluator) evalIndexAssignExpression(env *Environment, n *ast.IndexAssignExpression) (value.Value, error) {
	base, err := ev.Eval(env, n.Left)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()

	idx, err := ev.Eval(env, n.Index)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()

	val, err := ev.Eval(env, n.Value)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()
	val = ev.Promote(val)

	lv, err := ev.leftValueForIndex(base, idx, n.Line)
	if err != nil {
		return value.Value{}, err
	}
	lv.Set(val)
	ev.runSafepoint(env)
	return val, nil
}

// evalPropertyAssignExpression implements `base.field = value`, with a
// special case for writing __proto__ (spec.md §4.10's prototype-link
// mutation, the only way to change an object's prototype after
// creation).
func (ev *Evaluator) evalPropertyAssignExpression(env *Environment, n *ast.PropertyAssignExpression) (value.Value, error) {
	base, err := ev.Eval(env, n.Object)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()

	val, err := ev.Eval(env, n.Value)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()
	val = ev.Promote(val)

	if n.Property == "__proto__" && base.Kind == value.OBJECT {
		obj := base.Heap.(*value.Object)
		if val.Kind == value.OBJECT {
			obj.Proto = val.Heap.(*value.Object)
		} else if val.Kind == value.NULL {
			obj.Proto = nil
		}
		ev.runSafepoint(env)
		return val, nil
	}

	lv, err := ev.leftValueForField(base, n.Property, n.Line)
	if err != nil {
		return value.Value{}, err
	}
	lv.Set(val)
	ev.runSafepoint(env)
	return val, nil
}

// runSafepoint consults the GC flag after every successful assignment
// (spec.md §4.5, §5) and, if due, runs mark-and-sweep rooted at the
// global environment, the currently executing environment chain, and
// the operand stack.
func (ev *Evaluator) runSafepoint(env *Environment) {
	ev.Heap.RunSafepoint(ev.Global, env, ev.Stack)
}

// Promote implements the STRING_LITERAL -> STRING promotion spec.md §9
// requires before a value is stored anywhere durable (a variable slot,
// array element, or object field): a borrowed literal becomes an
// owned, heap-tracked string.
func (ev *Evaluator) Promote(v value.Value) value.Value {
	if !v.NeedsPromotion() {
		return v
	}
	return value.StringVal(ev.Heap.AllocString(v.Str))
}

// evalFunctionLiteral implements spec.md §4.12: a function value
// captures the environment active at its definition site. The call
// machinery reads CapturedEnv back later; it is never re-parented.
func (ev *Evaluator) evalFunctionLiteral(env *Environment, n *ast.FunctionLiteral) (value.Value, error) {
	return ev.MakeFunctionValue("", n.Parameters, n.Body, env), nil
}

// MakeFunctionValue is exported for the statement package's function
// declaration handling, which needs the identical construction this
// package uses for function literals.
func (ev *Evaluator) MakeFunctionValue(name string, params []string, body *ast.BlockStatement, env *Environment) value.Value {
	fn := &value.Function{
		Kind:        value.FUNCTION_KIND_USER,
		Name:        name,
		Parameters:  params,
		Body:        body,
		CapturedEnv: env,
	}
	return value.FunctionVal(fn)
}

// evalArrayLiteral implements spec.md §4.9: elements are evaluated
// left-to-right into an array pre-sized with the 2n+1 margin.
func (ev *Evaluator) evalArrayLiteral(env *Environment, n *ast.ArrayLiteral) (value.Value, error) {
	arr := ev.Heap.AllocArray(2*len(n.Elements) + 1)
	for _, elemNode := range n.Elements {
		elem, err := ev.Eval(env, elemNode)
		if err != nil {
			return value.Value{}, err
		}
		ev.Stack.Pop()
		arr.Push(ev.Promote(elem))
	}
	return value.ArrayVal(arr), nil
}

// evalObjectLiteral implements spec.md §4.10, including computed
// `[expr]:` keys and inline method shorthand (whose value is simply a
// FunctionLiteral evaluated like any other).
func (ev *Evaluator) evalObjectLiteral(env *Environment, n *ast.ObjectLiteral) (value.Value, error) {
	obj := ev.Heap.AllocObject()
	for _, pair := range n.Pairs {
		name := pair.Key
		if pair.Computed {
			keyVal, err := ev.Eval(env, pair.KeyExpr)
			if err != nil {
				return value.Value{}, err
			}
			ev.Stack.Pop()
			resolved, err := fieldNameOf(keyVal, n.Line)
			if err != nil {
				return value.Value{}, err
			}
			name = resolved
		}

		val, err := ev.Eval(env, pair.Value)
		if err != nil {
			return value.Value{}, err
		}
		ev.Stack.Pop()

		obj.SetOwnField(name, ev.Promote(val))
	}
	return value.ObjectVal(obj), nil
}

// evalIndexExpression implements reading `base[index]` (spec.md §4.9
// for arrays, §4.10 for objects via the prototype chain).
func (ev *Evaluator) evalIndexExpression(env *Environment, n *ast.IndexExpression) (value.Value, error) {
	base, err := ev.Eval(env, n.Left)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()

	idx, err := ev.Eval(env, n.Index)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()

	switch base.Kind {
	case value.ARRAY:
		arr := base.Heap.(*value.Array)
		if idx.Kind != value.INT {
			return value.Value{}, rterror.New(rterror.IndexHasWrongType, "array index must be an integer", n.Line)
		}
		v, ok := arr.Get(int(idx.Int))
		if !ok {
			return value.Value{}, rterror.New(rterror.IndexOutOfRange, "", n.Line)
		}
		return v, nil

	case value.OBJECT:
		obj := base.Heap.(*value.Object)
		name, err := fieldNameOf(idx, n.Line)
		if err != nil {
			return value.Value{}, err
		}
		if v, ok := obj.FieldIncludingPrototype(name); ok {
			return v, nil
		}
		return value.Value{}, rterror.New(rterror.FieldNotDefined, name, n.Line)

	default:
		return value.Value{}, rterror.New(rterror.CannotIndexThisType, "", n.Line)
	}
}

// evalPropertyAccess implements reading `base.field` (spec.md §4.10),
// plus the array/string `.length` convenience and the `__proto__`
// accessor.
func (ev *Evaluator) evalPropertyAccess(env *Environment, n *ast.PropertyAccess) (value.Value, error) {
	base, err := ev.Eval(env, n.Object)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()

	return ev.readProperty(base, n.Property, n.Line)
}

func (ev *Evaluator) readProperty(base value.Value, name string, line int) (value.Value, error) {
	switch base.Kind {
	case value.ARRAY:
		arr := base.Heap.(*value.Array)
		if name == "length" {
			return value.Int(int64(arr.Len())), nil
		}
		return value.Value{}, rterror.New(rterror.FieldNotDefined, name, line)

	case value.OBJECT:
		obj := base.Heap.(*value.Object)
		if name == "__proto__" {
			if obj.Proto == nil {
				return value.Null(), nil
			}
			return value.ObjectVal(obj.Proto), nil
		}
		if v, ok := obj.FieldIncludingPrototype(name); ok {
			return v, nil
		}
		return value.Value{}, rterror.New(rterror.FieldNotDefined, name, line)

	case value.STRING, value.STRING_LITERAL:
		if name == "length" {
			return value.Int(int64(len(base.Str))), nil
		}
		return value.Value{}, rterror.New(rterror.FieldNotDefined, name, line)

	default:
		return value.Value{}, rterror.New(rterror.CannotIndexThisType, "", line)
	}
}

// evalNewExpression implements spec.md §4.11's two recognized
// constructors.
func (ev *Evaluator) evalNewExpression(env *Environment, n *ast.NewExpression) (value.Value, error) {
	switch n.TypeName {
	case "Object":
		return value.ObjectVal(ev.Heap.AllocObject()), nil

	case "Array":
		arr := ev.Heap.AllocArray(2*len(n.Arguments) + 1)
		for _, argNode := range n.Arguments {
			v, err := ev.Eval(env, argNode)
			if err != nil {
				return value.Value{}, err
			}
			ev.Stack.Pop()
			arr.Push(ev.Promote(v))
		}
		return value.ArrayVal(arr), nil

	default:
		return value.Value{}, rterror.New(rterror.UnknownNewType, n.TypeName, n.Line)
	}
}

// evalCallExpression implements a bare `callee(args)` call (spec.md
// §4.13): builtins and user functions are dispatched through the same
// call machinery, distinguished only by value.FunctionKind.
func (ev *Evaluator) evalCallExpression(env *Environment, n *ast.CallExpression) (value.Value, error) {
	callee, err := ev.resolveCallTarget(env, n.Function)
	if err != nil {
		return value.Value{}, err
	}

	args, err := ev.evalArguments(env, n.Arguments)
	if err != nil {
		return value.Value{}, err
	}

	if callee.Kind != value.FUNCTION {
		return value.Value{}, rterror.New(rterror.NotAFunction, "", n.Line)
	}

	fn := callee.Heap.(*value.Function)
	thisVal := value.ObjectVal(ev.Heap.AllocObject())
	return ev.callFunction(fn, thisVal, args, n.Line)
}

// resolveCallTarget evaluates a call's callee expression, distinguishing an
// altogether absent name (FUNCTION_NOT_FOUND) from a name that resolves to
// a non-function value (NOT_A_FUNCTION). Routing a bare identifier through
// the ordinary ev.Eval path would raise VARIABLE_NOT_FOUND via
// evalIdentifier before evalCallExpression ever saw the missing-name case,
// so the identifier is looked up directly here instead (spec.md §7).
func (ev *Evaluator) resolveCallTarget(env *Environment, expr ast.Expression) (value.Value, error) {
	if ident, ok := expr.(*ast.Identifier); ok {
		slot, ok := env.Get(ident.Name)
		if !ok {
			return value.Value{}, rterror.New(rterror.FunctionNotFound, ident.Name, ident.Line)
		}
		return *slot, nil
	}

	callee, err := ev.Eval(env, expr)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()
	return callee, nil
}

// evalMethodCallExpression implements `receiver.method(args)` (spec.md
// §4.14 for array builtins, §4.15 for user-defined object methods):
// `this` is bound to the receiver.
func (ev *Evaluator) evalMethodCallExpression(env *Environment, n *ast.MethodCallExpression) (value.Value, error) {
	receiver, err := ev.Eval(env, n.Receiver)
	if err != nil {
		return value.Value{}, err
	}
	ev.Stack.Pop()

	args, err := ev.evalArguments(env, n.Arguments)
	if err != nil {
		return value.Value{}, err
	}

	switch receiver.Kind {
	case value.ARRAY:
		return ev.callArrayMethod(receiver.Heap.(*value.Array), n.Method, args, n.Line)

	case value.OBJECT:
		obj := receiver.Heap.(*value.Object)
		fieldVal, ok := obj.FieldIncludingPrototype(n.Method)
		if !ok || fieldVal.Kind != value.FUNCTION {
			return value.Value{}, rterror.New(rterror.MethodNotFound, n.Method, n.Line)
		}
		fn := fieldVal.Heap.(*value.Function)
		return ev.callFunction(fn, receiver, args, n.Line)

	default:
		return value.Value{}, rterror.New(rterror.IsNotAnObject, "", n.Line)
	}
}

// callArrayMethod implements spec.md §4.14's built-in array methods.
func (ev *Evaluator) callArrayMethod(arr *value.Array, method string, args []value.Value, line int) (value.Value, error) {
	switch method {
	case "push":
		for _, a := range args {
			arr.Push(ev.Promote(a))
		}
		return value.Int(int64(arr.Len())), nil

	case "pop":
		v, ok := arr.Pop()
		if !ok {
			return value.Null(), nil
		}
		return v, nil

	default:
		return value.Value{}, rterror.New(rterror.MethodNotFound, method, line)
	}
}

func (ev *Evaluator) evalArguments(env *Environment, nodes []ast.Expression) ([]value.Value, error) {
	args := make([]value.Value, 0, len(nodes))
	for _, argNode := range nodes {
		v, err := ev.Eval(env, argNode)
		if err != nil {
			return nil, err
		}
		ev.Stack.Pop()
		args = append(args, v)
	}
	return args, nil
}

// callFunction implements spec.md §4.13's call machinery using an
// immutable closure chain (§9 Design Notes): a user function's call
// frame is a fresh Environment whose outer is the function's captured
// defining environment, never the caller's dynamic scope. `this` and
// `arguments` are ordinary bindings in that frame.
func (ev *Evaluator) callFunction(fn *value.Function, thisVal value.Value, args []value.Value, line int) (value.Value, error) {
	if fn.Kind == value.FUNCTION_KIND_BUILTIN {
		return fn.Native(args)
	}

	capturedEnv, _ := fn.CapturedEnv.(*Environment)
	if capturedEnv == nil {
		capturedEnv = ev.Global
	}

	callEnv := NewEnvironment(capturedEnv)
	ev.Heap.TrackEnv(callEnv)

	for i, name := range fn.Parameters {
		if i < len(args) {
			callEnv.Declare(name, args[i])
		} else {
			callEnv.Declare(name, value.Undefined())
		}
	}

	argsArray := ev.Heap.AllocArray(2*len(args) + 1)
	argsArray.Push(args...)
	callEnv.Declare("arguments", value.ArrayVal(argsArray))
	callEnv.Declare("this", thisVal)

	body, ok := fn.Body.(*ast.BlockStatement)
	if !ok {
		return value.Value{}, fmt.Errorf("go-script: function %q has no body", fn.Name)
	}

	result, err := ev.Executor.ExecuteBlock(ev, callEnv, body)
	if err != nil {
		return value.Value{}, err
	}

	switch result.Kind {
	case Return:
		return result.Value, nil
	case Break, Continue:
		return value.Value{}, rterror.New(rterror.ContinueReturnBreakOutOfScope, string(result.Kind), line)
	default:
		return value.Undefined(), nil
	}
}
