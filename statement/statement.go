// Package statement implements the statement-level control flow that
// spec.md §1 carves out of the evaluator as an external collaborator:
// variable declarations, blocks, conditionals, loops, break/continue,
// return, and function declarations. It implements
// evaluator.StatementExecutor and calls back into evaluator.Eval for
// every expression it meets.
package statement

import (
	"fmt"

	"go-script/ast"
	"go-script/evaluator"
	"go-script/value"
)

// Executor is the sole implementation of evaluator.StatementExecutor.
type Executor struct{}

// New returns a statement executor ready to wire into evaluator.New.
func New() *Executor {
	return &Executor{}
}

// Execute runs a single statement, returning how it finished.
func (x *Executor) Execute(ev *evaluator.Evaluator, env *evaluator.Environment, stmt ast.Statement) (evaluator.StatementResult, error) {
	switch s := stmt.(type) {
	case *ast.VarStatement:
		return x.executeDeclaration(ev, env, s.Name, s.Value)

	case *ast.LetStatement:
		return x.executeDeclaration(ev, env, s.Name, s.Value)

	case *ast.ExpressionStatement:
		val, err := ev.Eval(env, s.Expression)
		if err != nil {
			return evaluator.StatementResult{}, err
		}
		ev.Stack.Pop()
		// Carried in Value purely so callers like a REPL or the test
		// helper can observe "the value of the last statement" — control
		// flow never inspects Value on a Normal result.
		return evaluator.StatementResult{Kind: evaluator.Normal, Value: val}, nil

	case *ast.BlockStatement:
		return x.ExecuteBlock(ev, evaluator.NewEnvironment(env), s)

	case *ast.IfStatement:
		return x.executeIf(ev, env, s)

	case *ast.WhileStatement:
		return x.executeWhile(ev, env, s)

	case *ast.ForStatement:
		return x.executeFor(ev, env, s)

	case *ast.BreakStatement:
		return evaluator.StatementResult{Kind: evaluator.Break}, nil

	case *ast.ContinueStatement:
		return evaluator.StatementResult{Kind: evaluator.Continue}, nil

	case *ast.ReturnStatement:
		return x.executeReturn(ev, env, s)

	case *ast.FunctionStatement:
		fnVal := ev.MakeFunctionValue(s.Name, s.Parameters, s.Body, env)
		env.Declare(s.Name, fnVal)
		return evaluator.StatementResult{Kind: evaluator.Normal}, nil

	default:
		return evaluator.StatementResult{}, fmt.Errorf("go-script: unhandled statement node %T", stmt)
	}
}

// executeDeclaration handles both var and let: the distinction between
// the two the parser preserves only for the declarations ast.go
// documents; the evaluator's single environment model treats them
// identically, declaring Name in the current (block) scope.
func (x *Executor) executeDeclaration(ev *evaluator.Evaluator, env *evaluator.Environment, name string, valueNode ast.Expression) (evaluator.StatementResult, error) {
	v := value.Undefined()
	if valueNode != nil {
		val, err := ev.Eval(env, valueNode)
		if err != nil {
			return evaluator.StatementResult{}, err
		}
		ev.Stack.Pop()
		v = ev.Promote(val)
	}
	env.Declare(name, v)
	return evaluator.StatementResult{Kind: evaluator.Normal}, nil
}

func (x *Executor) executeIf(ev *evaluator.Evaluator, env *evaluator.Environment, s *ast.IfStatement) (evaluator.StatementResult, error) {
	cond, err := ev.Eval(env, s.Condition)
	if err != nil {
		return evaluator.StatementResult{}, err
	}
	ev.Stack.Pop()

	if cond.IsTruthy() {
		return x.ExecuteBlock(ev, evaluator.NewEnvironment(env), s.Consequence)
	}
	if s.Alternative != nil {
		return x.Execute(ev, env, s.Alternative)
	}
	return evaluator.StatementResult{Kind: evaluator.Normal}, nil
}

func (x *Executor) executeWhile(ev *evaluator.Evaluator, env *evaluator.Environment, s *ast.WhileStatement) (evaluator.StatementResult, error) {
	for {
		cond, err := ev.Eval(env, s.Condition)
		if err != nil {
			return evaluator.StatementResult{}, err
		}
		ev.Stack.Pop()
		if !cond.IsTruthy() {
			return evaluator.StatementResult{Kind: evaluator.Normal}, nil
		}

		result, err := x.ExecuteBlock(ev, evaluator.NewEnvironment(env), s.Body)
		if err != nil {
			return evaluator.StatementResult{}, err
		}
		switch result.Kind {
		case evaluator.Break:
			return evaluator.StatementResult{Kind: evaluator.Normal}, nil
		case evaluator.Return:
			return result, nil
		}
	}
}

// executeFor gives the init clause its own scope, shared across every
// iteration's condition/post check — exactly the scoping a classic
// `for (var i = 0; ...)` loop needs so that i is a single binding, not
// a fresh one per iteration.
func (x *Executor) executeFor(ev *evaluator.Evaluator, env *evaluator.Environment, s *ast.ForStatement) (evaluator.StatementResult, error) {
	loopEnv := evaluator.NewEnvironment(env)

	if s.Init != nil {
		if _, err := x.Execute(ev, loopEnv, s.Init); err != nil {
			return evaluator.StatementResult{}, err
		}
	}

	for {
		if s.Condition != nil {
			cond, err := ev.Eval(loopEnv, s.Condition)
			if err != nil {
				return evaluator.StatementResult{}, err
			}
			ev.Stack.Pop()
			if !cond.IsTruthy() {
				return evaluator.StatementResult{Kind: evaluator.Normal}, nil
			}
		}

		result, err := x.ExecuteBlock(ev, evaluator.NewEnvironment(loopEnv), s.Body)
		if err != nil {
			return evaluator.StatementResult{}, err
		}
		switch result.Kind {
		case evaluator.Break:
			return evaluator.StatementResult{Kind: evaluator.Normal}, nil
		case evaluator.Return:
			return result, nil
		}

		if s.Post != nil {
			if _, err := x.Execute(ev, loopEnv, s.Post); err != nil {
				return evaluator.StatementResult{}, err
			}
		}
	}
}

func (x *Executor) executeReturn(ev *evaluator.Evaluator, env *evaluator.Environment, s *ast.ReturnStatement) (evaluator.StatementResult, error) {
	if s.Value == nil {
		return evaluator.StatementResult{Kind: evaluator.Return, Value: value.Undefined()}, nil
	}
	val, err := ev.Eval(env, s.Value)
	if err != nil {
		return evaluator.StatementResult{}, err
	}
	ev.Stack.Pop()
	return evaluator.StatementResult{Kind: evaluator.Return, Value: val}, nil
}

// ExecuteBlock runs every statement in block against env in order,
// stopping early at the first non-Normal result (break, continue,
// return) and propagating it to the caller.
func (x *Executor) ExecuteBlock(ev *evaluator.Evaluator, env *evaluator.Environment, block *ast.BlockStatement) (evaluator.StatementResult, error) {
	result := evaluator.StatementResult{Kind: evaluator.Normal}
	for _, stmt := range block.Statements {
		var err error
		result, err = x.Execute(ev, env, stmt)
		if err != nil {
			return evaluator.StatementResult{}, err
		}
		if result.Kind != evaluator.Normal {
			return result, nil
		}
	}
	return result, nil
}

// ExecuteProgram runs every top-level statement directly against the
// evaluator's global environment — the one place statements execute
// without first being wrapped in a fresh block scope.
func (x *Executor) ExecuteProgram(ev *evaluator.Evaluator, program *ast.Program) (evaluator.StatementResult, error) {
	result := evaluator.StatementResult{Kind: evaluator.Normal}
	for _, stmt := range program.Statements {
		var err error
		result, err = x.Execute(ev, ev.Global, stmt)
		if err != nil {
			return evaluator.StatementResult{}, err
		}
		if result.Kind == evaluator.Return {
			return result, nil
		}
	}
	return result, nil
}
