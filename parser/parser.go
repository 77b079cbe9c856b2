package parser

import (
	"fmt"
	"go-script/ast"
	"go-script/lexer"
	"go-script/token"
	"strconv"
)

const (
	_           int = iota
	LOWEST          // Lowest precedence
	ASSIGN          // = += -= *= /= %= (assignment, right-associative)
	OR              // ||
	AND             // &&
	EQUALS          // == or !=
	LESSGREATER     // < or > or <= or >=
	SUM             // + or -
	PRODUCT         // * or / or %
	PREFIX          // -x or !x or ++x or --x
	POSTFIX         // x++ or x--
	CALL            // myFunction(x) or obj.property
	INDEX           // arr[i]
)

var precedences = map[token.Type]int{
	token.ASSIGN:         ASSIGN,
	token.PLUS_ASSIGN:    ASSIGN,
	token.MINUS_ASSIGN:   ASSIGN,
	token.STAR_ASSIGN:    ASSIGN,
	token.SLASH_ASSIGN:   ASSIGN,
	token.PERCENT_ASSIGN: ASSIGN,
	token.OR:             OR,
	token.AND:            AND,
	token.EQ:             EQUALS,
	token.NEQ:            EQUALS,
	token.LT:             LESSGREATER,
	token.GT:             LESSGREATER,
	token.LTE:            LESSGREATER,
	token.GTE:            LESSGREATER,
	token.PLUS:           SUM,
	token.MINUS:          SUM,
	token.SLASH:          PRODUCT,
	token.STAR:           PRODUCT,
	token.PERCENT:        PRODUCT,
	token.INCREMENT:      POSTFIX,
	token.DECREMENT:      POSTFIX,
	token.LPAREN:         CALL,
	token.DOT:            CALL,
	token.LBRACKET:       INDEX,
}

type Parser struct {
	l            *lexer.Lexer // The lexer providing tokens
	currentToken token.Token  // Current token we're examining
	peekToken    token.Token  // Next token (for lookahead)
	errors       []string     // List of parsing errors
}

// New creates a new Parser for the given input source code
//
// Example usage:
//
//	p := parser.New("var x = 42;")
//	program := p.ParseProgram()
func New(input string) *Parser {
	l := lexer.New(input)
	p := &Parser{
		l:      l,
		errors: []string{},
	}

	// Read two tokens so currentToken and peekToken are both set
	// This gives us one token of lookahead
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) Errors() []string {
	return p.errors
}

// nextToken advances the parser to the next token
// currentToken becomes peekToken, and we read a new peekToken from the lexer
//
// Example: Parsing "var x"
//
//	Initial: current="var", peek="x"
//	After nextToken(): current="x", peek=EOF
func (p *Parser) nextToken() {
	p.currentToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) currentTokenIs(t token.Type) bool {
	return p.currentToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

// expectPeek checks if the next token is of the expected type
// If yes, it advances to that token and returns true
// If no, it records an error and returns false
//
// Example: Parsing "var x = 5"
//
//	After seeing "var", we expectPeek(IDENT) to get "x"
//	After seeing "x", we expectPeek(ASSIGN) to get "="
func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errors = append(p.errors, fmt.Sprintf("expected next token to be %s, got %s instead (line %d)", t, p.peekToken.Type, p.peekToken.Line))
	return false
}

func (p *Parser) getPrecedence(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}

// ParseProgram is the entry point for parsing
// It parses the entire program and returns the root AST node
//
// Example: For input "var x = 5; var y = 10;"
//
//	Returns: Program{
//	  Statements: [
//	    VarStatement{Name: "x", Value: IntegerLiteral{5}},
//	    VarStatement{Name: "y", Value: IntegerLiteral{10}}
//	  ]
//	}
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	program.Statements = []ast.Statement{}

	// Keep parsing statements until we reach EOF
	for !p.currentTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.currentToken.Type {
	case token.VAR:
		return p.parseVarStatement()
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.CONTINUE:
		return p.parseContinueStatement()
	case token.FUNC:
		if p.peekTokenIs(token.IDENT) {
			return p.parseFunctionStatement()
		}
		return p.parseExpressionStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseVarStatement parses a variable declaration
//
// Syntax: var <identifier> = <expression>;
//
// Examples:
//
//	"var x = 42;" → VarStatement{Name: "x", Value: IntegerLiteral{42}}
func (p *Parser) parseVarStatement() *ast.VarStatement {
	stmt := &ast.VarStatement{Line: p.currentToken.Line}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt.Name = p.currentToken.Literal

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken() // consume identifier
		p.nextToken() // consume =

		stmt.Value = p.parseExpression(LOWEST)
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseLetStatement parses a block-scoped variable declaration.
//
// Syntax: let <identifier> = <expression>;
func (p *Parser) parseLetStatement() *ast.LetStatement {
	stmt := &ast.LetStatement{Line: p.currentToken.Line}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt.Name = p.currentToken.Literal

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken() // consume identifier
		p.nextToken() // consume =

		stmt.Value = p.parseExpression(LOWEST)
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseReturnStatement parses a return statement
//
// Syntax: return <expression>;
func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Line: p.currentToken.Line}

	p.nextToken() // move past 'return'

	if !p.currentTokenIs(token.SEMICOLON) {
		stmt.Value = p.parseExpression(LOWEST)
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseIfStatement parses an if statement with optional else
//
// Syntax: if (condition) { ... } else { ... }
func (p *Parser) parseIfStatement() *ast.IfStatement {
	stmt := &ast.IfStatement{}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken() // move past '('
	stmt.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	stmt.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken() // consume else
		p.nextToken() // move to next token

		if p.currentTokenIs(token.IF) {
			stmt.Alternative = p.parseIfStatement()
		} else if p.currentTokenIs(token.LBRACE) {
			stmt.Alternative = p.parseBlockStatement()
		}
	}

	return stmt
}

// parseWhileStatement parses a while loop
//
// Syntax: while (condition) { ... }
func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	stmt := &ast.WhileStatement{}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken() // move past '('
	stmt.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	stmt.Body = p.parseBlockStatement()

	return stmt
}

// parseForStatement parses a classic three-clause for loop. Any of the
// three clauses may be omitted, e.g. "for (;;) { ... }" loops forever.
//
// Syntax: for (init; condition; post) { ... }
func (p *Parser) parseForStatement() *ast.ForStatement {
	stmt := &ast.ForStatement{}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken() // move past '('

	if p.currentTokenIs(token.SEMICOLON) {
		stmt.Init = nil
	} else if p.currentTokenIs(token.VAR) {
		stmt.Init = p.parseVarStatement()
	} else if p.currentTokenIs(token.LET) {
		stmt.Init = p.parseLetStatement()
	} else {
		stmt.Init = p.parseExpressionStatement()
	}
	// parseVarStatement/parseLetStatement/parseExpressionStatement each
	// consume a trailing semicolon themselves, leaving currentToken on
	// it; the empty-init branch is already positioned there.

	p.nextToken() // move past first ';'

	if p.currentTokenIs(token.SEMICOLON) {
		stmt.Condition = nil
	} else {
		stmt.Condition = p.parseExpression(LOWEST)
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
	}

	p.nextToken() // move past second ';'

	if p.currentTokenIs(token.RPAREN) {
		stmt.Post = nil
	} else {
		stmt.Post = &ast.ExpressionStatement{Expression: p.parseExpression(LOWEST)}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	stmt.Body = p.parseBlockStatement()

	return stmt
}

func (p *Parser) parseBreakStatement() *ast.BreakStatement {
	stmt := &ast.BreakStatement{Line: p.currentToken.Line}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseContinueStatement() *ast.ContinueStatement {
	stmt := &ast.ContinueStatement{Line: p.currentToken.Line}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseFunctionStatement parses a named function declaration.
//
// Syntax: function name(param1, param2) { ... }
func (p *Parser) parseFunctionStatement() *ast.FunctionStatement {
	stmt := &ast.FunctionStatement{Line: p.currentToken.Line}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.currentToken.Literal

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	stmt.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()

	return stmt
}

// parseBlockStatement parses a block of statements { ... }
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{}
	block.Statements = []ast.Statement{}

	p.nextToken() // move past '{'

	for !p.currentTokenIs(token.RBRACE) && !p.currentTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}

// parseExpressionStatement parses an expression as a statement
func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Line: p.currentToken.Line}

	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseExpression is the core of the Pratt parser
// It handles precedence automatically
//
// Example: "2 + 3 * 4"
//  1. Parse 2 (IntegerLiteral)
//  2. See + (precedence 7)
//  3. Parse right side with precedence 7
//  4. See 3 (IntegerLiteral)
//  5. See * (precedence 8 > 7)
//  6. Parse 3 * 4 first (precedence rules)
//  7. Return 2 + (3 * 4)
func (p *Parser) parseExpression(precedence int) ast.Expression {
	var leftExp ast.Expression

	switch p.currentToken.Type {
	case token.IDENT:
		leftExp = p.parseIdentifier()
	case token.INT:
		leftExp = p.parseIntegerLiteral()
	case token.FLOAT:
		leftExp = p.parseFloatLiteral()
	case token.STRING:
		leftExp = p.parseStringLiteral()
	case token.TRUE, token.FALSE:
		leftExp = p.parseBooleanLiteral()
	case token.NULL:
		leftExp = p.parseNullLiteral()
	case token.UNDEFINED:
		leftExp = p.parseUndefinedLiteral()
	case token.BANG, token.MINUS:
		leftExp = p.parsePrefixExpression()
	case token.INCREMENT, token.DECREMENT:
		leftExp = p.parsePrefixIncrementDecrement()
	case token.LPAREN:
		leftExp = p.parseGroupedExpression()
	case token.FUNC:
		leftExp = p.parseFunctionLiteral()
	case token.LBRACE:
		leftExp = p.parseObjectLiteral()
	case token.LBRACKET:
		leftExp = p.parseArrayLiteral()
	case token.NEW:
		leftExp = p.parseNewExpression()
	default:
		p.noPrefixParseFnError(p.currentToken.Type)
		return nil
	}

	// Parse infix/postfix expressions (operators following an expression)
	// Continue while the next operator has higher precedence
	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.getPrecedence(p.peekToken.Type) {
		switch p.peekToken.Type {
		case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
			token.EQ, token.NEQ, token.LT, token.GT, token.LTE, token.GTE:
			p.nextToken()
			leftExp = p.parseInfixExpression(leftExp)
		case token.AND, token.OR:
			p.nextToken()
			leftExp = p.parseLogicalExpression(leftExp)
		case token.LPAREN:
			p.nextToken()
			leftExp = p.parseCallExpression(leftExp)
		case token.DOT:
			p.nextToken()
			leftExp = p.parsePropertyAccessOrMethodCall(leftExp)
		case token.LBRACKET:
			p.nextToken()
			leftExp = p.parseIndexExpression(leftExp)
		case token.INCREMENT, token.DECREMENT:
			p.nextToken()
			leftExp = p.parsePostfixIncrementDecrement(leftExp)
		case token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN,
			token.SLASH_ASSIGN, token.PERCENT_ASSIGN:
			p.nextToken()
			leftExp = p.parseAssignExpression(leftExp)
		default:
			return leftExp
		}
	}

	return leftExp
}

// parseIdentifier parses an identifier (variable/function name)
func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Name: p.currentToken.Literal, Line: p.currentToken.Line}
}

// parseIntegerLiteral parses an integer literal (no decimal point)
//
// Example: "42" → IntegerLiteral{Value: 42}
func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.currentToken.Literal, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("could not parse %q as integer", p.currentToken.Literal)
		p.errors = append(p.errors, msg)
		return nil
	}
	return &ast.IntegerLiteral{Value: value, Line: p.currentToken.Line}
}

// parseFloatLiteral parses a floating-point literal
//
// Example: "3.14" → FloatLiteral{Value: 3.14}
func (p *Parser) parseFloatLiteral() ast.Expression {
	value, err := strconv.ParseFloat(p.currentToken.Literal, 64)
	if err != nil {
		msg := fmt.Sprintf("could not parse %q as float", p.currentToken.Literal)
		p.errors = append(p.errors, msg)
		return nil
	}
	return &ast.FloatLiteral{Value: value, Line: p.currentToken.Line}
}

// parseStringLiteral parses a string literal
func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Value: p.currentToken.Literal, Line: p.currentToken.Line}
}

// parseBooleanLiteral parses a boolean literal
func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Value: p.currentTokenIs(token.TRUE), Line: p.currentToken.Line}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Line: p.currentToken.Line}
}

func (p *Parser) parseUndefinedLiteral() ast.Expression {
	return &ast.UndefinedLiteral{Line: p.currentToken.Line}
}

// parsePrefixExpression parses a prefix operator expression
//
// Examples:
//
//	"-5" → PrefixExpression{Operator: "-", Right: IntegerLiteral{5}}
//	"!true" → PrefixExpression{Operator: "!", Right: BooleanLiteral{true}}
func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Operator: p.currentToken.Literal,
		Line:     p.currentToken.Line,
	}

	p.nextToken()

	expression.Right = p.parseExpression(PREFIX)

	return expression
}

// parsePrefixIncrementDecrement parses "++x" / "--x".
func (p *Parser) parsePrefixIncrementDecrement() ast.Expression {
	operator := p.currentToken.Literal
	line := p.currentToken.Line

	p.nextToken()

	return &ast.IncrementDecrementExpression{
		Operand:  p.parseExpression(PREFIX),
		Operator: operator,
		Prefix:   true,
		Line:     line,
	}
}

// parsePostfixIncrementDecrement parses "x++" / "x--". Unlike every other
// infix handler, this one has no right operand to parse: currentToken
// already is the operator after the caller's p.nextToken().
func (p *Parser) parsePostfixIncrementDecrement(left ast.Expression) ast.Expression {
	return &ast.IncrementDecrementExpression{
		Operand:  left,
		Operator: p.currentToken.Literal,
		Prefix:   false,
		Line:     p.currentToken.Line,
	}
}

// parseInfixExpression parses a binary operator expression
//
// Examples:
//
//	"5 + 3" → InfixExpression{Left: IntegerLiteral{5}, Op: "+", Right: IntegerLiteral{3}}
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Operator: p.currentToken.Literal,
		Left:     left,
		Line:     p.currentToken.Line,
	}

	precedence := p.getPrecedence(p.currentToken.Type)
	p.nextToken()
	expression.Right = p.parseExpression(precedence)

	return expression
}

// parseLogicalExpression parses "&&" and "||", kept distinct from
// parseInfixExpression so the evaluator knows to short-circuit.
func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	expression := &ast.LogicalExpression{
		Operator: p.currentToken.Literal,
		Left:     left,
		Line:     p.currentToken.Line,
	}

	precedence := p.getPrecedence(p.currentToken.Type)
	p.nextToken()
	expression.Right = p.parseExpression(precedence)

	return expression
}

// parseGroupedExpression parses an expression in parentheses
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken() // move past '('

	exp := p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return exp
}

// parseFunctionLiteral parses a function definition
//
// Syntax: function(param1, param2) { ... }
func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Line: p.currentToken.Line}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	lit.Body = p.parseBlockStatement()

	return lit
}

// parseFunctionParameters parses the parameter list of a function
//
// Example: "(a, b, c)" → ["a", "b", "c"]
func (p *Parser) parseFunctionParameters() []string {
	identifiers := []string{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return identifiers
	}

	p.nextToken() // move to first parameter

	identifiers = append(identifiers, p.currentToken.Literal)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // consume comma
		p.nextToken() // move to next parameter
		identifiers = append(identifiers, p.currentToken.Literal)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return identifiers
}

// parseCallExpression parses a function call
//
// Examples:
//
//	"add(5, 3)" → CallExpression{Function: Identifier{"add"}, Arguments: [...]}
func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	return &ast.CallExpression{
		Function:  function,
		Arguments: p.parseExpressionList(token.RPAREN),
		Line:      p.currentToken.Line,
	}
}

// parseExpressionList parses a comma-separated expression list, stopping
// at the given terminator token (RPAREN for call arguments, RBRACKET for
// array literal elements).
func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // consume comma
		p.nextToken() // move to next element
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

// parseArrayLiteral parses "[e1, e2, ...]".
func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Line: p.currentToken.Line}
	arr.Elements = p.parseExpressionList(token.RBRACKET)
	return arr
}

// parseIndexExpression parses "left[index]".
func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	line := p.currentToken.Line
	p.nextToken() // move past '['

	index := p.parseExpression(LOWEST)

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}

	return &ast.IndexExpression{Left: left, Index: index, IsComputed: true, Line: line}
}

// parseNewExpression parses "new TypeName(args...)".
func (p *Parser) parseNewExpression() ast.Expression {
	line := p.currentToken.Line

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	typeName := p.currentToken.Literal

	args := []ast.Expression{}
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		args = p.parseExpressionList(token.RPAREN)
	}

	return &ast.NewExpression{TypeName: typeName, Arguments: args, Line: line}
}

// parseObjectLiteral parses an object literal. Keys are either a plain
// identifier/string, a computed "[expr]:" key, or an inline method
// shorthand "name() { ... }".
//
// Example:
//
//	"{ name: "John", [k]: 1, greet() { return "hi"; } }"
func (p *Parser) parseObjectLiteral() ast.Expression {
	obj := &ast.ObjectLiteral{Line: p.currentToken.Line}

	p.nextToken() // move past '{'

	for !p.currentTokenIs(token.RBRACE) && !p.currentTokenIs(token.EOF) {
		pair := ast.ObjectPair{}

		switch {
		case p.currentTokenIs(token.LBRACKET):
			p.nextToken() // move past '['
			pair.KeyExpr = p.parseExpression(LOWEST)
			pair.Computed = true
			if !p.expectPeek(token.RBRACKET) {
				return nil
			}
			if !p.expectPeek(token.COLON) {
				return nil
			}
			p.nextToken()
			pair.Value = p.parseExpression(LOWEST)

		case p.currentTokenIs(token.IDENT) || p.currentTokenIs(token.STRING):
			pair.Key = p.currentToken.Literal

			if p.peekTokenIs(token.LPAREN) {
				p.nextToken() // move to '('
				fn := &ast.FunctionLiteral{Line: p.currentToken.Line}
				fn.Parameters = p.parseFunctionParameters()
				if !p.expectPeek(token.LBRACE) {
					return nil
				}
				fn.Body = p.parseBlockStatement()
				pair.Value = fn
			} else {
				if !p.expectPeek(token.COLON) {
					return nil
				}
				p.nextToken()
				pair.Value = p.parseExpression(LOWEST)
			}

		default:
			p.errors = append(p.errors, fmt.Sprintf("unexpected token %s in object literal (line %d)", p.currentToken.Type, p.currentToken.Line))
			return nil
		}

		obj.Pairs = append(obj.Pairs, pair)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken() // consume comma
			p.nextToken() // move to next property
		} else if p.peekTokenIs(token.RBRACE) {
			p.nextToken() // consume closing brace
			break
		}
	}

	return obj
}

// parsePropertyAccessOrMethodCall parses "object.property" or, when the
// property is immediately followed by "(", "object.method(args)".
func (p *Parser) parsePropertyAccessOrMethodCall(object ast.Expression) ast.Expression {
	line := p.currentToken.Line

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	property := p.currentToken.Literal

	if p.peekTokenIs(token.LPAREN) {
		p.nextToken() // move to '('
		return &ast.MethodCallExpression{
			Receiver:  object,
			Method:    property,
			Arguments: p.parseExpressionList(token.RPAREN),
			Line:      line,
		}
	}

	return &ast.PropertyAccess{Object: object, Property: property, Line: line}
}

// parseAssignExpression parses "target = value" and the compound forms
// "target += value" etc. For "=", target may be an identifier, an index
// expression, or a property access; anything else is a parse error.
// Compound forms accept any target here; an invalid one is rejected when
// the evaluator resolves it as a left-value.
func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	operator := p.currentToken.Literal
	line := p.currentToken.Line

	p.nextToken() // move past the operator
	value := p.parseExpression(LOWEST)

	if operator != "=" {
		return &ast.CompoundAssignExpression{Target: left, Operator: operator, Value: value, Line: line}
	}

	switch target := left.(type) {
	case *ast.Identifier:
		return &ast.AssignExpression{Name: target.Name, Value: value, Line: line}
	case *ast.IndexExpression:
		return &ast.IndexAssignExpression{Left: target.Left, Index: target.Index, Value: value, Line: line}
	case *ast.PropertyAccess:
		return &ast.PropertyAssignExpression{Object: target.Object, Property: target.Property, Value: value, Line: line}
	default:
		p.errors = append(p.errors, "invalid assignment target")
		return nil
	}
}

// noPrefixParseFnError records an error when we can't parse a prefix expression
func (p *Parser) noPrefixParseFnError(t token.Type) {
	msg := fmt.Sprintf("no prefix parse function for %s found (line %d)", t, p.currentToken.Line)
	p.errors = append(p.errors, msg)
}
