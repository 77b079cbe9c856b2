package token

import "testing"

func TestTokenTypeConstants(t *testing.T) {
	tests := []struct {
		tokenType Type
		expected  string
	}{
		{EOF, "EOF"},
		{ILLEGAL, "ILLEGAL"},
		{IDENT, "IDENT"},
		{INT, "INT"},
		{FLOAT, "FLOAT"},
		{STRING, "STRING"},
		{ASSIGN, "="},
		{PLUS, "+"},
		{MINUS, "-"},
		{STAR, "*"},
		{SLASH, "/"},
		{PERCENT, "%"},
		{BANG, "!"},
		{DOT, "."},
		{PLUS_ASSIGN, "+="},
		{MINUS_ASSIGN, "-="},
		{STAR_ASSIGN, "*="},
		{SLASH_ASSIGN, "/="},
		{PERCENT_ASSIGN, "%="},
		{INCREMENT, "++"},
		{DECREMENT, "--"},
		{AND, "&&"},
		{OR, "||"},
		{EQ, "=="},
		{NEQ, "!="},
		{LT, "<"},
		{GT, ">"},
		{LTE, "<="},
		{GTE, ">="},
		{LPAREN, "("},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RBRACE, "}"},
		{LBRACKET, "["},
		{RBRACKET, "]"},
		{COMMA, ","},
		{SEMICOLON, ";"},
		{COLON, ":"},
		{VAR, "var"},
		{LET, "let"},
		{FUNC, "function"},
		{IF, "if"},
		{ELSE, "else"},
		{WHILE, "while"},
		{FOR, "for"},
		{BREAK, "break"},
		{CONTINUE, "continue"},
		{RETURN, "return"},
		{TRUE, "true"},
		{FALSE, "false"},
		{NULL, "null"},
		{UNDEFINED, "undefined"},
		{NEW, "new"},
	}

	for _, tt := range tests {
		if string(tt.tokenType) != tt.expected {
			t.Errorf("Token type mismatch: expected %q, got %q", tt.expected, string(tt.tokenType))
		}
	}
}

func TestTokenCreation(t *testing.T) {
	tok := Token{
		Type:    INT,
		Literal: "42",
		Line:    3,
	}

	if tok.Type != INT {
		t.Errorf("Expected token type INT, got %q", tok.Type)
	}

	if tok.Literal != "42" {
		t.Errorf("Expected literal '42', got %q", tok.Literal)
	}

	if tok.Line != 3 {
		t.Errorf("Expected line 3, got %d", tok.Line)
	}
}

func TestLookupIdent_Keywords(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{"var", VAR},
		{"let", LET},
		{"function", FUNC},
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"for", FOR},
		{"break", BREAK},
		{"continue", CONTINUE},
		{"return", RETURN},
		{"true", TRUE},
		{"false", FALSE},
		{"null", NULL},
		{"undefined", UNDEFINED},
		{"new", NEW},
	}

	for _, tt := range tests {
		result := LookupIdent(tt.input)
		if result != tt.expected {
			t.Errorf("LookupIdent(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestLookupIdent_Identifiers(t *testing.T) {
	tests := []string{
		"myVariable",
		"x",
		"counter",
		"userName",
		"calculate",
		"VAR", // Case sensitive
		"FUNCTION",
		"If",
	}

	for _, ident := range tests {
		result := LookupIdent(ident)
		if result != IDENT {
			t.Errorf("LookupIdent(%q) should return IDENT, got %q", ident, result)
		}
	}
}

func TestLookupIdent_CaseSensitive(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{"var", VAR},
		{"Var", IDENT},
		{"VAR", IDENT},
		{"if", IF},
		{"If", IDENT},
		{"IF", IDENT},
		{"true", TRUE},
		{"True", IDENT},
		{"TRUE", IDENT},
	}

	for _, tt := range tests {
		result := LookupIdent(tt.input)
		if result != tt.expected {
			t.Errorf("LookupIdent(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestAllKeywordsInMap(t *testing.T) {
	expectedKeywords := []string{
		"var", "let", "function", "if", "else", "while", "for", "break", "continue",
		"return", "true", "false", "null", "undefined", "new",
	}

	for _, keyword := range expectedKeywords {
		if _, exists := keywords[keyword]; !exists {
			t.Errorf("Keyword %q not found in keywords map", keyword)
		}
	}
}

func TestKeywordsMapSize(t *testing.T) {
	expectedSize := 15

	if len(keywords) != expectedSize {
		t.Errorf("Expected %d keywords in map, got %d", expectedSize, len(keywords))
	}
}

func TestTokenTypeAsString(t *testing.T) {
	tok := Token{Type: PLUS, Literal: "+"}

	typeAsString := string(tok.Type)
	if typeAsString != "+" {
		t.Errorf("Expected '+', got %q", typeAsString)
	}
}
