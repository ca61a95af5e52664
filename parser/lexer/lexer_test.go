package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lisplet/lisplet/parser/token"
)

func lexAll(t *testing.T, src string) []*token.Token {
	t.Helper()
	lex := New("test", []byte(src))
	var tokens []*token.Token
	for {
		tok := lex.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF || tok.Type == token.ERROR {
			return tokens
		}
		require.Less(t, len(tokens), 1000, "lexer failed to terminate")
	}
}

func TestLex(t *testing.T) {
	tests := []struct {
		src   string
		types []token.Type
		texts []string
	}{
		{"", []token.Type{token.EOF}, []string{""}},
		{"   \n ", []token.Type{token.EOF}, []string{""}},
		{"()", []token.Type{token.PAREN_L, token.PAREN_R, token.EOF}, []string{"(", ")", ""}},
		{"42", []token.Type{token.NUMBER, token.EOF}, []string{"42", ""}},
		{"3.14", []token.Type{token.NUMBER, token.EOF}, []string{"3.14", ""}},
		{"-7", []token.Type{token.NUMBER, token.EOF}, []string{"-7", ""}},
		{"- 7", []token.Type{token.SYMBOL, token.NUMBER, token.EOF}, []string{"-", "7", ""}},
		{"foo_bar", []token.Type{token.SYMBOL, token.EOF}, []string{"foo_bar", ""}},
		{"+ != >= set!", []token.Type{token.SYMBOL, token.SYMBOL, token.SYMBOL, token.SYMBOL, token.EOF}, []string{"+", "!=", ">=", "set!", ""}},
		{`"hi"`, []token.Type{token.STRING, token.EOF}, []string{`"hi"`, ""}},
		{`"a\"b"`, []token.Type{token.STRING, token.EOF}, []string{`"a\"b"`, ""}},
		{"; note\n1", []token.Type{token.COMMENT, token.NUMBER, token.EOF}, []string{"; note", "1", ""}},
		{"(+ 1 2)", []token.Type{token.PAREN_L, token.SYMBOL, token.NUMBER, token.NUMBER, token.PAREN_R, token.EOF}, []string{"(", "+", "1", "2", ")", ""}},
	}
	for _, test := range tests {
		tokens := lexAll(t, test.src)
		require.Len(t, tokens, len(test.types), "source: %q", test.src)
		for i, tok := range tokens {
			assert.Equal(t, test.types[i], tok.Type, "source: %q token %d", test.src, i)
			assert.Equal(t, test.texts[i], tok.Text, "source: %q token %d", test.src, i)
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		src string
		msg string
	}{
		{`"unterminated`, "unterminated string literal"},
		{"\"broken\nstring\"", "unterminated string literal"},
		{"12.", "malformed number"},
		{"1x", "malformed number"},
		{"@", "unexpected character '@'"},
	}
	for _, test := range tests {
		tokens := lexAll(t, test.src)
		last := tokens[len(tokens)-1]
		require.Equal(t, token.ERROR, last.Type, "source: %q", test.src)
		assert.Contains(t, last.Text, test.msg, "source: %q", test.src)
	}
}

func TestLexLocations(t *testing.T) {
	lex := New("test", []byte("(foo\n  42)"))

	tok := lex.NextToken()
	require.Equal(t, token.PAREN_L, tok.Type)
	assert.Equal(t, 1, tok.Source.Line)
	assert.Equal(t, 1, tok.Source.Col)

	tok = lex.NextToken()
	require.Equal(t, token.SYMBOL, tok.Type)
	assert.Equal(t, 1, tok.Source.Line)
	assert.Equal(t, 2, tok.Source.Col)

	tok = lex.NextToken()
	require.Equal(t, token.NUMBER, tok.Type)
	assert.Equal(t, 2, tok.Source.Line)
	assert.Equal(t, 3, tok.Source.Col)
	assert.Equal(t, 7, tok.Source.Pos)

	tok = lex.NextToken()
	require.Equal(t, token.PAREN_R, tok.Type)
	tok = lex.NextToken()
	require.Equal(t, token.EOF, tok.Type)
	assert.Equal(t, "test:2:6", tok.Source.String())
}
