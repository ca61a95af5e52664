package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lisplet/lisplet/parser/token"
)

// Runes beyond letters and digits that may appear inside a symbol.
// Operators like + and != lex as ordinary symbols.
const miscWordRunes = "._+-*/=<>!?"

// Lexer splits source text into tokens.
type Lexer struct {
	file string
	src  []rune
	pos  int // index of the next unread rune
	line int
	col  int
}

// New initializes and returns a Lexer reading src.  The file name is only
// used for token locations.
func New(file string, src []byte) *Lexer {
	return &Lexer{
		file: file,
		src:  []rune(string(src)),
		line: 1,
		col:  1,
	}
}

// NextToken scans and returns the next token.  At the end of input it
// returns an EOF token; it never returns nil.  Malformed input produces an
// ERROR token whose Text holds the message.
func (lex *Lexer) NextToken() *token.Token {
	lex.skipWhitespace()
	loc := lex.location()
	start := lex.pos
	if lex.eof() {
		return &token.Token{Type: token.EOF, Source: loc}
	}
	c := lex.peek()
	switch {
	case c == '(':
		lex.next()
		return lex.emit(token.PAREN_L, start, loc)
	case c == ')':
		lex.next()
		return lex.emit(token.PAREN_R, start, loc)
	case c == ';':
		for !lex.eof() && lex.peek() != '\n' {
			lex.next()
		}
		return lex.emit(token.COMMENT, start, loc)
	case c == '"':
		return lex.lexString(start, loc)
	case unicode.IsDigit(c):
		return lex.lexNumber(start, loc)
	case c == '-' && unicode.IsDigit(lex.peekAt(1)):
		lex.next()
		return lex.lexNumber(start, loc)
	case isWordRune(c):
		for !lex.eof() && isWordRune(lex.peek()) {
			lex.next()
		}
		return lex.emit(token.SYMBOL, start, loc)
	default:
		lex.next()
		return lex.errorf(loc, "unexpected character %q", c)
	}
}

func (lex *Lexer) lexString(start int, loc *token.Location) *token.Token {
	lex.next() // opening quote
	for {
		if lex.eof() || lex.peek() == '\n' {
			return lex.errorf(loc, "unterminated string literal")
		}
		switch lex.next() {
		case '"':
			return lex.emit(token.STRING, start, loc)
		case '\\':
			if lex.eof() {
				return lex.errorf(loc, "unterminated string literal")
			}
			// The escaped character is checked during parsing.
			lex.next()
		}
	}
}

func (lex *Lexer) lexNumber(start int, loc *token.Location) *token.Token {
	for !lex.eof() && unicode.IsDigit(lex.peek()) {
		lex.next()
	}
	if lex.peek() == '.' && unicode.IsDigit(lex.peekAt(1)) {
		lex.next()
		for !lex.eof() && unicode.IsDigit(lex.peek()) {
			lex.next()
		}
	}
	if !lex.eof() && isWordRune(lex.peek()) {
		for !lex.eof() && isWordRune(lex.peek()) {
			lex.next()
		}
		return lex.errorf(loc, "malformed number %q", string(lex.src[start:lex.pos]))
	}
	return lex.emit(token.NUMBER, start, loc)
}

func (lex *Lexer) emit(typ token.Type, start int, loc *token.Location) *token.Token {
	return &token.Token{
		Type:   typ,
		Text:   string(lex.src[start:lex.pos]),
		Source: loc,
	}
}

func (lex *Lexer) errorf(loc *token.Location, format string, v ...interface{}) *token.Token {
	return &token.Token{
		Type:   token.ERROR,
		Text:   fmt.Sprintf(format, v...),
		Source: loc,
	}
}

func (lex *Lexer) skipWhitespace() {
	for !lex.eof() && unicode.IsSpace(lex.peek()) {
		lex.next()
	}
}

func (lex *Lexer) location() *token.Location {
	return &token.Location{
		File: lex.file,
		Pos:  lex.pos,
		Line: lex.line,
		Col:  lex.col,
	}
}

func (lex *Lexer) eof() bool {
	return lex.pos >= len(lex.src)
}

func (lex *Lexer) peek() rune {
	return lex.peekAt(0)
}

func (lex *Lexer) peekAt(n int) rune {
	if lex.pos+n >= len(lex.src) {
		return 0
	}
	return lex.src[lex.pos+n]
}

func (lex *Lexer) next() rune {
	c := lex.src[lex.pos]
	lex.pos++
	if c == '\n' {
		lex.line++
		lex.col = 1
	} else {
		lex.col++
	}
	return c
}

func isWordRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || strings.ContainsRune(miscWordRunes, c)
}
