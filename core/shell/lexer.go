package shell

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	blankSet = " \t\r\n"
	// Punctuation accepted inside unquoted words besides letters and digits.
	wordPunctSet = "_~-./*?=@%+:,[]"
)

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(wordPunctSet, r)
}

// A "#" only starts a comment at the beginning of a token.
func continuesWord(r rune) bool {
	return isWordRune(r) || r == '#'
}

func startsWord(r rune) bool {
	return isWordRune(r) || r == '\'' || r == '"' || r == '\\'
}

// Lexer splits a command line into tokens. It keeps a cursor into the input
// rather than consuming it, so the input can be inspected for diagnostics.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a Lexer at the start of input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Pos returns the byte offset of the cursor.
func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) rest() string {
	return l.input[l.pos:]
}

// Next returns the next token, or io.EOF once the input is exhausted.
func (l *Lexer) Next() (Token, error) {
	l.skipBlanksAndComments()
	if l.pos >= len(l.input) {
		return Token{}, io.EOF
	}

	start := l.pos
	r, size := utf8.DecodeRuneInString(l.rest())

	switch {
	case r == '(':
		l.pos += size
		return Token{Kind: LParenToken, Value: "(", Pos: start}, nil
	case r == ')':
		l.pos += size
		return Token{Kind: RParenToken, Value: ")", Pos: start}, nil
	case r == '&' && !strings.HasPrefix(l.rest(), And.String()):
		return Token{}, &LexError{Kind: UnsupportedOperator, Pos: start}
	}

	for _, op := range Ops {
		if sym := op.String(); strings.HasPrefix(l.rest(), sym) {
			l.pos += len(sym)
			return Token{Kind: OperatorToken, Op: op, Value: sym, Pos: start}, nil
		}
	}

	if startsWord(r) {
		return l.word(start)
	}

	// Anything else stands alone as a one character word. Invalid UTF-8 is
	// kept byte for byte.
	l.pos += size
	return Token{Kind: WordToken, Value: l.input[start:l.pos], Pos: start}, nil
}

func (l *Lexer) skipBlanksAndComments() {
	for l.pos < len(l.input) {
		switch c := l.input[l.pos]; {
		case strings.IndexByte(blankSet, c) >= 0:
			l.pos++
		case c == '#':
			if end := strings.IndexByte(l.rest(), '\n'); end >= 0 {
				l.pos += end + 1
			} else {
				l.pos = len(l.input)
			}
		default:
			return
		}
	}
}

// word reads a word made of unquoted word characters, quoted spans and escapes.
func (l *Lexer) word(start int) (Token, error) {
	var b strings.Builder
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.rest())
		switch {
		case r == '\'':
			end := strings.IndexByte(l.input[l.pos+1:], '\'')
			if end < 0 {
				return Token{}, &LexError{Kind: UnterminatedQuote, Pos: l.pos}
			}
			b.WriteString(l.input[l.pos+1 : l.pos+1+end])
			l.pos += end + 2
		case r == '"':
			if err := l.doubleQuoted(&b); err != nil {
				return Token{}, err
			}
		case r == '\\':
			if l.pos+1 >= len(l.input) {
				return Token{}, &LexError{Kind: TrailingEscape, Pos: l.pos}
			}
			_, escSize := utf8.DecodeRuneInString(l.input[l.pos+1:])
			b.WriteString(l.input[l.pos+1 : l.pos+1+escSize])
			l.pos += 1 + escSize
		case continuesWord(r):
			b.WriteString(l.input[l.pos : l.pos+size])
			l.pos += size
		default:
			return Token{Kind: WordToken, Value: b.String(), Pos: start}, nil
		}
	}
	return Token{Kind: WordToken, Value: b.String(), Pos: start}, nil
}

// doubleQuoted reads a double quoted span starting at the cursor. Only \" and
// \\ are unescaped, any other backslash is kept.
func (l *Lexer) doubleQuoted(b *strings.Builder) error {
	open := l.pos
	l.pos++
	for l.pos < len(l.input) {
		switch c := l.input[l.pos]; c {
		case '"':
			l.pos++
			return nil
		case '\\':
			if l.pos+1 < len(l.input) && (l.input[l.pos+1] == '"' || l.input[l.pos+1] == '\\') {
				b.WriteByte(l.input[l.pos+1])
				l.pos += 2
				continue
			}
			b.WriteByte(c)
			l.pos++
		default:
			b.WriteByte(c)
			l.pos++
		}
	}
	return &LexError{Kind: UnterminatedQuote, Pos: open}
}

// Tokenize splits input into tokens. It is safe to call concurrently.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	lexer := NewLexer(input)
	for {
		tok, err := lexer.Next()
		switch {
		case err == io.EOF:
			return tokens, nil
		case err != nil:
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}
