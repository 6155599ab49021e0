package shell

import (
	"errors"
	"fmt"
	"testing"

	"github.com/anmitsu/go-shlex"
	"github.com/stretchr/testify/assert"
)

// describe flattens tokens to "kind:value" for compact comparisons.
func describe(tokens []Token) []string {
	var out []string
	for _, tok := range tokens {
		out = append(out, fmt.Sprintf("%s:%s", tok.Kind, tok.Value))
	}
	return out
}

func TestTokenize(t *testing.T) {
	cases := map[string]struct {
		input string
		want  []string
	}{
		"empty": {
			input: "",
			want:  nil,
		},
		"blank": {
			input: " \t\r\n ",
			want:  nil,
		},
		"words": {
			input: "echo  hello\tworld",
			want:  []string{"word:echo", "word:hello", "word:world"},
		},
		"operators without spaces": {
			input: "a||b|c&&d;e<f>g",
			want: []string{
				"word:a", "operator:||", "word:b", "operator:|", "word:c",
				"operator:&&", "word:d", "operator:;", "word:e", "operator:<",
				"word:f", "operator:>", "word:g",
			},
		},
		"greedy pipes": {
			input: "a|||b",
			want:  []string{"word:a", "operator:||", "operator:|", "word:b"},
		},
		"parens": {
			input: "(a)",
			want:  []string{"lparen:(", "word:a", "rparen:)"},
		},
		"single quotes": {
			input: "grep -v '^#' /etc/somefile.conf",
			want:  []string{"word:grep", "word:-v", "word:^#", "word:/etc/somefile.conf"},
		},
		"single quotes keep backslashes": {
			input: `tr -d '\n'`,
			want:  []string{"word:tr", "word:-d", `word:\n`},
		},
		"double quote escapes": {
			input: `echo "a \"b\" \\ \n"`,
			want:  []string{"word:echo", `word:a "b" \ \n`},
		},
		"unquoted escapes": {
			input: `sed s,\</\\?p\>,,g a\ b`,
			want:  []string{"word:sed", `word:s,</\?p>,,g`, "word:a b"},
		},
		"quoted operators are words": {
			input: `echo '|' "&&" \; '(' ")"`,
			want:  []string{"word:echo", "word:|", "word:&&", "word:;", "word:(", "word:)"},
		},
		"quotes continue words": {
			input: `a'b c'"d"e`,
			want:  []string{"word:ab cde"},
		},
		"empty quotes": {
			input: `echo '' ""`,
			want:  []string{"word:echo", "word:", "word:"},
		},
		"comment": {
			input: "echo hi # not | parsed\necho bye",
			want:  []string{"word:echo", "word:hi", "word:echo", "word:bye"},
		},
		// POSIX sh keeps a # inside a word, Python's shlex would end the word
		// and drop "#b" as a comment.
		"hash inside word": {
			input: "echo a#b",
			want:  []string{"word:echo", "word:a#b"},
		},
		"extended word characters": {
			input: "date +%Y-%m-%d [[:alnum:]] if=/dev/urandom A-Za-z0-9 user@host:a,b",
			want: []string{
				"word:date", "word:+%Y-%m-%d", "word:[[:alnum:]]", "word:if=/dev/urandom",
				"word:A-Za-z0-9", "word:user@host:a,b",
			},
		},
		"other punctuation stands alone": {
			input: "echo $HOME!",
			want:  []string{"word:echo", "word:$", "word:HOME", "word:!"},
		},
		"invalid utf-8 kept": {
			input: "a\xffb",
			want:  []string{"word:a", "word:\xff", "word:b"},
		},
		"unicode letters": {
			input: "echo héllo wörld",
			want:  []string{"word:echo", "word:héllo", "word:wörld"},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			tokens, err := Tokenize(tc.input)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, describe(tokens))
		})
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("a || (b 'c d')")
	assert.Nil(t, err)
	assert.Equal(t, []Token{
		{Kind: WordToken, Value: "a", Pos: 0},
		{Kind: OperatorToken, Op: Or, Value: "||", Pos: 2},
		{Kind: LParenToken, Value: "(", Pos: 5},
		{Kind: WordToken, Value: "b", Pos: 6},
		{Kind: WordToken, Value: "c d", Pos: 8},
		{Kind: RParenToken, Value: ")", Pos: 13},
	}, tokens)
}

func TestTokenizeErrors(t *testing.T) {
	cases := map[string]struct {
		input    string
		kind     LexErrorKind
		pos      int
		sentinel error
	}{
		"open single quote": {
			input:    "echo 'abc",
			kind:     UnterminatedQuote,
			pos:      5,
			sentinel: ErrUnterminatedQuote,
		},
		"open double quote": {
			input:    `echo x "abc`,
			kind:     UnterminatedQuote,
			pos:      7,
			sentinel: ErrUnterminatedQuote,
		},
		"escape inside open double quote": {
			input:    `echo "abc\`,
			kind:     UnterminatedQuote,
			pos:      5,
			sentinel: ErrUnterminatedQuote,
		},
		"trailing escape": {
			input:    `echo abc\`,
			kind:     TrailingEscape,
			pos:      8,
			sentinel: ErrUnterminatedQuote,
		},
		"background": {
			input:    "sleep 1 &",
			kind:     UnsupportedOperator,
			pos:      8,
			sentinel: ErrUnsupportedOperator,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			tokens, err := Tokenize(tc.input)
			assert.Nil(t, tokens)
			assert.ErrorIs(t, err, tc.sentinel)

			var lexErr *LexError
			if assert.True(t, errors.As(err, &lexErr)) {
				assert.Equal(t, tc.kind, lexErr.Kind)
				assert.Equal(t, tc.pos, lexErr.Pos)
			}
		})
	}
}

func TestLexerIsRestartable(t *testing.T) {
	const line = `cat /dev/urandom | tr -dc A-Za-z0-9 | head -c 32`

	first, err := Tokenize(line)
	assert.Nil(t, err)
	second, err := Tokenize(line)
	assert.Nil(t, err)
	assert.Equal(t, first, second)
}

// Without operators the lexer should split words the same way a POSIX shlex
// does.
func TestTokenizeMatchesShlex(t *testing.T) {
	lines := []string{
		"grep -v '^#' /etc/somefile.conf",
		`echo "a b" c\ d`,
		"date +%Y-%m-%d-%H.%M.%S",
		`printf 'x y' "z \" w" \\`,
		"dd bs=256 count=1 if=/dev/urandom status=none",
		`a'b c'"d"e`,
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			want, err := shlex.Split(line, true)
			assert.Nil(t, err)

			tokens, err := Tokenize(line)
			assert.Nil(t, err)

			var got []string
			for _, tok := range tokens {
				assert.Equal(t, WordToken, tok.Kind)
				got = append(got, tok.Value)
			}
			assert.Equal(t, want, got)
		})
	}
}
