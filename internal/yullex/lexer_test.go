package yullex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, source string) []Token {
	t.Helper()
	l := New(source)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	tokens := tokenize(t, "function add1 object")
	require.Equal(t, []TokenType{FUNCTION, IDENTIFIER, OBJECT, EOF}, typesOf(tokens))
	require.Equal(t, "add1", tokens[1].Text)
}

func TestLexer_NumbersAndHex(t *testing.T) {
	tokens := tokenize(t, "123 0xAb")
	require.Equal(t, []TokenType{NUMBER, HEXNUMBER, EOF}, typesOf(tokens))
	require.Equal(t, "123", tokens[0].Text)
	require.Equal(t, "Ab", tokens[1].Text)
}

func TestLexer_StringWithEscape(t *testing.T) {
	tokens := tokenize(t, `"hello \"world\""`)
	require.Equal(t, []TokenType{STRING, EOF}, typesOf(tokens))
	require.Equal(t, `hello "world"`, tokens[0].Text)
}

func TestLexer_Punctuation(t *testing.T) {
	tokens := tokenize(t, "{ } ( ) , : := ->")
	require.Equal(t, []TokenType{LBRACE, RBRACE, LPAREN, RPAREN, COMMA, COLON, ASSIGN, ARROW, EOF}, typesOf(tokens))
}

func TestLexer_SkipsComments(t *testing.T) {
	tokens := tokenize(t, "let x := 1 // trailing comment\n/* block\ncomment */let y := 2")
	require.Equal(t, []TokenType{LET, IDENTIFIER, ASSIGN, NUMBER, LET, IDENTIFIER, ASSIGN, NUMBER, EOF}, typesOf(tokens))
}

func TestLexer_TracksLineAndColumn(t *testing.T) {
	tokens := tokenize(t, "let x\nlet y")
	// tokens: LET(1,1) IDENTIFIER(x)(1,5) LET(2,1) IDENTIFIER(y)(2,5) EOF
	require.Equal(t, 2, tokens[2].Line)
	require.Equal(t, 1, tokens[2].Column)
	require.Equal(t, 2, tokens[3].Line)
	require.Equal(t, 5, tokens[3].Column)
}

func TestLexer_UnterminatedStringErrors(t *testing.T) {
	l := New(`"unterminated`)
	_, err := l.NextToken()
	require.Error(t, err)
}

func typesOf(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}
