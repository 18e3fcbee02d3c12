package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTokenBasics(t *testing.T) {
	input := `public class A { int x = 1; }`

	expected := []struct {
		kind TokenKind
		text string
	}{
		{TOKEN_PUBLIC, "public"},
		{TOKEN_CLASS, "class"},
		{TOKEN_IDENT, "A"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_INT, "int"},
		{TOKEN_IDENT, "x"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_NUMBER, "1"},
		{TOKEN_SEMI, ";"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_EOF, ""},
	}

	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		require.Equal(t, exp.kind, tok.Kind, "token %d", i)
		require.Equal(t, exp.text, tok.Text, "token %d", i)
	}
}

func TestLongestMatchFirst(t *testing.T) {
	input := ">>>= >>= <<= ... <= >= == != && || ++ -- += -> ::"

	expected := []TokenKind{
		TOKEN_URSHIFT_ASSIGN, TOKEN_RSHIFT_ASSIGN, TOKEN_LSHIFT_ASSIGN,
		TOKEN_ELLIPSIS, TOKEN_LE, TOKEN_GE, TOKEN_EQUAL, TOKEN_NOTEQUAL,
		TOKEN_AND, TOKEN_OR, TOKEN_INC, TOKEN_DEC, TOKEN_ADD_ASSIGN,
		TOKEN_ARROW, TOKEN_COLONCOLON, TOKEN_EOF,
	}

	var got []TokenKind
	for _, tok := range Tokenize(input) {
		got = append(got, tok.Kind)
	}
	require.Equal(t, expected, got)
}

func TestKeywordsVersusIdentifiers(t *testing.T) {
	l := New("while whileLoop char charlie double")

	tok := l.NextToken()
	assert.Equal(t, TOKEN_WHILE, tok.Kind)

	tok = l.NextToken()
	assert.Equal(t, TOKEN_IDENT, tok.Kind)
	assert.Equal(t, "whileLoop", tok.Text)

	tok = l.NextToken()
	assert.Equal(t, TOKEN_CHAR_KW, tok.Kind)

	tok = l.NextToken()
	assert.Equal(t, TOKEN_IDENT, tok.Kind)

	// double 不是本方言的关键字，按标识符处理
	tok = l.NextToken()
	assert.Equal(t, TOKEN_IDENT, tok.Kind)
	assert.Equal(t, "double", tok.Text)
}

func TestPositions(t *testing.T) {
	input := "int x;\nx = 10;"
	tokens := Tokenize(input)

	// int 在第 1 行第 0 列
	require.Equal(t, 1, tokens[0].Line)
	require.Equal(t, 0, tokens[0].Column)
	require.Equal(t, 0, tokens[0].Start)
	require.Equal(t, 2, tokens[0].Stop)

	// x（第二行开头）在第 2 行第 0 列
	var second Token
	for _, tok := range tokens {
		if tok.Line == 2 {
			second = tok
			break
		}
	}
	require.Equal(t, TOKEN_IDENT, second.Kind)
	require.Equal(t, 0, second.Column)
	require.Equal(t, 7, second.Start)

	// 10 的闭区间偏移覆盖两个字节
	var num Token
	for _, tok := range tokens {
		if tok.Kind == TOKEN_NUMBER {
			num = tok
		}
	}
	require.Equal(t, "10", num.Text)
	require.Equal(t, num.Start+1, num.Stop)
}

func TestCommentsAreHidden(t *testing.T) {
	input := "// line comment\nint /* block */ x;"
	tokens := Tokenize(input)

	var hidden, visible []Token
	for _, tok := range tokens {
		if tok.Kind == TOKEN_EOF {
			continue
		}
		if tok.Channel == ChannelHidden {
			hidden = append(hidden, tok)
		} else {
			visible = append(visible, tok)
		}
	}

	require.Len(t, hidden, 2)
	assert.Equal(t, TOKEN_COMMENT, hidden[0].Kind)
	assert.Equal(t, "// line comment", hidden[0].Text)
	assert.Equal(t, "/* block */", hidden[1].Text)

	require.Len(t, visible, 3)
	assert.Equal(t, TOKEN_INT, visible[0].Kind)
	assert.Equal(t, TOKEN_IDENT, visible[1].Kind)
	assert.Equal(t, TOKEN_SEMI, visible[2].Kind)
}

func TestNumberForms(t *testing.T) {
	input := "42 3.14 1e9 2.5E-3 7e+2 5e"
	tokens := Tokenize(input)

	var texts []string
	for _, tok := range tokens {
		if tok.Kind == TOKEN_NUMBER {
			texts = append(texts, tok.Text)
		}
	}
	// 5e 没有指数数字，e 不并入数字
	require.Equal(t, []string{"42", "3.14", "1e9", "2.5E-3", "7e+2", "5"}, texts)
}

func TestStringAndCharEscapes(t *testing.T) {
	input := `"a\"b" '\''`
	tokens := Tokenize(input)

	require.Equal(t, TOKEN_STRING, tokens[0].Kind)
	require.Equal(t, `"a\"b"`, tokens[0].Text)
	require.Equal(t, TOKEN_CHAR, tokens[1].Kind)
	require.Equal(t, `'\''`, tokens[1].Text)
}

func TestUnterminatedLiteralsFallThrough(t *testing.T) {
	// 没有结尾引号的字符串退化为单字符 UNKNOWN
	tokens := Tokenize(`"abc`)
	require.Equal(t, TOKEN_UNKNOWN, tokens[0].Kind)
	require.Equal(t, `"`, tokens[0].Text)

	// 未闭合的块注释退化为除号
	tokens = Tokenize("/* never closed")
	require.Equal(t, TOKEN_DIV, tokens[0].Kind)
	require.Equal(t, TOKEN_MUL, tokens[1].Kind)
}

func TestUnknownSingleChar(t *testing.T) {
	tokens := Tokenize("int x # y;")

	var unknown Token
	for _, tok := range tokens {
		if tok.Kind == TOKEN_UNKNOWN {
			unknown = tok
		}
	}
	require.Equal(t, "#", unknown.Text)
	// 后续 token 不受影响
	require.Equal(t, TOKEN_SEMI, tokens[len(tokens)-2].Kind)
}

func TestEOFIdempotent(t *testing.T) {
	l := New("x")
	l.NextToken()

	first := l.NextToken()
	require.Equal(t, TOKEN_EOF, first.Kind)
	for i := 0; i < 3; i++ {
		require.Equal(t, first, l.NextToken())
	}
	require.Equal(t, 1, first.Start)
	require.Equal(t, 0, first.Stop)
}

func TestReconstruction(t *testing.T) {
	// token 文本区间加上跳过的空白区间必须无缝覆盖整个输入
	input := "public class A {\n\tint x = 1; // note\n}\n"

	l := New(input)
	covered := make([]byte, len(input))
	for {
		tok := l.NextToken()
		if tok.Kind == TOKEN_EOF {
			break
		}
		copy(covered[tok.Start:tok.Stop+1], tok.Text)
	}
	for _, span := range l.Skipped() {
		copy(covered[span.Start:span.Stop+1], input[span.Start:span.Stop+1])
	}

	require.Equal(t, input, string(covered))
}

func TestTokenKindName(t *testing.T) {
	assert.Equal(t, "IDENTIFIER", TokenKindName(TOKEN_IDENT))
	assert.Equal(t, "while", TokenKindName(TOKEN_WHILE))
	assert.Equal(t, ">>>=", TokenKindName(TOKEN_URSHIFT_ASSIGN))
	assert.Equal(t, "UNKNOWN", TokenKindName(TokenKind(9999)))
}

func TestTokenizeAlwaysTerminates(t *testing.T) {
	// 任意字节序列都不会卡死
	input := strings.Repeat("#\x00§", 10)
	tokens := Tokenize(input)
	require.Equal(t, TOKEN_EOF, tokens[len(tokens)-1].Kind)
}
