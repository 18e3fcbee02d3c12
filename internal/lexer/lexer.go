package lexer

import (
	"strings"
)

// Span 记录一段被跳过的空白（字节偏移，闭区间）
type Span struct {
	Start int
	Stop  int
}

// Lexer 词法分析器
type Lexer struct {
	input   string
	pos     int    // 当前字节偏移
	line    int    // 当前行号（从 1 开始）
	column  int    // 当前列号（从 0 开始）
	skipped []Span // 被跳过的空白区间
}

// New 创建一个新的词法分析器
func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
}

// NextToken 返回下一个 token
// 对任意输入都能推进：无法识别的字节作为单字符 UNKNOWN 返回
// 到达末尾后反复调用始终返回同一个 EOF token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{
			Kind:   TOKEN_EOF,
			Text:   "",
			Start:  len(l.input),
			Stop:   len(l.input) - 1,
			Line:   l.line,
			Column: l.column,
		}
	}

	ch := l.input[l.pos]

	// 注释（进隐藏通道）
	if ch == '/' && l.pos+1 < len(l.input) {
		if l.input[l.pos+1] == '/' {
			end := l.pos + 2
			for end < len(l.input) && l.input[end] != '\n' {
				end++
			}
			return l.emit(TOKEN_COMMENT, l.input[l.pos:end], ChannelHidden)
		}
		if l.input[l.pos+1] == '*' {
			if end, ok := l.findBlockCommentEnd(); ok {
				return l.emit(TOKEN_COMMENT, l.input[l.pos:end], ChannelHidden)
			}
			// 未闭合的块注释不算注释，落入符号匹配
		}
	}

	// 字符串字面量（必须有结尾引号，否则落入符号匹配）
	if ch == '"' {
		if end, ok := l.findQuoteEnd('"'); ok {
			return l.emit(TOKEN_STRING, l.input[l.pos:end], ChannelDefault)
		}
	}

	// 字符字面量
	if ch == '\'' {
		if end, ok := l.findQuoteEnd('\''); ok {
			return l.emit(TOKEN_CHAR, l.input[l.pos:end], ChannelDefault)
		}
	}

	// 数字（整数或浮点数）
	if isDigit(ch) {
		end := l.pos
		for end < len(l.input) && isDigit(l.input[end]) {
			end++
		}
		if end+1 < len(l.input) && l.input[end] == '.' && isDigit(l.input[end+1]) {
			end++
			for end < len(l.input) && isDigit(l.input[end]) {
				end++
			}
		}
		// 科学计数法后缀
		if end < len(l.input) && (l.input[end] == 'e' || l.input[end] == 'E') {
			expEnd := end + 1
			if expEnd < len(l.input) && (l.input[expEnd] == '+' || l.input[expEnd] == '-') {
				expEnd++
			}
			if expEnd < len(l.input) && isDigit(l.input[expEnd]) {
				for expEnd < len(l.input) && isDigit(l.input[expEnd]) {
					expEnd++
				}
				end = expEnd
			}
		}
		return l.emit(TOKEN_NUMBER, l.input[l.pos:end], ChannelDefault)
	}

	// 标识符或关键字
	if isLetter(ch) {
		end := l.pos
		for end < len(l.input) && (isLetter(l.input[end]) || isDigit(l.input[end])) {
			end++
		}
		text := l.input[l.pos:end]
		return l.emit(LookupIdent(text), text, ChannelDefault)
	}

	// 运算符/标点，最长匹配优先
	for _, sym := range symbols {
		if strings.HasPrefix(l.input[l.pos:], sym.Text) {
			return l.emit(sym.Kind, sym.Text, ChannelDefault)
		}
	}

	// 兜底：单字符 UNKNOWN
	return l.emit(TOKEN_UNKNOWN, l.input[l.pos:l.pos+1], ChannelDefault)
}

// emit 生成 token 并推进位置
func (l *Lexer) emit(kind TokenKind, text string, channel Channel) Token {
	tok := Token{
		Kind:    kind,
		Text:    text,
		Channel: channel,
		Start:   l.pos,
		Stop:    l.pos + len(text) - 1,
		Line:    l.line,
		Column:  l.column,
	}
	l.advance(len(text))
	return tok
}

// advance 前进 n 个字节并维护行列号
func (l *Lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.input); i++ {
		if l.input[l.pos] == '\n' {
			l.line++
			l.column = 0
		} else {
			l.column++
		}
		l.pos++
	}
}

// skipWhitespace 跳过空白字符并记录区间
func (l *Lexer) skipWhitespace() {
	start := l.pos
	for l.pos < len(l.input) && isWhitespace(l.input[l.pos]) {
		l.advance(1)
	}
	if l.pos > start {
		l.skipped = append(l.skipped, Span{Start: start, Stop: l.pos - 1})
	}
}

// findBlockCommentEnd 查找块注释的结束偏移（含 */）
func (l *Lexer) findBlockCommentEnd() (int, bool) {
	for i := l.pos + 2; i+1 < len(l.input); i++ {
		if l.input[i] == '*' && l.input[i+1] == '/' {
			return i + 2, true
		}
	}
	return 0, false
}

// findQuoteEnd 查找引号字面量的结束偏移（含结尾引号），支持反斜杠转义
func (l *Lexer) findQuoteEnd(quote byte) (int, bool) {
	for i := l.pos + 1; i < len(l.input); i++ {
		if l.input[i] == '\\' {
			i++
			continue
		}
		if l.input[i] == quote {
			return i + 1, true
		}
	}
	return 0, false
}

// Skipped 返回到目前为止跳过的空白区间
func (l *Lexer) Skipped() []Span {
	return l.skipped
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize 扫描整个输入，返回包含 EOF 在内的全部 token
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TOKEN_EOF {
			break
		}
	}
	return tokens
}
