package lexer

// TokenKind 表示 token 的类型
type TokenKind int

const (
	// 特殊 token
	TOKEN_NONE TokenKind = iota // 空 token（用于 LT(0) 的中性结果）
	TOKEN_EOF
	TOKEN_COMMENT
	TOKEN_UNKNOWN // 无法识别的字符（单字符兜底）

	// 标识符和字面量
	TOKEN_IDENT  // 标识符
	TOKEN_NUMBER // 整数或浮点数
	TOKEN_STRING // 字符串字面量
	TOKEN_CHAR   // 字符字面量

	// Java 关键字
	TOKEN_ABSTRACT
	TOKEN_ASSERT
	TOKEN_BOOLEAN
	TOKEN_BREAK
	TOKEN_BYTE
	TOKEN_CASE
	TOKEN_CATCH
	TOKEN_CHAR_KW // char 类型关键字（区别于字符字面量）
	TOKEN_CLASS
	TOKEN_CONTINUE
	TOKEN_DEFAULT
	TOKEN_DO
	TOKEN_ELSE
	TOKEN_ENUM
	TOKEN_EXTENDS
	TOKEN_FINAL
	TOKEN_FINALLY
	TOKEN_FLOAT
	TOKEN_FOR
	TOKEN_IF
	TOKEN_IMPLEMENTS
	TOKEN_IMPORT
	TOKEN_INSTANCEOF
	TOKEN_INT
	TOKEN_INTERFACE
	TOKEN_LONG
	TOKEN_NATIVE
	TOKEN_NEW
	TOKEN_PACKAGE
	TOKEN_PRIVATE
	TOKEN_PROTECTED
	TOKEN_PUBLIC
	TOKEN_RETURN
	TOKEN_SHORT
	TOKEN_STATIC
	TOKEN_STRICTFP
	TOKEN_SUPER
	TOKEN_SWITCH
	TOKEN_SYNCHRONIZED
	TOKEN_THIS
	TOKEN_THROW
	TOKEN_THROWS
	TOKEN_TRANSIENT
	TOKEN_TRY
	TOKEN_VOID
	TOKEN_VOLATILE
	TOKEN_WHILE

	// 多字符运算符
	TOKEN_URSHIFT_ASSIGN // >>>=
	TOKEN_RSHIFT_ASSIGN  // >>=
	TOKEN_LSHIFT_ASSIGN  // <<=
	TOKEN_EQUAL          // ==
	TOKEN_LE             // <=
	TOKEN_GE             // >=
	TOKEN_NOTEQUAL       // !=
	TOKEN_AND            // &&
	TOKEN_OR             // ||
	TOKEN_INC            // ++
	TOKEN_DEC            // --
	TOKEN_ADD_ASSIGN     // +=
	TOKEN_SUB_ASSIGN     // -=
	TOKEN_MUL_ASSIGN     // *=
	TOKEN_DIV_ASSIGN     // /=
	TOKEN_AND_ASSIGN     // &=
	TOKEN_OR_ASSIGN      // |=
	TOKEN_XOR_ASSIGN     // ^=
	TOKEN_MOD_ASSIGN     // %=
	TOKEN_ARROW          // ->
	TOKEN_COLONCOLON     // ::
	TOKEN_ELLIPSIS       // ...

	// 单字符符号
	TOKEN_LBRACE   // {
	TOKEN_RBRACE   // }
	TOKEN_LPAREN   // (
	TOKEN_RPAREN   // )
	TOKEN_LBRACK   // [
	TOKEN_RBRACK   // ]
	TOKEN_SEMI     // ;
	TOKEN_COMMA    // ,
	TOKEN_DOT      // .
	TOKEN_ASSIGN   // =
	TOKEN_GT       // >
	TOKEN_LT       // <
	TOKEN_BANG     // !
	TOKEN_TILDE    // ~
	TOKEN_QUESTION // ?
	TOKEN_COLON    // :
	TOKEN_ADD      // +
	TOKEN_SUB      // -
	TOKEN_MUL      // *
	TOKEN_DIV      // /
	TOKEN_BITAND   // &
	TOKEN_BITOR    // |
	TOKEN_CARET    // ^
	TOKEN_MOD      // %
	TOKEN_AT       // @
)

// Channel 表示 token 所在的通道
// 隐藏通道上的 token（注释）对语法分析器不可见，但仍然消耗输入
type Channel int

const (
	ChannelDefault Channel = iota
	ChannelHidden
)

// Token 表示一个词法单元
// Start/Stop 是输入中的字节偏移（闭区间），Line/Column 指向 token 的起始位置
type Token struct {
	Kind    TokenKind
	Text    string
	Channel Channel
	Start   int
	Stop    int
	Line    int
	Column  int
}

var keywords = map[string]TokenKind{
	"abstract":     TOKEN_ABSTRACT,
	"assert":       TOKEN_ASSERT,
	"boolean":      TOKEN_BOOLEAN,
	"break":        TOKEN_BREAK,
	"byte":         TOKEN_BYTE,
	"case":         TOKEN_CASE,
	"catch":        TOKEN_CATCH,
	"char":         TOKEN_CHAR_KW,
	"class":        TOKEN_CLASS,
	"continue":     TOKEN_CONTINUE,
	"default":      TOKEN_DEFAULT,
	"do":           TOKEN_DO,
	"else":         TOKEN_ELSE,
	"enum":         TOKEN_ENUM,
	"extends":      TOKEN_EXTENDS,
	"final":        TOKEN_FINAL,
	"finally":      TOKEN_FINALLY,
	"float":        TOKEN_FLOAT,
	"for":          TOKEN_FOR,
	"if":           TOKEN_IF,
	"implements":   TOKEN_IMPLEMENTS,
	"import":       TOKEN_IMPORT,
	"instanceof":   TOKEN_INSTANCEOF,
	"int":          TOKEN_INT,
	"interface":    TOKEN_INTERFACE,
	"long":         TOKEN_LONG,
	"native":       TOKEN_NATIVE,
	"new":          TOKEN_NEW,
	"package":      TOKEN_PACKAGE,
	"private":      TOKEN_PRIVATE,
	"protected":    TOKEN_PROTECTED,
	"public":       TOKEN_PUBLIC,
	"return":       TOKEN_RETURN,
	"short":        TOKEN_SHORT,
	"static":       TOKEN_STATIC,
	"strictfp":     TOKEN_STRICTFP,
	"super":        TOKEN_SUPER,
	"switch":       TOKEN_SWITCH,
	"synchronized": TOKEN_SYNCHRONIZED,
	"this":         TOKEN_THIS,
	"throw":        TOKEN_THROW,
	"throws":       TOKEN_THROWS,
	"transient":    TOKEN_TRANSIENT,
	"try":          TOKEN_TRY,
	"void":         TOKEN_VOID,
	"volatile":     TOKEN_VOLATILE,
	"while":        TOKEN_WHILE,
}

// symbolEntry 符号表条目
type symbolEntry struct {
	Text string
	Kind TokenKind
}

// symbols 运算符/标点符号表，长的在前（最长匹配优先）
var symbols = []symbolEntry{
	{">>>=", TOKEN_URSHIFT_ASSIGN},
	{">>=", TOKEN_RSHIFT_ASSIGN},
	{"<<=", TOKEN_LSHIFT_ASSIGN},
	{"...", TOKEN_ELLIPSIS},
	{"==", TOKEN_EQUAL},
	{"<=", TOKEN_LE},
	{">=", TOKEN_GE},
	{"!=", TOKEN_NOTEQUAL},
	{"&&", TOKEN_AND},
	{"||", TOKEN_OR},
	{"++", TOKEN_INC},
	{"--", TOKEN_DEC},
	{"+=", TOKEN_ADD_ASSIGN},
	{"-=", TOKEN_SUB_ASSIGN},
	{"*=", TOKEN_MUL_ASSIGN},
	{"/=", TOKEN_DIV_ASSIGN},
	{"&=", TOKEN_AND_ASSIGN},
	{"|=", TOKEN_OR_ASSIGN},
	{"^=", TOKEN_XOR_ASSIGN},
	{"%=", TOKEN_MOD_ASSIGN},
	{"->", TOKEN_ARROW},
	{"::", TOKEN_COLONCOLON},
	{"{", TOKEN_LBRACE},
	{"}", TOKEN_RBRACE},
	{"(", TOKEN_LPAREN},
	{")", TOKEN_RPAREN},
	{"[", TOKEN_LBRACK},
	{"]", TOKEN_RBRACK},
	{";", TOKEN_SEMI},
	{",", TOKEN_COMMA},
	{".", TOKEN_DOT},
	{"=", TOKEN_ASSIGN},
	{">", TOKEN_GT},
	{"<", TOKEN_LT},
	{"!", TOKEN_BANG},
	{"~", TOKEN_TILDE},
	{"?", TOKEN_QUESTION},
	{":", TOKEN_COLON},
	{"+", TOKEN_ADD},
	{"-", TOKEN_SUB},
	{"*", TOKEN_MUL},
	{"/", TOKEN_DIV},
	{"&", TOKEN_BITAND},
	{"|", TOKEN_BITOR},
	{"^", TOKEN_CARET},
	{"%", TOKEN_MOD},
	{"@", TOKEN_AT},
}

// LookupIdent 查找标识符是否为关键字
func LookupIdent(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TOKEN_IDENT
}

var kindNames = map[TokenKind]string{
	TOKEN_NONE:    "NONE",
	TOKEN_EOF:     "EOF",
	TOKEN_COMMENT: "COMMENT",
	TOKEN_UNKNOWN: "UNKNOWN",
	TOKEN_IDENT:   "IDENTIFIER",
	TOKEN_NUMBER:  "NUMBER",
	TOKEN_STRING:  "STRING",
	TOKEN_CHAR:    "CHAR",

	TOKEN_ABSTRACT:     "abstract",
	TOKEN_ASSERT:       "assert",
	TOKEN_BOOLEAN:      "boolean",
	TOKEN_BREAK:        "break",
	TOKEN_BYTE:         "byte",
	TOKEN_CASE:         "case",
	TOKEN_CATCH:        "catch",
	TOKEN_CHAR_KW:      "char",
	TOKEN_CLASS:        "class",
	TOKEN_CONTINUE:     "continue",
	TOKEN_DEFAULT:      "default",
	TOKEN_DO:           "do",
	TOKEN_ELSE:         "else",
	TOKEN_ENUM:         "enum",
	TOKEN_EXTENDS:      "extends",
	TOKEN_FINAL:        "final",
	TOKEN_FINALLY:      "finally",
	TOKEN_FLOAT:        "float",
	TOKEN_FOR:          "for",
	TOKEN_IF:           "if",
	TOKEN_IMPLEMENTS:   "implements",
	TOKEN_IMPORT:       "import",
	TOKEN_INSTANCEOF:   "instanceof",
	TOKEN_INT:          "int",
	TOKEN_INTERFACE:    "interface",
	TOKEN_LONG:         "long",
	TOKEN_NATIVE:       "native",
	TOKEN_NEW:          "new",
	TOKEN_PACKAGE:      "package",
	TOKEN_PRIVATE:      "private",
	TOKEN_PROTECTED:    "protected",
	TOKEN_PUBLIC:       "public",
	TOKEN_RETURN:       "return",
	TOKEN_SHORT:        "short",
	TOKEN_STATIC:       "static",
	TOKEN_STRICTFP:     "strictfp",
	TOKEN_SUPER:        "super",
	TOKEN_SWITCH:       "switch",
	TOKEN_SYNCHRONIZED: "synchronized",
	TOKEN_THIS:         "this",
	TOKEN_THROW:        "throw",
	TOKEN_THROWS:       "throws",
	TOKEN_TRANSIENT:    "transient",
	TOKEN_TRY:          "try",
	TOKEN_VOID:         "void",
	TOKEN_VOLATILE:     "volatile",
	TOKEN_WHILE:        "while",

	TOKEN_URSHIFT_ASSIGN: ">>>=",
	TOKEN_RSHIFT_ASSIGN:  ">>=",
	TOKEN_LSHIFT_ASSIGN:  "<<=",
	TOKEN_EQUAL:          "==",
	TOKEN_LE:             "<=",
	TOKEN_GE:             ">=",
	TOKEN_NOTEQUAL:       "!=",
	TOKEN_AND:            "&&",
	TOKEN_OR:             "||",
	TOKEN_INC:            "++",
	TOKEN_DEC:            "--",
	TOKEN_ADD_ASSIGN:     "+=",
	TOKEN_SUB_ASSIGN:     "-=",
	TOKEN_MUL_ASSIGN:     "*=",
	TOKEN_DIV_ASSIGN:     "/=",
	TOKEN_AND_ASSIGN:     "&=",
	TOKEN_OR_ASSIGN:      "|=",
	TOKEN_XOR_ASSIGN:     "^=",
	TOKEN_MOD_ASSIGN:     "%=",
	TOKEN_ARROW:          "->",
	TOKEN_COLONCOLON:     "::",
	TOKEN_ELLIPSIS:       "...",

	TOKEN_LBRACE:   "{",
	TOKEN_RBRACE:   "}",
	TOKEN_LPAREN:   "(",
	TOKEN_RPAREN:   ")",
	TOKEN_LBRACK:   "[",
	TOKEN_RBRACK:   "]",
	TOKEN_SEMI:     ";",
	TOKEN_COMMA:    ",",
	TOKEN_DOT:      ".",
	TOKEN_ASSIGN:   "=",
	TOKEN_GT:       ">",
	TOKEN_LT:       "<",
	TOKEN_BANG:     "!",
	TOKEN_TILDE:    "~",
	TOKEN_QUESTION: "?",
	TOKEN_COLON:    ":",
	TOKEN_ADD:      "+",
	TOKEN_SUB:      "-",
	TOKEN_MUL:      "*",
	TOKEN_DIV:      "/",
	TOKEN_BITAND:   "&",
	TOKEN_BITOR:    "|",
	TOKEN_CARET:    "^",
	TOKEN_MOD:      "%",
	TOKEN_AT:       "@",
}

// TokenKindName 返回 token 类型的名称
func TokenKindName(t TokenKind) string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}
