package parser

import (
	"strings"

	"github.com/Jennly666/Java-to-Python-Converter/internal/lexer"
)

// Node AST 节点接口
type Node interface {
	TokenLiteral() string
}

// Statement 语句接口
type Statement interface {
	Node
	statementNode()
}

// Expression 表达式接口
type Expression interface {
	Node
	expressionNode()
}

// Modifiers 修饰符集合（位掩码）
type Modifiers uint

const (
	ModPublic Modifiers = 1 << iota
	ModPrivate
	ModProtected
	ModStatic
	ModFinal
	ModAbstract
)

var modifierNames = []struct {
	bit  Modifiers
	name string
}{
	{ModPublic, "public"},
	{ModPrivate, "private"},
	{ModProtected, "protected"},
	{ModStatic, "static"},
	{ModFinal, "final"},
	{ModAbstract, "abstract"},
}

// Has 判断是否包含指定修饰符
func (m Modifiers) Has(bit Modifiers) bool {
	return m&bit != 0
}

// String 按源码顺序输出修饰符列表，逗号分隔
func (m Modifiers) String() string {
	var parts []string
	for _, e := range modifierNames {
		if m.Has(e.bit) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, ",")
}

// TypeRef 类型引用，Dims 是数组维数（int[] 为 1）
type TypeRef struct {
	Name string
	Dims int
}

// String 还原类型的源码写法
func (t TypeRef) String() string {
	return t.Name + strings.Repeat("[]", t.Dims)
}

// CompilationUnit 编译单元（一个源文件）
type CompilationUnit struct {
	Decls []*ClassDecl
}

func (c *CompilationUnit) TokenLiteral() string { return "compilation unit" }

// ClassDecl 类声明
type ClassDecl struct {
	Token   lexer.Token // class token
	Name    string      // 类名
	Mods    Modifiers   // 修饰符
	Members []Statement // 字段和方法
}

func (c *ClassDecl) TokenLiteral() string { return c.Token.Text }
func (c *ClassDecl) statementNode()       {}

// FieldDecl 变量声明（类字段或方法内局部变量）
type FieldDecl struct {
	Token    lexer.Token // 类型 token
	Mods     Modifiers   // 修饰符（局部变量为 0）
	DeclType TypeRef     // 声明类型
	Name     string      // 变量名
	Init     Expression  // 初始值（可选）
}

func (f *FieldDecl) TokenLiteral() string { return f.Token.Text }
func (f *FieldDecl) statementNode()       {}

// Param 方法参数
type Param struct {
	Token    lexer.Token // 类型 token
	DeclType TypeRef
	Name     string
}

// MethodDecl 方法声明
type MethodDecl struct {
	Token  lexer.Token // 返回类型 token
	Mods   Modifiers
	Result TypeRef // 返回类型
	Name   string
	Params []*Param
	Body   *BlockStmt
}

func (m *MethodDecl) TokenLiteral() string { return m.Token.Text }
func (m *MethodDecl) statementNode()       {}

// BlockStmt 代码块
type BlockStmt struct {
	Token      lexer.Token // { token
	Statements []Statement
}

func (b *BlockStmt) TokenLiteral() string { return b.Token.Text }
func (b *BlockStmt) statementNode()       {}

// IfStmt if 语句
type IfStmt struct {
	Token       lexer.Token
	Condition   Expression
	Consequence *BlockStmt
	Alternative Statement // else 分支（可选，BlockStmt 或 IfStmt）
}

func (i *IfStmt) TokenLiteral() string { return i.Token.Text }
func (i *IfStmt) statementNode()       {}

// WhileStmt while 循环
type WhileStmt struct {
	Token     lexer.Token
	Condition Expression
	Body      *BlockStmt
}

func (w *WhileStmt) TokenLiteral() string { return w.Token.Text }
func (w *WhileStmt) statementNode()       {}

// DoWhileStmt do/while 循环，条件在循环体之后求值
type DoWhileStmt struct {
	Token     lexer.Token
	Body      *BlockStmt
	Condition Expression
}

func (d *DoWhileStmt) TokenLiteral() string { return d.Token.Text }
func (d *DoWhileStmt) statementNode()       {}

// ForClassicStmt 经典三段式 for 循环
type ForClassicStmt struct {
	Token     lexer.Token
	Init      Statement  // 初始化（可选）
	Condition Expression // 条件（可选）
	Post      Statement  // 更新（可选）
	Body      *BlockStmt
}

func (f *ForClassicStmt) TokenLiteral() string { return f.Token.Text }
func (f *ForClassicStmt) statementNode()       {}

// ForRangeStmt 增强 for 循环 for (T x : expr)
type ForRangeStmt struct {
	Token lexer.Token
	Var   *Param     // 循环变量
	X     Expression // 被迭代对象
	Body  *BlockStmt
}

func (f *ForRangeStmt) TokenLiteral() string { return f.Token.Text }
func (f *ForRangeStmt) statementNode()       {}

// SwitchStmt switch 语句
type SwitchStmt struct {
	Token lexer.Token
	Tag   Expression
	Cases []*CaseClause
}

func (s *SwitchStmt) TokenLiteral() string { return s.Token.Text }
func (s *SwitchStmt) statementNode()       {}

// CaseClause case 子句，Value 为 nil 表示 default
type CaseClause struct {
	Token lexer.Token
	Value Expression
	Body  []Statement
}

func (c *CaseClause) TokenLiteral() string { return c.Token.Text }

// ReturnStmt return 语句
type ReturnStmt struct {
	Token lexer.Token
	Value Expression // 可选
}

func (r *ReturnStmt) TokenLiteral() string { return r.Token.Text }
func (r *ReturnStmt) statementNode()       {}

// BreakStmt break 语句
type BreakStmt struct {
	Token lexer.Token
}

func (b *BreakStmt) TokenLiteral() string { return b.Token.Text }
func (b *BreakStmt) statementNode()       {}

// ContinueStmt continue 语句
type ContinueStmt struct {
	Token lexer.Token
}

func (c *ContinueStmt) TokenLiteral() string { return c.Token.Text }
func (c *ContinueStmt) statementNode()       {}

// AssignStmt 赋值语句
type AssignStmt struct {
	Token lexer.Token // = token
	Left  Expression
	Right Expression
}

func (a *AssignStmt) TokenLiteral() string { return a.Token.Text }
func (a *AssignStmt) statementNode()       {}

// ExpressionStmt 表达式语句
type ExpressionStmt struct {
	Expression Expression
}

func (e *ExpressionStmt) TokenLiteral() string { return e.Expression.TokenLiteral() }
func (e *ExpressionStmt) statementNode()       {}

// ========== 表达式 ==========

// Identifier 标识符
type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) TokenLiteral() string { return i.Token.Text }
func (i *Identifier) expressionNode()      {}

// Literal 字面量，Value 保留源码原文
type Literal struct {
	Token lexer.Token
	Value string
}

func (l *Literal) TokenLiteral() string { return l.Token.Text }
func (l *Literal) expressionNode()      {}

// BinaryExpr 二元表达式
type BinaryExpr struct {
	Token lexer.Token // 运算符 token
	Left  Expression
	Op    lexer.TokenKind
	Right Expression
}

func (b *BinaryExpr) TokenLiteral() string { return b.Token.Text }
func (b *BinaryExpr) expressionNode()      {}

// PrefixExpr 前缀表达式 (!x, -x, ++x)
type PrefixExpr struct {
	Token lexer.Token
	Op    lexer.TokenKind
	X     Expression
}

func (p *PrefixExpr) TokenLiteral() string { return p.Token.Text }
func (p *PrefixExpr) expressionNode()      {}

// PostfixExpr 后缀表达式 (x++, x--)
type PostfixExpr struct {
	Token lexer.Token
	Op    lexer.TokenKind
	X     Expression
}

func (p *PostfixExpr) TokenLiteral() string { return p.Token.Text }
func (p *PostfixExpr) expressionNode()      {}

// CallExpr 调用表达式
type CallExpr struct {
	Token     lexer.Token // ( token
	Function  Expression
	Arguments []Expression
}

func (c *CallExpr) TokenLiteral() string { return c.Token.Text }
func (c *CallExpr) expressionNode()      {}

// SelectorExpr 成员访问 x.y
type SelectorExpr struct {
	Token lexer.Token // . token
	X     Expression
	Sel   string
}

func (s *SelectorExpr) TokenLiteral() string { return s.Token.Text }
func (s *SelectorExpr) expressionNode()      {}

// UnknownExpr 无法识别的表达式占位节点
type UnknownExpr struct {
	Token lexer.Token
}

func (u *UnknownExpr) TokenLiteral() string { return u.Token.Text }
func (u *UnknownExpr) expressionNode()      {}
