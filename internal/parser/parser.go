package parser

import (
	"github.com/Jennly666/Java-to-Python-Converter/internal/i18n"
	"github.com/Jennly666/Java-to-Python-Converter/internal/lexer"
)

// SyntaxError 语法错误，携带期望/实际 token 和位置
type SyntaxError struct {
	Expected string
	Actual   string
	Line     int
	Column   int
	Msg      string // 非空时优先使用
}

func (e *SyntaxError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return i18n.T(i18n.ErrExpectedToken, e.Line, e.Column, e.Expected, e.Actual)
}

// 运算符优先级表（数值越大绑定越紧）
var precedences = map[lexer.TokenKind]int{
	lexer.TOKEN_MUL: 60, lexer.TOKEN_DIV: 60, lexer.TOKEN_MOD: 60,
	lexer.TOKEN_ADD: 50, lexer.TOKEN_SUB: 50,
	lexer.TOKEN_GT: 40, lexer.TOKEN_LT: 40, lexer.TOKEN_GE: 40, lexer.TOKEN_LE: 40,
	lexer.TOKEN_EQUAL: 30, lexer.TOKEN_NOTEQUAL: 30,
	lexer.TOKEN_AND: 20, lexer.TOKEN_OR: 10,
}

// 修饰符 token 到位掩码的映射
var modifierBits = map[lexer.TokenKind]Modifiers{
	lexer.TOKEN_PUBLIC:    ModPublic,
	lexer.TOKEN_PRIVATE:   ModPrivate,
	lexer.TOKEN_PROTECTED: ModProtected,
	lexer.TOKEN_STATIC:    ModStatic,
	lexer.TOKEN_FINAL:     ModFinal,
	lexer.TOKEN_ABSTRACT:  ModAbstract,
}

// 基本类型关键字
var typeKeywords = map[lexer.TokenKind]bool{
	lexer.TOKEN_INT:     true,
	lexer.TOKEN_LONG:    true,
	lexer.TOKEN_SHORT:   true,
	lexer.TOKEN_BYTE:    true,
	lexer.TOKEN_FLOAT:   true,
	lexer.TOKEN_BOOLEAN: true,
	lexer.TOKEN_CHAR_KW: true,
	lexer.TOKEN_VOID:    true,
}

// 复合赋值运算符到基础二元运算符的映射
var compoundAssignOps = map[lexer.TokenKind]lexer.TokenKind{
	lexer.TOKEN_ADD_ASSIGN: lexer.TOKEN_ADD,
	lexer.TOKEN_SUB_ASSIGN: lexer.TOKEN_SUB,
	lexer.TOKEN_MUL_ASSIGN: lexer.TOKEN_MUL,
	lexer.TOKEN_DIV_ASSIGN: lexer.TOKEN_DIV,
	lexer.TOKEN_MOD_ASSIGN: lexer.TOKEN_MOD,
}

// Parser 语法分析器
type Parser struct {
	tokens  *lexer.TokenStream
	current lexer.Token // 单 token 前瞻
}

// New 创建语法分析器
func New(tokens *lexer.TokenStream) *Parser {
	p := &Parser{tokens: tokens}
	p.current = tokens.LT(1)
	p.skipHidden()
	return p
}

// Parse 解析源码字符串并返回编译单元
func Parse(input string) (*CompilationUnit, error) {
	stream := lexer.NewTokenStream(lexer.New(input))
	return New(stream).Parse()
}

// Parse 解析整个 token 流
func (p *Parser) Parse() (*CompilationUnit, error) {
	unit := &CompilationUnit{}
	for p.current.Kind != lexer.TOKEN_EOF {
		if p.isModifier(p.current.Kind) || p.current.Kind == lexer.TOKEN_CLASS {
			decl, err := p.parseTypeDeclaration()
			if err != nil {
				return nil, err
			}
			if decl != nil {
				unit.Decls = append(unit.Decls, decl)
				continue
			}
		}
		// 跳过无法识别的顶层 token
		p.advance()
	}
	return unit, nil
}

// advance 消耗当前 token 并前进，跳过漏进来的隐藏 token
func (p *Parser) advance() {
	if p.current.Kind == lexer.TOKEN_EOF {
		return
	}
	p.tokens.Consume()
	p.current = p.tokens.LT(1)
	p.skipHidden()
}

func (p *Parser) skipHidden() {
	for p.current.Channel == lexer.ChannelHidden && p.current.Kind != lexer.TOKEN_EOF {
		p.tokens.Consume()
		p.current = p.tokens.LT(1)
	}
}

// match 消耗期望类型的 token，不匹配时返回语法错误
func (p *Parser) match(kind lexer.TokenKind) error {
	if p.current.Kind != kind {
		return p.syntaxError(lexer.TokenKindName(kind))
	}
	p.advance()
	return nil
}

// accept 尝试消耗指定类型的 token
func (p *Parser) accept(kind lexer.TokenKind) bool {
	if p.current.Kind == kind {
		p.advance()
		return true
	}
	return false
}

// peekKind 查看第 k 个前瞻 token 的类型（k=1 为当前）
func (p *Parser) peekKind(k int) lexer.TokenKind {
	return p.tokens.LT(k).Kind
}

func (p *Parser) syntaxError(expected string) *SyntaxError {
	return &SyntaxError{
		Expected: expected,
		Actual:   lexer.TokenKindName(p.current.Kind),
		Line:     p.current.Line,
		Column:   p.current.Column,
	}
}

func (p *Parser) isModifier(kind lexer.TokenKind) bool {
	_, ok := modifierBits[kind]
	return ok
}

func (p *Parser) isTypeKeyword(kind lexer.TokenKind) bool {
	return typeKeywords[kind]
}

// collectModifiers 消耗连续的修饰符 token
func (p *Parser) collectModifiers() Modifiers {
	var mods Modifiers
	for {
		bit, ok := modifierBits[p.current.Kind]
		if !ok {
			return mods
		}
		mods |= bit
		p.advance()
	}
}

// parseTypeDeclaration 解析顶层声明，非 class 时返回 nil
func (p *Parser) parseTypeDeclaration() (*ClassDecl, error) {
	mods := p.collectModifiers()
	if p.current.Kind == lexer.TOKEN_CLASS {
		return p.parseClassDeclaration(mods)
	}
	return nil, nil
}

// parseClassDeclaration 解析类声明
func (p *Parser) parseClassDeclaration(mods Modifiers) (*ClassDecl, error) {
	classTok := p.current
	if err := p.match(lexer.TOKEN_CLASS); err != nil {
		return nil, err
	}
	name := p.current.Text
	if err := p.match(lexer.TOKEN_IDENT); err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_LBRACE); err != nil {
		return nil, err
	}
	members, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	if p.current.Kind != lexer.TOKEN_RBRACE {
		// 类体未闭合是硬错误，必须指出类名
		return nil, &SyntaxError{
			Expected: "}",
			Actual:   lexer.TokenKindName(p.current.Kind),
			Line:     p.current.Line,
			Column:   p.current.Column,
			Msg:      i18n.T(i18n.ErrUnclosedClass, name, p.current.Line),
		}
	}
	p.advance()
	return &ClassDecl{Token: classTok, Name: name, Mods: mods, Members: members}, nil
}

// parseClassBody 解析类体成员，直到 } 或 EOF
func (p *Parser) parseClassBody() ([]Statement, error) {
	var members []Statement
	for p.current.Kind != lexer.TOKEN_RBRACE && p.current.Kind != lexer.TOKEN_EOF {
		if p.isModifier(p.current.Kind) || p.isTypeKeyword(p.current.Kind) || p.current.Kind == lexer.TOKEN_IDENT {
			var member Statement
			var err error
			if p.looksLikeMethodDecl() {
				member, err = p.parseMethodDeclaration()
			} else {
				member, err = p.parseFieldDeclaration()
			}
			if err != nil {
				return nil, err
			}
			members = append(members, member)
			continue
		}
		if p.current.Kind == lexer.TOKEN_LBRACE {
			block, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			members = append(members, block)
			continue
		}
		// 跳过类体中无法识别的 token
		p.advance()
	}
	return members, nil
}

// looksLikeMethodDecl 判断成员是方法还是字段
// 跳过修饰符后，类型 token（含 [] 后缀）后面跟 IDENTIFIER 和 ( 即为方法
func (p *Parser) looksLikeMethodDecl() bool {
	i := 1
	for p.isModifier(p.peekKind(i)) {
		i++
	}
	k := p.peekKind(i)
	if !p.isTypeKeyword(k) && k != lexer.TOKEN_IDENT {
		return false
	}
	for p.peekKind(i+1) == lexer.TOKEN_LBRACK && p.peekKind(i+2) == lexer.TOKEN_RBRACK {
		i += 2
	}
	return p.peekKind(i+1) == lexer.TOKEN_IDENT && p.peekKind(i+2) == lexer.TOKEN_LPAREN
}

// parseTypeRef 解析类型引用（基本类型或类名，可带 [] 后缀）
func (p *Parser) parseTypeRef() TypeRef {
	ref := TypeRef{Name: p.current.Text}
	p.advance()
	for p.current.Kind == lexer.TOKEN_LBRACK && p.peekKind(2) == lexer.TOKEN_RBRACK {
		p.advance()
		p.advance()
		ref.Dims++
	}
	return ref
}

// parseFieldDeclaration 解析字段声明（修饰符 类型 名字 [= 初始值] ;）
func (p *Parser) parseFieldDeclaration() (*FieldDecl, error) {
	mods := p.collectModifiers()
	return p.parseVarDecl(mods, true)
}

// parseVarDecl 解析变量声明的公共部分，consumeSemi 控制是否吃掉结尾分号
func (p *Parser) parseVarDecl(mods Modifiers, consumeSemi bool) (*FieldDecl, error) {
	typeTok := p.current
	var declType TypeRef
	if p.isTypeKeyword(p.current.Kind) || p.current.Kind == lexer.TOKEN_IDENT {
		declType = p.parseTypeRef()
	} else {
		p.advance()
	}

	var name string
	if p.current.Kind == lexer.TOKEN_IDENT {
		name = p.current.Text
		p.advance()
	}

	var init Expression
	if p.accept(lexer.TOKEN_ASSIGN) {
		expr, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		init = expr
	}

	if consumeSemi {
		p.accept(lexer.TOKEN_SEMI)
	}
	return &FieldDecl{Token: typeTok, Mods: mods, DeclType: declType, Name: name, Init: init}, nil
}

// parseMethodDeclaration 解析方法声明
func (p *Parser) parseMethodDeclaration() (*MethodDecl, error) {
	mods := p.collectModifiers()

	retTok := p.current
	var result TypeRef
	if p.isTypeKeyword(p.current.Kind) || p.current.Kind == lexer.TOKEN_IDENT {
		result = p.parseTypeRef()
	} else {
		p.advance()
	}

	name := p.current.Text
	if err := p.match(lexer.TOKEN_IDENT); err != nil {
		return nil, err
	}

	if err := p.match(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &MethodDecl{Token: retTok, Mods: mods, Result: result, Name: name, Params: params, Body: body}, nil
}

// parseParameterList 解析参数列表（不含括号）
func (p *Parser) parseParameterList() ([]*Param, error) {
	var params []*Param
	for p.current.Kind != lexer.TOKEN_RPAREN && p.current.Kind != lexer.TOKEN_EOF {
		if p.isModifier(p.current.Kind) {
			p.advance()
			continue
		}

		typeTok := p.current
		var declType TypeRef
		if p.isTypeKeyword(p.current.Kind) || p.current.Kind == lexer.TOKEN_IDENT {
			declType = p.parseTypeRef()
		} else {
			p.advance()
		}

		var name string
		if p.current.Kind == lexer.TOKEN_IDENT {
			name = p.current.Text
			p.advance()
		}
		params = append(params, &Param{Token: typeTok, DeclType: declType, Name: name})

		if !p.accept(lexer.TOKEN_COMMA) {
			break
		}
	}
	return params, nil
}

// parseBlock 解析代码块，块未闭合是硬错误
func (p *Parser) parseBlock() (*BlockStmt, error) {
	block := &BlockStmt{Token: p.current}
	p.accept(lexer.TOKEN_LBRACE)
	for p.current.Kind != lexer.TOKEN_RBRACE && p.current.Kind != lexer.TOKEN_EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if err := p.match(lexer.TOKEN_RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

// parseStatement 语句分派
func (p *Parser) parseStatement() (Statement, error) {
	switch p.current.Kind {
	case lexer.TOKEN_IF:
		return p.parseIfStatement()
	case lexer.TOKEN_WHILE:
		return p.parseWhileStatement()
	case lexer.TOKEN_DO:
		return p.parseDoWhileStatement()
	case lexer.TOKEN_FOR:
		return p.parseForStatement()
	case lexer.TOKEN_SWITCH:
		return p.parseSwitchStatement()
	case lexer.TOKEN_RETURN:
		return p.parseReturnStatement()
	case lexer.TOKEN_BREAK:
		tok := p.current
		p.advance()
		p.accept(lexer.TOKEN_SEMI)
		return &BreakStmt{Token: tok}, nil
	case lexer.TOKEN_CONTINUE:
		tok := p.current
		p.advance()
		p.accept(lexer.TOKEN_SEMI)
		return &ContinueStmt{Token: tok}, nil
	case lexer.TOKEN_LBRACE:
		return p.parseBlock()
	}

	// 基本类型开头的局部变量声明
	if p.isTypeKeyword(p.current.Kind) {
		return p.parseVarDecl(0, true)
	}

	// 类型名为标识符的局部变量声明：IDENT IDENT 或 IDENT [ ] IDENT
	if p.current.Kind == lexer.TOKEN_IDENT {
		if p.peekKind(2) == lexer.TOKEN_IDENT ||
			(p.peekKind(2) == lexer.TOKEN_LBRACK && p.peekKind(3) == lexer.TOKEN_RBRACK) {
			return p.parseVarDecl(0, true)
		}
	}

	// 表达式语句或赋值
	stmt, err := p.parseSimpleStatement()
	if err != nil {
		return nil, err
	}
	p.accept(lexer.TOKEN_SEMI)
	return stmt, nil
}

// parseSimpleStatement 解析不带结尾分号的表达式/赋值语句
// 复合赋值（+= 等）脱糖为普通赋值加二元运算
func (p *Parser) parseSimpleStatement() (Statement, error) {
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if p.current.Kind == lexer.TOKEN_ASSIGN {
		tok := p.current
		p.advance()
		right, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		return &AssignStmt{Token: tok, Left: expr, Right: right}, nil
	}

	if baseOp, ok := compoundAssignOps[p.current.Kind]; ok {
		opTok := p.current
		p.advance()
		right, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		return &AssignStmt{
			Token: opTok,
			Left:  expr,
			Right: &BinaryExpr{Token: opTok, Left: cloneExpr(expr), Op: baseOp, Right: right},
		}, nil
	}

	return &ExpressionStmt{Expression: expr}, nil
}

// cloneExpr 复制左值表达式，保证 AST 中节点不被共享
func cloneExpr(expr Expression) Expression {
	switch e := expr.(type) {
	case *Identifier:
		return &Identifier{Token: e.Token, Value: e.Value}
	case *SelectorExpr:
		return &SelectorExpr{Token: e.Token, X: cloneExpr(e.X), Sel: e.Sel}
	case *Literal:
		return &Literal{Token: e.Token, Value: e.Value}
	default:
		return expr
	}
}

// parseIfStatement 解析 if 语句，else if 链表示为嵌套 IfStmt
func (p *Parser) parseIfStatement() (*IfStmt, error) {
	tok := p.current
	if err := p.match(lexer.TOKEN_IF); err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}
	consequence, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &IfStmt{Token: tok, Condition: cond, Consequence: consequence}
	if p.accept(lexer.TOKEN_ELSE) {
		switch p.current.Kind {
		case lexer.TOKEN_IF:
			alt, err := p.parseIfStatement()
			if err != nil {
				return nil, err
			}
			stmt.Alternative = alt
		case lexer.TOKEN_LBRACE:
			alt, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			stmt.Alternative = alt
		default:
			// 无大括号的单语句 else
			single, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			stmt.Alternative = &BlockStmt{Token: tok, Statements: []Statement{single}}
		}
	}
	return stmt, nil
}

// parseWhileStatement 解析 while 循环
func (p *Parser) parseWhileStatement() (*WhileStmt, error) {
	tok := p.current
	if err := p.match(lexer.TOKEN_WHILE); err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Token: tok, Condition: cond, Body: body}, nil
}

// parseDoWhileStatement 解析 do/while 循环
func (p *Parser) parseDoWhileStatement() (*DoWhileStmt, error) {
	tok := p.current
	if err := p.match(lexer.TOKEN_DO); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_WHILE); err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}
	p.accept(lexer.TOKEN_SEMI)
	return &DoWhileStmt{Token: tok, Body: body, Condition: cond}, nil
}

// parseForStatement 解析 for 循环
// 在括号内向前扫描：先遇到 : 是增强 for，先遇到 ; 或 ) 是三段式
func (p *Parser) parseForStatement() (Statement, error) {
	tok := p.current
	if err := p.match(lexer.TOKEN_FOR); err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}

	isRange := false
	for i := 1; ; i++ {
		k := p.peekKind(i)
		if k == lexer.TOKEN_COLON {
			isRange = true
			break
		}
		if k == lexer.TOKEN_SEMI || k == lexer.TOKEN_RPAREN || k == lexer.TOKEN_EOF {
			break
		}
	}

	if isRange {
		return p.parseForRange(tok)
	}
	return p.parseForClassic(tok)
}

// parseForRange 解析增强 for：for (T x : expr) { ... }
func (p *Parser) parseForRange(tok lexer.Token) (*ForRangeStmt, error) {
	typeTok := p.current
	var declType TypeRef
	if p.isTypeKeyword(p.current.Kind) || p.current.Kind == lexer.TOKEN_IDENT {
		declType = p.parseTypeRef()
	} else {
		p.advance()
	}
	name := p.current.Text
	if err := p.match(lexer.TOKEN_IDENT); err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_COLON); err != nil {
		return nil, err
	}
	x, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ForRangeStmt{
		Token: tok,
		Var:   &Param{Token: typeTok, DeclType: declType, Name: name},
		X:     x,
		Body:  body,
	}, nil
}

// parseForClassic 解析三段式 for：init 和 post 子解析器不吃分隔符
func (p *Parser) parseForClassic(tok lexer.Token) (*ForClassicStmt, error) {
	stmt := &ForClassicStmt{Token: tok}

	// init
	if p.current.Kind != lexer.TOKEN_SEMI {
		init, err := p.parseForInit()
		if err != nil {
			return nil, err
		}
		stmt.Init = init
	}
	if err := p.match(lexer.TOKEN_SEMI); err != nil {
		return nil, err
	}

	// condition
	if p.current.Kind != lexer.TOKEN_SEMI {
		cond, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		stmt.Condition = cond
	}
	if err := p.match(lexer.TOKEN_SEMI); err != nil {
		return nil, err
	}

	// post
	if p.current.Kind != lexer.TOKEN_RPAREN {
		post, err := p.parseSimpleStatement()
		if err != nil {
			return nil, err
		}
		stmt.Post = post
	}
	if err := p.match(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

// parseForInit 解析 for 初始化子句（声明或赋值，不吃分号）
func (p *Parser) parseForInit() (Statement, error) {
	if p.isTypeKeyword(p.current.Kind) {
		return p.parseVarDecl(0, false)
	}
	if p.current.Kind == lexer.TOKEN_IDENT && p.peekKind(2) == lexer.TOKEN_IDENT {
		return p.parseVarDecl(0, false)
	}
	return p.parseSimpleStatement()
}

// parseSwitchStatement 解析 switch 语句
// case 体贪婪收集语句直到下一个 case/default/}
func (p *Parser) parseSwitchStatement() (*SwitchStmt, error) {
	tok := p.current
	if err := p.match(lexer.TOKEN_SWITCH); err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_LPAREN); err != nil {
		return nil, err
	}
	tag, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_RPAREN); err != nil {
		return nil, err
	}
	if err := p.match(lexer.TOKEN_LBRACE); err != nil {
		return nil, err
	}

	stmt := &SwitchStmt{Token: tok, Tag: tag}
	for p.current.Kind != lexer.TOKEN_RBRACE && p.current.Kind != lexer.TOKEN_EOF {
		if p.current.Kind != lexer.TOKEN_CASE && p.current.Kind != lexer.TOKEN_DEFAULT {
			// 跳过 case 之外的杂项 token
			p.advance()
			continue
		}
		clause, err := p.parseCaseClause()
		if err != nil {
			return nil, err
		}
		stmt.Cases = append(stmt.Cases, clause)
	}
	if err := p.match(lexer.TOKEN_RBRACE); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseCaseClause 解析单个 case/default 子句
func (p *Parser) parseCaseClause() (*CaseClause, error) {
	clause := &CaseClause{Token: p.current}
	if p.current.Kind == lexer.TOKEN_CASE {
		p.advance()
		value, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		clause.Value = value
	} else {
		// default
		p.advance()
	}
	if err := p.match(lexer.TOKEN_COLON); err != nil {
		return nil, err
	}

	for p.current.Kind != lexer.TOKEN_CASE && p.current.Kind != lexer.TOKEN_DEFAULT &&
		p.current.Kind != lexer.TOKEN_RBRACE && p.current.Kind != lexer.TOKEN_EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		clause.Body = append(clause.Body, stmt)
	}
	return clause, nil
}

// parseReturnStatement 解析 return 语句
func (p *Parser) parseReturnStatement() (*ReturnStmt, error) {
	tok := p.current
	p.advance()
	stmt := &ReturnStmt{Token: tok}
	if p.current.Kind != lexer.TOKEN_SEMI && p.current.Kind != lexer.TOKEN_RBRACE {
		value, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}
	p.accept(lexer.TOKEN_SEMI)
	return stmt, nil
}

// parseExpression 优先级爬升解析表达式
// 左结合：右操作数用 prec+1 递归
func (p *Parser) parseExpression(minPrec int) (Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		prec, ok := precedences[p.current.Kind]
		if !ok || prec < minPrec {
			return left, nil
		}
		opTok := p.current
		p.advance()
		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Token: opTok, Left: left, Op: opTok.Kind, Right: right}
	}
}

// parsePrimary 解析基本表达式
func (p *Parser) parsePrimary() (Expression, error) {
	switch p.current.Kind {
	case lexer.TOKEN_LPAREN:
		p.advance()
		expr, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if err := p.match(lexer.TOKEN_RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case lexer.TOKEN_NUMBER, lexer.TOKEN_STRING, lexer.TOKEN_CHAR:
		lit := &Literal{Token: p.current, Value: p.current.Text}
		p.advance()
		return lit, nil

	case lexer.TOKEN_INC, lexer.TOKEN_DEC:
		tok := p.current
		p.advance()
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &PrefixExpr{Token: tok, Op: tok.Kind, X: operand}, nil

	case lexer.TOKEN_IDENT:
		return p.parseIdentifierChain()
	}

	// 无法识别的 token：消耗并返回占位节点
	tok := p.current
	p.advance()
	return &UnknownExpr{Token: tok}, nil
}

// parseIdentifierChain 解析标识符及其后续的成员访问/调用/自增自减链
func (p *Parser) parseIdentifierChain() (Expression, error) {
	var base Expression = &Identifier{Token: p.current, Value: p.current.Text}
	p.advance()

	for {
		switch p.current.Kind {
		case lexer.TOKEN_DOT:
			dotTok := p.current
			p.advance()
			if p.current.Kind != lexer.TOKEN_IDENT {
				return base, nil
			}
			base = &SelectorExpr{Token: dotTok, X: base, Sel: p.current.Text}
			p.advance()

		case lexer.TOKEN_LPAREN:
			callTok := p.current
			p.advance()
			var args []Expression
			if p.current.Kind != lexer.TOKEN_RPAREN {
				arg, err := p.parseExpression(0)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				for p.accept(lexer.TOKEN_COMMA) {
					arg, err := p.parseExpression(0)
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
				}
			}
			if err := p.match(lexer.TOKEN_RPAREN); err != nil {
				return nil, err
			}
			base = &CallExpr{Token: callTok, Function: base, Arguments: args}

		case lexer.TOKEN_INC, lexer.TOKEN_DEC:
			tok := p.current
			p.advance()
			base = &PostfixExpr{Token: tok, Op: tok.Kind, X: base}

		default:
			return base, nil
		}
	}
}
