package transpiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Jennly666/Java-to-Python-Converter/internal/lexer"
	"github.com/Jennly666/Java-to-Python-Converter/internal/parser"
)

// 类型映射表：Java 类型 -> Python 类型
var typeMap = map[string]string{
	"int":     "int",
	"long":    "int",
	"short":   "int",
	"byte":    "int",
	"float":   "float",
	"double":  "float",
	"boolean": "bool",
	"char":    "str",
	"String":  "str",
	"void":    "None",
}

// 默认值表：未初始化声明的兜底
var defaultValues = map[string]string{
	"int":   "0",
	"float": "0.0",
	"bool":  "False",
	"str":   `""`,
	"None":  "None",
}

// CodeGen 代码生成器
type CodeGen struct {
	builder   strings.Builder
	indent    int
	indentStr string
}

// NewCodeGen 创建一个新的代码生成器
func NewCodeGen(indentStr string) *CodeGen {
	if indentStr == "" {
		indentStr = "    "
	}
	return &CodeGen{indentStr: indentStr}
}

// Generate 生成 Python 代码
// 缩进状态每次调用重置，同一个生成器可以复用
func (g *CodeGen) Generate(unit *parser.CompilationUnit) string {
	g.builder.Reset()
	g.indent = 0

	for i, decl := range unit.Decls {
		if i > 0 {
			g.writeLine("")
		}
		g.generateClassDecl(decl)
	}

	return g.builder.String()
}

// generateClassDecl 生成类定义
// 修饰符以注释形式保留在类体开头
func (g *CodeGen) generateClassDecl(decl *parser.ClassDecl) {
	g.writeLine("class " + decl.Name + ":")
	g.indent++
	if decl.Mods != 0 {
		g.writeLine("# modifiers: " + decl.Mods.String())
	}
	if len(decl.Members) == 0 {
		g.writeLine("pass")
		g.indent--
		return
	}
	for _, member := range decl.Members {
		switch m := member.(type) {
		case *parser.FieldDecl:
			g.generateClassField(m)
		case *parser.MethodDecl:
			g.generateMethodDecl(m)
		default:
			g.generateStatement(member)
		}
	}
	g.indent--
}

// generateClassField 生成类字段（带类型标注，未初始化用默认值）
func (g *CodeGen) generateClassField(field *parser.FieldDecl) {
	hint := mapType(field.DeclType)
	value := defaultValue(field.DeclType)
	if field.Init != nil {
		value = g.exprString(field.Init)
	}
	g.writeLine(fmt.Sprintf("%s: %s = %s", field.Name, hint, value))
}

// generateMethodDecl 生成方法定义
// static 方法加 @staticmethod 装饰器，实例方法注入 self
func (g *CodeGen) generateMethodDecl(method *parser.MethodDecl) {
	var params []string
	if !method.Mods.Has(parser.ModStatic) {
		params = append(params, "self")
	}
	for _, p := range method.Params {
		name := p.Name
		if name == "" {
			name = "arg"
		}
		params = append(params, name+": "+mapType(p.DeclType))
	}

	if method.Mods.Has(parser.ModStatic) {
		g.writeLine("@staticmethod")
	}
	g.writeLine(fmt.Sprintf("def %s(%s) -> %s:", method.Name, strings.Join(params, ", "), mapType(method.Result)))

	g.indent++
	if method.Body == nil || len(method.Body.Statements) == 0 {
		g.writeLine("pass")
	} else {
		for _, stmt := range method.Body.Statements {
			g.generateStatement(stmt)
		}
	}
	g.indent--
}

// generateStatement 语句分派
// 未识别的节点降级为诊断注释行，生成器永不失败
func (g *CodeGen) generateStatement(stmt parser.Statement) {
	switch s := stmt.(type) {
	case *parser.FieldDecl:
		g.generateLocalDecl(s)
	case *parser.BlockStmt:
		for _, inner := range s.Statements {
			g.generateStatement(inner)
		}
	case *parser.IfStmt:
		g.generateIfStmt(s)
	case *parser.WhileStmt:
		g.writeLine("while " + g.exprString(s.Condition) + ":")
		g.generateBody(s.Body.Statements)
	case *parser.DoWhileStmt:
		g.generateDoWhileStmt(s)
	case *parser.ForClassicStmt:
		g.generateForClassic(s)
	case *parser.ForRangeStmt:
		g.writeLine(fmt.Sprintf("for %s in %s:", s.Var.Name, g.exprString(s.X)))
		g.generateBody(s.Body.Statements)
	case *parser.SwitchStmt:
		g.generateSwitchStmt(s)
	case *parser.ReturnStmt:
		if s.Value != nil {
			g.writeLine("return " + g.exprString(s.Value))
		} else {
			g.writeLine("return")
		}
	case *parser.BreakStmt:
		g.writeLine("break")
	case *parser.ContinueStmt:
		g.writeLine("continue")
	case *parser.AssignStmt:
		g.writeLine(g.exprString(s.Left) + " = " + g.exprString(s.Right))
	case *parser.ExpressionStmt:
		g.generateExpressionStmt(s)
	default:
		g.writeLine("# unsupported statement: " + stmt.TokenLiteral())
	}
}

// generateLocalDecl 生成局部变量声明
func (g *CodeGen) generateLocalDecl(decl *parser.FieldDecl) {
	name := decl.Name
	if name == "" {
		name = "var"
	}
	if decl.Init != nil {
		g.writeLine(name + " = " + g.exprString(decl.Init))
	} else {
		g.writeLine(name + " = " + defaultValue(decl.DeclType))
	}
}

// generateExpressionStmt 生成表达式语句
// 语句位置的 ++/-- 改写为 += 1 / -= 1
func (g *CodeGen) generateExpressionStmt(stmt *parser.ExpressionStmt) {
	switch e := stmt.Expression.(type) {
	case *parser.PostfixExpr:
		g.writeLine(g.incDecString(e.Op, e.X))
		return
	case *parser.PrefixExpr:
		if e.Op == lexer.TOKEN_INC || e.Op == lexer.TOKEN_DEC {
			g.writeLine(g.incDecString(e.Op, e.X))
			return
		}
	case *parser.UnknownExpr:
		g.writeLine("# unknown token: " + e.Token.Text)
		return
	}
	g.writeLine(g.exprString(stmt.Expression))
}

func (g *CodeGen) incDecString(op lexer.TokenKind, x parser.Expression) string {
	if op == lexer.TOKEN_INC {
		return g.exprString(x) + " += 1"
	}
	return g.exprString(x) + " -= 1"
}

// generateIfStmt 生成 if/elif/else 链
func (g *CodeGen) generateIfStmt(stmt *parser.IfStmt) {
	g.writeLine("if " + g.exprString(stmt.Condition) + ":")
	g.generateBody(stmt.Consequence.Statements)

	alt := stmt.Alternative
	for alt != nil {
		switch a := alt.(type) {
		case *parser.IfStmt:
			g.writeLine("elif " + g.exprString(a.Condition) + ":")
			g.generateBody(a.Consequence.Statements)
			alt = a.Alternative
		case *parser.BlockStmt:
			g.writeLine("else:")
			g.generateBody(a.Statements)
			alt = nil
		default:
			g.writeLine("else:")
			g.generateBody([]parser.Statement{a})
			alt = nil
		}
	}
}

// generateDoWhileStmt do/while 改写为无条件循环加结尾的取反 break
func (g *CodeGen) generateDoWhileStmt(stmt *parser.DoWhileStmt) {
	g.writeLine("while True:")
	g.indent++
	for _, inner := range stmt.Body.Statements {
		g.generateStatement(inner)
	}
	g.writeLine("if not (" + g.exprString(stmt.Condition) + "):")
	g.indent++
	g.writeLine("break")
	g.indent--
	g.indent--
}

// generateSwitchStmt switch 改写为 match，default 变成 case _
// case 体末尾的 break 不输出（match 没有 fallthrough）
func (g *CodeGen) generateSwitchStmt(stmt *parser.SwitchStmt) {
	g.writeLine("match " + g.exprString(stmt.Tag) + ":")
	g.indent++
	for _, clause := range stmt.Cases {
		if clause.Value != nil {
			g.writeLine("case " + g.exprString(clause.Value) + ":")
		} else {
			g.writeLine("case _:")
		}
		body := clause.Body
		if n := len(body); n > 0 {
			if _, ok := body[n-1].(*parser.BreakStmt); ok {
				body = body[:n-1]
			}
		}
		g.generateBody(body)
	}
	g.indent--
}

// generateForClassic 三段式 for
// 能推断为计数循环的输出 range，否则回退为 init + while + 末尾更新
func (g *CodeGen) generateForClassic(stmt *parser.ForClassicStmt) {
	varName, start, okInit := extractLoopInit(stmt.Init)
	end, inclusive, okCond := extractLoopBound(stmt.Condition, varName)
	step, okStep := extractLoopStep(stmt.Post, varName)

	if okInit && okCond && okStep && step != 0 {
		bound := end
		if inclusive {
			// 包含上界的比较符：排他上界 = 上界 + 步长
			if n, err := strconv.Atoi(end); err == nil {
				bound = strconv.Itoa(n + step)
			} else if step >= 0 {
				bound = fmt.Sprintf("%s + %d", end, step)
			} else {
				bound = fmt.Sprintf("%s - %d", end, -step)
			}
		}
		if step == 1 {
			g.writeLine(fmt.Sprintf("for %s in range(%s, %s):", varName, start, bound))
		} else {
			g.writeLine(fmt.Sprintf("for %s in range(%s, %s, %d):", varName, start, bound, step))
		}
		g.generateBody(stmt.Body.Statements)
		return
	}

	// 回退形式：初始化 + while 循环 + 循环体末尾的更新语句
	if stmt.Init != nil {
		g.generateStatement(stmt.Init)
	}
	if stmt.Condition != nil {
		g.writeLine("while " + g.exprString(stmt.Condition) + ":")
	} else {
		g.writeLine("while True:")
	}
	g.indent++
	hasBody := false
	if stmt.Body != nil {
		for _, inner := range stmt.Body.Statements {
			g.generateStatement(inner)
			hasBody = true
		}
	}
	if stmt.Post != nil {
		g.generateStatement(stmt.Post)
		hasBody = true
	}
	if !hasBody {
		g.writeLine("pass")
	}
	g.indent--
}

// extractLoopInit 从初始化子句提取 (变量名, 起始表达式)
func extractLoopInit(init parser.Statement) (string, string, bool) {
	g := CodeGen{}
	switch s := init.(type) {
	case *parser.FieldDecl:
		if s.Name != "" && s.Init != nil {
			return s.Name, g.exprString(s.Init), true
		}
	case *parser.AssignStmt:
		if ident, ok := s.Left.(*parser.Identifier); ok {
			return ident.Value, g.exprString(s.Right), true
		}
	}
	return "", "", false
}

// extractLoopBound 从条件提取 (上界表达式, 是否包含上界)
// 只接受 var < expr 和 var <= expr
func extractLoopBound(cond parser.Expression, varName string) (string, bool, bool) {
	if varName == "" {
		return "", false, false
	}
	bin, ok := cond.(*parser.BinaryExpr)
	if !ok {
		return "", false, false
	}
	ident, ok := bin.Left.(*parser.Identifier)
	if !ok || ident.Value != varName {
		return "", false, false
	}
	g := CodeGen{}
	switch bin.Op {
	case lexer.TOKEN_LT:
		return g.exprString(bin.Right), false, true
	case lexer.TOKEN_LE:
		return g.exprString(bin.Right), true, true
	}
	return "", false, false
}

// extractLoopStep 从更新子句提取整数步长
// 支持 i++/i--（前后缀）和 i = i ± <整数字面量>（含脱糖后的 += / -=）
func extractLoopStep(post parser.Statement, varName string) (int, bool) {
	if varName == "" {
		return 0, false
	}
	switch s := post.(type) {
	case *parser.ExpressionStmt:
		var op lexer.TokenKind
		var x parser.Expression
		switch e := s.Expression.(type) {
		case *parser.PostfixExpr:
			op, x = e.Op, e.X
		case *parser.PrefixExpr:
			op, x = e.Op, e.X
		default:
			return 0, false
		}
		ident, ok := x.(*parser.Identifier)
		if !ok || ident.Value != varName {
			return 0, false
		}
		if op == lexer.TOKEN_INC {
			return 1, true
		}
		if op == lexer.TOKEN_DEC {
			return -1, true
		}
	case *parser.AssignStmt:
		left, ok := s.Left.(*parser.Identifier)
		if !ok || left.Value != varName {
			return 0, false
		}
		bin, ok := s.Right.(*parser.BinaryExpr)
		if !ok {
			return 0, false
		}
		base, ok := bin.Left.(*parser.Identifier)
		if !ok || base.Value != varName {
			return 0, false
		}
		lit, ok := bin.Right.(*parser.Literal)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(lit.Value)
		if err != nil {
			return 0, false
		}
		switch bin.Op {
		case lexer.TOKEN_ADD:
			return n, true
		case lexer.TOKEN_SUB:
			return -n, true
		}
	}
	return 0, false
}

// generateBody 在加深一级缩进下生成语句列表，空列表输出 pass
func (g *CodeGen) generateBody(stmts []parser.Statement) {
	g.indent++
	if len(stmts) == 0 {
		g.writeLine("pass")
	} else {
		for _, stmt := range stmts {
			g.generateStatement(stmt)
		}
	}
	g.indent--
}

// exprString 渲染表达式为 Python 源码
func (g *CodeGen) exprString(expr parser.Expression) string {
	switch e := expr.(type) {
	case *parser.Identifier:
		return identString(e.Value)
	case *parser.Literal:
		return formatLiteral(e.Value)
	case *parser.BinaryExpr:
		return g.exprString(e.Left) + " " + opString(e.Op) + " " + g.exprString(e.Right)
	case *parser.SelectorExpr:
		return g.exprString(e.X) + "." + e.Sel
	case *parser.CallExpr:
		return g.callString(e)
	case *parser.PrefixExpr:
		// Python 没有表达式级自增自减，降级为操作数本身
		return g.exprString(e.X)
	case *parser.PostfixExpr:
		return g.exprString(e.X)
	case *parser.UnknownExpr:
		return e.Token.Text
	case nil:
		return ""
	}
	return ""
}

// callString 渲染调用表达式
// 调用链以 println/print 成员结尾时改写为 print，只传第一个参数
func (g *CodeGen) callString(call *parser.CallExpr) string {
	callee := g.exprString(call.Function)
	if strings.HasSuffix(callee, ".println") || strings.HasSuffix(callee, ".print") {
		arg := ""
		if len(call.Arguments) > 0 {
			arg = g.exprString(call.Arguments[0])
		}
		return "print(" + arg + ")"
	}

	var args []string
	for _, a := range call.Arguments {
		args = append(args, g.exprString(a))
	}
	return callee + "(" + strings.Join(args, ", ") + ")"
}

// identString 渲染标识符，true/false/null 映射到 Python 字面量
func identString(name string) string {
	switch name {
	case "true":
		return "True"
	case "false":
		return "False"
	case "null":
		return "None"
	}
	return name
}

// formatLiteral 字面量格式化启发式
// 数字和带引号的文本原样输出，其它裸文本按未加引号的字符串处理
func formatLiteral(text string) string {
	if text == "" {
		return `""`
	}
	if text[0] >= '0' && text[0] <= '9' {
		return text
	}
	if text[0] == '"' || text[0] == '\'' {
		return text
	}
	switch text {
	case "true":
		return "True"
	case "false":
		return "False"
	case "null":
		return "None"
	}
	return `"` + strings.ReplaceAll(text, `"`, `\"`) + `"`
}

// opString 二元运算符映射
func opString(op lexer.TokenKind) string {
	switch op {
	case lexer.TOKEN_AND:
		return "and"
	case lexer.TOKEN_OR:
		return "or"
	}
	return lexer.TokenKindName(op)
}

// mapType 类型映射，数组后缀逐层包成 list[...]
func mapType(ref parser.TypeRef) string {
	mapped, ok := typeMap[ref.Name]
	if !ok {
		if ref.Name == "" {
			mapped = "None"
		} else {
			mapped = ref.Name
		}
	}
	for i := 0; i < ref.Dims; i++ {
		mapped = "list[" + mapped + "]"
	}
	return mapped
}

// defaultValue 按映射后的类型查默认值
func defaultValue(ref parser.TypeRef) string {
	if ref.Dims > 0 {
		return "[]"
	}
	mapped, ok := typeMap[ref.Name]
	if !ok {
		return "None"
	}
	if v, ok := defaultValues[mapped]; ok {
		return v
	}
	return "None"
}

// write 写入原始文本
func (g *CodeGen) write(s string) {
	g.builder.WriteString(s)
}

// writeLine 写入一行（带缩进）
func (g *CodeGen) writeLine(s string) {
	g.writeIndent()
	g.builder.WriteString(s)
	g.builder.WriteString("\n")
}

// writeIndent 写入缩进
func (g *CodeGen) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.builder.WriteString(g.indentStr)
	}
}
