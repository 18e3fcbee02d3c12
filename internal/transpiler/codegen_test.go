package transpiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jennly666/Java-to-Python-Converter/internal/parser"
)

func convert(t *testing.T, src string) string {
	t.Helper()
	out, err := Convert(src)
	require.NoError(t, err)
	return out
}

func convertBody(t *testing.T, stmts string) string {
	t.Helper()
	return convert(t, "class T { static void m() { "+stmts+" } }")
}

func TestGenerateClass(t *testing.T) {
	got := convert(t, `
public class Counter {
    private int count = 0;

    public void tick() {
        count = count + 1;
    }
}`)

	want := "class Counter:\n" +
		"    # modifiers: public\n" +
		"    count: int = 0\n" +
		"    def tick(self) -> None:\n" +
		"        count = count + 1\n"
	require.Equal(t, want, got)
}

func TestEmptyClassGetsPass(t *testing.T) {
	got := convert(t, "class Empty {}")
	require.Equal(t, "class Empty:\n    pass\n", got)
}

func TestMultipleClassesSeparatedByBlankLine(t *testing.T) {
	got := convert(t, "class A {} class B {}")
	require.Equal(t, "class A:\n    pass\n\nclass B:\n    pass\n", got)
}

func TestStaticMethodAndPrintln(t *testing.T) {
	got := convert(t, `
public class App {
    public static void main(String[] args) {
        System.out.println("hello");
    }
}`)

	assert.Contains(t, got, "@staticmethod\n")
	assert.Contains(t, got, "def main(args: list[str]) -> None:\n")
	assert.Contains(t, got, `print("hello")`)
	// static 方法没有 self
	assert.NotContains(t, got, "self")
}

func TestPrintlnKeepsOnlyFirstArgument(t *testing.T) {
	got := convertBody(t, `System.out.println("hi", x);`)
	assert.Contains(t, got, `print("hi")`)
	assert.NotContains(t, got, "System.out")
}

func TestFieldDefaults(t *testing.T) {
	got := convert(t, `
class D {
    int a;
    String s;
    boolean b;
    float f;
    int[] arr;
    Foo o;
}`)

	assert.Contains(t, got, "a: int = 0\n")
	assert.Contains(t, got, "s: str = \"\"\n")
	assert.Contains(t, got, "b: bool = False\n")
	assert.Contains(t, got, "f: float = 0.0\n")
	assert.Contains(t, got, "arr: list[int] = []\n")
	assert.Contains(t, got, "o: Foo = None\n")
}

func TestForCountingLoop(t *testing.T) {
	got := convertBody(t, "for (int i = 0; i < 10; i++) { sum = sum + i; }")
	assert.Contains(t, got, "for i in range(0, 10):\n")
	assert.Contains(t, got, "sum = sum + i\n")
}

func TestForInclusiveBoundWithStep(t *testing.T) {
	got := convertBody(t, "for (int i = 0; i <= 20; i += 2) { total = total + i; }")
	assert.Contains(t, got, "for i in range(0, 22, 2):\n")
}

func TestForInclusiveBoundNonConstant(t *testing.T) {
	got := convertBody(t, "for (int i = 0; i <= n; i++) { f(i); }")
	assert.Contains(t, got, "for i in range(0, n + 1):\n")
}

func TestForCountdown(t *testing.T) {
	got := convertBody(t, "for (int i = 10; i < 0; i--) { f(i); }")
	// 步长为负时原样输出，语义交给 range
	assert.Contains(t, got, "for i in range(10, 0, -1):\n")
}

func TestForFallsBackToWhile(t *testing.T) {
	got := convertBody(t, "for (int i = 1; i < 100; i = i * 2) { x = x + i; }")

	assert.Contains(t, got, "i = 1\n")
	assert.Contains(t, got, "while i < 100:\n")
	assert.Contains(t, got, "x = x + i\n")
	assert.Contains(t, got, "i = i * 2\n")
	assert.NotContains(t, got, "range")
}

func TestForEachLoop(t *testing.T) {
	got := convertBody(t, "for (String name : names) { print(name); }")
	assert.Contains(t, got, "for name in names:\n")
}

func TestWhileLoop(t *testing.T) {
	got := convertBody(t, "while (x < 10) { x++; }")
	assert.Contains(t, got, "while x < 10:\n")
	assert.Contains(t, got, "x += 1\n")
}

func TestDoWhileLoop(t *testing.T) {
	got := convertBody(t, "do { x++; } while (x < 3);")

	assert.Contains(t, got, "while True:\n")
	assert.Contains(t, got, "x += 1\n")
	assert.Contains(t, got, "if not (x < 3):\n")
	assert.Contains(t, got, "break\n")
}

func TestSwitchToMatch(t *testing.T) {
	got := convertBody(t, `
switch (day) {
    case 1:
        name = "Mon";
        break;
    case 2:
        name = "Tue";
        break;
    default:
        name = "?";
}`)

	assert.Contains(t, got, "match day:\n")
	assert.Contains(t, got, "case 1:\n")
	assert.Contains(t, got, "case 2:\n")
	assert.Contains(t, got, "case _:\n")
	// case 体末尾的 break 不输出
	assert.NotContains(t, got, "break")
}

func TestIfElifElse(t *testing.T) {
	got := convertBody(t, `
if (a > 1) { x = 1; }
else if (a > 0) { x = 2; }
else { x = 3; }`)

	assert.Contains(t, got, "if a > 1:\n")
	assert.Contains(t, got, "elif a > 0:\n")
	assert.Contains(t, got, "else:\n")
}

func TestEmptyBlocksGetPass(t *testing.T) {
	got := convertBody(t, "if (ready) {} while (busy) {}")
	assert.Contains(t, got, "if ready:\n")
	assert.Contains(t, got, "while busy:\n")
	assert.Contains(t, got, "pass\n")
}

func TestIncDecStatements(t *testing.T) {
	got := convertBody(t, "i++; --j;")
	assert.Contains(t, got, "i += 1\n")
	assert.Contains(t, got, "j -= 1\n")
}

func TestIncDecInExpressionDegrades(t *testing.T) {
	got := convertBody(t, "y = x++;")
	assert.Contains(t, got, "y = x\n")
	assert.NotContains(t, got, "x++")
}

func TestLogicalOperators(t *testing.T) {
	got := convertBody(t, "ok = a && b || c;")
	assert.Contains(t, got, "ok = a and b or c\n")
}

func TestBooleanAndNullLiterals(t *testing.T) {
	got := convertBody(t, "flag = true; other = false; ref = null;")
	assert.Contains(t, got, "flag = True\n")
	assert.Contains(t, got, "other = False\n")
	assert.Contains(t, got, "ref = None\n")
}

func TestLocalDeclarationDefaults(t *testing.T) {
	got := convertBody(t, "int n; String s = \"x\";")
	assert.Contains(t, got, "n = 0\n")
	assert.Contains(t, got, "s = \"x\"\n")
}

func TestInstanceMethodGetsSelf(t *testing.T) {
	got := convert(t, "class A { void f(int n) {} }")
	assert.Contains(t, got, "def f(self, n: int) -> None:\n")
	assert.Contains(t, got, "pass\n")
}

func TestFormatLiteral(t *testing.T) {
	assert.Equal(t, "42", formatLiteral("42"))
	assert.Equal(t, "3.14", formatLiteral("3.14"))
	assert.Equal(t, `"text"`, formatLiteral(`"text"`))
	assert.Equal(t, "'c'", formatLiteral("'c'"))
	assert.Equal(t, "True", formatLiteral("true"))
	assert.Equal(t, "False", formatLiteral("false"))
	assert.Equal(t, "None", formatLiteral("null"))
	assert.Equal(t, `""`, formatLiteral(""))
	// 裸文本按字符串处理，内部引号转义
	assert.Equal(t, `"bare"`, formatLiteral("bare"))
	assert.Equal(t, `"a\"b"`, formatLiteral(`a"b`))
}

func TestMapType(t *testing.T) {
	cases := []struct {
		ref  parser.TypeRef
		want string
	}{
		{parser.TypeRef{Name: "int"}, "int"},
		{parser.TypeRef{Name: "long"}, "int"},
		{parser.TypeRef{Name: "double"}, "float"},
		{parser.TypeRef{Name: "boolean"}, "bool"},
		{parser.TypeRef{Name: "String"}, "str"},
		{parser.TypeRef{Name: "char"}, "str"},
		{parser.TypeRef{Name: "void"}, "None"},
		{parser.TypeRef{Name: "Foo"}, "Foo"},
		{parser.TypeRef{Name: ""}, "None"},
		{parser.TypeRef{Name: "int", Dims: 1}, "list[int]"},
		{parser.TypeRef{Name: "String", Dims: 2}, "list[list[str]]"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mapType(tc.ref), "type %s", tc.ref)
	}
}

func TestDefaultValue(t *testing.T) {
	assert.Equal(t, "0", defaultValue(parser.TypeRef{Name: "int"}))
	assert.Equal(t, "0.0", defaultValue(parser.TypeRef{Name: "double"}))
	assert.Equal(t, "False", defaultValue(parser.TypeRef{Name: "boolean"}))
	assert.Equal(t, `""`, defaultValue(parser.TypeRef{Name: "String"}))
	assert.Equal(t, "None", defaultValue(parser.TypeRef{Name: "void"}))
	assert.Equal(t, "None", defaultValue(parser.TypeRef{Name: "Foo"}))
	assert.Equal(t, "[]", defaultValue(parser.TypeRef{Name: "int", Dims: 1}))
}

func TestGeneratorIsReusable(t *testing.T) {
	unit, err := parser.Parse("class A {}")
	require.NoError(t, err)

	g := NewCodeGen("")
	first := g.Generate(unit)
	second := g.Generate(unit)
	require.Equal(t, first, second)
}
