package transpiler

import (
	"github.com/Jennly666/Java-to-Python-Converter/internal/config"
	"github.com/Jennly666/Java-to-Python-Converter/internal/parser"
)

// Transpiler 转换器，串联词法分析、语法分析和代码生成
type Transpiler struct {
	config *config.Config
}

// New 创建一个新的转换器
func New() *Transpiler {
	return &Transpiler{}
}

// SetConfig 设置项目配置
func (t *Transpiler) SetConfig(cfg *config.Config) {
	t.config = cfg
}

// GetConfig 获取项目配置
func (t *Transpiler) GetConfig() *config.Config {
	if t.config == nil {
		return config.DefaultConfig()
	}
	return t.config
}

// ConvertSource 把 Java 源码转换为 Python 源码
func (t *Transpiler) ConvertSource(source string) (string, error) {
	unit, err := parser.Parse(source)
	if err != nil {
		return "", err
	}
	gen := NewCodeGen(t.GetConfig().IndentString())
	return gen.Generate(unit), nil
}

// ConvertUnit 把已解析的编译单元转换为 Python 源码
func (t *Transpiler) ConvertUnit(unit *parser.CompilationUnit) string {
	gen := NewCodeGen(t.GetConfig().IndentString())
	return gen.Generate(unit)
}

// Convert 用默认配置转换源码
func Convert(source string) (string, error) {
	return New().ConvertSource(source)
}
