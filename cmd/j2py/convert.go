package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/Jennly666/Java-to-Python-Converter/internal/config"
	"github.com/Jennly666/Java-to-Python-Converter/internal/i18n"
	"github.com/Jennly666/Java-to-Python-Converter/internal/lexer"
	"github.com/Jennly666/Java-to-Python-Converter/internal/parser"
	"github.com/Jennly666/Java-to-Python-Converter/internal/source"
	"github.com/Jennly666/Java-to-Python-Converter/internal/transpiler"
)

// convertOptions 转换选项
type convertOptions struct {
	verbose    bool
	dumpAST    bool
	dumpTokens bool
}

// convertInput 转换输入文件或目录
func convertInput(input, output string, opts *convertOptions) error {
	info, err := os.Stat(input)
	if err != nil {
		return &accessError{err: err}
	}

	// 查找并加载 j2py.toml 配置
	startDir := input
	if !info.IsDir() {
		startDir = filepath.Dir(input)
	}

	cfg, configPath, err := config.FindAndLoad(startDir)
	if err != nil {
		return &configError{err: err}
	}

	if opts.verbose {
		if configPath != "" {
			printInfo(i18n.T(i18n.MsgUsingConfig, configPath, cfg.Project.Name))
		} else {
			printInfo(i18n.T(i18n.MsgNoConfig, cfg.Project.Name))
		}
	}

	// 命令行 -o 优先于配置文件
	if output == "" {
		output = cfg.Output.Dir
	}

	if info.IsDir() {
		return convertDir(input, output, opts, cfg)
	}
	return convertFile(input, output, opts, cfg)
}

// convertDir 转换目录下的所有 .java 文件
func convertDir(inputDir, outputDir string, opts *convertOptions, cfg *config.Config) error {
	t := transpiler.New()
	t.SetConfig(cfg)

	count := 0
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !strings.HasSuffix(path, ".java") {
			return nil
		}

		relPath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}

		outputPath := filepath.Join(outputDir, strings.TrimSuffix(relPath, ".java")+".py")

		if err := convertOne(t, path, outputPath, opts, cfg); err != nil {
			return err
		}
		count++

		return nil
	})

	if err != nil {
		return err
	}

	if count == 0 {
		return &noFilesError{dir: inputDir}
	}

	if opts.verbose {
		printInfo(i18n.T(i18n.MsgConvertSuccess, count))
	}

	return nil
}

// convertFile 转换单个文件
func convertFile(inputFile, outputPath string, opts *convertOptions, cfg *config.Config) error {
	t := transpiler.New()
	t.SetConfig(cfg)

	// 确定输出路径
	finalOutput := outputPath
	info, err := os.Stat(outputPath)
	if (err == nil && info.IsDir()) || !strings.HasSuffix(outputPath, ".py") {
		// 输出是目录，使用输入文件名
		baseName := filepath.Base(inputFile)
		baseName = strings.TrimSuffix(baseName, ".java") + ".py"
		finalOutput = filepath.Join(outputPath, baseName)
	}

	if err := convertOne(t, inputFile, finalOutput, opts, cfg); err != nil {
		return err
	}

	if opts.verbose {
		printInfo(i18n.T(i18n.MsgConvertSuccess, 1))
	}

	return nil
}

// convertOne 读取、解析并转换一个文件，写入输出路径
func convertOne(t *transpiler.Transpiler, inputFile, outputPath string, opts *convertOptions, cfg *config.Config) error {
	if opts.verbose {
		printInfo(i18n.T(i18n.MsgParsing, inputFile))
	}

	src, err := source.ReadFile(inputFile, cfg.Input.Encoding, cfg.Input.OnError)
	if err != nil {
		return &readFileError{path: inputFile, err: err}
	}

	if opts.dumpTokens {
		dumpTokenStream(src)
	}

	unit, err := parser.Parse(src)
	if err != nil {
		return &parseError{path: inputFile, msg: err.Error()}
	}

	if opts.dumpAST {
		fmt.Fprint(os.Stderr, spew.Sdump(unit))
	}

	pyCode := t.ConvertUnit(unit)

	if opts.verbose {
		printInfo(i18n.T(i18n.MsgConverting, inputFile, outputPath))
	}

	// 确保输出目录存在
	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return &createDirError{path: outputDir, err: err}
	}

	if err := os.WriteFile(outputPath, []byte(pyCode), 0644); err != nil {
		return &writeFileError{path: outputPath, err: err}
	}

	return nil
}

// dumpTokenStream 把 token 流打印到 stderr（含隐藏通道的注释）
func dumpTokenStream(src string) {
	for _, tok := range lexer.Tokenize(src) {
		channel := ""
		if tok.Channel == lexer.ChannelHidden {
			channel = " hidden"
		}
		fmt.Fprintf(os.Stderr, "%d:%d\t%s\t%q%s\n",
			tok.Line, tok.Column, lexer.TokenKindName(tok.Kind), tok.Text, channel)
	}
}

// 错误类型定义
type accessError struct {
	err error
}

func (e *accessError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotAccessInput), e.err)
}

type configError struct {
	err error
}

func (e *configError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotLoadConfig), e.err)
}

type readFileError struct {
	path string
	err  error
}

func (e *readFileError) Error() string {
	return fmt.Sprintf("%s %s: %v", i18n.T(i18n.ErrCannotReadFile), e.path, e.err)
}

type parseError struct {
	path string
	msg  string
}

func (e *parseError) Error() string {
	return i18n.T(i18n.ErrParseError, e.path, e.msg)
}

type noFilesError struct {
	dir string
}

func (e *noFilesError) Error() string {
	return i18n.T(i18n.ErrNoJavaFiles, e.dir)
}

type createDirError struct {
	path string
	err  error
}

func (e *createDirError) Error() string {
	return fmt.Sprintf("%s %s: %v", i18n.T(i18n.ErrCannotCreateDir), e.path, e.err)
}

type writeFileError struct {
	path string
	err  error
}

func (e *writeFileError) Error() string {
	return fmt.Sprintf("%s %s: %v", i18n.T(i18n.ErrCannotWriteFile), e.path, e.err)
}
