package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Jennly666/Java-to-Python-Converter/internal/i18n"
)

// runCmd 转换并运行 Java 源码
func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgRunOptVerbose))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgRunUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgRunDescription))
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(i18n.MsgRunArgInput))
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	input := fs.Arg(0)

	// 获取当前工作目录
	cwd, err := os.Getwd()
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}

	// 输出目录为 .output
	outputDir := filepath.Join(cwd, ".output")

	// 清理并创建输出目录
	if err := os.RemoveAll(outputDir); err != nil {
		printError(err.Error())
		os.Exit(1)
	}

	// 转换
	opts := &convertOptions{verbose: *verbose}
	if err := convertInput(input, outputDir, opts); err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}

	// 运行
	if *verbose {
		printInfo(i18n.T(i18n.MsgRunning))
	}

	inputInfo, _ := os.Stat(input)
	if inputInfo != nil && !inputInfo.IsDir() {
		// 单文件模式，直接运行生成的 .py 文件
		baseName := filepath.Base(input)
		pyFile := strings.TrimSuffix(baseName, ".java") + ".py"

		cmd := exec.Command("python3", pyFile)
		cmd.Dir = outputDir
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			printError(i18n.T(i18n.ErrRunError, err))
			os.Exit(1)
		}
	} else {
		// 目录模式，运行 Main.py 或第一个生成的文件
		entry := findEntryFile(outputDir)
		if entry == "" {
			printError(i18n.T(i18n.ErrNoJavaFiles, input))
			os.Exit(1)
		}

		cmd := exec.Command("python3", entry)
		cmd.Dir = outputDir
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			printError(i18n.T(i18n.ErrRunError, err))
			os.Exit(1)
		}
	}
}

// findEntryFile 在输出目录中选择入口文件
// 优先 Main.py，否则取第一个 .py 文件
func findEntryFile(outputDir string) string {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return ""
	}

	first := ""
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".py") {
			continue
		}
		if e.Name() == "Main.py" {
			return e.Name()
		}
		if first == "" {
			first = e.Name()
		}
	}
	return first
}
