package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Jennly666/Java-to-Python-Converter/internal/i18n"
)

// convertCmd 转换 Java 源码到 Python
func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	outputDir := fs.String("o", "", i18n.T(i18n.MsgConvertOptOutput))
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgConvertOptVerbose))
	dumpAST := fs.Bool("ast", false, i18n.T(i18n.MsgConvertOptAST))
	dumpTokens := fs.Bool("tokens", false, i18n.T(i18n.MsgConvertOptTokens))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgConvertUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgConvertDescription))
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(i18n.MsgConvertArgInput))
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

	opts := &convertOptions{
		verbose:    *verbose,
		dumpAST:    *dumpAST,
		dumpTokens: *dumpTokens,
	}

	if err := convertInput(input, *outputDir, opts); err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}
}
