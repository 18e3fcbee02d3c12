package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// Parser errors
	ErrExpectedToken: "第 %d 行第 %d 列: 期望 %s，得到 %s",
	ErrGeneric:       "第 %d 行第 %d 列: %s",
	ErrUnclosedClass: "类 '%s' 未闭合: 在第 %d 行到达输入末尾，缺少 '}'",

	// CLI - Usage and help
	MsgUsage:          "用法: j2py <命令> [参数]",
	MsgCommands:       "命令:",
	MsgCmdConvert:     "  convert  将 Java 源文件转换为 Python",
	MsgCmdRun:         "  run      转换 Java 源文件并用 python3 运行",
	MsgCmdVersion:     "  version  打印版本信息",
	MsgCmdHelp:        "  help     打印帮助信息",
	MsgUseHelp:        "使用 \"j2py <命令> -h\" 获取命令的更多信息。",
	MsgUnknownCommand: "未知命令: %s",

	// CLI - Convert command
	MsgConvertUsage:       "用法: j2py convert [选项] <输入>",
	MsgConvertDescription: "将 Java 源文件转换为 Python。",
	MsgConvertArgInput:    "  <输入>    输入 .java 文件或目录",
	MsgConvertOptOutput:   "输出目录",
	MsgConvertOptVerbose:  "详细输出",
	MsgConvertOptAST:      "把解析出的 AST 输出到 stderr",
	MsgConvertOptTokens:   "把 token 流输出到 stderr",

	// CLI - Run command
	MsgRunUsage:       "用法: j2py run [选项] <输入>",
	MsgRunDescription: "将 Java 源文件转换为 Python 并运行。\n输出放在 .output 目录（自动清理）。",
	MsgRunArgInput:    "  <输入>    输入 .java 文件",
	MsgRunOptVerbose:  "详细输出",

	// CLI - Common errors
	ErrInputRequired:     "错误: 需要输入文件或目录",
	ErrCannotAccessInput: "无法访问输入",
	ErrCannotLoadConfig:  "无法加载配置",
	ErrCannotReadFile:    "无法读取文件",
	ErrParseError:        "%s 解析错误: %s",
	ErrNoJavaFiles:       "在 %s 中未找到 .java 文件",
	ErrCannotCreateDir:   "无法创建输出目录",
	ErrCannotWriteFile:   "无法写入文件",
	ErrRunError:          "运行错误: %v",

	// CLI - Info messages
	MsgUsingConfig:    "使用配置: %s (项目: %s)",
	MsgNoConfig:       "未找到 j2py.toml，使用默认项目: %s",
	MsgParsing:        "正在解析: %s",
	MsgConverting:     "正在转换: %s -> %s",
	MsgRunning:        "正在运行...",
	MsgConvertSuccess: "成功转换 %d 个文件",
}
