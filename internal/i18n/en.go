package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Parser errors
	ErrExpectedToken: "line %d:%d: expected %s, got %s",
	ErrGeneric:       "line %d:%d: %s",
	ErrUnclosedClass: "class '%s' is never closed: reached end of input at line %d before '}'",

	// CLI - Usage and help
	MsgUsage:          "Usage: j2py <command> [arguments]",
	MsgCommands:       "Commands:",
	MsgCmdConvert:     "  convert  Convert Java source files to Python",
	MsgCmdRun:         "  run      Convert a Java source file and run it with python3",
	MsgCmdVersion:     "  version  Print version information",
	MsgCmdHelp:        "  help     Print this help message",
	MsgUseHelp:        "Use \"j2py <command> -h\" for more information about a command.",
	MsgUnknownCommand: "Unknown command: %s",

	// CLI - Convert command
	MsgConvertUsage:       "Usage: j2py convert [options] <input>",
	MsgConvertDescription: "Convert Java source files to Python.",
	MsgConvertArgInput:    "  <input>    Input .java file or directory",
	MsgConvertOptOutput:   "Output directory",
	MsgConvertOptVerbose:  "Verbose output",
	MsgConvertOptAST:      "Dump the parsed AST to stderr",
	MsgConvertOptTokens:   "Dump the token stream to stderr",

	// CLI - Run command
	MsgRunUsage:       "Usage: j2py run [options] <input>",
	MsgRunDescription: "Convert a Java source file to Python and run it.\nOutput is placed in .output directory (auto-cleaned).",
	MsgRunArgInput:    "  <input>    Input .java file",
	MsgRunOptVerbose:  "Verbose output",

	// CLI - Common errors
	ErrInputRequired:     "Error: input file or directory is required",
	ErrCannotAccessInput: "cannot access input",
	ErrCannotLoadConfig:  "cannot load config",
	ErrCannotReadFile:    "cannot read file",
	ErrParseError:        "parse error in %s: %s",
	ErrNoJavaFiles:       "no .java files found in %s",
	ErrCannotCreateDir:   "cannot create output directory",
	ErrCannotWriteFile:   "cannot write file",
	ErrRunError:          "Error running: %v",

	// CLI - Info messages
	MsgUsingConfig:    "Using config: %s (project: %s)",
	MsgNoConfig:       "No j2py.toml found, using default project: %s",
	MsgParsing:        "Parsing: %s",
	MsgConverting:     "Converting: %s -> %s",
	MsgRunning:        "Running...",
	MsgConvertSuccess: "Successfully converted %d files",
}
