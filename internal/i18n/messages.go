package i18n

// Message keys for parser errors
const (
	ErrExpectedToken = "parser.expected_token" // args: line, column, expected, got
	ErrGeneric       = "parser.generic"        // args: line, column, message
	ErrUnclosedClass = "parser.unclosed_class" // args: className, line
)

// Message keys for CLI
const (
	// Usage and help
	MsgUsage          = "cli.usage"
	MsgCommands       = "cli.commands"
	MsgCmdConvert     = "cli.cmd_convert"
	MsgCmdRun         = "cli.cmd_run"
	MsgCmdVersion     = "cli.cmd_version"
	MsgCmdHelp        = "cli.cmd_help"
	MsgUseHelp        = "cli.use_help"
	MsgUnknownCommand = "cli.unknown_command" // args: command

	// Convert command
	MsgConvertUsage       = "cli.convert_usage"
	MsgConvertDescription = "cli.convert_description"
	MsgConvertArgInput    = "cli.convert_arg_input"
	MsgConvertOptOutput   = "cli.convert_opt_output"
	MsgConvertOptVerbose  = "cli.convert_opt_verbose"
	MsgConvertOptAST      = "cli.convert_opt_ast"
	MsgConvertOptTokens   = "cli.convert_opt_tokens"

	// Run command
	MsgRunUsage       = "cli.run_usage"
	MsgRunDescription = "cli.run_description"
	MsgRunArgInput    = "cli.run_arg_input"
	MsgRunOptVerbose  = "cli.run_opt_verbose"

	// Common errors
	ErrInputRequired     = "cli.input_required"
	ErrCannotAccessInput = "cli.cannot_access_input"
	ErrCannotLoadConfig  = "cli.cannot_load_config"
	ErrCannotReadFile    = "cli.cannot_read_file"
	ErrParseError        = "cli.parse_error" // args: path, error
	ErrNoJavaFiles       = "cli.no_java_files" // args: dir
	ErrCannotCreateDir   = "cli.cannot_create_dir"
	ErrCannotWriteFile   = "cli.cannot_write_file"
	ErrRunError          = "cli.run_error" // args: error

	// Info messages
	MsgUsingConfig    = "cli.using_config" // args: configPath, project
	MsgNoConfig       = "cli.no_config"    // args: project
	MsgParsing        = "cli.parsing"      // args: path
	MsgConverting     = "cli.converting"   // args: input, output
	MsgRunning        = "cli.running"
	MsgConvertSuccess = "cli.convert_success" // args: count
)
