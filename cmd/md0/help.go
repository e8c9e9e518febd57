package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md0 <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tokens     Print the block tokens of a markdown file")
	fmt.Fprintln(w, "  html       Convert markdown files to HTML")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md0 help <command>' for details on a specific command.")
}

// printTokensUsage prints usage for the tokens command.
func printTokensUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md0 tokens [flags] [file|-]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tokenize a markdown file and print one token per line.")
	fmt.Fprintln(w, "Reads stdin when no file is given or the file is \"-\".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: debug (default), yaml")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show tokenizer diagnostics")
}

// printHTMLUsage prints usage for the html command.
func printHTMLUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md0 html [flags] [file|dir|-]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown to HTML. A directory is converted recursively.")
	fmt.Fprintln(w, "Reads stdin when no input is given or the input is \"-\".")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto, max 8)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <s>          Engine: native (default), goldmark")
	fmt.Fprintln(w, "      --language-class      Add class=\"language-X\" to code blocks")
	fmt.Fprintln(w, "      --highlight <style>   Chroma style for code blocks (e.g. monokai)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --document            Wrap output in a standalone HTML5 page")
	fmt.Fprintln(w, "      --title <s>           Page title (\"\" = first heading)")
	fmt.Fprintln(w, "      --style <name>        Stylesheet: default, plain, or a custom style")
	fmt.Fprintln(w, "      --style-dir <dir>     Directory of custom {name}.css styles")
	fmt.Fprintln(w, "      --css <file>          CSS file injected after the style")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show diagnostics and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  conversion failed")
	fmt.Fprintln(w, "  2  invalid flags, config or arguments")
	fmt.Fprintln(w, "  3  file could not be read or written")
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "tokens":
		printTokensUsage(env.Stdout)
	case "html":
		printHTMLUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md0 version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
	}
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md0 completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w, "  Bash:        eval \"$(md0 completion bash)\"  # in ~/.bashrc")
	fmt.Fprintln(w, "  Zsh:         eval \"$(md0 completion zsh)\"   # in ~/.zshrc, before compinit")
	fmt.Fprintln(w, "  Fish:        md0 completion fish > ~/.config/fish/completions/md0.fish")
	fmt.Fprintln(w, "  PowerShell:  md0 completion powershell | Out-String | Invoke-Expression")
}
