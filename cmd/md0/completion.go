package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md0/internal/assets"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// supportedShells lists shells in the order shown to users.
var supportedShells = []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// markdownGlobs matches markdown inputs.
var markdownGlobs = []string{"*.md", "*.markdown"}

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob patterns
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long   string   // --output
	Short  string   // -o (empty if none)
	Type   flagType // completion type
	Desc   string   // help text
	Values []string // for enum flags
	Globs  []string // for file flags
}

// takesValue reports whether the flag consumes the next word.
func (f flagDef) takesValue() bool {
	return f.Type != flagBool
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
	Args  []string // fixed argument values (help topics, shells)
	Globs []string // file arguments, nil if none
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values func() []string // enum values
	Globs  []string        // file glob patterns
	IsDir  bool            // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"engine":    {Values: engineNames},
	"format":    {Values: func() []string { return tokenFormats }},
	"highlight": {Values: styles.Names},
	"style":     {Values: assets.BuiltinStyles},

	// File flags
	"config": {Globs: []string{"*.yaml", "*.yml"}},
	"css":    {Globs: []string{"*.css"}},

	// Directory flags
	"output":    {IsDir: true},
	"style-dir": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet,
// enriched with flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case len(meta.Globs) > 0:
				fd.Type = flagFile
				fd.Globs = meta.Globs
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the FlagSets the commands parse with.
func getCommands() []commandDef {
	shells := make([]string, len(supportedShells))
	for i, s := range supportedShells {
		shells[i] = string(s)
	}

	return []commandDef{
		{
			Name:  "tokens",
			Desc:  "Print the block tokens of a markdown file",
			Flags: extractFlagsFromFlagSet(newTokensFlagSet(&tokensFlags{}, io.Discard)),
			Globs: markdownGlobs,
		},
		{
			Name:  "html",
			Desc:  "Convert markdown files to HTML",
			Flags: extractFlagsFromFlagSet(newHTMLFlagSet(&htmlFlags{}, io.Discard)),
			Globs: markdownGlobs,
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: []string{"tokens", "html", "version", "completion"},
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: shells,
		},
	}
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var b strings.Builder
	commands := getCommands()

	switch shell {
	case ShellBash:
		writeBash(&b, commands)
	case ShellZsh:
		writeZsh(&b, commands)
	case ShellFish:
		writeFish(&b, commands)
	case ShellPowerShell:
		writePowerShell(&b, commands)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected one shell, got %d", ErrTooManyArgs, len(args))
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func writeBash(b *strings.Builder, commands []commandDef) {
	b.WriteString("# bash completion for md0\n\n")
	b.WriteString("_md0_completions() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(commandNames(commands), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")

	for _, cmd := range commands {
		if len(cmd.Flags) == 0 && len(cmd.Args) == 0 && cmd.Globs == nil {
			continue
		}
		fmt.Fprintf(b, "    %s)\n", cmd.Name)

		if valued := valuedFlags(cmd.Flags); len(valued) > 0 {
			b.WriteString("        case \"$prev\" in\n")
			for _, f := range valued {
				fmt.Fprintf(b, "        %s)\n", strings.Join(flagSpellings(f), "|"))
				fmt.Fprintf(b, "            COMPREPLY=(%s)\n", bashValueCompletion(f))
				b.WriteString("            return\n")
				b.WriteString("            ;;\n")
			}
			b.WriteString("        esac\n")
		}

		if len(cmd.Flags) > 0 {
			var words []string
			for _, f := range cmd.Flags {
				words = append(words, flagSpellings(f)...)
			}
			b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(words, " "))
			b.WriteString("            return\n")
			b.WriteString("        fi\n")
		}

		switch {
		case len(cmd.Args) > 0:
			fmt.Fprintf(b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(cmd.Args, " "))
		case cmd.Globs != nil:
			fmt.Fprintf(b, "        COMPREPLY=(%s $(compgen -d -- \"$cur\"))\n", bashGlobCompletion(cmd.Globs))
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _md0_completions md0\n")
}

func bashValueCompletion(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return fmt.Sprintf("$(compgen -W %q -- \"$cur\")", strings.Join(f.Values, " "))
	case flagFile:
		return bashGlobCompletion(f.Globs) + " $(compgen -d -- \"$cur\")"
	case flagDir:
		return "$(compgen -d -- \"$cur\")"
	default:
		return ""
	}
}

func bashGlobCompletion(globs []string) string {
	parts := make([]string, len(globs))
	for i, g := range globs {
		parts[i] = fmt.Sprintf("$(compgen -f -X '!%s' -- \"$cur\")", g)
	}
	return strings.Join(parts, " ")
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func writeZsh(b *strings.Builder, commands []commandDef) {
	b.WriteString("#compdef md0\n\n")
	b.WriteString("_md0() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, cmd := range commands {
		fmt.Fprintf(b, "        '%s:%s'\n", cmd.Name, zshQuote(cmd.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=\"${words[2]}\"\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, cmd := range commands {
		if len(cmd.Flags) == 0 && len(cmd.Args) == 0 && cmd.Globs == nil {
			continue
		}
		fmt.Fprintf(b, "    %s)\n", cmd.Name)
		b.WriteString("        _arguments \\\n")
		for _, f := range cmd.Flags {
			fmt.Fprintf(b, "            %s \\\n", zshFlagSpec(f))
		}
		switch {
		case len(cmd.Args) > 0:
			fmt.Fprintf(b, "            '1:argument:(%s)'\n", strings.Join(cmd.Args, " "))
		case cmd.Globs != nil:
			fmt.Fprintf(b, "            '*:file:_files -g \"%s\"'\n", strings.Join(cmd.Globs, " "))
		default:
			b.WriteString("            '*:file:_files'\n")
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_md0 \"$@\"\n")
}

func zshFlagSpec(f flagDef) string {
	desc := "[" + zshQuote(f.Desc) + "]"

	action := ""
	if f.takesValue() {
		switch f.Type {
		case flagEnum:
			action = ":value:(" + strings.Join(f.Values, " ") + ")"
		case flagFile:
			action = ":file:_files -g \"" + strings.Join(f.Globs, " ") + "\""
		case flagDir:
			action = ":directory:_files -/"
		default:
			action = ":value: "
		}
	}

	if f.Short == "" {
		return "'--" + f.Long + desc + action + "'"
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
}

// zshQuote escapes text for a single-quoted _arguments spec.
func zshQuote(s string) string {
	r := strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`)
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func writeFish(b *strings.Builder, commands []commandDef) {
	b.WriteString("# fish completion for md0\n\n")
	b.WriteString("function __fish_md0_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_md0_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c md0 -f\n\n")

	for _, cmd := range commands {
		fmt.Fprintf(b, "complete -c md0 -n __fish_md0_needs_command -a %s -d %s\n", cmd.Name, fishQuote(cmd.Desc))
	}

	for _, cmd := range commands {
		cond := fishQuote("__fish_md0_using_command " + cmd.Name)
		if len(cmd.Flags) > 0 || len(cmd.Args) > 0 || cmd.Globs != nil {
			b.WriteString("\n")
		}
		for _, f := range cmd.Flags {
			fmt.Fprintf(b, "complete -c md0 -n %s", cond)
			if f.Short != "" {
				fmt.Fprintf(b, " -s %s", f.Short)
			}
			fmt.Fprintf(b, " -l %s -d %s", f.Long, fishQuote(f.Desc))
			switch f.Type {
			case flagBool:
			case flagEnum:
				fmt.Fprintf(b, " -x -a %s", fishQuote(strings.Join(f.Values, " ")))
			case flagFile:
				b.WriteString(" -r -F")
			case flagDir:
				b.WriteString(" -x -a '(__fish_complete_directories)'")
			default:
				b.WriteString(" -x")
			}
			b.WriteString("\n")
		}
		switch {
		case len(cmd.Args) > 0:
			fmt.Fprintf(b, "complete -c md0 -n %s -a %s\n", cond, fishQuote(strings.Join(cmd.Args, " ")))
		case cmd.Globs != nil:
			fmt.Fprintf(b, "complete -c md0 -n %s -F\n", cond)
		}
	}
}

// fishQuote single-quotes s for fish.
func fishQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func writePowerShell(b *strings.Builder, commands []commandDef) {
	b.WriteString("# PowerShell completion for md0\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName md0 -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    $completions = @()\n\n")
	b.WriteString("    if ($words.Count -le 1 -or ($words.Count -eq 2 -and $wordToComplete)) {\n")
	fmt.Fprintf(b, "        $completions = %s\n", psArray(commandNames(commands)))
	b.WriteString("    } else {\n")
	b.WriteString("        switch ($words[1]) {\n")
	for _, cmd := range commands {
		var values []string
		for _, f := range cmd.Flags {
			values = append(values, flagSpellings(f)...)
		}
		values = append(values, cmd.Args...)
		if len(values) == 0 {
			continue
		}
		fmt.Fprintf(b, "            '%s' { $completions = %s }\n", cmd.Name, psArray(values))
	}
	b.WriteString("        }\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $completions | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
}

func psArray(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return "@(" + strings.Join(quoted, ", ") + ")"
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func commandNames(commands []commandDef) []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	return names
}

// flagSpellings returns --long and, if set, -s.
func flagSpellings(f flagDef) []string {
	if f.Short == "" {
		return []string{"--" + f.Long}
	}
	return []string{"--" + f.Long, "-" + f.Short}
}

// valuedFlags returns the flags whose value can be completed.
func valuedFlags(flags []flagDef) []flagDef {
	var out []flagDef
	for _, f := range flags {
		switch f.Type {
		case flagEnum, flagFile, flagDir:
			out = append(out, f)
		}
	}
	return out
}
