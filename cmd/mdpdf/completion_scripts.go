package main

import (
	"fmt"
	"io"
	"strings"
)

// The generators below render completion scripts from getCommands(), so new
// flags appear in every shell without touching shell code. Scripts use only
// widely available completion primitives (compgen, _arguments, complete,
// Register-ArgumentCompleter).

// findCommand returns the named command definition.
func findCommand(commands []commandDef, name string) commandDef {
	for _, c := range commands {
		if c.Name == name {
			return c
		}
	}
	return commandDef{}
}

// commandNames returns the names of all commands.
func commandNames(commands []commandDef) []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	return names
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

// generateBash writes the bash completion script.
func generateBash(w io.Writer) error {
	commands := getCommands()
	convert := findCommand(commands, "convert")
	names := strings.Join(commandNames(commands), " ")

	var b strings.Builder
	b.WriteString("# bash completion for mdpdf\n")
	b.WriteString("_mdpdf_completions() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	fmt.Fprintf(&b, "    local commands=\"%s\"\n\n", names)

	// First word: commands or a markdown input for the implicit convert.
	b.WriteString("    if [[ $COMP_CWORD -eq 1 && \"$cur\" != -* ]]; then\n")
	b.WriteString("        COMPREPLY=( $(compgen -W \"$commands\" -- \"$cur\") )\n")
	b.WriteString("        COMPREPLY+=( $(compgen -f -X '!*.@(md|markdown)' -- \"$cur\") )\n")
	b.WriteString("        COMPREPLY+=( $(compgen -d -- \"$cur\") )\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	b.WriteString("    completion)\n")
	b.WriteString("        COMPREPLY=( $(compgen -W \"bash zsh fish powershell\" -- \"$cur\") )\n")
	b.WriteString("        return ;;\n")
	b.WriteString("    help)\n")
	b.WriteString("        COMPREPLY=( $(compgen -W \"$commands\" -- \"$cur\") )\n")
	b.WriteString("        return ;;\n")
	b.WriteString("    doctor)\n")
	b.WriteString("        COMPREPLY=( $(compgen -W \"--json\" -- \"$cur\") )\n")
	b.WriteString("        return ;;\n")
	b.WriteString("    version)\n")
	b.WriteString("        return ;;\n")
	b.WriteString("    esac\n\n")

	// Values for the flag before the cursor.
	b.WriteString("    case \"$prev\" in\n")
	for _, f := range convert.Flags {
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&b, "    %s)\n        COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n        return ;;\n",
				bashFlagPattern(f), strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprintf(&b, "    %s)\n        COMPREPLY=( $(compgen -f -- \"$cur\") )\n        return ;;\n",
				bashFlagPattern(f))
		case flagDir:
			fmt.Fprintf(&b, "    %s)\n        COMPREPLY=( $(compgen -d -- \"$cur\") )\n        return ;;\n",
				bashFlagPattern(f))
		case flagString, flagInt:
			fmt.Fprintf(&b, "    %s)\n        return ;;\n", bashFlagPattern(f))
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(flagWords(convert.Flags), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    COMPREPLY=( $(compgen -f -X '!*.@(md|markdown)' -- \"$cur\") )\n")
	b.WriteString("    COMPREPLY+=( $(compgen -d -- \"$cur\") )\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _mdpdf_completions mdpdf\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// bashFlagPattern builds a case pattern matching a flag's spellings.
func bashFlagPattern(f flagDef) string {
	if f.Short != "" {
		return fmt.Sprintf("--%s|-%s", f.Long, f.Short)
	}
	return "--" + f.Long
}

// flagWords lists every flag spelling for word completion.
func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

// generateZsh writes the zsh completion script.
func generateZsh(w io.Writer) error {
	commands := getCommands()
	convert := findCommand(commands, "convert")

	var b strings.Builder
	b.WriteString("#compdef mdpdf\n\n")
	b.WriteString("_mdpdf() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshSanitize(c.Desc))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe -t commands 'command' commands\n")
	b.WriteString("        _files -g '*.(md|markdown)'\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case $words[2] in\n")
	b.WriteString("    convert)\n")
	b.WriteString("        _arguments \\\n")
	for _, f := range convert.Flags {
		fmt.Fprintf(&b, "            %s \\\n", zshArgSpec(f))
	}
	b.WriteString("            '*:markdown file:_files -g \"*.(md|markdown)\"'\n")
	b.WriteString("        ;;\n")
	b.WriteString("    completion)\n")
	b.WriteString("        _arguments '2:shell:(bash zsh fish powershell)'\n")
	b.WriteString("        ;;\n")
	b.WriteString("    help)\n")
	b.WriteString("        _describe -t commands 'command' commands\n")
	b.WriteString("        ;;\n")
	b.WriteString("    doctor)\n")
	b.WriteString("        _arguments '--json[machine-readable output]'\n")
	b.WriteString("        ;;\n")
	b.WriteString("    *)\n")
	b.WriteString("        _files -g '*.(md|markdown)'\n")
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_mdpdf \"$@\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshArgSpec builds one _arguments spec for a flag.
func zshArgSpec(f flagDef) string {
	desc := zshSanitize(f.Desc)
	action := ""
	switch f.Type {
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(":file:_files -g \"%s\"", zshGlob(f.FileGlob))
	case flagDir:
		action = ":directory:_files -/"
	case flagString, flagInt:
		action = fmt.Sprintf(":%s:", f.Long)
	}

	repeat := ""
	if f.Repeat {
		repeat = "*"
	}

	if f.Short != "" {
		return fmt.Sprintf("'%s(-%s --%s)'{-%s,--%s}'[%s]%s'",
			repeat, f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'%s--%s[%s]%s'", repeat, f.Long, desc, action)
}

// zshSanitize strips characters that delimit _arguments specs.
func zshSanitize(s string) string {
	return strings.NewReplacer(":", " -", "[", "(", "]", ")", "'", "").Replace(s)
}

// zshGlob converts a comma-separated glob list to a zsh alternation glob:
// "*.yaml,*.yml" becomes "*.(yaml|yml)".
func zshGlob(globs string) string {
	var exts []string
	for _, g := range strings.Split(globs, ",") {
		exts = append(exts, strings.TrimPrefix(g, "*."))
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

// generateFish writes the fish completion script.
func generateFish(w io.Writer) error {
	commands := getCommands()
	convert := findCommand(commands, "convert")

	var b strings.Builder
	b.WriteString("# fish completion for mdpdf\n\n")
	b.WriteString("function __fish_mdpdf_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_mdpdf_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test \"$argv[1]\" = \"$cmd[2]\"\n")
	b.WriteString("end\n\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c mdpdf -n __fish_mdpdf_needs_command -a %s -d '%s'\n",
			c.Name, fishEscape(c.Desc))
	}
	b.WriteString("\n")

	for _, f := range convert.Flags {
		parts := []string{"complete -c mdpdf -n '__fish_mdpdf_using_command convert'"}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		parts = append(parts, "-l "+f.Long)
		switch f.Type {
		case flagEnum:
			parts = append(parts, fmt.Sprintf("-x -a '%s'", strings.Join(f.Values, " ")))
		case flagFile:
			parts = append(parts, "-r")
		case flagDir:
			parts = append(parts, "-x -a '(__fish_complete_directories)'")
		case flagString, flagInt:
			parts = append(parts, "-x")
		}
		parts = append(parts, fmt.Sprintf("-d '%s'", fishEscape(f.Desc)))
		b.WriteString(strings.Join(parts, " ") + "\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "complete -c mdpdf -n '__fish_mdpdf_using_command completion' -x -a 'bash zsh fish powershell'\n")
	fmt.Fprintf(&b, "complete -c mdpdf -n '__fish_mdpdf_using_command help' -x -a '%s'\n",
		strings.Join(commandNames(commands), " "))
	b.WriteString("complete -c mdpdf -n '__fish_mdpdf_using_command doctor' -l json -d 'machine-readable output'\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// fishEscape escapes single quotes for fish single-quoted strings.
func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

// generatePowerShell writes the PowerShell completion script.
func generatePowerShell(w io.Writer) error {
	commands := getCommands()
	convert := findCommand(commands, "convert")

	var b strings.Builder
	b.WriteString("# powershell completion for mdpdf\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName mdpdf -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	fmt.Fprintf(&b, "    $commands = @(%s)\n", psList(commandNames(commands)))
	fmt.Fprintf(&b, "    $convertFlags = @(%s)\n\n", psList(flagWords(convert.Flags)))

	b.WriteString("    $tokens = $commandAst.CommandElements | ForEach-Object { $_.ToString() }\n")
	b.WriteString("    $completions = if ($tokens.Count -le 1 -or ($tokens.Count -eq 2 -and $wordToComplete)) {\n")
	b.WriteString("        $commands + $convertFlags\n")
	b.WriteString("    } elseif ($tokens[1] -eq 'completion') {\n")
	b.WriteString("        @('bash', 'zsh', 'fish', 'powershell')\n")
	b.WriteString("    } elseif ($tokens[1] -eq 'help') {\n")
	b.WriteString("        $commands\n")
	b.WriteString("    } elseif ($tokens[1] -eq 'doctor') {\n")
	b.WriteString("        @('--json')\n")
	b.WriteString("    } else {\n")
	b.WriteString("        $convertFlags\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $completions | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// psList renders strings as a PowerShell literal list: 'a', 'b', 'c'.
func psList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	return strings.Join(quoted, ", ")
}
