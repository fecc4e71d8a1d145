package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

const (
	Zsh  = "zsh"
	Bash = "bash"
	Fish = "fish"
)

var Supported = []string{Zsh, Bash, Fish}

// Escape quotes s for use inside single quotes: ' becomes '\''.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

// Integration describes the glue to print for one shell.
type Integration struct {
	Shell   string
	ExePath string
	Root    string
	// Command and Prefix define an alias, e.g. "ghg" for "github.com". Both empty for the main gg function.
	Command string
	Prefix  string
}

type UnsupportedShellError struct {
	Shell string
}

func (e *UnsupportedShellError) Error() string {
	return fmt.Sprintf("%s not supported yet", e.Shell)
}

// Write prints the shell functions that call gg --get and act on its key=value output.
func Write(out io.Writer, integration Integration) error {
	if !lo.Contains(Supported, integration.Shell) {
		return fmt.Errorf("unknown shell %q (must be one of %s)", integration.Shell, strings.Join(Supported, ", "))
	}
	if integration.Shell == Fish {
		return &UnsupportedShellError{Shell: integration.Shell}
	}
	if integration.Command != "" && integration.Prefix == "" {
		return fmt.Errorf("alias %s needs a prefix, e.g. %s github.com", integration.Command, integration.Command)
	}

	var script string
	if integration.Command != "" {
		script = aliasScript(integration)
	} else {
		script = mainScript(integration)
	}
	_, err := io.WriteString(out, script)
	return err
}

// runner reads the key=value lines; unknown keys are skipped so new keys can be added later.
const runner = `    local __gg_out __gg_line action= git_dir= git_url= cd_dir= viewer= autocd=true
    __gg_out="$('%s' --get "$@")" || return
    while IFS= read -r __gg_line; do
        case "${__gg_line%%%%=*}" in
            action) action="${__gg_line#*=}" ;;
            git_dir) git_dir="${__gg_line#*=}" ;;
            git_url) git_url="${__gg_line#*=}" ;;
            cd_dir) cd_dir="${__gg_line#*=}" ;;
            viewer) viewer="${__gg_line#*=}" ;;
            autocd) autocd="${__gg_line#*=}" ;;
        esac
    done <<< "$__gg_out"
    case "$action" in
        clone) git -C "$git_dir" clone --recurse-submodules "$git_url" || return ;;
        fetch) git -C "$git_dir" fetch --all --prune --jobs=10 --recurse-submodules=yes || return ;;
        *) return 0 ;;
    esac
    if [[ "$autocd" != false ]]; then cd "$cd_dir" || return; fi
    if [[ -n "$viewer" ]]; then "$viewer" "$cd_dir"; fi
`

func mainScript(integration Integration) string {
	exe := Escape(integration.ExePath)
	root := Escape(integration.Root)

	var b strings.Builder
	b.WriteString("gg() {\n")
	fmt.Fprintf(&b, runner, exe)
	b.WriteString("}\n")

	switch integration.Shell {
	case Zsh:
		fmt.Fprintf(&b, "_gg() { _path_files -/ -W '%s'; };\ncompdef _gg gg;\n", root)
	case Bash:
		fmt.Fprintf(&b, "_gg() { local cur=\"${COMP_WORDS[COMP_CWORD]}\"; COMPREPLY=($(cd '%s' 2>/dev/null && compgen -d -S / -- \"$cur\")); };\n", root)
		b.WriteString("complete -o nospace -F _gg gg;\n")
	}
	return b.String()
}

func aliasScript(integration Integration) string {
	command := integration.Command
	prefix := Escape(integration.Prefix)
	prefixRoot := Escape(strings.TrimSuffix(integration.Root, "/") + "/" + strings.Trim(integration.Prefix, "/"))

	var b strings.Builder
	fmt.Fprintf(&b, "%s() { gg --prefix '%s' \"$@\"; };\n", command, prefix)

	switch integration.Shell {
	case Zsh:
		fmt.Fprintf(&b, "_%s() { _path_files -/ -W '%s'; };\ncompdef _%s %s;\n", command, prefixRoot, command, command)
	case Bash:
		fmt.Fprintf(&b, "_%s() { local cur=\"${COMP_WORDS[COMP_CWORD]}\"; COMPREPLY=($(cd '%s' 2>/dev/null && compgen -d -S / -- \"$cur\")); };\n", command, prefixRoot)
		fmt.Fprintf(&b, "complete -o nospace -F _%s %s;\n", command, command)
	}
	return b.String()
}
