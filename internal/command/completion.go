package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/staranto/tabhistgo/internal/meta"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `# bash completion for tabhist
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_tabhist()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "run list show purge completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --dir -d --expire -e --method -m --output -o --pattern -p --titles -t"

    case "$cmd" in
    run)
        local opts="$common --force -f --input -i"
        ;;
    list)
        local opts="$common"
        ;;
    show)
        local opts="$common --back -b"
        ;;
    purge)
        local opts="$common --older-than"
        ;;
    completion)
        COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
        return 0
        ;;
    *)
        local opts="--help"
        ;;
    esac

    case "$prev" in
    --dir|-d)
        COMPREPLY=( $(compgen -d -- "$cur") )
        return 0
        ;;
    --output|-o)
        COMPREPLY=( $(compgen -W "text csv json yaml" -- "$cur") )
        return 0
        ;;
    --method|-m)
        COMPREPLY=( $(compgen -W "csv arrow" -- "$cur") )
        return 0
        ;;
    --input|-i)
        COMPREPLY=( $(compgen -W "csv json" -- "$cur") )
        return 0
        ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}
complete -F _tabhist tabhist
`

const zshCompletionScript = `#compdef tabhist
# zsh completion for tabhist

_tabhist() {
  local -a commands
  commands=(
    'run:run a table-producing command through the cache'
    'list:list cached versions, oldest first'
    'show:show a cached version without recomputing'
    'purge:delete cached versions older than a cutoff'
    'completion:emit a shell completion script'
  )

  if (( CURRENT == 2 )); then
    _describe 'command' commands
    return
  fi

  _arguments \
    '--dir[cache directory]:directory:_files -/' \
    '--pattern[artifact name pattern]' \
    '--expire[seconds before stale (-1 = never)]' \
    '--method[serialization method]:method:(csv arrow)' \
    '--output[output format]:format:(text csv json yaml)' \
    '--titles[show titles]' \
    '--color[colored output]'
}

_tabhist "$@"
`

// CompletionCommandAction emits a completion script for the requested shell.
func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := strings.ToLower(cmd.Args().First())
	switch shell {
	case "", "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		return fmt.Errorf("unsupported shell %q (bash and zsh are available)", shell)
	}
	return nil
}

// CompletionCommandBuilder constructs the cli.Command for "completion".
func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "emit a shell completion script",
		UsageText: `tabhist completion [bash|zsh]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
