package auth

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
)

// tokenEnvVar is read by cursoctl as the bearer override.
const tokenEnvVar = "CURSO_TOKEN"

var shellFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session token as CURSO_TOKEN",
	Long: `Prints shell commands that set CURSO_TOKEN to the stored session token,
so scripts and CI jobs can reuse the session without the session file.

Supported shells:
  - posix (bash, zsh, sh) - default
  - fish
  - powershell

Usage:
  eval $(cursoctl auth export)
  eval (cursoctl auth export --shell fish)
  cursoctl auth export --shell powershell | Invoke-Expression`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}
		s, err := deps.Auth.RequireSession()
		if err != nil {
			return fmt.Errorf("%w\n\nPlease run 'cursoctl auth login' first", err)
		}

		shell := shellFormat
		if shell == "" {
			shell = detectShell(os.Getenv("SHELL"))
		}
		if isTerminal(os.Stdout) {
			fmt.Fprintln(os.Stderr, "# Run this command to configure your environment:")
			fmt.Fprintf(os.Stderr, "#   %s\n\n", evalHint(shell))
		}
		return writeExport(os.Stdout, shell, s.Token)
	},
}

func init() {
	exportCmd.Flags().StringVar(&shellFormat, "shell", "", "Shell format: posix, fish, powershell (auto-detected if not specified)")
}

func normalizeShell(shell string) (string, error) {
	switch strings.ToLower(shell) {
	case "posix", "bash", "zsh", "sh":
		return "posix", nil
	case "fish":
		return "fish", nil
	case "powershell", "pwsh", "ps1":
		return "powershell", nil
	}
	return "", fmt.Errorf("unsupported shell format: %s\n\nSupported formats: posix, fish, powershell", shell)
}

func writeExport(w io.Writer, shell, token string) error {
	format, err := normalizeShell(shell)
	if err != nil {
		return err
	}
	switch format {
	case "fish":
		_, err = fmt.Fprintf(w, "set -x %s %q\n", tokenEnvVar, token)
	case "powershell":
		_, err = fmt.Fprintf(w, "$env:%s=%q\n", tokenEnvVar, token)
	default:
		_, err = fmt.Fprintf(w, "export %s=%q\n", tokenEnvVar, token)
	}
	return err
}

func evalHint(shell string) string {
	switch format, _ := normalizeShell(shell); format {
	case "fish":
		return "eval (cursoctl auth export --shell fish)"
	case "powershell":
		return "cursoctl auth export --shell powershell | Invoke-Expression"
	}
	return "eval $(cursoctl auth export)"
}

// detectShell maps the SHELL path onto an export format.
func detectShell(shellPath string) string {
	switch filepath.Base(shellPath) {
	case "fish":
		return "fish"
	case "pwsh", "powershell":
		return "powershell"
	}
	return "posix"
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
