package cmdutil

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Prompt returns value when set. Otherwise it asks for it interactively, or
// fails naming flag when prompts are disabled.
func Prompt(value, label, flag string, nonInteractive, secret bool) (string, error) {
	if value != "" {
		return value, nil
	}
	if nonInteractive {
		return "", fmt.Errorf("--%s is required in non-interactive mode", flag)
	}

	input := pterm.DefaultInteractiveTextInput
	if secret {
		input = *input.WithMask("*")
	}
	result, err := input.Show(label)
	if err != nil {
		return "", fmt.Errorf("failed to show interactive prompt: %w", err)
	}
	return result, nil
}

// Confirm asks a yes/no question. With prompts disabled, yes must be given.
func Confirm(question string, yes, nonInteractive bool) (bool, error) {
	if yes {
		return true, nil
	}
	if nonInteractive {
		return false, fmt.Errorf("confirmation required; pass --yes in non-interactive mode")
	}
	ok, err := pterm.DefaultInteractiveConfirm.Show(question)
	if err != nil {
		return false, fmt.Errorf("failed to show interactive prompt: %w", err)
	}
	return ok, nil
}
