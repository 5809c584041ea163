package console

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// PromptInput asks the operator for a single line of free text. A non-nil
// validator rejects values while the prompt is still open.
func PromptInput(title, description, placeholder string, validate func(string) error) (string, error) {
	if !isTTY() {
		return "", fmt.Errorf("cannot prompt for input: not a TTY")
	}

	var value string
	input := huh.NewInput().
		Title(title).
		Description(description).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	form := huh.NewForm(huh.NewGroup(input)).WithAccessible(IsAccessibleMode())
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("input prompt failed: %w", err)
	}
	return value, nil
}

// ConfirmAction asks a yes/no question with custom button labels and returns
// the operator's choice.
func ConfirmAction(title, affirmative, negative string) (bool, error) {
	if !isTTY() {
		return false, fmt.Errorf("cannot prompt for confirmation: not a TTY")
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative(affirmative).
				Negative(negative).
				Value(&confirmed),
		),
	).WithAccessible(IsAccessibleMode())

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return confirmed, nil
}
