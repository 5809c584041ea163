package console

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// SelectOption is a single choice in a select prompt. Label is what the
// operator sees; Value is what the program receives.
type SelectOption struct {
	Label string
	Value string
}

// PromptSelect asks the operator to pick exactly one option.
func PromptSelect(title, description string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options provided for select prompt")
	}
	if !isTTY() {
		return "", fmt.Errorf("cannot prompt for selection: not a TTY")
	}

	huhOptions := make([]huh.Option[string], 0, len(options))
	for _, opt := range options {
		huhOptions = append(huhOptions, huh.NewOption(opt.Label, opt.Value))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description(description).
				Options(huhOptions...).
				Value(&selected),
		),
	).WithAccessible(IsAccessibleMode())

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selection prompt failed: %w", err)
	}
	return selected, nil
}
