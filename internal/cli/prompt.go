package cli

import (
	"github.com/charmbracelet/huh"
)

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc creates a ConfirmFunc using huh's interactive confirm component.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Affirmative("Bevestigen").
			Negative("Annuleren").
			Value(&result).
			Run()
		return result, err
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// PromptWithDefaultFunc prompts for single-line input, pre-filled with a value.
type PromptWithDefaultFunc func(prompt, defaultValue string) (string, error)

// NewPromptWithDefaultFunc creates a PromptWithDefaultFunc using huh's input component.
func NewPromptWithDefaultFunc() PromptWithDefaultFunc {
	return func(prompt, defaultValue string) (string, error) {
		result := defaultValue
		err := huh.NewInput().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// TextFunc prompts for multi-line text, pre-filled with a value.
type TextFunc func(prompt, defaultValue string) (string, error)

// NewTextFunc creates a TextFunc using huh's text area component.
func NewTextFunc() TextFunc {
	return func(prompt, defaultValue string) (string, error) {
		result := defaultValue
		err := huh.NewText().
			Title(prompt).
			Lines(4).
			Value(&result).
			Run()
		return result, err
	}
}

// PromptKit bundles all prompt function types for dependency injection.
type PromptKit struct {
	PromptWithDefault PromptWithDefaultFunc
	Text              TextFunc
	Confirm           ConfirmFunc
}

// NewPromptKit creates a PromptKit with huh-based interactive implementations.
func NewPromptKit() PromptKit {
	return PromptKit{
		PromptWithDefault: NewPromptWithDefaultFunc(),
		Text:              NewTextFunc(),
		Confirm:           NewConfirmFunc(),
	}
}
