package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start() error {
	picker, err := CreateFilePicker()
	if err != nil {
		return errors.Wrap(err, "Start error")
	}
	if err := tea.NewProgram(picker).Start(); err != nil {
		return errors.Wrap(err, "Start error")
	}
	return nil
}
