package view

import (
	"fmt"
	"io"
	"strings"

	"gg/internal/color"
)

type ErrorView struct {
	err    error
	stderr io.Writer
}

func NewErrorView(err error, stderr io.Writer) *ErrorView {
	return &ErrorView{
		err:    err,
		stderr: stderr,
	}
}

// Render writes the error as a single line.
func (v ErrorView) Render() error {
	message := strings.ReplaceAll(strings.TrimSpace(v.err.Error()), "\n", "; ")
	_, err := fmt.Fprintf(v.stderr, "%s %s\n", color.FgRed("gg:"), message)
	return err
}
