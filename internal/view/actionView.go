package view

import (
	"fmt"
	"io"
	"strings"

	"gg/internal/gitrepo"
)

type ActionViewModel struct {
	Action   *gitrepo.ResolvedAction
	Viewer   string
	NoAutoCd bool
	DryRun   bool
}

// ActionView writes the key=value lines read by the shell functions. The first four keys keep
// their order; keys added later are only ever appended after cd_dir.
type ActionView struct {
	viewModel *ActionViewModel
	stdout    io.Writer
}

func NewActionView(vm *ActionViewModel, stdout io.Writer) *ActionView {
	return &ActionView{
		viewModel: vm,
		stdout:    stdout,
	}
}

func (v ActionView) Render() error {
	if v.viewModel.DryRun {
		return nil
	}
	action := v.viewModel.Action

	var out strings.Builder
	fmt.Fprintf(&out, "action=%s\n", action.Kind)
	fmt.Fprintf(&out, "git_dir=%s\n", action.GitDir)
	if action.Kind == gitrepo.ActionClone {
		fmt.Fprintf(&out, "git_url=%s\n", action.GitURL)
	}
	fmt.Fprintf(&out, "cd_dir=%s\n", action.CdDir)
	if v.viewModel.Viewer != "" {
		fmt.Fprintf(&out, "viewer=%s\n", v.viewModel.Viewer)
	}
	if v.viewModel.NoAutoCd {
		out.WriteString("autocd=false\n")
	}

	_, err := io.WriteString(v.stdout, out.String())
	return err
}
