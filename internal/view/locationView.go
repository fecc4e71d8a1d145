package view

import (
	"fmt"
	"io"

	"gg/internal/color"
	"gg/internal/ext"
	"gg/internal/gitref"
)

// LocationView is the one informational line on stderr, written even on a dry run.
type LocationView struct {
	root   string
	ref    *gitref.ParsedReference
	stderr io.Writer
}

func NewLocationView(root string, ref *gitref.ParsedReference, stderr io.Writer) *LocationView {
	return &LocationView{
		root:   root,
		ref:    ref,
		stderr: stderr,
	}
}

func (v LocationView) Render() error {
	_, err := fmt.Fprintf(v.stderr, "👉 %s%s/%s/%s%s\n",
		color.FgHiBlack("%s/", ext.ReplaceHomeDirWithTilde(v.root)),
		color.FgRed("%s", v.ref.Host),
		color.FgGreen("%s", v.ref.Org),
		color.FgBlue("%s", v.ref.Repo),
		v.ref.Tail)
	return err
}
