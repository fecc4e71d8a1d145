package gitrepo

import (
	"fmt"
	"os"

	"gg/internal/color"
	"gg/internal/log"
)

type ActionKind string

const (
	ActionClone ActionKind = "clone"
	ActionFetch ActionKind = "fetch"
)

// ResolvedAction tells the shell what to run and where. GitURL is only set for clones.
type ResolvedAction struct {
	Kind   ActionKind
	GitDir string
	GitURL string
	CdDir  string
}

type DirectoryCreationError struct {
	Path string
	Err  error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("failed to create %s: %v", e.Path, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}

// EnsureOrgDir creates the organisation directory and any missing parents. An existing tree is not an error.
func (r *Repository) EnsureOrgDir() error {
	if err := os.MkdirAll(r.OrgDir, os.ModePerm); err != nil {
		return &DirectoryCreationError{Path: r.OrgDir, Err: err}
	}
	return nil
}

// SelectAction picks clone or fetch from the state of the repository directory. With createDirs set
// the organisation directory is created first, whichever action is chosen.
func (r *Repository) SelectAction(gitURL string, createDirs bool) (*ResolvedAction, error) {
	if createDirs {
		if err := r.EnsureOrgDir(); err != nil {
			return nil, err
		}
	}

	needsCloning, err := r.CheckNeedsCloning()
	if err != nil {
		return nil, err
	}

	if needsCloning {
		logger.Log.Debugf("Cloning %s into %s", color.FgMagenta("%s", gitURL), color.FgMagenta("%s", r.OrgDir))
		return &ResolvedAction{
			Kind:   ActionClone,
			GitDir: r.OrgDir,
			GitURL: gitURL,
			CdDir:  r.CdDir(),
		}, nil
	}

	logger.Log.Debugf("Git repository %s already exists, fetching", color.FgMagenta("%s", r.RepoDir))
	return &ResolvedAction{
		Kind:   ActionFetch,
		GitDir: r.RepoDir,
		CdDir:  r.CdDir(),
	}, nil
}
