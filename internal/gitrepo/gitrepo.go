package gitrepo

import (
	"fmt"
	"os"
	"path/filepath"

	"gg/internal/gitref"
)

// Layout maps references to directories below a single workspace root.
// Paths are joined lexically; symlinks are not resolved.
type Layout struct {
	Root string
}

func (l Layout) HostDir(host string) string {
	return filepath.Join(l.Root, host)
}

func (l Layout) OrgDir(host, org string) string {
	return filepath.Join(l.HostDir(host), org)
}

func (l Layout) RepoDir(host, org, repo string) string {
	return filepath.Join(l.OrgDir(host, org), repo)
}

// Repository is a parsed reference placed in a workspace layout.
type Repository struct {
	Ref     *gitref.ParsedReference
	HostDir string
	OrgDir  string
	RepoDir string
}

func NewRepository(layout Layout, ref *gitref.ParsedReference) *Repository {
	return &Repository{
		Ref:     ref,
		HostDir: layout.HostDir(ref.Host),
		OrgDir:  layout.OrgDir(ref.Host, ref.Org),
		RepoDir: layout.RepoDir(ref.Host, ref.Org, ref.Repo),
	}
}

// IsCloned reports whether the repository directory exists.
func (r *Repository) IsCloned() (bool, error) {
	info, err := os.Stat(r.RepoDir)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking clone status %s: %w", r.RepoDir, err)
	}
	return info.IsDir(), nil
}

func (r *Repository) CheckNeedsCloning() (bool, error) {
	cloned, err := r.IsCloned()
	if err != nil {
		return false, err
	}
	return !cloned, nil
}

// CdDir is where the shell should end up, the repository directory plus any tail.
// It need not exist before a clone has run.
func (r *Repository) CdDir() string {
	return r.RepoDir + r.Ref.Tail
}
