package gitremote

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/storage/memory"

	"gg/internal/log"
	"gg/internal/sh"
)

// Prober checks that a remote answers for url. A nil error means the remote is reachable.
type Prober interface {
	Probe(ctx context.Context, url string) error
}

const (
	ProbeGitCLI = "git"
	ProbeGoGit  = "go-git"
)

// NewProber returns the prober configured by name, defaulting to the git command line.
func NewProber(name string) (Prober, error) {
	switch name {
	case "", ProbeGitCLI:
		return &LsRemoteProber{GitPath: "git"}, nil
	case ProbeGoGit:
		return &GoGitProber{}, nil
	default:
		return nil, fmt.Errorf("unknown probe %q (must be %s or %s)", name, ProbeGitCLI, ProbeGoGit)
	}
}

// lsRemoteEnv makes git fail instead of asking for credentials on the terminal.
var lsRemoteEnv = []string{"GIT_TERMINAL_PROMPT=0"}

// LsRemoteProber runs "git ls-remote" and discards what it prints.
type LsRemoteProber struct {
	GitPath string
}

func (p *LsRemoteProber) Probe(ctx context.Context, url string) error {
	logger.Log.Debugf("%s ls-remote %s", p.GitPath, url)
	_, err := sh.ExecuteCommandWithEnv(ctx, "", lsRemoteEnv, p.GitPath, "ls-remote", url)
	return err
}

// GoGitProber lists the remote's references in-process, without a git binary.
type GoGitProber struct{}

func (p *GoGitProber) Probe(ctx context.Context, url string) error {
	logger.Log.Debugf("go-git list %s", url)
	remote := git.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: "origin",
		URLs: []string{url},
	})
	refs, err := remote.ListContext(ctx, &git.ListOptions{})
	if errors.Is(err, transport.ErrEmptyRemoteRepository) {
		// the repository exists, it just has no commits yet
		return nil
	}
	if err != nil {
		return err
	}
	logger.Log.Tracef("%d references advertised by %s", len(refs), url)
	return nil
}
