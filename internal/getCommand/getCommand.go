package getCommand

import (
	"context"
	"io"

	"gg/internal/appConfig"
	"gg/internal/gitref"
	"gg/internal/gitremote"
	"gg/internal/gitrepo"
	"gg/internal/log"
	"gg/internal/view"
)

type GetRequest struct {
	Reference string
	Prefix    string
	DryRun    bool
}

// GetCommand resolves one reference into a clone or fetch for the calling shell. It only decides;
// the shell function runs git.
type GetCommand struct {
	config *appConfig.AppConfig
	gate   *gitremote.TrustGate
	stdout io.Writer
	stderr io.Writer
}

func NewGetCommand(config *appConfig.AppConfig, prober gitremote.Prober, stdout io.Writer, stderr io.Writer) *GetCommand {
	return &GetCommand{
		config: config,
		gate:   gitremote.NewTrustGate(prober),
		stdout: stdout,
		stderr: stderr,
	}
}

// ExecuteGetCommand builds the configured prober and runs a single resolution.
func ExecuteGetCommand(ctx context.Context, config *appConfig.AppConfig, request GetRequest, stdout io.Writer, stderr io.Writer) error {
	prober, err := gitremote.NewProber(config.Probe)
	if err != nil {
		return err
	}
	return NewGetCommand(config, prober, stdout, stderr).Execute(ctx, request)
}

func (c *GetCommand) Execute(ctx context.Context, request GetRequest) error {
	ref, err := gitref.Parse(request.Reference, request.Prefix)
	if err != nil {
		return err
	}

	// The location line goes out even when the host cannot be verified.
	views := view.NewCompositeView([]view.View{view.NewLocationView(c.config.Root, ref, c.stderr)})
	action, err := c.resolve(ctx, ref, request.DryRun)
	if err != nil {
		if renderErr := views.Render(); renderErr != nil {
			logger.Log.Debugf("Failed to render location: %v", renderErr)
		}
		return err
	}

	views.AddView(view.NewActionView(&view.ActionViewModel{
		Action:   action,
		Viewer:   c.config.Viewer(),
		NoAutoCd: c.config.AutoCdSuppressed(),
		DryRun:   request.DryRun,
	}, c.stdout))
	return views.Render()
}

func (c *GetCommand) resolve(ctx context.Context, ref *gitref.ParsedReference, dryRun bool) (*gitrepo.ResolvedAction, error) {
	gitURL := ref.CanonicalURL(c.config.HTTPSPreferred())
	logger.Log.Debugf("Parsed %s reference %s, clone URL %s", ref.Form, ref.Path(), gitURL)

	repo := gitrepo.NewRepository(gitrepo.Layout{Root: c.config.Root}, ref)
	if err := c.gate.Verify(ctx, ref.Host, repo.HostDir, gitURL); err != nil {
		return nil, err
	}

	action, err := repo.SelectAction(gitURL, !dryRun)
	if err != nil {
		return nil, err
	}
	logger.Log.Debugf("Resolved %s in %s", action.Kind, action.GitDir)
	return action, nil
}
