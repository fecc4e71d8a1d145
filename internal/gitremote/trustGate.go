package gitremote

import (
	"context"
	"fmt"
	"os"

	"gg/internal/ext"
	"gg/internal/log"
)

// UnverifiedHostError is returned for a host without a local directory whose remote could not be reached.
type UnverifiedHostError struct {
	URL     string
	HostDir string
	Err     error
}

func (e *UnverifiedHostError) Error() string {
	return fmt.Sprintf("remote not found: %s; create %s manually if the host is correct",
		e.URL, ext.ReplaceHomeDirWithTilde(e.HostDir))
}

func (e *UnverifiedHostError) Unwrap() error {
	return e.Err
}

// TrustGate treats an existing host directory as proof that the host was verified before.
// Unknown hosts must answer a probe before any local directory is created for them.
type TrustGate struct {
	prober Prober
}

func NewTrustGate(prober Prober) *TrustGate {
	return &TrustGate{prober: prober}
}

// Verify returns nil when it is safe to create directories below hostDir. It never creates anything itself.
func (g *TrustGate) Verify(ctx context.Context, host string, hostDir string, url string) error {
	if info, err := os.Stat(hostDir); err == nil && info.IsDir() {
		logger.Log.Debugf("Host %s already trusted (%s exists)", host, hostDir)
		return nil
	}

	logger.Log.Debugf("Host %s is new, probing %s", host, url)
	if err := g.prober.Probe(ctx, url); err != nil {
		logger.Log.Debugf("Probe of %s failed: %v", url, err)
		return &UnverifiedHostError{URL: url, HostDir: hostDir, Err: err}
	}
	logger.Log.Debugf("Probe of %s succeeded", url)
	return nil
}
