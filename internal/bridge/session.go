// Package bridge coordinates the browser-extension side of the pipeline:
// session lookup, background readiness, generation dispatch, and
// error-message sanitization. The extension never handles credentials; it
// only relays an opaque session token read from the companion site's
// cookies.
package bridge

import (
	"context"
	"time"

	"github.com/kmorton/resume-tailor/internal/faults"
)

// SessionSource is a read-only view of the host browser's cookie store.
type SessionSource interface {
	// Token returns the session token set for an origin, or "" if absent.
	Token(origin string) (string, error)
}

// DefaultOrigins are the origin variants tried when resolving a session.
// The companion site may run under different base URLs per environment.
var DefaultOrigins = []string{
	"https://resumetailor.app",
	"https://resumetailor.app/login",
	"http://localhost:3000",
}

// ResolveSession reads the session token from the first origin variant that
// has one. No token anywhere means the user is signed out of the companion
// site.
func ResolveSession(src SessionSource, origins []string) (string, error) {
	if len(origins) == 0 {
		origins = DefaultOrigins
	}
	for _, origin := range origins {
		token, err := src.Token(origin)
		if err != nil {
			continue
		}
		if token != "" {
			return token, nil
		}
	}
	return "", faults.New(faults.KindAuthError,
		"no session found; sign in to the companion site first")
}

// ReadinessProbe reports whether the background coordinator has finished
// its asynchronous startup.
type ReadinessProbe func() bool

// AwaitReady polls the probe on a short fixed interval until it reports
// ready or ctx is done. Retries are unbounded because extension component
// startup ordering is not guaranteed by the host; the caller's context is
// the only stop condition.
func AwaitReady(ctx context.Context, probe ReadinessProbe, interval time.Duration) error {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	for {
		if probe() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
