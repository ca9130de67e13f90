// Package cmdutil holds the helpers shared by the cursoctl command packages.
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/config"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/nav"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

// RouteAnnotation names the annotation carrying the view path a command
// opens. The root command navigates there before the command runs.
const RouteAnnotation = "cursoctl.route"

// Route returns a command annotation map binding the command to pattern.
func Route(pattern string) map[string]string {
	return map[string]string{RouteAnnotation: pattern}
}

// RouteOf returns the view path bound to cmd.
func RouteOf(cmd *cobra.Command) (string, bool) {
	pattern, ok := cmd.Annotations[RouteAnnotation]
	return pattern, ok && pattern != ""
}

// Open runs the route guards for the view bound to cmd, filling path
// parameters from args. A blocked navigation is returned as an error.
func Open(cmd *cobra.Command, router *nav.Router, args []string) (nav.Decision, error) {
	pattern, ok := RouteOf(cmd)
	if !ok {
		return nav.Decision{Allowed: true}, nil
	}
	d := router.Go(nav.Expand(pattern, args...))
	if !d.Allowed {
		return d, &BlockedError{Decision: d}
	}
	return d, nil
}

// BlockedError reports a navigation stopped by a guard.
type BlockedError struct {
	Decision nav.Decision
}

func (e *BlockedError) Error() string {
	hint := ""
	if e.Decision.Target == nav.PathLogin {
		hint = "; run `cursoctl auth login` first"
	}
	return fmt.Sprintf("cannot open %s: %s (redirected to %s)%s",
		e.Decision.Requested, e.Decision.Reason, e.Decision.Target, hint)
}

// Deps are the collaborators a command works with.
type Deps struct {
	Config *config.GlobalConfig
	Client *sdk.Client
	Auth   *sdk.AuthManager
	Router *nav.Router
}

// Load resolves the command collaborators from the command context.
func Load(ctx context.Context) (*Deps, error) {
	cfg := config.MustFromContext(ctx)
	p := cfg.ClientProvider

	client, err := p.SDKClient()
	if err != nil {
		return nil, err
	}
	auth, err := p.Auth()
	if err != nil {
		return nil, err
	}
	router, err := p.Router()
	if err != nil {
		return nil, err
	}
	return &Deps{Config: cfg, Client: client, Auth: auth, Router: router}, nil
}

// Failure wraps err from action so that the user-facing message is shown.
func Failure(action string, err error) error {
	return &UserError{Action: action, Err: err}
}

// UserError renders the normalized message of a failed operation.
type UserError struct {
	Action string
	Err    error
}

func (e *UserError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, sdk.UserMessage(e.Err))
}

func (e *UserError) Unwrap() error { return e.Err }

// SessionExpired reports whether err cleared the session.
func SessionExpired(err error) bool {
	return sdk.IsSessionInvalidating(err) || errors.Is(err, sdk.ErrNotLoggedIn)
}

// ParseID parses a positive numeric id argument.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}
