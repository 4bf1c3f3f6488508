package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskify/internal/api"
	"taskify/internal/config"
	"taskify/internal/exitcode"
	"taskify/internal/logging"
	"taskify/internal/service"
	"taskify/internal/session"
)

func init() {
	register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	email    string
	password string

	auth service.Authenticator // test override
}

// SetAuthenticator replaces the API client (for testing).
func (c *LoginCmd) SetAuthenticator(a service.Authenticator) {
	c.auth = a
}

// SetCredentials sets the email and password (for testing).
func (c *LoginCmd) SetCredentials(email, password string) {
	c.email = email
	c.password = password
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Log in and store the session token" }
func (c *LoginCmd) Usage() string     { return "taskify login --email <email> --password <password>" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.email == "" || c.password == "" {
		fmt.Fprintln(errOut, "error: email and password required")
		return exitcode.UserError
	}

	auth := c.auth
	if auth == nil {
		auth = api.New(cfg, sess, logging.New(errOut, cfg.Debug))
	}

	token, err := auth.Login(ctx, c.email, c.password)
	if err != nil {
		if api.IsAuthError(err) {
			fmt.Fprintln(errOut, "error: invalid email or password")
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	// Persisting before reporting success keeps the guard and later API
	// calls from racing a half-stored session.
	if err := sess.Login(token); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
