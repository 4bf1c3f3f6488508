package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskify/internal/api"
	"taskify/internal/commands"
	"taskify/internal/config"
	"taskify/internal/exitcode"
	"taskify/internal/session"
	"taskify/internal/testutil"
)

// runAuthCommand runs a command against a session store rooted in a temp
// directory and returns the store for inspection.
func runAuthCommand(t *testing.T, cmd commands.Command, sess *session.Store, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cfg := &config.Config{
		Dir:     t.TempDir(),
		BaseURL: "http://localhost:3000",
		Quiet:   quiet,
	}
	code = cmd.Run(context.Background(), cfg, sess, nil, nil, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func openTestSession(t *testing.T) (*session.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.TokenFile)
	sess, err := session.Open(path)
	if err != nil {
		t.Fatalf("session.Open: %v", err)
	}
	return sess, path
}

// Tests for login command
func TestLoginCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Token = "issued-token"
	sess, path := openTestSession(t)

	cmd := &commands.LoginCmd{}
	cmd.SetAuthenticator(svc)
	cmd.SetCredentials("user@example.com", "hunter2")
	stdout, stderr, code := runAuthCommand(t, cmd, sess, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if svc.LoginAttempt != "user@example.com" {
		t.Errorf("expected login attempt recorded, got %q", svc.LoginAttempt)
	}
	if !sess.LoggedIn() || sess.Token() != "issued-token" {
		t.Errorf("expected session to hold the issued token, got %q", sess.Token())
	}

	// The token survives into a fresh store, as a later invocation would see.
	reopened, err := session.Open(path)
	if err != nil {
		t.Fatalf("session.Open: %v", err)
	}
	if reopened.Token() != "issued-token" {
		t.Errorf("expected persisted token, got %q", reopened.Token())
	}
}

func TestLoginCommand_MissingCredentials(t *testing.T) {
	sess, _ := openTestSession(t)

	cmd := &commands.LoginCmd{}
	cmd.SetAuthenticator(testutil.NewFakeService())
	cmd.SetCredentials("user@example.com", "")
	_, stderr, code := runAuthCommand(t, cmd, sess, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: email and password required\n" {
		t.Errorf("expected credentials error, got %q", stderr)
	}
}

func TestLoginCommand_RejectedCredentials(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.LoginErr = &api.StatusError{Code: 401, Message: "invalid credentials"}
	sess, _ := openTestSession(t)

	cmd := &commands.LoginCmd{}
	cmd.SetAuthenticator(svc)
	cmd.SetCredentials("user@example.com", "wrong")
	_, stderr, code := runAuthCommand(t, cmd, sess, false)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if stderr != "error: invalid email or password\n" {
		t.Errorf("expected rejection message, got %q", stderr)
	}
	if sess.LoggedIn() {
		t.Error("expected no session after a rejected login")
	}
}

func TestLoginCommand_BackendDown(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.LoginErr = &api.StatusError{Code: 500, Message: "boom"}
	sess, _ := openTestSession(t)

	cmd := &commands.LoginCmd{}
	cmd.SetAuthenticator(svc)
	cmd.SetCredentials("user@example.com", "hunter2")
	_, stderr, code := runAuthCommand(t, cmd, sess, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "backend error") {
		t.Errorf("expected backend error, got %q", stderr)
	}
}

// Tests for register command
func TestRegisterCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	sess, _ := openTestSession(t)

	cmd := &commands.RegisterCmd{}
	cmd.SetAuthenticator(svc)
	cmd.SetCredentials("new@example.com", "hunter2")
	stdout, stderr, code := runAuthCommand(t, cmd, sess, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if !strings.Contains(stdout, "ok") || !strings.Contains(stdout, "taskify login") {
		t.Errorf("expected ok plus login hint, got %q", stdout)
	}
	if len(svc.Registered) != 1 || svc.Registered[0] != "new@example.com" {
		t.Errorf("expected registration recorded, got %v", svc.Registered)
	}
	// Registering does not log in.
	if sess.LoggedIn() {
		t.Error("expected no session after register")
	}
}

func TestRegisterCommand_Conflict(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.RegisterErr = &api.StatusError{Code: 409, Message: "email already registered"}
	sess, _ := openTestSession(t)

	cmd := &commands.RegisterCmd{}
	cmd.SetAuthenticator(svc)
	cmd.SetCredentials("dupe@example.com", "hunter2")
	_, stderr, code := runAuthCommand(t, cmd, sess, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "email already registered") {
		t.Errorf("expected conflict message, got %q", stderr)
	}
}

// Tests for logout command
func TestLogoutCommand(t *testing.T) {
	sess, path := openTestSession(t)
	if err := sess.Login("some-token"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	cmd := &commands.LogoutCmd{}
	stdout, _, code := runAuthCommand(t, cmd, sess, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if sess.LoggedIn() {
		t.Error("expected session cleared")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected token file removed")
	}
}

func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	sess, _ := openTestSession(t)

	cmd := &commands.LogoutCmd{}
	stdout, _, code := runAuthCommand(t, cmd, sess, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "not logged in\n" {
		t.Errorf("expected not logged in, got %q", stdout)
	}
}

// Tests for whoami command
func TestWhoamiCommand_LoggedOut(t *testing.T) {
	sess, _ := openTestSession(t)

	cmd := &commands.WhoamiCmd{}
	stdout, _, code := runAuthCommand(t, cmd, sess, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "not logged in\n" {
		t.Errorf("expected not logged in, got %q", stdout)
	}
}

func TestWhoamiCommand_OpaqueToken(t *testing.T) {
	sess, _ := openTestSession(t)
	if err := sess.Login("not-a-jwt"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	cmd := &commands.WhoamiCmd{}
	stdout, _, code := runAuthCommand(t, cmd, sess, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "logged in\n" {
		t.Errorf("expected bare logged in, got %q", stdout)
	}
}
