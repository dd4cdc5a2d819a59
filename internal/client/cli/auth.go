package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lockify/internal/common"
)

// getPassword is swapped in tests.
var getPassword = GetPassword

func (a *App) getStatus() string {
	s := ""
	if a.email != "" {
		s = a.email + " "
	}
	if mode := a.Mode(); mode != "" {
		s = s + string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) credentials() (string, []byte, error) {
	email, err := GetEmail(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// Register prompts for an email and password and creates an account. The
// password is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.api.Register(ctx, email, password)
	if err != nil {
		return err
	}

	printlnFn("Registered id=" + u.GetId())
	return nil
}

// Login prompts for credentials and keeps the session token on success.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.email = u.GetEmail()
	printlnFn("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.email = ""
	printlnFn("Logged out")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	u, err := a.api.Profile(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("id=%s email=%s role=%s", u.GetId(), u.GetEmail(), u.GetRole()))
	return nil
}

// Verify decodes the given token, or the session token when none is given.
func (a *App) Verify(ctx context.Context, args []string) error {
	token := a.api.Token()
	if len(args) > 0 {
		token = args[0]
	}

	resp, err := a.api.VerifyToken(ctx, token)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("valid userId=%s email=%s role=%s expires=%s",
		resp.UserId, resp.Email, resp.Role, time.Unix(resp.ExpiresAt, 0).UTC().Format(time.RFC3339)))
	return nil
}
