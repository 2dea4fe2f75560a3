package rest

import (
	"context"

	medadmin "github.com/carebase/medadmin-go"
	"github.com/carebase/medadmin-go/profile"
	"github.com/carebase/medadmin-go/session"
)

// Auth endpoints. The organization login and the legacy admin login are two
// distinct identity sources living under different API roots.
const (
	pathLogin      = "/auth/login"
	pathAdminLogin = "/admin/login"
	pathRegister   = "/auth/register"
	pathLogout     = "/auth/logout"

	pathProfileGet     = "/auth/profile"
	pathProfileUpdate  = "/auth/profile/update"
	pathChangePassword = "/auth/change-password"
)

type authBackend struct {
	c *Client
}

var _ session.AuthBackend = (*authBackend)(nil)

// Auth returns the session.AuthBackend bound to this client.
func (c *Client) Auth() session.AuthBackend {
	return &authBackend{c: c}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginData is the login endpoint's data payload. The token decides success:
// a success envelope without a token is an error, and a present token is
// never turned into one.
type loginData struct {
	Token string         `json:"token"`
	User  *medadmin.User `json:"user"`
}

func (a *authBackend) login(ctx context.Context, root, path, email, password string) (session.Credentials, error) {
	var data loginData
	if err := a.c.post(ctx, root, path, loginRequest{Email: email, Password: password}, &data, true); err != nil {
		return session.Credentials{}, err
	}
	if data.Token == "" {
		return session.Credentials{}, &medadmin.APIError{
			Status:  500,
			Message: "Login failed: the server did not return a session token. Please try again.",
		}
	}
	return session.Credentials{Token: data.Token, User: data.User}, nil
}

// LoginPrimary authenticates against the organization identity source.
func (a *authBackend) LoginPrimary(ctx context.Context, email, password string) (session.Credentials, error) {
	return a.login(ctx, a.c.api, pathLogin, email, password)
}

// LoginSecondary authenticates against the legacy admin identity source.
func (a *authBackend) LoginSecondary(ctx context.Context, email, password string) (session.Credentials, error) {
	return a.login(ctx, a.c.adminAPI, pathAdminLogin, email, password)
}

// Register creates an account and returns its first session credentials.
func (a *authBackend) Register(ctx context.Context, params medadmin.RegisterParams) (session.Credentials, error) {
	var data loginData
	if err := a.c.post(ctx, a.c.api, pathRegister, params, &data, true); err != nil {
		return session.Credentials{}, err
	}
	if data.Token == "" {
		return session.Credentials{}, &medadmin.APIError{
			Status:  500,
			Message: "Registration failed: the server did not return a session token. Please try again.",
		}
	}
	return session.Credentials{Token: data.Token, User: data.User}, nil
}

// Logout invalidates the session server-side. The session store treats a
// failure here as best-effort only.
func (a *authBackend) Logout(ctx context.Context) error {
	return a.c.post(ctx, a.c.api, pathLogout, nil, nil, false)
}

type profileBackend struct {
	c *Client
}

var _ profile.Backend = (*profileBackend)(nil)

// ProfileBackend returns the profile.Backend bound to this client.
func (c *Client) ProfileBackend() profile.Backend {
	return &profileBackend{c: c}
}

func (p *profileBackend) Get(ctx context.Context) (*medadmin.User, error) {
	var out medadmin.User
	if err := p.c.post(ctx, p.c.api, pathProfileGet, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *profileBackend) Update(ctx context.Context, params medadmin.ProfileUpdateParams) (*medadmin.User, error) {
	var out medadmin.User
	if err := p.c.post(ctx, p.c.api, pathProfileUpdate, params, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *profileBackend) ChangePassword(ctx context.Context, params medadmin.PasswordChangeParams) error {
	return p.c.post(ctx, p.c.api, pathChangePassword, params, nil, false)
}
