// Package session is the client-side counterpart of the auth flow: an
// explicit, dependency-injected session store plus the route guard that
// decides navigation from token presence and expiry.
package session

import "context"

type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the client-held record of the authenticated user. It is owned
// exclusively by the Store; the Guard only reads it.
type Session struct {
	User            User   `json:"user"`
	AccessToken     string `json:"accessToken"`
	RefreshToken    string `json:"refreshToken"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

type Credentials struct {
	Email    string
	Password string
}

type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is what the server returns for login/register.
type AuthResult struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// API is the server boundary the store talks to.
type API interface {
	Login(ctx context.Context, email string, password string) (AuthResult, error)
	Register(ctx context.Context, name string, email string, password string) (AuthResult, error)
}
