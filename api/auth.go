package api

import (
	"context"
	"net/http"
	"net/url"

	"tierranativa/models"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the sign-up body.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginResponse carries the bearer token, the role, and the simplified
// profile the session keeps.
type LoginResponse struct {
	Token string      `json:"token"`
	Role  string      `json:"role"`
	User  models.User `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, &out)
	return out, err
}

// Register creates an account; the backend mails a verification link.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", "", req, nil)
}

// ResendVerificationEmail asks the backend to mail the link again.
func (c *Client) ResendVerificationEmail(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/resend-email", "", body, nil)
}

// VerifyEmail redeems a verification token from the mailed link.
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	path := "/auth/verify-email?token=" + url.QueryEscape(token)
	return c.do(ctx, http.MethodGet, path, "", nil, nil)
}
