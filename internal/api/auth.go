package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"coinmind/internal/domain"
)

// ErrMissingToken is returned when the token endpoint answers without a token
var ErrMissingToken = errors.New("Login failed: missing access token.")

// TokenResponse is the OAuth password-grant style answer of /api/auth/token
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"` // seconds
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates an account
func (c *Client) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	var user domain.User
	err := c.doJSON(ctx, "Signup", http.MethodPost, "/api/users/", nil,
		signupRequest{Username: name, Email: email, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for an access token
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{
		"grant_type": {"password"},
		"username":   {username},
		"password":   {password},
	}
	data, err := c.do(ctx, request{
		op:          "Login",
		method:      http.MethodPost,
		path:        "/api/auth/token",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(data)
	tok := &TokenResponse{
		AccessToken:  parsed.Get("access_token").String(),
		TokenType:    parsed.Get("token_type").String(),
		ExpiresIn:    int(parsed.Get("expires_in").Int()),
		RefreshToken: parsed.Get("refresh_token").String(),
		Scope:        parsed.Get("scope").String(),
	}
	if tok.AccessToken == "" {
		return nil, ErrMissingToken
	}
	return tok, nil
}

// Me returns the authenticated user
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, "Fetch user", http.MethodGet, "/api/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// userID returns the validated id of the authenticated user
func (c *Client) userID(ctx context.Context) (uuid.UUID, error) {
	data, err := c.do(ctx, request{op: "Fetch user", method: http.MethodGet, path: "/api/auth/me"})
	if err != nil {
		return uuid.Nil, err
	}
	raw := gjson.GetBytes(data, "id").String()
	if raw == "" {
		return uuid.Nil, errors.New("User id missing from /api/auth/me response")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("User id in /api/auth/me response is not a UUID")
	}
	return id, nil
}
