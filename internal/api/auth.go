package api

import (
	"context"
	"net/http"

	"taskdeck-cli/internal/model"
)

type LoginRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	TenantSubdomain string `json:"tenantSubdomain"`
}

// LoginResponse is the login payload: a bearer token plus the profile fields,
// flattened in one object.
type LoginResponse struct {
	Token string `json:"token"`
	model.Session
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &out); err != nil {
		return LoginResponse{}, err
	}
	if out.Role == "" {
		out.Role = model.RoleUser
	}
	return out, nil
}

type RegisterRequest struct {
	FullName        string     `json:"fullName"`
	Email           string     `json:"email"`
	Password        string     `json:"password"`
	TenantSubdomain string     `json:"tenantSubdomain"`
	Role            model.Role `json:"role"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, req, nil)
}

type RegisterTenantRequest struct {
	TenantName    string `json:"tenantName"`
	Subdomain     string `json:"subdomain"`
	AdminFullName string `json:"adminFullName"`
	AdminEmail    string `json:"adminEmail"`
	AdminPassword string `json:"adminPassword"`
}

func (c *Client) RegisterTenant(ctx context.Context, req RegisterTenantRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register-tenant", nil, req, nil)
}
