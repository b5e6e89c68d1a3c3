package api

import (
	"context"
	"net/http"

	"tierranativa/models"
)

// GetUsers lists every registered account (ADMIN only).
func (c *Client) GetUsers(ctx context.Context, token string) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, http.MethodGet, "/admin", token, nil, &out)
	return out, err
}

// UpdateUserRole grants or revokes ADMIN. The backend only honors this for
// the superuser identity; the UI enforces the same rule up front.
func (c *Client) UpdateUserRole(ctx context.Context, token, email, newRole string) error {
	body := map[string]string{"email": email, "newRole": newRole}
	return c.do(ctx, http.MethodPut, "/admin/role", token, body, nil)
}
