package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"tierranativa/models"
)

// GetCategories lists every category (authenticated, back office).
func (c *Client) GetCategories(ctx context.Context, token string) ([]models.Category, error) {
	var out []models.Category
	err := c.do(ctx, http.MethodGet, "/categories", token, nil, &out)
	return out, err
}

// GetPublicCategories lists the categories shown in the nav bar.
func (c *Client) GetPublicCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := c.do(ctx, http.MethodGet, "/categories/public", "", nil, &out)
	return out, err
}

// GetCategoryBySlug fetches category metadata plus its packages. The slug
// is upper-cased before sending, matching what the backend indexes on. The
// raw body comes back undecoded because the endpoint answers in several
// shapes; normalize.CategoryResponse resolves them.
func (c *Client) GetCategoryBySlug(ctx context.Context, token, slug string) (json.RawMessage, error) {
	var raw json.RawMessage
	path := "/categories/categoria/" + url.PathEscape(strings.ToUpper(slug))
	if err := c.do(ctx, http.MethodGet, path, token, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) CreateCategory(ctx context.Context, token string, cat models.Category) (models.Category, error) {
	var out models.Category
	err := c.do(ctx, http.MethodPost, "/categories", token, cat, &out)
	return out, err
}

func (c *Client) UpdateCategory(ctx context.Context, token string, cat models.Category) (models.Category, error) {
	var out models.Category
	err := c.do(ctx, http.MethodPut, "/categories", token, cat, &out)
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), token, nil, nil)
}
