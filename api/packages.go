package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"tierranativa/models"
	"tierranativa/normalize"
)

// GetPackages fetches the public catalog, normalized.
func (c *Client) GetPackages(ctx context.Context) ([]models.Package, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/paquetes", "", nil, &raw); err != nil {
		return nil, err
	}
	return normalize.Packages(raw)
}

// GetAdminPackages fetches the authenticated listing used by the back office.
func (c *Client) GetAdminPackages(ctx context.Context, token string) ([]models.Package, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/paquetes/admin", token, nil, &raw); err != nil {
		return nil, err
	}
	return normalize.Packages(raw)
}

// GetPackage fetches one package by id.
func (c *Client) GetPackage(ctx context.Context, id int) (models.Package, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/paquetes/%d", id), "", nil, &raw); err != nil {
		return models.Package{}, err
	}
	return normalize.Package(raw)
}

// CreatePackage registers a new package and returns the stored record.
func (c *Client) CreatePackage(ctx context.Context, token string, pkg models.Package) (models.Package, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/paquetes", token, pkg, &raw); err != nil {
		return models.Package{}, err
	}
	return normalize.Package(raw)
}

// UpdatePackage sends the full entity, id included, in the body.
func (c *Client) UpdatePackage(ctx context.Context, token string, pkg models.Package) (models.Package, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, "/paquetes", token, pkg, &raw); err != nil {
		return models.Package{}, err
	}
	return normalize.Package(raw)
}

// DeletePackage removes a package by id.
func (c *Client) DeletePackage(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/paquetes/%d", id), token, nil, nil)
}

// GetPackagesByCategory is the legacy by-category listing, kept because
// older backend deployments still answer on it.
func (c *Client) GetPackagesByCategory(ctx context.Context, category string) ([]models.Package, error) {
	var raw json.RawMessage
	path := "/paquetes/categoria/" + url.PathEscape(category)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &raw); err != nil {
		return nil, err
	}
	return normalize.Packages(raw)
}
