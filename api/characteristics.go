package api

import (
	"context"
	"fmt"
	"net/http"

	"tierranativa/models"
)

// GetCharacteristics lists every characteristic (authenticated).
func (c *Client) GetCharacteristics(ctx context.Context, token string) ([]models.Characteristic, error) {
	var out []models.Characteristic
	err := c.do(ctx, http.MethodGet, "/characteristics", token, nil, &out)
	return out, err
}

// GetPublicCharacteristics is the catalog the detail page resolves against.
func (c *Client) GetPublicCharacteristics(ctx context.Context) ([]models.Characteristic, error) {
	var out []models.Characteristic
	err := c.do(ctx, http.MethodGet, "/characteristics/public", "", nil, &out)
	return out, err
}

func (c *Client) CreateCharacteristic(ctx context.Context, token string, ch models.Characteristic) (models.Characteristic, error) {
	var out models.Characteristic
	err := c.do(ctx, http.MethodPost, "/characteristics", token, ch, &out)
	return out, err
}

func (c *Client) UpdateCharacteristic(ctx context.Context, token string, ch models.Characteristic) (models.Characteristic, error) {
	var out models.Characteristic
	err := c.do(ctx, http.MethodPut, "/characteristics", token, ch, &out)
	return out, err
}

func (c *Client) DeleteCharacteristic(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/characteristics/%d", id), token, nil, nil)
}
