package api

import (
	"context"
	"net/http"
)

// CheckOwnedStore consulta la tienda proveedora del actor autenticado y
// devuelve su identificador. Responde NotFound si el actor no posee tienda.
func (c *Client) CheckOwnedStore(ctx context.Context) (string, error) {
	var out struct {
		envelope
		Store struct {
			StoreID string `json:"store_id"`
		} `json:"store"`
	}
	if err := c.do(ctx, http.MethodGet, "/stores/check", nil, nil, &out); err != nil {
		return "", err
	}
	return out.Store.StoreID, nil
}
