package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

// AddToWishlist agrega un producto a la lista de deseos. Si el producto ya
// estaba, la plataforma responde already_exists y se devuelve true sin error:
// es un resultado informativo, no un fallo.
func (c *Client) AddToWishlist(ctx context.Context, productID string) (alreadyExists bool, err error) {
	body := struct {
		ProductID string `json:"product_id"`
	}{ProductID: productID}
	var out struct {
		envelope
		AlreadyExists bool `json:"already_exists"`
	}
	if err := c.do(ctx, http.MethodPost, "/wishlist/add", nil, body, &out); err != nil {
		return false, err
	}
	return out.AlreadyExists, nil
}

// RemoveFromWishlist elimina una entrada de la lista de deseos.
func (c *Client) RemoveFromWishlist(ctx context.Context, entryID string) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/remove/"+entryID, nil, nil, nil)
}

// ClearWishlist vacía la lista de deseos.
func (c *Client) ClearWishlist(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/clear", nil, nil, nil)
}

// GetWishlist obtiene la lista de deseos del actor autenticado.
func (c *Client) GetWishlist(ctx context.Context) ([]entity.WishlistEntry, error) {
	var out struct {
		envelope
		Items []wishlistEntryDTO `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/wishlist", nil, nil, &out); err != nil {
		return nil, err
	}
	entries := make([]entity.WishlistEntry, 0, len(out.Items))
	for _, it := range out.Items {
		entries = append(entries, it.toEntity())
	}
	return entries, nil
}
