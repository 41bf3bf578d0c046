package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

// AddToCart agrega una línea al carrito del actor autenticado.
func (c *Client) AddToCart(ctx context.Context, req entity.CartMutationRequest) error {
	body := struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}{ProductID: req.ProductID, Quantity: req.Quantity}
	return c.do(ctx, http.MethodPost, "/cart/items", nil, body, nil)
}

// UpdateCartItem cambia la cantidad de una línea existente.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) error {
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}
	return c.do(ctx, http.MethodPut, "/cart/items/"+itemID, nil, body, nil)
}

// RemoveFromCart elimina una línea del carrito.
func (c *Client) RemoveFromCart(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/items/"+itemID, nil, nil, nil)
}

// ClearCart vacía el carrito completo.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart/", nil, nil, nil)
}

// GetCart obtiene el carrito completo.
func (c *Client) GetCart(ctx context.Context) (*entity.Cart, error) {
	var out struct {
		envelope
		Items []cartItemDTO `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/cart/", nil, nil, &out); err != nil {
		return nil, err
	}
	cart := &entity.Cart{Items: make([]entity.CartItem, 0, len(out.Items))}
	for _, it := range out.Items {
		cart.Items = append(cart.Items, it.toEntity())
	}
	return cart, nil
}

// GetCartCount devuelve el total de unidades en el carrito (para el badge).
// La plataforma no expone un endpoint de conteo: se deriva del carrito.
func (c *Client) GetCartCount(ctx context.Context) (int, error) {
	cart, err := c.GetCart(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}
