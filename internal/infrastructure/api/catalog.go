package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/storefront-client/internal/domain/catalog"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

// ProductPage página de resultados del catálogo.
type ProductPage struct {
	Products []entity.Product
	Total    int
	Pages    int
}

// QueryProducts lista productos según la consulta normalizada. Llamada
// pública: no requiere credencial.
func (c *Client) QueryProducts(ctx context.Context, q catalog.CatalogQuery) (*ProductPage, error) {
	var out struct {
		envelope
		Products   []productDTO `json:"products"`
		Pagination struct {
			Total int `json:"total"`
			Pages int `json:"pages"`
		} `json:"pagination"`
	}
	if err := c.doPublic(ctx, http.MethodGet, "/products", q.Values(), nil, &out); err != nil {
		return nil, err
	}
	page := &ProductPage{
		Products: make([]entity.Product, 0, len(out.Products)),
		Total:    out.Pagination.Total,
		Pages:    out.Pagination.Pages,
	}
	for _, p := range out.Products {
		page.Products = append(page.Products, p.toEntity())
	}
	return page, nil
}

// GetProduct obtiene el detalle de un producto. Llamada pública.
func (c *Client) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	var out struct {
		envelope
		Product productDTO `json:"product"`
	}
	if err := c.doPublic(ctx, http.MethodGet, "/products/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	product := out.Product.toEntity()
	return &product, nil
}

// GetCategories lista las categorías del catálogo. Llamada pública.
func (c *Client) GetCategories(ctx context.Context) ([]entity.Category, error) {
	var out struct {
		envelope
		Categories []categoryDTO `json:"categories"`
	}
	if err := c.doPublic(ctx, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	categories := make([]entity.Category, 0, len(out.Categories))
	for _, cat := range out.Categories {
		categories = append(categories, entity.Category{ID: cat.ID, Name: cat.Name})
	}
	return categories, nil
}
