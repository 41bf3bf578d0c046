package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo remoto. Solo lectura desde el storefront:
// precio, stock y propiedad los gobierna la plataforma.
// SalePrice, cuando existe, es estrictamente menor que Price.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	SalePrice     *decimal.Decimal // nil si no hay oferta
	StockQuantity int
	OwnerStoreID  string // tienda proveedora dueña del producto
	ImageURL      string
	CategoryID    string
	CreatedAt     time.Time
}

// EffectivePrice devuelve el precio de oferta si existe, o el precio normal.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// OnSale indica si el producto tiene precio de oferta vigente.
func (p Product) OnSale() bool {
	return p.SalePrice != nil && p.SalePrice.LessThan(p.Price)
}

// InStock indica si hay unidades disponibles.
func (p Product) InStock() bool {
	return p.StockQuantity > 0
}

// Category categoría del catálogo.
type Category struct {
	ID   string
	Name string
}
