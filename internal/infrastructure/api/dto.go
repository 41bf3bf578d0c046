package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

// ── Estructuras de cable del API de la plataforma ─────────────────────────────

type productDTO struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	StockQuantity int              `json:"stock_quantity"`
	OwnerStoreID  string           `json:"owner_store_id"`
	ImageURL      string           `json:"image_url"`
	CategoryID    string           `json:"category_id"`
	CreatedAt     time.Time        `json:"created_at"`
}

func (d productDTO) toEntity() entity.Product {
	return entity.Product{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		Price:         d.Price,
		SalePrice:     d.SalePrice,
		StockQuantity: d.StockQuantity,
		OwnerStoreID:  d.OwnerStoreID,
		ImageURL:      d.ImageURL,
		CategoryID:    d.CategoryID,
		CreatedAt:     d.CreatedAt,
	}
}

type categoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type cartItemDTO struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	AddedAt     time.Time       `json:"added_at"`
}

func (d cartItemDTO) toEntity() entity.CartItem {
	return entity.CartItem{
		ID:          d.ID,
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		UnitPrice:   d.UnitPrice,
		Quantity:    d.Quantity,
		AddedAt:     d.AddedAt,
	}
}

type wishlistEntryDTO struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	AddedAt     time.Time `json:"added_at"`
}

func (d wishlistEntryDTO) toEntity() entity.WishlistEntry {
	return entity.WishlistEntry{
		ID:          d.ID,
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		AddedAt:     d.AddedAt,
	}
}
