package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem línea del carrito tal como la devuelve la plataforma.
// El precio unitario viaja con la línea para que el carrito pueda mostrarse
// sin re-consultar cada producto.
type CartItem struct {
	ID          string
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	AddedAt     time.Time
}

// Subtotal devuelve precio unitario por cantidad.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart carrito del actor autenticado.
type Cart struct {
	Items []CartItem
}

// Total suma los subtotales de todas las líneas.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Count devuelve el número total de unidades en el carrito.
func (c Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// CartMutationRequest petición de alta/cambio de línea. Quantity >= 1 y no
// mayor que el stock conocido al momento de enviar; el servidor re-valida.
type CartMutationRequest struct {
	ProductID string
	Quantity  int
}

// Valid valida la petición contra el stock conocido del producto.
func (r CartMutationRequest) Valid(stockQuantity int) bool {
	return r.ProductID != "" && r.Quantity >= 1 && r.Quantity <= stockQuantity
}
