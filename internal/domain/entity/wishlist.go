package entity

import "time"

// WishlistEntry entrada de la lista de deseos. La unicidad de ProductID por
// sesión la garantiza la plataforma: un alta duplicada responde already_exists
// y el storefront la trata como resultado informativo, nunca como error.
type WishlistEntry struct {
	ID          string
	ProductID   string
	ProductName string
	AddedAt     time.Time
}
