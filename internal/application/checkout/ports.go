package checkout

import (
	"context"

	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

// CartAPI puerto de salida: mutación de carrito en la plataforma.
type CartAPI interface {
	AddToCart(ctx context.Context, req entity.CartMutationRequest) error
}

// WishlistAPI puerto de salida: alta en lista de deseos. alreadyExists es un
// resultado informativo de la plataforma, no un error.
type WishlistAPI interface {
	AddToWishlist(ctx context.Context, productID string) (alreadyExists bool, err error)
}

// OwnershipResolver puerto hacia el resolver de propiedad.
type OwnershipResolver interface {
	Resolve(ctx context.Context, session entity.Session, product *entity.Product) (bool, error)
}

// Navigator puerto de navegación. El guard solo elige el destino; el routing
// real es responsabilidad de la capa de UI.
type Navigator interface {
	// ToLogin redirige a la pantalla de inicio de sesión.
	ToLogin()
}

// NavigatorFunc adapta una función como Navigator.
type NavigatorFunc func()

func (f NavigatorFunc) ToLogin() { f() }
