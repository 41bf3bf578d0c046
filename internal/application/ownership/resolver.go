package ownership

import (
	"context"

	"github.com/jhoicas/storefront-client/internal/domain/entity"
)

// StoreChecker puerto de salida hacia el API remoto: identifica la tienda
// proveedora del actor autenticado. Para tests se inyecta un fake.
type StoreChecker interface {
	CheckOwnedStore(ctx context.Context) (string, error)
}

// Resolver responde "¿este actor es dueño de este producto?".
//
// Es el único punto del storefront que hace esta pregunta: el detalle de
// producto, el alta al carrito y el checkout pasan todos por aquí, de modo
// que un cambio en la regla de propiedad se aplica consistente en los tres
// sitios.
type Resolver struct {
	stores StoreChecker
}

// NewResolver construye el resolver.
func NewResolver(stores StoreChecker) *Resolver {
	return &Resolver{stores: stores}
}

// Resolve determina si la sesión pertenece al dueño del producto.
//
// Sesiones que no son de proveedor resuelven false de inmediato, sin tocar la
// red. Si la consulta remota falla devuelve (false, err): el error debe
// reportarse aguas arriba, nunca interpretarse como "no es el dueño"
// confirmado.
func (r *Resolver) Resolve(ctx context.Context, session entity.Session, product *entity.Product) (bool, error) {
	if product == nil {
		return false, nil
	}
	if !session.IsSupplier() {
		return false, nil
	}
	storeID, err := r.stores.CheckOwnedStore(ctx)
	if err != nil {
		return false, err
	}
	return storeID != "" && storeID == product.OwnerStoreID, nil
}
