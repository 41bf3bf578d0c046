package checkout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-client/internal/application/checkout"
	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
	"github.com/jhoicas/storefront-client/internal/events"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeCart struct {
	calls []entity.CartMutationRequest
	err   error
}

func (f *fakeCart) AddToCart(ctx context.Context, req entity.CartMutationRequest) error {
	f.calls = append(f.calls, req)
	return f.err
}

type fakeWishlist struct {
	calls   int
	already bool
	err     error
}

func (f *fakeWishlist) AddToWishlist(ctx context.Context, productID string) (bool, error) {
	f.calls++
	return f.already, f.err
}

type fakeOwnership struct {
	calls int
	owns  bool
	err   error
}

func (f *fakeOwnership) Resolve(ctx context.Context, session entity.Session, product *entity.Product) (bool, error) {
	f.calls++
	return f.owns, f.err
}

type recorderNav struct {
	logins int
}

func (n *recorderNav) ToLogin() { n.logins++ }

// fixture arma un guard con todos los fakes y un bus real con contadores.
type fixture struct {
	cart           *fakeCart
	wishlist       *fakeWishlist
	ownership      *fakeOwnership
	nav            *recorderNav
	bus            *events.Bus
	cartEvents     int
	wishlistEvents int
	guard          *checkout.Guard
}

func newFixture() *fixture {
	f := &fixture{
		cart:      &fakeCart{},
		wishlist:  &fakeWishlist{},
		ownership: &fakeOwnership{},
		nav:       &recorderNav{},
		bus:       events.NewBus(),
	}
	f.bus.Subscribe(events.CartChanged, func() { f.cartEvents++ })
	f.bus.Subscribe(events.WishlistChanged, func() { f.wishlistEvents++ })
	f.guard = checkout.NewGuard(f.cart, f.wishlist, f.ownership, f.bus, f.nav, nil)
	return f
}

func buyerSession() entity.Session {
	return entity.Session{ActorID: "user-1", Role: entity.RoleBuyer, Token: "tok"}
}

func supplierSession() entity.Session {
	return entity.Session{ActorID: "user-dulce", Role: entity.RoleSupplier, Token: "tok"}
}

func inStockProduct() *entity.Product {
	return &entity.Product{ID: "prod-001", OwnerStoreID: "store-dulce", StockQuantity: 3}
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthChecking
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_InvitadoRechazadoConRedireccionALogin(t *testing.T) {
	f := newFixture()

	o := f.guard.Run(context.Background(), entity.Guest(), inStockProduct(), checkout.Transaction{
		Action:   checkout.ActionAddToCart,
		Quantity: 2,
	})

	require.True(t, o.Rejected())
	assert.Equal(t, checkout.ReasonUnauthenticated, o.Reason)
	assert.Equal(t, 1, f.nav.logins, "el efecto observable es la redirección a login")
	assert.Empty(t, f.cart.calls, "sin credencial no debe haber llamada de red")
	assert.Zero(t, f.ownership.calls)
	assert.Zero(t, f.cartEvents)
	assert.NoError(t, o.Err, "un rechazo de política no es un error de sistema")
}

// ──────────────────────────────────────────────────────────────────────────────
// OwnershipChecking
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_ProveedorDuenoNuncaLlegaAMutar(t *testing.T) {
	f := newFixture()
	f.ownership.owns = true

	o := f.guard.Run(context.Background(), supplierSession(), inStockProduct(), checkout.Transaction{
		Action:   checkout.ActionAddToCart,
		Quantity: 1,
	})

	require.True(t, o.Rejected())
	assert.Equal(t, checkout.ReasonOwnProduct, o.Reason)
	assert.Equal(t, []checkout.OwnProductRoute{checkout.RouteManageInventory, checkout.RouteKeepBrowsing}, o.Routes,
		"la UI debe ofrecer administrar inventario o seguir explorando")
	assert.Empty(t, f.cart.calls, "la mutación de carrito jamás se invoca sobre producto propio")
	assert.Zero(t, f.cartEvents)
	assert.NotContains(t, o.Trace, checkout.StateMutating)
	assert.NotContains(t, o.Trace, checkout.StateStockChecking,
		"la propiedad se evalúa antes que el stock")
}

func TestGuard_ProveedorDuenoBloqueadoTambienEnCheckout(t *testing.T) {
	f := newFixture()
	f.ownership.owns = true

	o := f.guard.Run(context.Background(), supplierSession(), inStockProduct(), checkout.Transaction{
		Action: checkout.ActionCheckout,
	})

	require.True(t, o.Rejected())
	assert.Equal(t, checkout.ReasonOwnProduct, o.Reason)
}

func TestGuard_CompradorNoDisparaVerificacionDePropiedad(t *testing.T) {
	f := newFixture()

	o := f.guard.Run(context.Background(), buyerSession(), inStockProduct(), checkout.Transaction{
		Action:   checkout.ActionAddToCart,
		Quantity: 1,
	})

	require.True(t, o.Completed())
	assert.Zero(t, f.ownership.calls, "solo las sesiones proveedor disparan la verificación")
}

func TestGuard_ListaDeDeseosExentaDelGuardDePropiedad(t *testing.T) {
	f := newFixture()
	f.ownership.owns = true // sería dueño, pero la lista de deseos no transacciona

	o := f.guard.Run(context.Background(), supplierSession(), inStockProduct(), checkout.Transaction{
		Action: checkout.ActionAddToWishlist,
	})

	require.True(t, o.Completed())
	assert.Zero(t, f.ownership.calls)
	assert.Equal(t, 1, f.wishlist.calls)
}

func TestGuard_FalloDeVerificacionNoBloqueaPeroSeReporta(t *testing.T) {
	f := newFixture()
	f.ownership.err = domain.NewAPIError(domain.KindNetworkError, "sin conexión")

	o := f.guard.Run(context.Background(), supplierSession(), inStockProduct(), checkout.Transaction{
		Action:   checkout.ActionAddToCart,
		Quantity: 1,
	})

	require.True(t, o.Completed(), "fail-open: la transacción sigue hacia el chequeo de stock")
	require.Error(t, o.OwnershipErr, "el fallo de verificación debe quedar reportado en el resultado")
	assert.Equal(t, 1, f.cart.calls[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// StockChecking
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_SinStockRechazaSinImportarElRol(t *testing.T) {
	agotado := &entity.Product{ID: "prod-004", OwnerStoreID: "store-horno", StockQuantity: 0}

	for _, sess := range []entity.Session{buyerSession(), supplierSession()} {
		f := newFixture()
		o := f.guard.Run(context.Background(), sess, agotado, checkout.Transaction{
			Action:   checkout.ActionAddToCart,
			Quantity: 1,
		})

		require.True(t, o.Rejected(), "rol %s", sess.Role)
		assert.Equal(t, checkout.ReasonOutOfStock, o.Reason)
		assert.Empty(t, f.cart.calls)
		assert.Zero(t, f.cartEvents)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutating y Notifying
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_AltaAlCarritoExitosa(t *testing.T) {
	f := newFixture()

	o := f.guard.Run(context.Background(), buyerSession(), inStockProduct(), checkout.Transaction{
		Action:   checkout.ActionAddToCart,
		Quantity: 2,
	})

	require.True(t, o.Completed())
	assert.Equal(t, checkout.ResultCreated, o.Result)
	require.Len(t, f.cart.calls, 1)
	assert.Equal(t, entity.CartMutationRequest{ProductID: "prod-001", Quantity: 2}, f.cart.calls[0])
	assert.Equal(t, 1, f.cartEvents, "CartChanged debe publicarse exactamente una vez")
	assert.Zero(t, f.wishlistEvents)
}

func TestGuard_WishlistDuplicadaEsCompletadaNoFallida(t *testing.T) {
	f := newFixture()
	f.wishlist.already = true

	o := f.guard.Run(context.Background(), buyerSession(), inStockProduct(), checkout.Transaction{
		Action: checkout.ActionAddToWishlist,
	})

	require.True(t, o.Completed(), "un duplicado es resultado informativo, no fallo")
	assert.Equal(t, checkout.ResultAlreadyExists, o.Result)
	assert.Equal(t, 1, f.wishlistEvents)
}

func TestGuard_WishlistNuevaEsCreated(t *testing.T) {
	f := newFixture()

	o := f.guard.Run(context.Background(), buyerSession(), inStockProduct(), checkout.Transaction{
		Action: checkout.ActionAddToWishlist,
	})

	require.True(t, o.Completed())
	assert.Equal(t, checkout.ResultCreated, o.Result)
}

func TestGuard_FalloRemotoTerminaEnFailedSinEvento(t *testing.T) {
	f := newFixture()
	f.cart.err = domain.NewAPIError(domain.KindServerError, "error interno")

	o := f.guard.Run(context.Background(), buyerSession(), inStockProduct(), checkout.Transaction{
		Action:   checkout.ActionAddToCart,
		Quantity: 1,
	})

	require.Equal(t, checkout.StateFailed, o.State)
	require.Error(t, o.Err)
	assert.Equal(t, domain.KindServerError, domain.ErrKind(o.Err))
	assert.Zero(t, f.cartEvents, "un fallo no debe notificar a otras vistas")
}

func TestGuard_CheckoutCompletaSinMutacionNiEvento(t *testing.T) {
	f := newFixture()

	o := f.guard.Run(context.Background(), buyerSession(), inStockProduct(), checkout.Transaction{
		Action: checkout.ActionCheckout,
	})

	require.True(t, o.Completed())
	assert.Empty(t, f.cart.calls)
	assert.Zero(t, f.cartEvents)
	assert.Zero(t, f.wishlistEvents)
	assert.NotContains(t, o.Trace, checkout.StateMutating)
}

func TestGuard_CantidadMinimaUno(t *testing.T) {
	f := newFixture()

	o := f.guard.Run(context.Background(), buyerSession(), inStockProduct(), checkout.Transaction{
		Action:   checkout.ActionAddToCart,
		Quantity: 0,
	})

	require.True(t, o.Completed())
	require.Len(t, f.cart.calls, 1)
	assert.Equal(t, 1, f.cart.calls[0].Quantity)
}

func TestGuard_SinProductoEsFallo(t *testing.T) {
	f := newFixture()

	o := f.guard.Run(context.Background(), buyerSession(), nil, checkout.Transaction{
		Action: checkout.ActionAddToCart,
	})

	require.Equal(t, checkout.StateFailed, o.State)
	require.Error(t, o.Err)
}
