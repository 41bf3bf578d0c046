package checkout

import (
	"context"

	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
	"github.com/jhoicas/storefront-client/internal/events"
	"github.com/jhoicas/storefront-client/pkg/logger"
)

// Action transacción lógica que el guard protege.
type Action string

const (
	ActionAddToCart     Action = "add_to_cart"
	ActionAddToWishlist Action = "add_to_wishlist"
	ActionCheckout      Action = "checkout"
)

// State estados de la máquina del guard. Completed, Rejected y Failed son
// terminales.
type State string

const (
	StateIdle              State = "idle"
	StateAuthChecking      State = "auth_checking"
	StateOwnershipChecking State = "ownership_checking"
	StateStockChecking     State = "stock_checking"
	StateMutating          State = "mutating"
	StateNotifying         State = "notifying"
	StateCompleted         State = "completed"
	StateRejected          State = "rejected"
	StateFailed            State = "failed"
)

// RejectReason causa de rechazo por política. Un rechazo nunca es un error de
// sistema: no se reintenta ni se loggea como fallo.
type RejectReason string

const (
	ReasonUnauthenticated RejectReason = "unauthenticated"
	ReasonOwnProduct      RejectReason = "own_product"
	ReasonOutOfStock      RejectReason = "out_of_stock"
)

// Result variante terminal de una transacción completada. AlreadyExists
// aplica solo a lista de deseos y debe renderizarse distinto de Created,
// ambos como feedback no-error.
type Result string

const (
	ResultCreated       Result = "created"
	ResultAlreadyExists Result = "already_exists"
)

// OwnProductRoute rutas que la UI debe ofrecer cuando un proveedor intenta
// transaccionar sobre su propio producto.
type OwnProductRoute string

const (
	RouteManageInventory OwnProductRoute = "manage_inventory"
	RouteKeepBrowsing    OwnProductRoute = "keep_browsing"
)

// Outcome resultado terminal de una transacción.
//   - State == StateCompleted: Result indica la variante.
//   - State == StateRejected: Reason indica la política que interrumpió; con
//     ReasonOwnProduct, Routes trae las dos opciones a presentar.
//   - State == StateFailed: Err trae el error de red/servidor a reportar.
//
// OwnershipErr viaja aparte: un fallo al verificar propiedad no bloquea la
// transacción (fail-open hacia el chequeo de stock) pero sí debe reportarse.
type Outcome struct {
	State        State
	Reason       RejectReason
	Result       Result
	Routes       []OwnProductRoute
	Err          error
	OwnershipErr error
	Trace        []State // estados recorridos, en orden
}

// Completed indica si la transacción llegó a término con éxito.
func (o Outcome) Completed() bool { return o.State == StateCompleted }

// Rejected indica si una política interrumpió la transacción.
func (o Outcome) Rejected() bool { return o.State == StateRejected }

// Transaction petición de transacción. Quantity solo aplica a ActionAddToCart.
type Transaction struct {
	Action   Action
	Quantity int
}

// Guard orquesta una transacción de compra/carrito/deseos como secuencia de
// precondiciones: credencial -> propiedad -> stock -> mutación remota ->
// notificación entre vistas. Cada paso depende del anterior; no hay
// paralelismo ni cancelación a mitad de camino.
type Guard struct {
	cart      CartAPI
	wishlist  WishlistAPI
	ownership OwnershipResolver
	bus       *events.Bus
	nav       Navigator
	log       *logger.Logger
}

// NewGuard construye el guard.
func NewGuard(cart CartAPI, wishlist WishlistAPI, ownership OwnershipResolver, bus *events.Bus, nav Navigator, log *logger.Logger) *Guard {
	if log == nil {
		log = logger.Nop()
	}
	return &Guard{cart: cart, wishlist: wishlist, ownership: ownership, bus: bus, nav: nav, log: log.Component("checkout")}
}

// Run ejecuta la transacción hasta un estado terminal.
func (g *Guard) Run(ctx context.Context, session entity.Session, product *entity.Product, tx Transaction) Outcome {
	o := Outcome{State: StateIdle, Trace: []State{StateIdle}}
	if product == nil {
		o.State = StateFailed
		o.Err = domain.ErrProductMissing
		return o
	}

	// AuthChecking: sin credencial no hay transacción; el efecto observable
	// es la redirección a login, no un error.
	g.enter(&o, StateAuthChecking, product.ID, tx.Action)
	if !session.Authenticated() {
		if g.nav != nil {
			g.nav.ToLogin()
		}
		return g.reject(&o, ReasonUnauthenticated, nil)
	}

	// OwnershipChecking: solo para carrito/checkout de sesiones proveedor.
	// Un proveedor jamás llega a Mutating sobre su propio producto; la lista
	// de deseos queda exenta (es un marcador, no una transacción).
	if tx.Action != ActionAddToWishlist && session.IsSupplier() {
		g.enter(&o, StateOwnershipChecking, product.ID, tx.Action)
		owns, err := g.ownership.Resolve(ctx, session, product)
		if err != nil {
			// Fail-open hacia el chequeo de stock, pero el fallo se
			// reporta: nunca se asume "no es el dueño" en silencio.
			o.OwnershipErr = err
			g.log.Warn().Err(err).Str("product_id", product.ID).Msg("verificación de propiedad falló")
		}
		if owns {
			return g.reject(&o, ReasonOwnProduct, []OwnProductRoute{RouteManageInventory, RouteKeepBrowsing})
		}
	}

	// StockChecking: sin unidades no hay nada que transaccionar.
	g.enter(&o, StateStockChecking, product.ID, tx.Action)
	if !product.InStock() {
		return g.reject(&o, ReasonOutOfStock, nil)
	}

	// Mutating: la mutación remota correspondiente a la acción. Checkout no
	// muta nada aquí; la orden se materializa en la página de checkout.
	result := ResultCreated
	var kind events.Kind
	switch tx.Action {
	case ActionAddToCart:
		g.enter(&o, StateMutating, product.ID, tx.Action)
		quantity := tx.Quantity
		if quantity < 1 {
			quantity = 1
		}
		req := entity.CartMutationRequest{ProductID: product.ID, Quantity: quantity}
		if err := g.cart.AddToCart(ctx, req); err != nil {
			return g.fail(&o, product.ID, tx.Action, err)
		}
		kind = events.CartChanged
	case ActionAddToWishlist:
		g.enter(&o, StateMutating, product.ID, tx.Action)
		alreadyExists, err := g.wishlist.AddToWishlist(ctx, product.ID)
		if err != nil {
			return g.fail(&o, product.ID, tx.Action, err)
		}
		if alreadyExists {
			result = ResultAlreadyExists
		}
		kind = events.WishlistChanged
	case ActionCheckout:
		// sin mutación remota ni evento
	default:
		return g.fail(&o, product.ID, tx.Action, domain.ErrUnknownAction)
	}

	// Notifying: exactamente una publicación por mutación completada, para
	// que badges y vistas hermanas re-consulten.
	if kind != "" && g.bus != nil {
		g.enter(&o, StateNotifying, product.ID, tx.Action)
		g.bus.Publish(kind)
	}

	o.State = StateCompleted
	o.Result = result
	o.Trace = append(o.Trace, StateCompleted)
	g.log.Debug().Str("product_id", product.ID).Str("action", string(tx.Action)).Str("result", string(result)).Msg("transacción completada")
	return o
}

func (g *Guard) enter(o *Outcome, s State, productID string, action Action) {
	o.State = s
	o.Trace = append(o.Trace, s)
	g.log.Debug().Str("product_id", productID).Str("action", string(action)).Str("state", string(s)).Msg("transición")
}

func (g *Guard) reject(o *Outcome, reason RejectReason, routes []OwnProductRoute) Outcome {
	o.State = StateRejected
	o.Reason = reason
	o.Routes = routes
	o.Trace = append(o.Trace, StateRejected)
	g.log.Debug().Str("reason", string(reason)).Msg("transacción rechazada por política")
	return *o
}

func (g *Guard) fail(o *Outcome, productID string, action Action, err error) Outcome {
	o.State = StateFailed
	o.Err = err
	o.Trace = append(o.Trace, StateFailed)
	g.log.Error().Err(err).Str("product_id", productID).Str("action", string(action)).Msg("mutación remota falló")
	return *o
}
