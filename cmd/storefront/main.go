// storefront CLI de prueba del storefront: navega el catálogo y ejecuta
// transacciones de carrito/lista de deseos contra el API configurado.
//
// Uso:
//
//	storefront products [término] [orden]   lista productos (orden: newest, priceAsc, ...)
//	storefront product <id>                 detalle de un producto
//	storefront categories                   lista categorías
//	storefront cart                         muestra el carrito
//	storefront add-to-cart <id> <cantidad>  agrega al carrito (pasa por el guard)
//	storefront wishlist                     muestra la lista de deseos
//	storefront wishlist-add <id>            agrega a la lista de deseos (pasa por el guard)
//
// La sesión se toma de la variable STOREFRONT_TOKEN (vacía = invitado).
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/storefront-client/internal/application/checkout"
	"github.com/jhoicas/storefront-client/internal/application/ownership"
	"github.com/jhoicas/storefront-client/internal/domain/catalog"
	"github.com/jhoicas/storefront-client/internal/events"
	"github.com/jhoicas/storefront-client/internal/infrastructure/api"
	"github.com/jhoicas/storefront-client/internal/session"
	"github.com/jhoicas/storefront-client/pkg/config"
	"github.com/jhoicas/storefront-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	sessions := session.NewStore()
	if token := os.Getenv("STOREFRONT_TOKEN"); token != "" {
		if _, err := sessions.Init(token); err != nil {
			log.Fatal().Err(err).Msg("token de sesión inválido")
		}
	}

	client := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	}, sessions.Token)

	bus := events.NewBus()
	// Badge del carrito: tras cada mutación re-consulta el conteo, como lo
	// haría la cabecera del storefront.
	bus.Subscribe(events.CartChanged, func() {
		if n, err := client.GetCartCount(context.Background()); err == nil {
			fmt.Printf("[carrito: %d unidades]\n", n)
		}
	})

	resolver := ownership.NewResolver(client)
	guard := checkout.NewGuard(client, client, resolver, bus,
		checkout.NavigatorFunc(func() { fmt.Println("-> inicia sesión para continuar") }), log)

	app := &cli{
		cfg:      cfg,
		client:   client,
		sessions: sessions,
		resolver: resolver,
		guard:    guard,
	}
	if err := app.run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type cli struct {
	cfg      *config.Config
	client   *api.Client
	sessions *session.Store
	resolver *ownership.Resolver
	guard    *checkout.Guard
}

func (a *cli) run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("subcomando requerido (products, product, categories, cart, add-to-cart, wishlist, wishlist-add)")
	}
	ctx := context.Background()
	switch args[0] {
	case "products":
		return a.products(ctx, args[1:])
	case "product":
		return a.product(ctx, args[1:])
	case "categories":
		return a.categories(ctx)
	case "cart":
		return a.cart(ctx)
	case "add-to-cart":
		return a.addToCart(ctx, args[1:])
	case "wishlist":
		return a.wishlist(ctx)
	case "wishlist-add":
		return a.wishlistAdd(ctx, args[1:])
	default:
		return fmt.Errorf("subcomando desconocido: %s", args[0])
	}
}

func (a *cli) products(ctx context.Context, args []string) error {
	filters := catalog.NewFilterState(a.cfg.Catalog.PageSize)
	if len(args) > 0 {
		filters.SetSearch(args[0])
	}
	if len(args) > 1 {
		filters.SetSort(args[1])
	}
	page, err := a.client.QueryProducts(ctx, filters.ToRemoteQuery())
	if err != nil {
		return err
	}
	for _, p := range page.Products {
		marker := ""
		if !p.InStock() {
			marker = " (agotado)"
		}
		fmt.Printf("%-10s %-24s $%s%s\n", p.ID, p.Name, p.EffectivePrice(), marker)
	}
	fmt.Printf("total: %d productos, %d páginas\n", page.Total, page.Pages)
	return nil
}

func (a *cli) product(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("uso: product <id>")
	}
	p, err := a.client.GetProduct(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s\n%s\nprecio: $%s  stock: %d  tienda: %s\n", p.Name, p.Description, p.EffectivePrice(), p.StockQuantity, p.OwnerStoreID)

	// El detalle se presenta distinto cuando el producto es de la tienda del
	// actor: sin botones de compra, con acceso a inventario.
	owns, ownErr := a.resolver.Resolve(ctx, a.sessions.Current(), p)
	if ownErr != nil {
		fmt.Println("aviso: no se pudo verificar la propiedad del producto:", ownErr)
	}
	if owns {
		fmt.Println("este producto pertenece a tu tienda")
	}
	return nil
}

func (a *cli) categories(ctx context.Context) error {
	categories, err := a.client.GetCategories(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		fmt.Printf("%-18s %s\n", c.ID, c.Name)
	}
	return nil
}

func (a *cli) cart(ctx context.Context) error {
	cart, err := a.client.GetCart(ctx)
	if err != nil {
		return err
	}
	for _, it := range cart.Items {
		fmt.Printf("%-24s x%d  $%s\n", it.ProductName, it.Quantity, it.Subtotal())
	}
	fmt.Printf("total: $%s\n", cart.Total())
	return nil
}

func (a *cli) addToCart(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("uso: add-to-cart <id> <cantidad>")
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("cantidad inválida: %s", args[1])
	}
	product, err := a.client.GetProduct(ctx, args[0])
	if err != nil {
		return err
	}
	outcome := a.guard.Run(ctx, a.sessions.Current(), product, checkout.Transaction{
		Action:   checkout.ActionAddToCart,
		Quantity: quantity,
	})
	return report(outcome)
}

func (a *cli) wishlist(ctx context.Context) error {
	entries, err := a.client.GetWishlist(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%-24s agregado %s\n", e.ProductName, e.AddedAt.Format("2006-01-02"))
	}
	return nil
}

func (a *cli) wishlistAdd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("uso: wishlist-add <id>")
	}
	product, err := a.client.GetProduct(ctx, args[0])
	if err != nil {
		return err
	}
	outcome := a.guard.Run(ctx, a.sessions.Current(), product, checkout.Transaction{
		Action: checkout.ActionAddToWishlist,
	})
	return report(outcome)
}

// report traduce el resultado del guard a la salida del CLI: los rechazos de
// política tienen mensaje propio (nunca un error genérico), los fallos de
// red/servidor sí se propagan como error.
func report(o checkout.Outcome) error {
	if o.OwnershipErr != nil {
		fmt.Println("aviso: no se pudo verificar la propiedad del producto:", o.OwnershipErr)
	}
	switch o.State {
	case checkout.StateCompleted:
		if o.Result == checkout.ResultAlreadyExists {
			fmt.Println("ya estaba en tu lista de deseos")
		} else {
			fmt.Println("listo")
		}
		return nil
	case checkout.StateRejected:
		switch o.Reason {
		case checkout.ReasonUnauthenticated:
			// la redirección a login ya se mostró vía Navigator
			return nil
		case checkout.ReasonOwnProduct:
			fmt.Println("este producto es de tu tienda; opciones: administrar inventario o seguir explorando")
			return nil
		case checkout.ReasonOutOfStock:
			fmt.Println("producto agotado")
			return nil
		}
		return nil
	default:
		return o.Err
	}
}
