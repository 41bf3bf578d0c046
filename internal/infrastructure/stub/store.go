package stub

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Datos en memoria del stub. Todo es transitorio: el stub existe para
// desarrollar el storefront sin la plataforma real, no para persistir nada.

type product struct {
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

type category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type cartItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	AddedAt     time.Time       `json:"added_at"`
}

type wishlistEntry struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	AddedAt     time.Time `json:"added_at"`
}

// Store estado en memoria del stub, protegido por mutex: fiber atiende cada
// petición en su propia goroutine.
type Store struct {
	mu         sync.Mutex
	products   []product
	categories []category
	carts      map[string][]cartItem      // por user_id
	wishlists  map[string][]wishlistEntry // por user_id
	stores     map[string]string          // user_id -> store_id de su tienda
}

// NewStore crea el estado con el catálogo de ejemplo sembrado.
func NewStore() *Store {
	s := &Store{
		carts:     make(map[string][]cartItem),
		wishlists: make(map[string][]wishlistEntry),
		stores:    make(map[string]string),
	}
	s.seed()
	return s
}

func dec(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

// seed siembra categorías y productos de panadería/repostería de ejemplo.
func (s *Store) seed() {
	s.categories = []category{
		{ID: "cat-panaderia", Name: "Panadería"},
		{ID: "cat-reposteria", Name: "Repostería"},
		{ID: "cat-bebidas", Name: "Bebidas"},
	}
	base := time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC)
	s.products = []product{
		{
			ID: "prod-001", Name: "Chocolate cake", Description: "Torta de chocolate por porción",
			Price: dec("18000"), SalePrice: decPtr("15000"), StockQuantity: 12,
			OwnerStoreID: "store-dulce", ImageURL: "/img/chocolate-cake.jpg",
			CategoryID: "cat-reposteria", CreatedAt: base,
		},
		{
			ID: "prod-002", Name: "Carrot cake", Description: "Torta de zanahoria con nueces",
			Price: dec("16500"), StockQuantity: 3,
			OwnerStoreID: "store-dulce", ImageURL: "/img/carrot-cake.jpg",
			CategoryID: "cat-reposteria", CreatedAt: base.Add(24 * time.Hour),
		},
		{
			ID: "prod-003", Name: "Pan campesino", Description: "Pan artesanal de masa madre",
			Price: dec("9500"), StockQuantity: 25,
			OwnerStoreID: "store-horno", ImageURL: "/img/pan-campesino.jpg",
			CategoryID: "cat-panaderia", CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID: "prod-004", Name: "Almojábana", Description: "Almojábana tradicional",
			Price: dec("3200"), StockQuantity: 0,
			OwnerStoreID: "store-horno", ImageURL: "/img/almojabana.jpg",
			CategoryID: "cat-panaderia", CreatedAt: base.Add(72 * time.Hour),
		},
		{
			ID: "prod-005", Name: "Jugo de lulo", Description: "Jugo natural de lulo 500 ml",
			Price: dec("6000"), StockQuantity: 40,
			OwnerStoreID: "store-fresco", ImageURL: "/img/jugo-lulo.jpg",
			CategoryID: "cat-bebidas", CreatedAt: base.Add(96 * time.Hour),
		},
	}
	// Dueños de tiendas proveedoras para probar el guard de propiedad.
	s.stores["user-dulce"] = "store-dulce"
	s.stores["user-horno"] = "store-horno"
}

// productQuery filtros soportados por el listado.
type productQuery struct {
	page       int
	limit      int
	categoryID string
	search     string
	priceMin   string
	priceMax   string
	sortBy     string
}

// listProducts aplica filtros, orden y paginación sobre el catálogo sembrado.
func (s *Store) listProducts(q productQuery) (items []product, total, pages int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]product, 0, len(s.products))
	for _, p := range s.products {
		if q.categoryID != "" && p.CategoryID != q.categoryID {
			continue
		}
		if q.search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.search)) &&
			!strings.Contains(strings.ToLower(p.Description), strings.ToLower(q.search)) {
			continue
		}
		if q.priceMin != "" {
			if min, err := decimal.NewFromString(q.priceMin); err == nil && p.Price.LessThan(min) {
				continue
			}
		}
		if q.priceMax != "" {
			if max, err := decimal.NewFromString(q.priceMax); err == nil && p.Price.GreaterThan(max) {
				continue
			}
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, q.sortBy)

	total = len(filtered)
	if q.limit <= 0 {
		q.limit = 12
	}
	if q.page <= 0 {
		q.page = 1
	}
	pages = (total + q.limit - 1) / q.limit
	start := (q.page - 1) * q.limit
	if start >= total {
		return []product{}, total, pages
	}
	end := start + q.limit
	if end > total {
		end = total
	}
	return filtered[start:end], total, pages
}

func sortProducts(items []product, sortBy string) {
	less := func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) } // date_desc por defecto
	switch sortBy {
	case "date_asc":
		less = func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) }
	case "price_asc":
		less = func(i, j int) bool { return items[i].Price.LessThan(items[j].Price) }
	case "price_desc":
		less = func(i, j int) bool { return items[i].Price.GreaterThan(items[j].Price) }
	case "name_asc":
		less = func(i, j int) bool { return items[i].Name < items[j].Name }
	case "name_desc":
		less = func(i, j int) bool { return items[i].Name > items[j].Name }
	}
	sort.SliceStable(items, less)
}

// getProduct busca un producto por ID.
func (s *Store) getProduct(id string) (product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return product{}, false
}

func (s *Store) listCategories() []category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]category(nil), s.categories...)
}

// storeOf devuelve la tienda del usuario, si es proveedor.
func (s *Store) storeOf(userID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.stores[userID]
	return id, ok
}

// addCartItem agrega o acumula una línea, validando stock.
func (s *Store) addCartItem(userID, productID string, quantity int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var prod *product
	for i := range s.products {
		if s.products[i].ID == productID {
			prod = &s.products[i]
			break
		}
	}
	if prod == nil || quantity < 1 || quantity > prod.StockQuantity {
		return "", false
	}
	for i, it := range s.carts[userID] {
		if it.ProductID == productID {
			s.carts[userID][i].Quantity += quantity
			return it.ID, true
		}
	}
	item := cartItem{
		ID:          uuid.New().String(),
		ProductID:   prod.ID,
		ProductName: prod.Name,
		UnitPrice:   prod.Price,
		Quantity:    quantity,
		AddedAt:     time.Now().UTC(),
	}
	s.carts[userID] = append(s.carts[userID], item)
	return item.ID, true
}

func (s *Store) updateCartItem(userID, itemID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.carts[userID] {
		if it.ID == itemID && quantity >= 1 {
			s.carts[userID][i].Quantity = quantity
			return true
		}
	}
	return false
}

func (s *Store) removeCartItem(userID, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[userID]
	for i, it := range items {
		if it.ID == itemID {
			s.carts[userID] = append(items[:i:i], items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) clearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func (s *Store) cartOf(userID string) []cartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]cartItem(nil), s.carts[userID]...)
}

// addWishlistEntry agrega el producto a la lista de deseos. Si ya estaba
// devuelve alreadyExists true sin duplicar.
func (s *Store) addWishlistEntry(userID, productID string) (alreadyExists, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var prod *product
	for i := range s.products {
		if s.products[i].ID == productID {
			prod = &s.products[i]
			break
		}
	}
	if prod == nil {
		return false, false
	}
	for _, e := range s.wishlists[userID] {
		if e.ProductID == productID {
			return true, true
		}
	}
	s.wishlists[userID] = append(s.wishlists[userID], wishlistEntry{
		ID:          uuid.New().String(),
		ProductID:   prod.ID,
		ProductName: prod.Name,
		AddedAt:     time.Now().UTC(),
	})
	return false, true
}

func (s *Store) removeWishlistEntry(userID, entryID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.wishlists[userID]
	for i, e := range entries {
		if e.ID == entryID {
			s.wishlists[userID] = append(entries[:i:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) clearWishlist(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlists, userID)
}

func (s *Store) wishlistOf(userID string) []wishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]wishlistEntry(nil), s.wishlists[userID]...)
}
