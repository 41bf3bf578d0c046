package stub

import (
	"github.com/gofiber/fiber/v2"

	pkgjwt "github.com/jhoicas/storefront-client/pkg/jwt"
)

// ── Catálogo ──────────────────────────────────────────────────────────────────

func (h *handlers) listProducts(c *fiber.Ctx) error {
	q := productQuery{
		page:       c.QueryInt("page", 1),
		limit:      c.QueryInt("limit", 12),
		categoryID: c.Query("category_id"),
		search:     c.Query("search"),
		priceMin:   c.Query("price_min"),
		priceMax:   c.Query("price_max"),
		sortBy:     c.Query("sort", "date_desc"),
	}
	items, total, pages := h.store.listProducts(q)
	return c.JSON(fiber.Map{
		"success":  true,
		"products": items,
		"pagination": fiber.Map{
			"total": total,
			"pages": pages,
		},
	})
}

func (h *handlers) getProduct(c *fiber.Ctx) error {
	p, ok := h.store.getProduct(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusNotFound, "producto no encontrado")
	}
	return c.JSON(fiber.Map{"success": true, "product": p})
}

func (h *handlers) listCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "categories": h.store.listCategories()})
}

// ── Tiendas ───────────────────────────────────────────────────────────────────

func (h *handlers) checkStore(c *fiber.Ctx) error {
	storeID, ok := h.store.storeOf(userID(c))
	if !ok {
		return fail(c, fiber.StatusNotFound, "el actor no posee tienda")
	}
	return c.JSON(fiber.Map{"success": true, "store": fiber.Map{"store_id": storeID}})
}

// ── Carrito ───────────────────────────────────────────────────────────────────

func (h *handlers) addCartItem(c *fiber.Ctx) error {
	var in struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if _, ok := h.store.addCartItem(userID(c), in.ProductID, in.Quantity); !ok {
		return fail(c, fiber.StatusBadRequest, "producto inexistente o cantidad fuera de stock")
	}
	return c.JSON(fiber.Map{"success": true, "message": "producto agregado al carrito"})
}

func (h *handlers) updateCartItem(c *fiber.Ctx) error {
	var in struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if !h.store.updateCartItem(userID(c), c.Params("id"), in.Quantity) {
		return fail(c, fiber.StatusNotFound, "línea de carrito no encontrada")
	}
	return c.JSON(fiber.Map{"success": true, "message": "cantidad actualizada"})
}

func (h *handlers) removeCartItem(c *fiber.Ctx) error {
	if !h.store.removeCartItem(userID(c), c.Params("id")) {
		return fail(c, fiber.StatusNotFound, "línea de carrito no encontrada")
	}
	return c.JSON(fiber.Map{"success": true, "message": "línea eliminada"})
}

func (h *handlers) clearCart(c *fiber.Ctx) error {
	h.store.clearCart(userID(c))
	return c.JSON(fiber.Map{"success": true, "message": "carrito vaciado"})
}

func (h *handlers) getCart(c *fiber.Ctx) error {
	items := h.store.cartOf(userID(c))
	return c.JSON(fiber.Map{"success": true, "items": items})
}

// ── Lista de deseos ───────────────────────────────────────────────────────────

func (h *handlers) addWishlist(c *fiber.Ctx) error {
	var in struct {
		ProductID string `json:"product_id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	alreadyExists, ok := h.store.addWishlistEntry(userID(c), in.ProductID)
	if !ok {
		return fail(c, fiber.StatusNotFound, "producto no encontrado")
	}
	msg := "producto agregado a la lista de deseos"
	if alreadyExists {
		msg = "el producto ya estaba en la lista de deseos"
	}
	return c.JSON(fiber.Map{"success": true, "message": msg, "already_exists": alreadyExists})
}

func (h *handlers) removeWishlist(c *fiber.Ctx) error {
	if !h.store.removeWishlistEntry(userID(c), c.Params("id")) {
		return fail(c, fiber.StatusNotFound, "entrada no encontrada")
	}
	return c.JSON(fiber.Map{"success": true, "message": "entrada eliminada"})
}

func (h *handlers) clearWishlist(c *fiber.Ctx) error {
	h.store.clearWishlist(userID(c))
	return c.JSON(fiber.Map{"success": true, "message": "lista de deseos vaciada"})
}

func (h *handlers) getWishlist(c *fiber.Ctx) error {
	items := h.store.wishlistOf(userID(c))
	return c.JSON(fiber.Map{"success": true, "items": items})
}

// ── Tokens de desarrollo ──────────────────────────────────────────────────────

func (h *handlers) devToken(c *fiber.Ctx) error {
	var in struct {
		UserID  string `json:"user_id"`
		Role    string `json:"role"`
		StoreID string `json:"store_id"`
	}
	if err := c.BodyParser(&in); err != nil || in.UserID == "" {
		return fail(c, fiber.StatusBadRequest, "user_id requerido")
	}
	if in.Role == "" {
		in.Role = "buyer"
	}
	token, err := pkgjwt.Generate(h.secret, in.UserID, in.Role, in.StoreID, "storefront-stub", 120)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "no se pudo emitir el token")
	}
	return c.JSON(fiber.Map{"success": true, "token": token})
}
