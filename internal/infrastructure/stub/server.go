package stub

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	pkgjwt "github.com/jhoicas/storefront-client/pkg/jwt"
)

// Config parámetros del stub.
type Config struct {
	JWTSecret string // secreto HMAC con el que el stub emite y valida tokens
	AppName   string
}

// NewApp construye la aplicación fiber que imita la superficie HTTP de la
// plataforma, con datos en memoria. Solo para desarrollo local y tests de
// integración del storefront; no es un API publicado.
func NewApp(cfg Config) *fiber.App {
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret"
	}
	store := NewStore()
	h := &handlers{store: store, secret: cfg.JWTSecret}

	app := fiber.New(fiber.Config{AppName: cfg.AppName})
	app.Use(recover.New())

	api := app.Group("/api")

	// Públicos
	api.Get("/products", h.listProducts)
	api.Get("/products/:id", h.getProduct)
	api.Get("/categories", h.listCategories)

	// Emisión de tokens de desarrollo (la plataforma real tiene su propio login)
	api.Post("/auth/dev-token", h.devToken)

	// Autenticados
	api.Get("/stores/check", h.requireAuth, h.checkStore)
	api.Post("/cart/items", h.requireAuth, h.addCartItem)
	api.Put("/cart/items/:id", h.requireAuth, h.updateCartItem)
	api.Delete("/cart/items/:id", h.requireAuth, h.removeCartItem)
	api.Delete("/cart/", h.requireAuth, h.clearCart)
	api.Get("/cart/", h.requireAuth, h.getCart)
	api.Get("/wishlist", h.requireAuth, h.getWishlist)
	api.Post("/wishlist/add", h.requireAuth, h.addWishlist)
	api.Delete("/wishlist/remove/:id", h.requireAuth, h.removeWishlist)
	api.Delete("/wishlist/clear", h.requireAuth, h.clearWishlist)

	return app
}

type handlers struct {
	store  *Store
	secret string
}

const localsUserID = "user_id"

// requireAuth valida el bearer del header Authorization y deja el user_id en
// los locals del contexto.
func (h *handlers) requireAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return fail(c, fiber.StatusUnauthorized, "credencial requerida")
	}
	claims, err := pkgjwt.Parse(h.secret, strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "credencial inválida o expirada")
	}
	c.Locals(localsUserID, claims.UserID)
	return c.Next()
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsUserID).(string)
	return id
}

// fail responde el envelope de error común {success:false, message}.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}
