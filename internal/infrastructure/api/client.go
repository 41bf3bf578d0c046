package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/storefront-client/internal/application/checkout"
	"github.com/jhoicas/storefront-client/internal/application/ownership"
	"github.com/jhoicas/storefront-client/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa los puertos de la
// capa de aplicación.
var (
	_ checkout.CartAPI       = (*Client)(nil)
	_ checkout.WishlistAPI   = (*Client)(nil)
	_ ownership.StoreChecker = (*Client)(nil)
)

// TokenSource entrega la credencial bearer vigente, o cadena vacía si no hay
// sesión. La implementa el session.Store; inyectarla como función evita que
// el cliente dependa del ciclo de vida de la sesión.
type TokenSource func() string

// Client cliente tipado del API remoto de la plataforma (catálogo, carrito,
// lista de deseos, tiendas). Sin caché local: cada llamada es un viaje fresco
// al servidor para que las vistas de vida corta siempre muestren datos
// consistentes.
//
// Usa net/http de la librería estándar con timeout configurado, igual que el
// resto de clientes salientes del proyecto.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// Config parámetros de construcción del cliente.
type Config struct {
	BaseURL string        // ej: https://api.tienda.example.com/api
	Timeout time.Duration // 0 usa 15 s
}

// NewClient construye el cliente. tokens puede devolver "" (invitado): las
// llamadas públicas funcionan igual y las autenticadas fallan antes de tocar
// la red.
func NewClient(cfg Config, tokens TokenSource) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if tokens == nil {
		tokens = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// envelope forma común de toda respuesta de la plataforma.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// do ejecuta una llamada y normaliza cualquier fallo (transporte o HTTP) a
// *domain.APIError. Si authed es true y no hay credencial, falla con
// Unauthenticated sin intentar la red. out, si no es nil, recibe el cuerpo
// decodificado (debe embeber envelope).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.call(ctx, method, path, query, body, out, true)
}

// doPublic igual que do pero sin exigir credencial (catálogo).
func (c *Client) doPublic(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.call(ctx, method, path, query, body, out, false)
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	token := c.tokens()
	if authed && token == "" {
		return domain.NewAPIError(domain.KindUnauthenticated, "se requiere iniciar sesión")
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.NewAPIError(domain.KindValidation, fmt.Sprintf("petición no serializable: %v", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return domain.NewAPIError(domain.KindValidation, fmt.Sprintf("petición inválida: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewAPIError(domain.KindNetworkError, "no se pudo contactar al servidor")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewAPIError(domain.KindNetworkError, "respuesta interrumpida")
	}

	// El message del envelope se extrae siempre que sea posible para
	// mostrarlo al usuario, incluso en respuestas de error.
	var env envelope
	_ = json.Unmarshal(data, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return domain.NewAPIError(kindForStatus(resp.StatusCode), msg)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "el servidor rechazó la operación"
		}
		return domain.NewAPIError(domain.KindServerError, msg)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return domain.NewAPIError(domain.KindServerError, "respuesta malformada del servidor")
		}
	}
	return nil
}

// kindForStatus clasifica el código HTTP dentro de la taxonomía única.
func kindForStatus(status int) domain.ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.KindUnauthenticated
	case status == http.StatusNotFound:
		return domain.KindNotFound
	case status >= 400 && status < 500:
		return domain.KindValidation
	default:
		return domain.KindServerError
	}
}
