package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-client/internal/domain"
	"github.com/jhoicas/storefront-client/internal/domain/catalog"
	"github.com/jhoicas/storefront-client/internal/domain/entity"
	"github.com/jhoicas/storefront-client/internal/infrastructure/api"
)

func tokenSource(token string) api.TokenSource {
	return func() string { return token }
}

func newTestClient(baseURL, token string) *api.Client {
	return api.NewClient(api.Config{BaseURL: baseURL}, tokenSource(token))
}

// ──────────────────────────────────────────────────────────────────────────────
// Credencial ausente: fallo antes de tocar la red.
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_SinCredencialNoTocaLaRed(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "")
	err := c.AddToCart(context.Background(), entity.CartMutationRequest{ProductID: "prod-001", Quantity: 1})

	require.Error(t, err)
	assert.Equal(t, domain.KindUnauthenticated, domain.ErrKind(err))
	assert.Zero(t, requests, "una llamada autenticada sin token no debe salir a la red")
}

func TestClient_LlamadasPublicasSinCredencial(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"products":[],"pagination":{"total":0,"pages":0}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "")
	page, err := c.QueryProducts(context.Background(), catalog.NewFilterState(12).ToRemoteQuery())

	require.NoError(t, err)
	assert.Empty(t, page.Products)
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de errores: HTTP y transporte caen en la misma taxonomía.
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_NormalizacionDeErroresHTTP(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		wantKind domain.ErrorKind
		wantMsg  string
	}{
		{"401 -> Unauthenticated", http.StatusUnauthorized, `{"success":false,"message":"credencial requerida"}`, domain.KindUnauthenticated, "credencial requerida"},
		{"403 -> Unauthenticated", http.StatusForbidden, `{"success":false}`, domain.KindUnauthenticated, "Forbidden"},
		{"404 -> NotFound", http.StatusNotFound, `{"success":false,"message":"producto no encontrado"}`, domain.KindNotFound, "producto no encontrado"},
		{"422 -> Validation", http.StatusUnprocessableEntity, `{"success":false,"message":"cantidad fuera de stock"}`, domain.KindValidation, "cantidad fuera de stock"},
		{"500 -> ServerError", http.StatusInternalServerError, `{"success":false,"message":"error interno"}`, domain.KindServerError, "error interno"},
		{"2xx sin success -> ServerError", http.StatusOK, `{"success":false,"message":"operación rechazada"}`, domain.KindServerError, "operación rechazada"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := newTestClient(srv.URL, "tok")
			err := c.ClearCart(context.Background())

			require.Error(t, err)
			assert.Equal(t, tc.wantKind, domain.ErrKind(err))
			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.wantMsg, apiErr.Message, "el message del envelope debe llegar al usuario")
		})
	}
}

func TestClient_FalloDeTransporteEsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // el puerto queda muerto

	c := newTestClient(srv.URL, "tok")
	err := c.ClearWishlist(context.Background())

	require.Error(t, err)
	assert.Equal(t, domain.KindNetworkError, domain.ErrKind(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Cable: bearer, parámetros de consulta y decodificación.
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_EnviaBearerYParametros(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"products":[],"pagination":{"total":0,"pages":0}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "tok-123")
	filters := catalog.NewFilterState(12)
	filters.SetSearch("cake")
	filters.SetSort("priceAsc")
	_, err := c.QueryProducts(context.Background(), filters.ToRemoteQuery())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "limit=12&page=1&search=cake&sort=price_asc", gotQuery)
}

func TestClient_DecodificaProducto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/prod-001", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"product":{
			"id":"prod-001","name":"Chocolate cake","price":"18000","sale_price":"15000",
			"stock_quantity":12,"owner_store_id":"store-dulce","category_id":"cat-reposteria"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "")
	p, err := c.GetProduct(context.Background(), "prod-001")

	require.NoError(t, err)
	assert.Equal(t, "Chocolate cake", p.Name)
	assert.True(t, p.OnSale())
	assert.Equal(t, "15000", p.EffectivePrice().String())
	assert.True(t, p.InStock())
}

func TestClient_WishlistDuplicadaNoEsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"ya estaba","already_exists":true}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "tok")
	alreadyExists, err := c.AddToWishlist(context.Background(), "prod-001")

	require.NoError(t, err, "already_exists es informativo, no un fallo")
	assert.True(t, alreadyExists)
}
