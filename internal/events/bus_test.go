package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-client/internal/events"
)

func TestBus_EntregaEnOrdenDeSuscripcion(t *testing.T) {
	bus := events.NewBus()
	var order []string
	bus.Subscribe(events.CartChanged, func() { order = append(order, "primero") })
	bus.Subscribe(events.CartChanged, func() { order = append(order, "segundo") })
	bus.Subscribe(events.WishlistChanged, func() { order = append(order, "otro tipo") })

	bus.Publish(events.CartChanged)

	require.Equal(t, []string{"primero", "segundo"}, order,
		"la entrega es síncrona, en orden de suscripción y solo al tipo publicado")
}

func TestBus_UnsubscribeDetieneLaEntrega(t *testing.T) {
	bus := events.NewBus()
	calls := 0
	token := bus.Subscribe(events.WishlistChanged, func() { calls++ })

	bus.Publish(events.WishlistChanged)
	bus.Unsubscribe(token)
	bus.Publish(events.WishlistChanged)

	assert.Equal(t, 1, calls)

	// cancelar dos veces es inocuo
	bus.Unsubscribe(token)
}

func TestBus_SuscripcionReentranteNoAfectaLaEntregaEnCurso(t *testing.T) {
	bus := events.NewBus()
	lateCalls := 0
	calls := 0
	bus.Subscribe(events.CartChanged, func() {
		calls++
		// suscribirse durante la entrega no debe provocar invocación en esta ronda
		bus.Subscribe(events.CartChanged, func() { lateCalls++ })
	})

	bus.Publish(events.CartChanged)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, lateCalls, "el handler agregado durante Publish entra a partir de la siguiente publicación")

	bus.Publish(events.CartChanged)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, lateCalls)
}

func TestBus_CancelacionReentranteEsSegura(t *testing.T) {
	bus := events.NewBus()
	var tokenB events.Token
	aCalls, bCalls := 0, 0
	bus.Subscribe(events.CartChanged, func() {
		aCalls++
		bus.Unsubscribe(tokenB)
	})
	tokenB = bus.Subscribe(events.CartChanged, func() { bCalls++ })

	// La primera publicación itera sobre la copia tomada antes de la
	// cancelación: B todavía recibe esta ronda.
	bus.Publish(events.CartChanged)
	assert.Equal(t, 1, aCalls)
	assert.Equal(t, 1, bCalls)

	bus.Publish(events.CartChanged)
	assert.Equal(t, 2, aCalls)
	assert.Equal(t, 1, bCalls, "B quedó cancelado para rondas posteriores")
}
