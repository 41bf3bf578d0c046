package events

import "sync"

// Kind identifica el tipo de evento de consistencia entre vistas.
// Los eventos no llevan payload: los suscriptores re-consultan el API remoto
// en lugar de confiar en datos parciales que podrían estar desactualizados.
type Kind string

const (
	CartChanged     Kind = "cart_changed"
	WishlistChanged Kind = "wishlist_changed"
)

// Handler reacciona a un evento publicado.
type Handler func()

// Token identifica una suscripción para poder cancelarla.
// Cada vista debe cancelar sus suscripciones al desmontarse: el bus nunca
// poda handlers por su cuenta.
type Token struct {
	kind Kind
	id   uint64
}

type subscription struct {
	id      uint64
	handler Handler
}

// Bus publica/suscribe eventos de forma síncrona dentro del proceso.
// Publish invoca todos los handlers suscritos al tipo, en orden de
// suscripción, antes de retornar. La entrega itera sobre una copia de la
// lista, de modo que un handler puede suscribir o cancelar sin romper la
// iteración en curso.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[Kind][]subscription
}

// NewBus crea un bus vacío.
func NewBus() *Bus {
	return &Bus{subs: make(map[Kind][]subscription)}
}

// Subscribe registra un handler para el tipo de evento y devuelve el token
// con el que cancelarlo.
func (b *Bus) Subscribe(kind Kind, h Handler) Token {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs[kind] = append(b.subs[kind], subscription{id: b.nextID, handler: h})
	return Token{kind: kind, id: b.nextID}
}

// Unsubscribe cancela la suscripción del token. Cancelar dos veces es inocuo.
func (b *Bus) Unsubscribe(t Token) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.subs[t.kind]
	for i, s := range list {
		if s.id == t.id {
			b.subs[t.kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Publish entrega el evento a todos los suscriptores actuales del tipo.
// La lista se copia bajo lock y los handlers se invocan fuera de él.
func (b *Bus) Publish(kind Kind) {
	b.mu.Lock()
	snapshot := make([]subscription, len(b.subs[kind]))
	copy(snapshot, b.subs[kind])
	b.mu.Unlock()

	for _, s := range snapshot {
		s.handler()
	}
}
