package session

import (
	"sync"

	"github.com/jhoicas/storefront-client/internal/domain/entity"
	pkgjwt "github.com/jhoicas/storefront-client/pkg/jwt"
)

// Store guarda la sesión activa del proceso con ciclo de vida explícito:
// Init en el login, Clear en el logout o expiración. El resto del código
// recibe la sesión como valor; nadie lee almacenamiento ambiente.
type Store struct {
	mu      sync.RWMutex
	current entity.Session
}

// NewStore crea el almacén con sesión de invitado.
func NewStore() *Store {
	return &Store{current: entity.Guest()}
}

// Init inicia sesión con el token emitido por la plataforma. Los claims se
// leen sin verificar firma: el cliente no conoce el secreto del servidor y el
// token solo se usa aquí para presentación; toda decisión de negocio la
// re-valida el API remoto en cada llamada.
func (s *Store) Init(token string) (entity.Session, error) {
	claims, err := pkgjwt.ParseUnverified(token)
	if err != nil {
		return entity.Guest(), err
	}
	role := entity.RoleBuyer
	if claims.Role == string(entity.RoleSupplier) {
		role = entity.RoleSupplier
	}
	sess := entity.Session{
		ActorID: claims.UserID,
		Role:    role,
		Token:   token,
	}
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return sess, nil
}

// Clear destruye la sesión (logout o expiración) y vuelve a invitado.
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = entity.Guest()
	s.mu.Unlock()
}

// Current devuelve la sesión vigente (invitado si no hay login).
func (s *Store) Current() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token devuelve la credencial vigente, o "" para invitado. Es la TokenSource
// que consume el cliente HTTP.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}
