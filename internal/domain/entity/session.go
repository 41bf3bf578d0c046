package entity

// Role rol del actor de la sesión tal como lo declara la plataforma.
type Role string

const (
	RoleGuest    Role = "guest"
	RoleBuyer    Role = "buyer"
	RoleSupplier Role = "supplier_owner" // dueño de una tienda proveedora
)

// Session sesión activa del storefront. ActorID y Role se leen de los claims
// del token; el token es la credencial opaca que viaja en cada llamada
// autenticada. Una sesión sin token es un invitado.
type Session struct {
	ActorID string
	Role    Role
	Token   string
}

// Guest devuelve la sesión de invitado (sin credencial).
func Guest() Session {
	return Session{Role: RoleGuest}
}

// Authenticated indica si la sesión porta una credencial.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// IsSupplier indica si el actor es dueño de tienda proveedora.
func (s Session) IsSupplier() bool {
	return s.Role == RoleSupplier
}
