package entity

// Role names as stored in the role lookup table. Route allow-lists reference
// these; authorization always compares against the role currently stored for
// the user, never the one embedded in a token.
const (
	RoleNameAdministrator  = "Administrador"
	RoleNameAdministrative = "Administrativo"
	RoleNameRecruiter      = "Reclutador"
)
