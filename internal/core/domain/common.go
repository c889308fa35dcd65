package domain

// UserRole determines what an authenticated actor may do.
type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleTreasurer UserRole = "TREASURER"
	RoleViewer    UserRole = "VIEWER"
)

// CanWrite reports whether the role is allowed to mutate ledger documents.
func (r UserRole) CanWrite() bool {
	return r == RoleAdmin || r == RoleTreasurer
}

// Actor identifies the authenticated user performing an operation.
// Handlers build it from the request context; services enforce role rules.
type Actor struct {
	UserID string
	Role   UserRole
}
