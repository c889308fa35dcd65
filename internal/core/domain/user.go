package domain

// User is an application login. Users live inside the settings document, not
// in their own collection.
type User struct {
	UserID   string   `json:"userId"`
	Name     string   `json:"name"`
	Password string   `json:"password"` // bcrypt hash, never plaintext
	Role     UserRole `json:"role"`
}

// Settings is the singleton settings document: organization metadata plus the
// user sequence.
type Settings struct {
	OrgName  string `json:"orgName,omitempty"`
	Currency string `json:"currency,omitempty"` // display label only, e.g. "Rs."
	Users    []User `json:"users"`
}
