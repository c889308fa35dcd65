package domain

// Member is one member of the cooperative. IDs are small monotonic sequence
// numbers assigned at creation so they stay human readable on receipts.
type Member struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	JoinDate string `json:"joinDate"` // ISO date (2006-01-02)
	Address  string `json:"address,omitempty"`
	IsActive bool   `json:"isActive"`
}
