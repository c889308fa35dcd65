package dto

// CreateMemberRequest defines the data needed to register a new member.
// The member ID is assigned by the service as the next sequence number.
type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	JoinDate string `json:"joinDate" binding:"required,datetime=2006-01-02"`
	Address  string `json:"address"`
}

// SetMemberActiveRequest toggles membership without touching other fields.
type SetMemberActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// UpdateMemberRequest defines the fields that may be edited. Pointers
// distinguish "not provided" from zero values.
type UpdateMemberRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	JoinDate *string `json:"joinDate" binding:"omitempty,datetime=2006-01-02"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"isActive"`
}
