package domain

// ChatMessage is one entry in the shared chat feed. Any authenticated user
// may append; only the sender may edit their own message.
type ChatMessage struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName,omitempty"`
	Text       string `json:"text"`
	Timestamp  string `json:"timestamp"` // RFC 3339
	Edited     bool   `json:"edited,omitempty"`
}
