package dto

// PostChatMessageRequest appends a message to the chat feed.
type PostChatMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// EditChatMessageRequest replaces the text of the sender's own message.
type EditChatMessageRequest struct {
	Text string `json:"text" binding:"required"`
}
