package dto

// StartRequest resets a user's conversation.
type StartRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// MessageRequest carries one inbound chat message.
type MessageRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// ChatResponse carries the outbound reply. The reply may contain inline
// *bold* emphasis markup.
type ChatResponse struct {
	Reply string `json:"reply"`
}
