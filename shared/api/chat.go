package api

import "github.com/lifeforge-dev/lifeforge/shared/domain"

// ChatRequest carries the full conversation history plus the urgency flag
// on every call; the AI companion is stateless between requests.
type ChatRequest struct {
	Messages []domain.ChatMessage `json:"messages" validate:"required,min=1"`
	IsUrgent bool                 `json:"is_urgent"`
}

// ChatSyncResponse is the non-streaming fallback endpoint's reply.
type ChatSyncResponse struct {
	Reply string `json:"reply"`
}
