package domain

// Chat roles of the AI companion conversation.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of the AI companion conversation. The full
// ordered history is sent with every request; nothing is persisted here.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
