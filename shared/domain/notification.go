package domain

// Notification is an in-app alert row, polled by the navbar.
type Notification struct {
	ID        string `json:"id"`
	UserID    UserID `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}
