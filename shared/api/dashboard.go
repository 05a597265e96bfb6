package api

// AdminVerify approves or rejects a pending donor/hospital verification.
type AdminVerify struct {
	EntityType string `json:"entity_type" validate:"required,oneof=donor hospital"`
	EntityID   string `json:"entity_id" validate:"required"`
	Approved   bool   `json:"approved"`
}

type AdminVerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MarkNotificationsRead marks the given notification ids as read.
type MarkNotificationsRead struct {
	IDs []string `json:"ids" validate:"required"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
