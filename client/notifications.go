package client

import (
	"context"
	"net/http"

	"github.com/lifeforge-dev/lifeforge/shared/api"
	"github.com/lifeforge-dev/lifeforge/shared/domain"
)

func (c *Client) GetNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.doJSON(ctx, http.MethodGet, "/notifications/"+userID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkNotificationsRead(ctx context.Context, req api.MarkNotificationsRead) (*api.SuccessResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.SuccessResponse
	if err := c.doJSON(ctx, http.MethodPost, "/notifications/mark-read", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
