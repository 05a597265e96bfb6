package client

import (
	"context"
	"net/http"

	"github.com/lifeforge-dev/lifeforge/shared/api"
	"github.com/lifeforge-dev/lifeforge/shared/domain"
)

func (c *Client) GetDonorDashboard(ctx context.Context, donorID string) (*domain.DonorDashboard, error) {
	var out domain.DonorDashboard
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/donor/"+donorID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetHospitalDashboard(ctx context.Context, hospitalID string) (*domain.HospitalDashboard, error) {
	var out domain.HospitalDashboard
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/hospital/"+hospitalID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAdminDashboard(ctx context.Context) (*domain.AdminDashboard, error) {
	var out domain.AdminDashboard
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/admin", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminVerify approves or rejects an entity in the verification queue.
func (c *Client) AdminVerify(ctx context.Context, req api.AdminVerify) (*api.AdminVerifyResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.AdminVerifyResponse
	if err := c.doJSON(ctx, http.MethodPost, "/dashboard/admin/verify", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStats returns the public live platform counters.
func (c *Client) GetStats(ctx context.Context) (*domain.PlatformStats, error) {
	var out domain.PlatformStats
	if err := c.doJSON(ctx, http.MethodGet, "/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
