package client

import (
	"context"
	"net/http"

	"github.com/lifeforge-dev/lifeforge/shared/api"
	"github.com/lifeforge-dev/lifeforge/shared/domain"
)

func (c *Client) GetMilkDonors(ctx context.Context) ([]domain.MilkDonor, error) {
	var donors []domain.MilkDonor
	if err := c.doJSON(ctx, http.MethodGet, "/milk/donors", nil, nil, &donors); err != nil {
		return nil, err
	}
	return donors, nil
}

// GetMilkBank returns the pasteurization log rows.
func (c *Client) GetMilkBank(ctx context.Context) ([]domain.MilkBankBatch, error) {
	var batches []domain.MilkBankBatch
	if err := c.doJSON(ctx, http.MethodGet, "/milk/bank", nil, nil, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

func (c *Client) GetMilkShortageAlerts(ctx context.Context) ([]domain.MilkShortageAlert, error) {
	var alerts []domain.MilkShortageAlert
	if err := c.doJSON(ctx, http.MethodGet, "/milk/shortage-alerts", nil, nil, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (c *Client) RegisterMilkDonor(ctx context.Context, req api.RegisterMilkDonor) (*api.SuccessResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.SuccessResponse
	if err := c.doJSON(ctx, http.MethodPost, "/milk/register-donor", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PostMilkRequest(ctx context.Context, req api.CreateMilkRequest) (*api.SuccessResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.SuccessResponse
	if err := c.doJSON(ctx, http.MethodPost, "/milk/requests", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
