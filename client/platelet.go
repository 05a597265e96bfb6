package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lifeforge-dev/lifeforge/shared/api"
	"github.com/lifeforge-dev/lifeforge/shared/domain"
)

func (c *Client) GetOpenPlateletRequests(ctx context.Context) ([]domain.PlateletRequest, error) {
	var requests []domain.PlateletRequest
	if err := c.doJSON(ctx, http.MethodGet, "/platelet/requests/open", nil, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) GetPlateletDonors(ctx context.Context, filter api.PlateletDonorFilter) ([]domain.PlateletDonor, error) {
	params := Params{
		"blood_group": filter.BloodGroup,
		"city":        filter.City,
		"limit":       filter.Limit,
	}
	var donors []domain.PlateletDonor
	if err := c.doJSON(ctx, http.MethodGet, "/platelet/donors", nil, params, &donors); err != nil {
		return nil, err
	}
	return donors, nil
}

func (c *Client) PostPlateletRequest(ctx context.Context, req api.CreatePlateletRequest) (*api.SuccessResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.SuccessResponse
	if err := c.doJSON(ctx, http.MethodPost, "/platelet/requests", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePlateletMatch(ctx context.Context, req api.CreatePlateletMatch) (*domain.PlateletMatch, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out domain.PlateletMatch
	if err := c.doJSON(ctx, http.MethodPost, "/platelet/matches", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePlateletMatch patches one match's status.
func (c *Client) UpdatePlateletMatch(ctx context.Context, matchID string, req api.UpdatePlateletMatch) (*domain.PlateletMatch, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out domain.PlateletMatch
	path := fmt.Sprintf("/platelet/matches/%s", matchID)
	if err := c.doJSON(ctx, http.MethodPatch, path, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
