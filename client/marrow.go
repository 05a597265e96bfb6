package client

import (
	"context"
	"net/http"

	"github.com/lifeforge-dev/lifeforge/shared/api"
	"github.com/lifeforge-dev/lifeforge/shared/domain"
)

// FindMarrowMatches scores registered donors' HLA markers against the
// patient's and returns the top matches.
func (c *Client) FindMarrowMatches(ctx context.Context, req api.MarrowMatchRequest) (*domain.MarrowMatchResult, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out domain.MarrowMatchResult
	if err := c.doJSON(ctx, http.MethodPost, "/marrow/match", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterHLA stores a donor's HLA typing and adds marrow to their donor
// types.
func (c *Client) RegisterHLA(ctx context.Context, req api.RegisterHLA) (*api.SuccessResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.SuccessResponse
	if err := c.doJSON(ctx, http.MethodPost, "/marrow/register-hla", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetMarrowDonors(ctx context.Context) ([]domain.MarrowDonor, error) {
	var donors []domain.MarrowDonor
	if err := c.doJSON(ctx, http.MethodGet, "/marrow/donors", nil, nil, &donors); err != nil {
		return nil, err
	}
	return donors, nil
}
