package client

import (
	"context"
	"net/http"

	"github.com/lifeforge-dev/lifeforge/shared/api"
	"github.com/lifeforge-dev/lifeforge/shared/domain"
)

func (c *Client) GetOrganViability(ctx context.Context) ([]domain.OrganViability, error) {
	var organs []domain.OrganViability
	if err := c.doJSON(ctx, http.MethodGet, "/organ/viability", nil, nil, &organs); err != nil {
		return nil, err
	}
	return organs, nil
}

// GetOrganRecipients lists waiting recipients ranked by urgency.
func (c *Client) GetOrganRecipients(ctx context.Context, filter api.RecipientFilter) ([]domain.OrganRecipient, error) {
	params := Params{
		"organ_type":  filter.OrganType,
		"blood_group": filter.BloodGroup,
		"donor_lat":   filter.DonorLat,
		"donor_lng":   filter.DonorLng,
		"limit":       filter.Limit,
	}
	var recipients []domain.OrganRecipient
	if err := c.doJSON(ctx, http.MethodGet, "/organ/recipients", nil, params, &recipients); err != nil {
		return nil, err
	}
	return recipients, nil
}

// CreateOrganPledge records a pledge and returns the id used for the
// digital pledge card.
func (c *Client) CreateOrganPledge(ctx context.Context, req api.CreateOrganPledge) (*api.CreateOrganPledgeResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.CreateOrganPledgeResponse
	if err := c.doJSON(ctx, http.MethodPost, "/organ/pledge", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PostOrganRequest(ctx context.Context, req api.CreateOrganRequest) (*api.SuccessResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.SuccessResponse
	if err := c.doJSON(ctx, http.MethodPost, "/organ/requests", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
