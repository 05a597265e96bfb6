package client

import (
	"context"
	"net/http"

	"github.com/lifeforge-dev/lifeforge/shared/api"
	"github.com/lifeforge-dev/lifeforge/shared/domain"
)

// GetBloodDonors lists available donor cards. Unset filter fields are
// omitted from the query string; ordering is whatever the server returns.
func (c *Client) GetBloodDonors(ctx context.Context, filter api.DonorFilter) ([]domain.Donor, error) {
	params := Params{
		"blood_group": filter.BloodGroup,
		"city":        filter.City,
		"pincode":     filter.Pincode,
		"lat":         filter.Lat,
		"lng":         filter.Lng,
		"limit":       filter.Limit,
	}

	var donors []domain.Donor
	if err := c.doJSON(ctx, http.MethodGet, "/blood/donors", nil, params, &donors); err != nil {
		return nil, err
	}
	return donors, nil
}

func (c *Client) GetOpenBloodRequests(ctx context.Context) ([]domain.BloodRequest, error) {
	var requests []domain.BloodRequest
	if err := c.doJSON(ctx, http.MethodGet, "/blood/requests/open", nil, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// GetBloodRequestsForDonor lists open requests compatible with the
// donor's own blood group.
func (c *Client) GetBloodRequestsForDonor(ctx context.Context, donorID domain.UserID) ([]domain.BloodRequest, error) {
	params := Params{"donor_id": donorID}
	var requests []domain.BloodRequest
	if err := c.doJSON(ctx, http.MethodGet, "/blood/requests/for-donor", nil, params, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) PostBloodRequest(ctx context.Context, req api.CreateBloodRequest) (*api.CreateBloodRequestResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.CreateBloodRequestResponse
	if err := c.doJSON(ctx, http.MethodPost, "/blood/requests", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestBloodDonor targets one specific donor with a request.
func (c *Client) RequestBloodDonor(ctx context.Context, req api.RequestDonor) (*api.RequestDonorResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.RequestDonorResponse
	if err := c.doJSON(ctx, http.MethodPost, "/blood/donors/request", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetBloodShortage(ctx context.Context) ([]domain.Shortage, error) {
	var shortages []domain.Shortage
	if err := c.doJSON(ctx, http.MethodGet, "/blood/shortage", nil, nil, &shortages); err != nil {
		return nil, err
	}
	return shortages, nil
}
