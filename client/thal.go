package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lifeforge-dev/lifeforge/shared/api"
	"github.com/lifeforge-dev/lifeforge/shared/domain"
)

// === ThalCare ===

// GetThalPatients lists active thalassemia patients, optionally scoped to
// one hospital.
func (c *Client) GetThalPatients(ctx context.Context, hospitalID *string) ([]domain.ThalPatient, error) {
	params := Params{"hospital_id": hospitalID}
	var patients []domain.ThalPatient
	if err := c.doJSON(ctx, http.MethodGet, "/thal/patients", nil, params, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// GetThalMatches lists compatible donors who have never donated to this
// patient (the no-repeat rule is enforced server-side).
func (c *Client) GetThalMatches(ctx context.Context, patientID string) (*domain.ThalMatches, error) {
	var out domain.ThalMatches
	path := fmt.Sprintf("/thal/patients/%s/matches", patientID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetThalCalendar(ctx context.Context, daysAhead *int) ([]domain.CalendarDay, error) {
	params := Params{"days_ahead": daysAhead}
	var days []domain.CalendarDay
	if err := c.doJSON(ctx, http.MethodGet, "/thal/calendar", nil, params, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (c *Client) RegisterThalPatient(ctx context.Context, req api.RegisterThalPatient) (*api.SuccessResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.SuccessResponse
	if err := c.doJSON(ctx, http.MethodPost, "/thal/patients", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MarkTransfusionDone(ctx context.Context, req api.TransfusionDone) (*api.SuccessResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.SuccessResponse
	if err := c.doJSON(ctx, http.MethodPost, "/thal/transfusion-done", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssignThalDonor assigns a donor to an upcoming transfusion. The server
// rejects donors who already donated to the patient (409).
func (c *Client) AssignThalDonor(ctx context.Context, req api.AssignThalDonor) (*api.SuccessResponse, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.SuccessResponse
	if err := c.doJSON(ctx, http.MethodPost, "/thal/assign-donor", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// === ThalCare ML ===

func (c *Client) PredictTransfusion(ctx context.Context, req api.PredictTransfusion) (*domain.TransfusionPrediction, error) {
	var out domain.TransfusionPrediction
	if err := c.doJSON(ctx, http.MethodPost, "/thal/ml/predict", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MatchThalDonorsML returns ML-ranked donors with alloimmunization
// exclusion applied. The response shape is model-owned, so it is passed
// through untyped.
func (c *Client) MatchThalDonorsML(ctx context.Context, req api.MatchThalDonors) (map[string]any, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out map[string]any
	if err := c.doJSON(ctx, http.MethodPost, "/thal/ml/match-donors", req, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecordTransfusionML reports a completed transfusion to the ML service.
// The donor is permanently excluded for this patient from then on.
func (c *Client) RecordTransfusionML(ctx context.Context, req api.TransfusionCompleted) (*api.TransfusionRecorded, error) {
	if err := api.Validate(req); err != nil {
		return nil, err
	}
	var out api.TransfusionRecorded
	if err := c.doJSON(ctx, http.MethodPost, "/thal/ml/record-transfusion", req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetThalAlerts(ctx context.Context, limit *int) ([]map[string]any, error) {
	params := Params{"limit": limit}
	var out []map[string]any
	if err := c.doJSON(ctx, http.MethodGet, "/thal/ml/alerts", nil, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetThalPatientHistory(ctx context.Context, patientID string) (map[string]any, error) {
	var out map[string]any
	path := fmt.Sprintf("/thal/ml/patient/%s/history", patientID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RetrainThalModel(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.doJSON(ctx, http.MethodPost, "/thal/ml/train", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetThalModelInfo(ctx context.Context) (*domain.ModelInfo, error) {
	var out domain.ModelInfo
	if err := c.doJSON(ctx, http.MethodGet, "/thal/ml/model-info", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
